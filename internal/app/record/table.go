package record

import (
	"strings"

	"centauri/internal/app/apperrors"
	"centauri/internal/app/lex"
	"centauri/internal/app/types"
)

// Table is a header plus an ordered sequence of rows, each row's arity
// equal to the column count and each row[i]'s kind equal to column
// type i.
type Table struct {
	header *Header
	rows   []Row
}

// NewTable builds an empty table over the given header.
func NewTable(header *Header) *Table {
	return &Table{header: header}
}

func (t *Table) Header() *Header { return t.header }

func (t *Table) Rows() []Row {
	cp := make([]Row, len(t.rows))
	copy(cp, t.rows)
	return cp
}

func (t *Table) RowCount() int { return len(t.rows) }

// InsertRow parses one lexeme per column against that column's declared
// type and appends the row. The row is appended only after every value
// parses successfully — a failed insert never mutates the table.
func (t *Table) InsertRow(lexemes []string) error {
	if len(lexemes) != t.header.Len() {
		return apperrors.ValueErrf(len(lexemes), "expected %d values, got %d", t.header.Len(), len(lexemes))
	}
	values := make([]types.Value, len(lexemes))
	for i, lexeme := range lexemes {
		kind := t.header.KindAt(i)
		v, ok := parseTyped(lexeme, kind)
		if !ok {
			return apperrors.TypeErrf(i, "value %d (%s) does not match column type %s", i, lexeme, kind)
		}
		values[i] = v
	}
	t.rows = append(t.rows, NewRow(values))
	return nil
}

func parseTyped(lexeme string, kind types.Kind) (types.Value, bool) {
	switch kind {
	case types.KindInt:
		return types.ParseInt(lexeme)
	case types.KindFloat:
		return types.ParseFloat(lexeme)
	case types.KindString:
		return types.ParseString(lexeme)
	default:
		return types.Value{}, false
	}
}

// CartesianProduct builds the table whose columns are the concatenation of
// each input table's columns (order preserved) and whose rows are the
// product over the input tables' rows, nested outermost tables[0] to
// innermost tables[len-1].
func CartesianProduct(tables []*Table) (*Table, error) {
	if len(tables) == 0 {
		return nil, apperrors.ValueErrf(-1, "cartesian product requires at least one table")
	}
	header := tables[0].header
	for _, t := range tables[1:] {
		h, err := header.Concat(t.header)
		if err != nil {
			return nil, err
		}
		header = h
	}

	acc := tables[0].rows
	for _, t := range tables[1:] {
		next := make([]Row, 0, len(acc)*len(t.rows))
		for _, outer := range acc {
			for _, inner := range t.rows {
				next = append(next, Concat(outer, inner))
			}
		}
		acc = next
	}

	return &Table{header: header, rows: acc}, nil
}

// ExtractColumnsByIndex produces a new table whose columns are exactly the
// given indices, always in ascending index order (a positional bitmap
// filter), regardless of the order indices were given in.
func (t *Table) ExtractColumnsByIndex(indices []int) (*Table, error) {
	header, err := t.header.ExtractByIndex(indices)
	if err != nil {
		return nil, err
	}
	sorted := sortedIndices(indices)
	rows := make([]Row, len(t.rows))
	for i, r := range t.rows {
		rows[i] = r.Project(sorted)
	}
	return &Table{header: header, rows: rows}, nil
}

// ExtractColumnsByName maps each requested name to its index via the
// header's name→index map, then defers to ExtractColumnsByIndex.
func (t *Table) ExtractColumnsByName(names []string) (*Table, error) {
	indices := make([]int, len(names))
	for i, name := range names {
		idx, ok := t.header.IndexOf(name)
		if !ok {
			return nil, apperrors.NameErrf("unknown column %q", name)
		}
		indices[i] = idx
	}
	return t.ExtractColumnsByIndex(indices)
}

// ReorderColumns moves column i to position order[i]. order must be a
// permutation of 0..n-1, n the column count.
func (t *Table) ReorderColumns(order []int) (*Table, error) {
	header, err := t.header.Reorder(order)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, len(t.rows))
	for i, r := range t.rows {
		rows[i] = r.Reorder(order)
	}
	return &Table{header: header, rows: rows}, nil
}

// Filter keeps, in input order, the rows for which the postfix condition
// evaluates to true. An empty condition is a value error — callers that
// want "no WHERE" should not call Filter at all.
func (t *Table) Filter(condition []lex.Token) (*Table, error) {
	elems, err := t.header.bind(condition)
	if err != nil {
		return nil, err
	}
	var kept []Row
	for _, row := range t.rows {
		result, err := evalBound(elems, row)
		if err != nil {
			return nil, err
		}
		if b, _ := result.AsBool(); b {
			kept = append(kept, row)
		}
	}
	return &Table{header: t.header, rows: kept}, nil
}

// String renders "name1 type1,name2 type2,…" followed, if any rows exist,
// by a newline and the rows joined by newlines.
func (t *Table) String() string {
	var b strings.Builder
	b.WriteString(t.header.String())
	for _, r := range t.rows {
		b.WriteByte('\n')
		b.WriteString(r.String())
	}
	return b.String()
}
