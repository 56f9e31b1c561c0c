// Package record holds the in-memory relational runtime: Row, Header, and
// Table, plus the join/project/filter operations executed by a SELECT plan.
package record

import (
	"strings"

	"centauri/internal/app/types"
)

// Row is an immutable ordered tuple of values.
type Row struct {
	values []types.Value
}

// NewRow builds a Row from an ordered slice of values. The slice is copied
// so later mutation of the caller's slice cannot change the Row.
func NewRow(values []types.Value) Row {
	cp := make([]types.Value, len(values))
	copy(cp, values)
	return Row{values: cp}
}

// Concat returns a new Row made of rows' values concatenated in order — the
// building block for cartesian product.
func Concat(rows ...Row) Row {
	total := 0
	for _, r := range rows {
		total += len(r.values)
	}
	out := make([]types.Value, 0, total)
	for _, r := range rows {
		out = append(out, r.values...)
	}
	return Row{values: out}
}

// Len returns the row's arity.
func (r Row) Len() int { return len(r.values) }

// At returns the value at position i.
func (r Row) At(i int) types.Value { return r.values[i] }

// Values returns the row's values as a fresh slice the caller may mutate.
func (r Row) Values() []types.Value {
	cp := make([]types.Value, len(r.values))
	copy(cp, r.values)
	return cp
}

// Project returns a new Row containing only the values at the given
// indices, in the order given.
func (r Row) Project(indices []int) Row {
	out := make([]types.Value, len(indices))
	for i, idx := range indices {
		out[i] = r.values[idx]
	}
	return Row{values: out}
}

// Reorder returns a new Row where the value currently at position i moves
// to position order[i].
func (r Row) Reorder(order []int) Row {
	out := make([]types.Value, len(order))
	for i, pos := range order {
		out[pos] = r.values[i]
	}
	return Row{values: out}
}

// String joins the row's values with ',' using each value's printing rule.
func (r Row) String() string {
	var b strings.Builder
	for i, v := range r.values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(v.String())
	}
	return b.String()
}
