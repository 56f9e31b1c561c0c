package database

import (
	"sort"

	"centauri/internal/app/apperrors"
	"centauri/internal/app/plan"
	"centauri/internal/app/record"
)

// runSelect implements the Select dispatch:
//
//  1. resolve every table name in tables_list (unknown name -> error)
//  2. empty columns_list ("*") expands to the concatenation of each
//     scoped table's column names, in order
//  3. reject duplicate names in columns_list
//  4. compute the cartesian product of the scoped tables
//  5. filter by condition, if any
//  6. extract the requested columns by name (ascending source-index order)
//  7. reorder to the originally requested order
func (db *Database) runSelect(sel plan.Select) (*record.Table, error) {
	db.mu.RLock()
	tables := make([]*record.Table, len(sel.Tables))
	for i, name := range sel.Tables {
		t, exists := db.tables[name]
		if !exists {
			db.mu.RUnlock()
			return nil, apperrors.NameErrf("table %q does not exist", name)
		}
		tables[i] = t
	}
	db.mu.RUnlock()

	columns := sel.Columns
	if len(columns) == 0 {
		for _, t := range tables {
			columns = append(columns, t.Header().Names()...)
		}
	}
	if err := rejectDuplicateColumns(columns); err != nil {
		return nil, err
	}

	joined, err := record.CartesianProduct(tables)
	if err != nil {
		return nil, err
	}

	if len(sel.Condition) > 0 {
		joined, err = joined.Filter(sel.Condition)
		if err != nil {
			return nil, err
		}
	}

	order, err := reorderFor(joined.Header(), columns)
	if err != nil {
		return nil, err
	}

	extracted, err := joined.ExtractColumnsByName(columns)
	if err != nil {
		return nil, err
	}

	return extracted.ReorderColumns(order)
}

// reorderFor computes the "order" array to hand ReorderColumns after
// extracting columns by name: extraction always leaves its result in
// ascending source-index order, so order[i] must map the i-th ascending
// source index back to that name's position in the originally requested
// columns list.
func reorderFor(header *record.Header, columns []string) ([]int, error) {
	requestedPos := make(map[int]int, len(columns))
	indices := make([]int, len(columns))
	for j, name := range columns {
		idx, ok := header.IndexOf(name)
		if !ok {
			return nil, apperrors.NameErrf("unknown column %q", name)
		}
		requestedPos[idx] = j
		indices[j] = idx
	}

	sorted := make([]int, len(indices))
	copy(sorted, indices)
	sort.Ints(sorted)

	order := make([]int, len(sorted))
	for i, idx := range sorted {
		order[i] = requestedPos[idx]
	}
	return order, nil
}

func rejectDuplicateColumns(names []string) error {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			return apperrors.NameErrf("duplicate column %q in select list", n)
		}
		seen[n] = true
	}
	return nil
}
