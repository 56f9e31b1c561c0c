package record

import (
	"sort"
	"strings"

	"centauri/internal/app/apperrors"
	"centauri/internal/app/types"
)

// sortedIndices returns a sorted copy of indices — extraction always acts
// on the index set in ascending order, regardless of caller order.
func sortedIndices(indices []int) []int {
	sorted := make([]int, len(indices))
	copy(sorted, indices)
	sort.Ints(sorted)
	return sorted
}

// Header is a table's schema: two equal-length ordered sequences of column
// names and column types, plus a derived name→index map. Column names
// within a Header are unique.
//
// Shaped after record.Schema (fields + info map), widened with an explicit
// name→index map since this engine has no on-disk offset to fall back on.
type Header struct {
	names   []string
	kinds   []types.Kind
	indices map[string]int
}

// NewHeader builds a Header from parallel names/kinds slices, rejecting
// duplicate names.
func NewHeader(names []string, kinds []types.Kind) (*Header, error) {
	if len(names) != len(kinds) {
		return nil, apperrors.ValueErrf(-1, "column name count %d does not match column type count %d", len(names), len(kinds))
	}
	h := &Header{
		names:   make([]string, 0, len(names)),
		kinds:   make([]types.Kind, 0, len(kinds)),
		indices: make(map[string]int, len(names)),
	}
	for i, n := range names {
		if err := h.append(n, kinds[i]); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *Header) append(name string, kind types.Kind) error {
	if _, exists := h.indices[name]; exists {
		return apperrors.NameErrf("duplicate column name %q", name)
	}
	h.indices[name] = len(h.names)
	h.names = append(h.names, name)
	h.kinds = append(h.kinds, kind)
	return nil
}

// Len returns the column count.
func (h *Header) Len() int { return len(h.names) }

// Names returns the column names in order.
func (h *Header) Names() []string {
	cp := make([]string, len(h.names))
	copy(cp, h.names)
	return cp
}

// Kinds returns the column types in order.
func (h *Header) Kinds() []types.Kind {
	cp := make([]types.Kind, len(h.kinds))
	copy(cp, h.kinds)
	return cp
}

// NameAt returns the column name at position i.
func (h *Header) NameAt(i int) string { return h.names[i] }

// KindAt returns the column type at position i.
func (h *Header) KindAt(i int) types.Kind { return h.kinds[i] }

// IndexOf returns the index of a column name, or ok=false if unknown.
func (h *Header) IndexOf(name string) (int, bool) {
	idx, ok := h.indices[name]
	return idx, ok
}

// HasName reports whether the header declares the given column name.
func (h *Header) HasName(name string) bool {
	_, ok := h.indices[name]
	return ok
}

// Concat returns the header formed by concatenating this header's columns
// with other's, in order — the schema side of a cartesian product.
//
// Unlike NewHeader, this does not reject duplicate names: two distinct
// input tables are allowed to share a column name (the cartesian product
// itself is only a scratch intermediate; SELECT's column-name binding
// picks the first table that declares a given name, and the duplicate
// check that matters — on the user's requested output columns — already
// happened before the join ran).
func (h *Header) Concat(other *Header) (*Header, error) {
	names := append(h.Names(), other.Names()...)
	kinds := append(h.Kinds(), other.Kinds()...)
	return newHeaderUnchecked(names, kinds), nil
}

func newHeaderUnchecked(names []string, kinds []types.Kind) *Header {
	h := &Header{
		names:   make([]string, len(names)),
		kinds:   make([]types.Kind, len(kinds)),
		indices: make(map[string]int, len(names)),
	}
	copy(h.names, names)
	copy(h.kinds, kinds)
	for i, n := range names {
		if _, exists := h.indices[n]; !exists {
			h.indices[n] = i
		}
	}
	return h
}

// ExtractByIndex builds the header containing exactly the given column
// indices. Extraction acts on the index set like a positional bitmap
// filter: the result is always in ascending index order, regardless of
// the order indices were given in.
func (h *Header) ExtractByIndex(indices []int) (*Header, error) {
	sorted := sortedIndices(indices)
	names := make([]string, len(sorted))
	kinds := make([]types.Kind, len(sorted))
	for i, idx := range sorted {
		names[i] = h.names[idx]
		kinds[i] = h.kinds[idx]
	}
	return NewHeader(names, kinds)
}

// Reorder builds the header where column order[i] is this header's column i.
func (h *Header) Reorder(order []int) (*Header, error) {
	if err := validatePermutation(order, len(h.names)); err != nil {
		return nil, err
	}
	names := make([]string, len(order))
	kinds := make([]types.Kind, len(order))
	for i, pos := range order {
		names[pos] = h.names[i]
		kinds[pos] = h.kinds[i]
	}
	return NewHeader(names, kinds)
}

func validatePermutation(order []int, n int) error {
	if len(order) != n {
		return apperrors.ValueErrf(-1, "reorder index count %d does not match column count %d", len(order), n)
	}
	seen := make(map[int]bool, n)
	for _, pos := range order {
		if pos < 0 || pos >= n {
			return apperrors.ValueErrf(pos, "reorder index %d out of range [0,%d)", pos, n)
		}
		if seen[pos] {
			return apperrors.ValueErrf(pos, "duplicate reorder index %d", pos)
		}
		seen[pos] = true
	}
	return nil
}

// String renders "name1 type1,name2 type2,…".
func (h *Header) String() string {
	var b strings.Builder
	for i, n := range h.names {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(n)
		b.WriteByte(' ')
		b.WriteString(h.kinds[i].String())
	}
	return b.String()
}
