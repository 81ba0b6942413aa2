package reconcile

import (
	"slices"

	"github.com/jbmln/partsmerge/pkg/schema"
)

// ApplyMutations applies the optional declarative schema mutations to the
// projected rows and returns the mutated column list. Dropped columns leave
// the cells in place and disappear from the list only. Promotions copy a
// key out of each row's other-parameters dict into a dedicated column,
// strip the key from the blob, and insert the new columns before the anchor
// column in declaration order. Rows are mutated in place.
func ApplyMutations(rows []Row, columns []string, mut schema.Mutations) []string {
	if mut.IsZero() {
		return columns
	}

	out := make([]string, 0, len(columns))
	for _, col := range columns {
		if !slices.Contains(mut.DropColumns, col) {
			out = append(out, col)
		}
	}

	if len(mut.Promote) == 0 {
		return out
	}

	for i := range rows {
		r := &rows[i]
		stripped := make(map[string]string, len(r.Other))
		for k, v := range r.Other {
			stripped[k] = v
		}
		for _, p := range mut.Promote {
			r.Cells[p.Column] = r.Other[p.Param]
			delete(stripped, p.Param)
		}
		r.Other = stripped
		r.Cells[schema.ColOtherParameters] = marshalBlob(stripped)
	}

	newCols := make([]string, 0, len(mut.Promote))
	for _, p := range mut.Promote {
		out = slices.DeleteFunc(out, func(c string) bool { return c == p.Column })
		newCols = append(newCols, p.Column)
	}
	idx := slices.Index(out, mut.Anchor())
	if idx < 0 {
		idx = len(out)
	}
	return slices.Insert(out, idx, newCols...)
}
