package balancegrid

// DetailRow is one display row of a category's movement detail: at most
// one movement per leaf column.
type DetailRow struct {
	Cells []*Movement // indexed by leaf column; nil when empty
}

// Window is a paginated view over a category's detail rows.
type Window struct {
	Rows     []DetailRow
	Start    int // 1-based index of the first materialized row
	PageSize int // clamped page size actually applied
	Total    int // total number of packed rows
}

// NewWindow distributes movements into a minimal number of display rows
// and materializes the requested page.
//
// Packing is first-fit: each movement lands in the first row whose cell
// for the movement's column (the coarsest unexpanded ancestor of its
// path) is still free, so no two movements sharing a column share a
// row. Start and pageSize are independently clamped to [1, total].
func NewWindow(grid *Grid, sel *Selection, movements []Movement, start, pageSize int) *Window {
	var rows []DetailRow
	for i := range movements {
		m := &movements[i]
		col, ok := grid.ColumnOf(sel, *m)
		if !ok {
			continue
		}
		placed := false
		for r := range rows {
			if rows[r].Cells[col] == nil {
				rows[r].Cells[col] = m
				placed = true
				break
			}
		}
		if !placed {
			row := DetailRow{Cells: make([]*Movement, grid.Len())}
			row.Cells[col] = m
			rows = append(rows, row)
		}
	}

	w := &Window{Total: len(rows)}
	if w.Total == 0 {
		w.Start, w.PageSize = 1, 1
		return w
	}
	w.Start = clamp(start, 1, w.Total)
	w.PageSize = clamp(pageSize, 1, w.Total)
	end := w.Start - 1 + w.PageSize
	if end > w.Total {
		end = w.Total
	}
	w.Rows = rows[w.Start-1 : end]
	return w
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
