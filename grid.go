package balancegrid

// Column is one leaf column of the grid: the finest-grain node actually
// rendered at its position, after applying the current Selection.
type Column struct {
	Node  NodeID
	Path  DimensionPath
	Grain Grain
}

// HeaderCell is one cell of a header row, covering Span leaf columns.
// A blank label marks filler under a column that is itself coarser than
// the header row's grain.
type HeaderCell struct {
	Path  DimensionPath
	Label string
	Span  int
}

// Grid is the flat schema of the pivot view: an ordered sequence of
// leaf columns plus the header rows that span them. It is immutable
// once produced, so concurrent readers need no synchronization.
type Grid struct {
	Columns []Column
	Headers [][]HeaderCell

	byPath map[DimensionPath]int // leaf column path → column index
}

// NewGrid walks the hierarchy under the current selection and emits the
// ordered leaf columns with their header spans.
//
// Ordering is lexicographic: currency code, then account label, then
// years most-recent-first, then months and dates ascending. Any branch
// whose node is not expanded contributes exactly one column, regardless
// of how many children it has.
func NewGrid(ix *Index, sel *Selection) *Grid {
	g := &Grid{byPath: make(map[DimensionPath]int)}
	for _, cid := range ix.Roots() {
		g.emit(ix, sel, cid)
	}
	g.buildHeaders()
	return g
}

// emit appends the leaf columns of the subtree rooted at id.
func (g *Grid) emit(ix *Index, sel *Selection, id NodeID) {
	p := ix.Path(id)
	if p.Grain() == GrainDate || !sel.IsExpanded(p) {
		g.byPath[p] = len(g.Columns)
		g.Columns = append(g.Columns, Column{Node: id, Path: p, Grain: p.Grain()})
		return
	}
	children := ix.Children(id)
	if p.Grain() == GrainAccount {
		// Years are displayed most-recent-first; the data underneath
		// stays chronological.
		for i := len(children) - 1; i >= 0; i-- {
			g.emit(ix, sel, children[i])
		}
		return
	}
	for _, c := range children {
		g.emit(ix, sel, c)
	}
}

// buildHeaders derives one header row per grain, down to the deepest
// leaf grain present. In the row of grain g, a column deeper than g
// shows its ancestor at g (adjacent identical ancestors merged into one
// spanning cell), a column exactly at g shows its own label, and a
// coarser column shows a blank filler.
func (g *Grid) buildHeaders() {
	deepest := GrainCurrency
	for _, c := range g.Columns {
		if c.Grain > deepest {
			deepest = c.Grain
		}
	}
	for row := GrainCurrency; row <= deepest; row++ {
		var cells []HeaderCell
		for _, c := range g.Columns {
			var cell HeaderCell
			if c.Grain >= row {
				p := c.Path.Truncate(row)
				cell = HeaderCell{Path: p, Label: p.Label(), Span: 1}
			} else {
				cell = HeaderCell{Span: 1} // filler under a coarser column
			}
			if n := len(cells); n > 0 && cell.Label != "" &&
				cells[n-1].Label != "" && cells[n-1].Path == cell.Path {
				cells[n-1].Span++
				continue
			}
			cells = append(cells, cell)
		}
		g.Headers = append(g.Headers, cells)
	}
}

// ColumnOf returns the index of the leaf column a movement falls into:
// the coarsest unexpanded ancestor of the movement's own path.
func (g *Grid) ColumnOf(sel *Selection, m Movement) (int, bool) {
	p := m.Path()
	i, ok := g.byPath[p.Truncate(sel.VisibleGrain(p))]
	return i, ok
}

// Len returns the number of leaf columns.
func (g *Grid) Len() int { return len(g.Columns) }
