package balancegrid

// Class is the sign classification of a displayed balance, used by the
// rendering layer to pick a color.
type Class int

const (
	ClassZero Class = iota
	ClassPositive
	ClassNegative
)

func (c Class) String() string {
	switch c {
	case ClassPositive:
		return "positive"
	case ClassNegative:
		return "negative"
	default:
		return "zero"
	}
}

// Classify returns the sign classification of an amount.
func Classify(m Money) Class {
	switch {
	case m.IsPositive():
		return ClassPositive
	case m.IsNegative():
		return ClassNegative
	default:
		return ClassZero
	}
}

// Cell is one computed value of the grid: a balance, the number of
// movements behind it, and its sign classification.
type Cell struct {
	Balance Money
	Count   int
	Class   Class
}

func newCell(balance Money, count int) Cell {
	return Cell{Balance: balance, Count: count, Class: Classify(balance)}
}

// Row is one category's cells across all leaf columns.
type Row struct {
	Category Category
	Cells    []Cell
}

// Report is the full output of one computation pass: the grid schema,
// one row per visible category, the synthetic Opening/Closing rows
// computed over all categories combined, and a USD grand total. It is
// immutable once produced.
type Report struct {
	Grid    *Grid
	Rows    []Row
	Opening []Cell // synthetic "Opening Balance" row
	Closing []Cell // synthetic "Closing Balance" row

	// ClosingUSD is the sum of every currency's closing balance
	// converted to USD with the pass's rate table.
	ClosingUSD Cell

	// NoData is set when no movement matches the active filter. It is
	// distinct from an error: the computation succeeded on an empty set.
	NoData bool

	Warnings Warnings
}

// NewReport runs one full computation pass: rebuild the index, recompute
// all rollups, regenerate the columns, and assemble the cells. The
// engine is a pure function of its inputs; the selection and filter are
// owned by the caller and never mutated.
//
// Filters decide which category rows appear; every shown balance is
// computed over the complete, unfiltered movement set.
func NewReport(l *Ledger, rates *RateTable, f Filter, sel *Selection, epoch Date) *Report {
	ix := l.Index()
	ru := NewRollup(ix, epoch)
	grid := NewGrid(ix, sel)

	rep := &Report{Grid: grid}
	if n := l.Excluded(); n > 0 {
		rep.Warnings.Addf("%d movement(s) excluded for missing currency or account", n)
	}

	// Category rows: visible categories with at least one movement
	// matching the filter.
	var matching int
	active := make(map[string]bool)
	for _, m := range l.Movements(f.Match) {
		matching++
		active[m.CategoryID] = true
	}
	rep.NoData = matching == 0

	var ids []string
	for _, id := range l.CategoryIDs() {
		if active[id] {
			ids = append(ids, id)
		}
	}
	for _, cat := range l.Categories().Visible(ids) {
		row := Row{Category: cat, Cells: make([]Cell, 0, grid.Len())}
		for _, col := range grid.Columns {
			p := ru.CategoryPeriod(col.Node, cat.ID)
			row.Cells = append(row.Cells, newCell(p.Net, p.Count))
		}
		rep.Rows = append(rep.Rows, row)
	}

	// Synthetic rows over all categories combined.
	for _, col := range grid.Columns {
		p := ru.Period(col.Node)
		rep.Opening = append(rep.Opening, newCell(p.Opening, p.Count))
		rep.Closing = append(rep.Closing, newCell(p.Closing, p.Count))
	}

	// USD grand total across currencies.
	total := M(0, "USD")
	var count int
	for _, cid := range ix.Roots() {
		p := ru.Period(cid)
		usd, err := rates.ToUSD(p.Closing)
		if err != nil {
			rep.Warnings.Addf("%v", err)
		}
		total = total.Add(M(usd.Amount(), "USD"))
		count += p.Count
	}
	rep.ClosingUSD = newCell(total, count)

	return rep
}
