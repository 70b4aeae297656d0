package balancegrid

// DrillDownQuery asks for the exact set of movements behind one cell of
// the grid, handed off to the external movements view for navigation.
// Zero-valued fields match everything.
type DrillDownQuery struct {
	Dates    Range
	Account  string // account display label
	Category string // category id
	Currency string // currency code
}

// Match reports whether the movement belongs to the queried cell.
func (q DrillDownQuery) Match(m Movement) bool {
	if !q.Dates.Contains(m.Date) {
		return false
	}
	if q.Account != "" && m.AccountLabel() != q.Account {
		return false
	}
	if q.Category != "" && m.CategoryID != q.Category {
		return false
	}
	if q.Currency != "" && m.Currency != q.Currency {
		return false
	}
	return true
}

// DrillDown returns the underlying movements of one cell, in
// chronological order (original order preserved within a day).
func (l *Ledger) DrillDown(q DrillDownQuery) []Movement {
	var out []Movement
	for _, m := range l.Movements(q.Match) {
		out = append(out, m)
	}
	return out
}
