package balancegrid

import "slices"

// Filter selects movements for display and drill-down. Filters are
// conjunctive across dimensions (every non-empty dimension must match)
// and disjunctive within a dimension (any selected value matches).
//
// Filters never change the input set of a shown balance: rollups are
// always computed over the complete, unfiltered ledger.
type Filter struct {
	Dates      Range
	Currencies []string
	Accounts   []string // account ids
	Countries  []string
	Categories []string // category ids
	Companies  []string // company ids
}

// Match reports whether the movement passes the filter.
func (f Filter) Match(m Movement) bool {
	if !f.Dates.Contains(m.Date) {
		return false
	}
	if len(f.Currencies) > 0 && !slices.Contains(f.Currencies, m.Currency) {
		return false
	}
	if len(f.Accounts) > 0 && !slices.Contains(f.Accounts, m.AccountID) {
		return false
	}
	if len(f.Countries) > 0 && !slices.Contains(f.Countries, m.Country) {
		return false
	}
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, m.CategoryID) {
		return false
	}
	if len(f.Companies) > 0 && !slices.Contains(f.Companies, m.CompanyID) {
		return false
	}
	return true
}

// IsZero reports whether the filter matches every movement.
func (f Filter) IsZero() bool {
	return f.Dates.IsZero() &&
		len(f.Currencies) == 0 &&
		len(f.Accounts) == 0 &&
		len(f.Countries) == 0 &&
		len(f.Categories) == 0 &&
		len(f.Companies) == 0
}
