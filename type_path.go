package balancegrid

import (
	"fmt"
	"time"
)

// DimensionPath identifies one node of the currency → account → year →
// month → date hierarchy. Fields beyond the path's grain are left at
// their zero value, so a DimensionPath is a comparable value usable
// directly as a map key: no string concatenation, no key collisions.
type DimensionPath struct {
	Currency string
	Account  string
	Year     int
	Month    time.Month
	Day      int
}

// CurrencyPath returns the path of a currency-level node.
func CurrencyPath(currency string) DimensionPath {
	return DimensionPath{Currency: currency}
}

// AccountPath returns the path of an account-level node.
func AccountPath(currency, account string) DimensionPath {
	return DimensionPath{Currency: currency, Account: account}
}

// YearPath returns the path of a year-level node.
func YearPath(currency, account string, year int) DimensionPath {
	return DimensionPath{Currency: currency, Account: account, Year: year}
}

// MonthPath returns the path of a month-level node.
func MonthPath(currency, account string, year int, month time.Month) DimensionPath {
	return DimensionPath{Currency: currency, Account: account, Year: year, Month: month}
}

// DatePath returns the path of a date-level node.
func DatePath(currency, account string, on Date) DimensionPath {
	return DimensionPath{Currency: currency, Account: account, Year: on.Year(), Month: on.Month(), Day: on.Day()}
}

// Grain returns the deepest level actually identified by the path.
func (p DimensionPath) Grain() Grain {
	switch {
	case p.Day != 0:
		return GrainDate
	case p.Month != 0:
		return GrainMonth
	case p.Year != 0:
		return GrainYear
	case p.Account != "":
		return GrainAccount
	default:
		return GrainCurrency
	}
}

// Truncate returns the path of the ancestor node at grain g. Truncating
// to a grain deeper than the path's own grain returns the path unchanged.
func (p DimensionPath) Truncate(g Grain) DimensionPath {
	q := p
	if g < GrainDate {
		q.Day = 0
	}
	if g < GrainMonth {
		q.Month = 0
	}
	if g < GrainYear {
		q.Year = 0
	}
	if g < GrainAccount {
		q.Account = ""
	}
	return q
}

// Date returns the calendar date of a date-level path.
func (p DimensionPath) Date() Date { return NewDate(p.Year, p.Month, p.Day) }

// Contains reports whether q lies in the subtree rooted at p.
func (p DimensionPath) Contains(q DimensionPath) bool {
	return q.Truncate(p.Grain()) == p
}

// Label returns the display label of the path's deepest component.
func (p DimensionPath) Label() string {
	switch p.Grain() {
	case GrainCurrency:
		return p.Currency
	case GrainAccount:
		return p.Account
	case GrainYear:
		return fmt.Sprintf("%d", p.Year)
	case GrainMonth:
		return fmt.Sprintf("%s %d", p.Month.String()[:3], p.Year)
	default:
		return p.Date().String()
	}
}

// String formats the full path, mostly for error messages and logs.
func (p DimensionPath) String() string {
	s := p.Currency
	if p.Account != "" {
		s += "/" + p.Account
	}
	if p.Year != 0 {
		s += fmt.Sprintf("/%d", p.Year)
	}
	if p.Month != 0 {
		s += fmt.Sprintf("/%02d", int(p.Month))
	}
	if p.Day != 0 {
		s += fmt.Sprintf("/%02d", p.Day)
	}
	return s
}
