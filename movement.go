package balancegrid

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Movement is an immutable ledger entry, already joined with its
// dimensional attributes by the upstream data source.
//
// Exactly one of Debit/Credit is normally non-zero, but both may be
// present or absent; the net effect is always Credit − Debit.
type Movement struct {
	ID          string
	Date        Date
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	CategoryID  string
	AccountID   string
	Currency    string // ISO currency code
	Bank        string // bank display name
	SourceSheet string // explicit source-sheet label, preferred over Bank
	CompanyID   string
	Country     string
	Symbol      string // currency display symbol
	Decimals    int    // currency decimal places
}

// Net returns the movement's net effect, Credit − Debit.
func (m Movement) Net() Money {
	return M(m.Credit.Sub(m.Debit), m.Currency)
}

// AccountLabel resolves the display label of the movement's account:
// the explicit source-sheet label if present, the bank name otherwise.
func (m Movement) AccountLabel() string {
	if m.SourceSheet != "" {
		return m.SourceSheet
	}
	return m.Bank
}

// Path returns the date-level DimensionPath the movement belongs to.
func (m Movement) Path() DimensionPath {
	return DatePath(m.Currency, m.AccountLabel(), m.Date)
}

// Category classifies movements for grouping.
type Category struct {
	ID   string
	Name string
}

// System categories excluded from display. They are legacy placeholders
// kept in upstream data for backward compatibility.
var hiddenCategories = map[string]bool{
	"general":  true,
	"default":  true,
	"transfer": true,
}

// pendingCategory is always sorted second-to-last among visible categories.
const pendingCategory = "pending"

// Categories indexes the known categories by id.
type Categories struct {
	byID map[string]Category
}

// NewCategories builds a category index from a list.
func NewCategories(list ...Category) *Categories {
	c := &Categories{byID: make(map[string]Category, len(list))}
	for _, cat := range list {
		c.byID[cat.ID] = cat
	}
	return c
}

// Get returns the category with this id. Unknown ids resolve to a
// category named after the id itself, so movements with an
// undeclared category still group somewhere visible.
func (c *Categories) Get(id string) Category {
	if cat, ok := c.byID[id]; ok {
		return cat
	}
	return Category{ID: id, Name: id}
}

// Hidden reports whether the category must be excluded from display.
func (c *Categories) Hidden(id string) bool {
	return hiddenCategories[strings.ToLower(c.Get(id).Name)]
}

// Visible returns the categories to display among those referenced by
// the given ids, sorted by name with "pending" forced second-to-last.
func (c *Categories) Visible(ids []string) []Category {
	seen := make(map[string]bool, len(ids))
	var out []Category
	for _, id := range ids {
		if seen[id] || c.Hidden(id) {
			continue
		}
		seen[id] = true
		out = append(out, c.Get(id))
	}
	slices.SortFunc(out, func(a, b Category) int {
		return strings.Compare(a.Name, b.Name)
	})
	// "pending" sits second-to-last whatever its name would sort to.
	for i, cat := range out {
		if strings.ToLower(cat.Name) == pendingCategory && len(out) > 1 {
			out = append(out[:i], out[i+1:]...)
			out = slices.Insert(out, len(out)-1, cat)
			break
		}
	}
	return out
}
