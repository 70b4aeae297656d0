package balancegrid

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// FeedMapping configures how movements are extracted from an upstream
// provider's JSON document: Items selects the list of movement objects,
// the other fields are jsonpath expressions evaluated against each item.
// An empty expression leaves the corresponding field empty.
type FeedMapping struct {
	Items       string
	ID          string
	Date        string
	Description string
	Debit       string
	Credit      string
	Category    string
	AccountID   string
	Currency    string
	Bank        string
	SourceSheet string
	Company     string
	Country     string
}

// DefaultFeedMapping matches the flat export shape most providers use:
// a top-level "movements" array of objects with self-describing keys.
func DefaultFeedMapping() FeedMapping {
	return FeedMapping{
		Items:       "$.movements[*]",
		ID:          "$.id",
		Date:        "$.date",
		Description: "$.description",
		Debit:       "$.debit",
		Credit:      "$.credit",
		Category:    "$.category",
		AccountID:   "$.accountId",
		Currency:    "$.currency",
		Bank:        "$.bank",
		SourceSheet: "$.sourceSheet",
		Company:     "$.company",
		Country:     "$.country",
	}
}

// DecodeFeed extracts movements from an arbitrary provider JSON
// document according to the mapping and returns them as a Ledger.
func DecodeFeed(r io.Reader, m FeedMapping) (*Ledger, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse feed document: %w", err)
	}

	jval, err := jsonpath.Get(m.Items, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot select feed items %q: %w", m.Items, err)
	}
	items, ok := jval.([]any)
	if !ok {
		// jsonpath is never clear about whether it returns a list or a
		// single answer: a lone object counts as a one-item feed.
		items = []any{jval}
	}

	ledger := NewLedger()
	for i, item := range items {
		on, err := ParseDate(feedString(item, m.Date))
		if err != nil {
			return nil, fmt.Errorf("feed item %d: %w", i, err)
		}
		ledger.Append(Movement{
			ID:          feedString(item, m.ID),
			Date:        on,
			Description: feedString(item, m.Description),
			Debit:       feedAmount(item, m.Debit),
			Credit:      feedAmount(item, m.Credit),
			CategoryID:  feedString(item, m.Category),
			AccountID:   feedString(item, m.AccountID),
			Currency:    feedString(item, m.Currency),
			Bank:        feedString(item, m.Bank),
			SourceSheet: feedString(item, m.SourceSheet),
			CompanyID:   feedString(item, m.Company),
			Country:     feedString(item, m.Country),
		})
	}
	return ledger, nil
}

// feedString evaluates a jsonpath against an item and stringifies the
// answer. A missing path or empty expression yields "".
func feedString(item any, path string) string {
	if path == "" {
		return ""
	}
	jval, err := jsonpath.Get(path, item)
	if err != nil || jval == nil {
		return ""
	}
	if s, ok := jval.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", jval)
}

// feedAmount evaluates a jsonpath into a decimal amount. Providers send
// numbers either as JSON numbers or as strings; both are accepted, and
// anything unusable reads as zero.
func feedAmount(item any, path string) decimal.Decimal {
	if path == "" {
		return decimal.Zero
	}
	jval, err := jsonpath.Get(path, item)
	if err != nil || jval == nil {
		return decimal.Zero
	}
	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}
