package balancegrid

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// this file contains the codecs for the flat-file formats used by the
// CLI: movements as JSONL, rates and categories as single JSON objects.
// They should remain human readable and easy to merge.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// jmovement is the readable version of the movement line format.
type jmovement struct {
	ID          string          `json:"id"`
	Date        Date            `json:"date"`
	Description string          `json:"description,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Category    string          `json:"category,omitempty"`
	AccountID   string          `json:"accountId,omitempty"`
	Currency    string          `json:"currency"`
	Bank        string          `json:"bank,omitempty"`
	SourceSheet string          `json:"sourceSheet,omitempty"`
	Company     string          `json:"company,omitempty"`
	Country     string          `json:"country,omitempty"`
	Symbol      string          `json:"symbol,omitempty"`
	Decimals    int             `json:"decimals,omitempty"`
}

func (j jmovement) movement() Movement {
	return Movement{
		ID:          j.ID,
		Date:        j.Date,
		Description: j.Description,
		Debit:       j.Debit,
		Credit:      j.Credit,
		CategoryID:  j.Category,
		AccountID:   j.AccountID,
		Currency:    j.Currency,
		Bank:        j.Bank,
		SourceSheet: j.SourceSheet,
		CompanyID:   j.Company,
		Country:     j.Country,
		Symbol:      j.Symbol,
		Decimals:    j.Decimals,
	}
}

// DecodeMovements decodes movements from a stream of JSONL data, one
// movement per line, and returns a chronologically sorted Ledger.
func DecodeMovements(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var j jmovement
		if err := json.Unmarshal(line, &j); err != nil {
			return nil, fmt.Errorf("cannot parse movement line %q: %w", string(line), err)
		}
		ledger.Append(j.movement())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read movements: %w", err)
	}
	return ledger, nil
}

// EncodeMovement writes a single movement as one canonical JSON line.
func EncodeMovement(w io.Writer, m Movement) error {
	var jw jsonObjectWriter
	jw.Append("id", m.ID)
	jw.Append("date", m.Date)
	jw.Optional("description", m.Description)
	jw.Append("debit", m.Debit)
	jw.Append("credit", m.Credit)
	jw.Optional("category", m.CategoryID)
	jw.Optional("accountId", m.AccountID)
	jw.Append("currency", m.Currency)
	jw.Optional("bank", m.Bank)
	jw.Optional("sourceSheet", m.SourceSheet)
	jw.Optional("company", m.CompanyID)
	jw.Optional("country", m.Country)
	jw.Optional("symbol", m.Symbol)
	jw.Optional("decimals", m.Decimals)
	b, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot encode movement %q: %w", m.ID, err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("cannot write movement %q: %w", m.ID, err)
	}
	return nil
}

// EncodeMovements writes the ledger's movements in canonical JSONL form,
// chronologically sorted.
func EncodeMovements(w io.Writer, l *Ledger) error {
	for _, m := range l.Movements() {
		if err := EncodeMovement(w, m); err != nil {
			return err
		}
	}
	return nil
}

// DecodeRates decodes a rate table from a single JSON object mapping a
// currency code to its units-per-USD rate.
func DecodeRates(r io.Reader) (*RateTable, error) {
	var raw map[string]decimal.Decimal
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("cannot parse rate table: %w", err)
	}
	t := NewRateTable()
	for c, rate := range raw {
		t.Set(c, rate)
	}
	return t, nil
}

// EncodeRates writes the rate table as a single JSON object with sorted keys.
func EncodeRates(w io.Writer, t *RateTable) error {
	raw := make(map[string]decimal.Decimal)
	for c := range t.Currencies() {
		raw[c], _ = t.Rate(c)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(raw); err != nil {
		return fmt.Errorf("cannot encode rate table: %w", err)
	}
	return nil
}

// DecodeCategories decodes the category list from a JSON array of
// {"id": ..., "name": ...} objects.
func DecodeCategories(r io.Reader) (*Categories, error) {
	var raw []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("cannot parse categories: %w", err)
	}
	list := make([]Category, 0, len(raw))
	for _, c := range raw {
		list = append(list, Category{ID: c.ID, Name: c.Name})
	}
	return NewCategories(list...), nil
}
