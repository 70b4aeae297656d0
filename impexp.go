package balancegrid

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// this file contains functions to handle the CSV import/export format,
// the lowest common denominator with spreadsheet upstreams.

var csvHeader = []string{
	"id", "date", "description", "debit", "credit",
	"category", "accountId", "currency", "bank", "sourceSheet",
	"company", "country",
}

// ImportMovementsCSV imports movements from 'r' in the CSV exchange
// format. The first row must be the header; column order is fixed.
// Empty debit/credit fields read as zero.
func ImportMovementsCSV(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header: %w", err)
	}
	for i, want := range csvHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return nil, fmt.Errorf("unexpected CSV column %d: got %q want %q", i, header[i], want)
		}
	}

	ledger := NewLedger()
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read CSV line %d: %w", line, err)
		}
		on, err := ParseDate(rec[1])
		if err != nil {
			return nil, fmt.Errorf("CSV line %d: %w", line, err)
		}
		debit, err := parseAmount(rec[3])
		if err != nil {
			return nil, fmt.Errorf("CSV line %d debit: %w", line, err)
		}
		credit, err := parseAmount(rec[4])
		if err != nil {
			return nil, fmt.Errorf("CSV line %d credit: %w", line, err)
		}
		ledger.Append(Movement{
			ID:          rec[0],
			Date:        on,
			Description: rec[2],
			Debit:       debit,
			Credit:      credit,
			CategoryID:  rec[5],
			AccountID:   rec[6],
			Currency:    rec[7],
			Bank:        rec[8],
			SourceSheet: rec[9],
			CompanyID:   rec[10],
			Country:     rec[11],
		})
	}
	return ledger, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// ExportMovementsCSV exports the ledger's movements to 'w' in the CSV
// exchange format, chronologically sorted.
func ExportMovementsCSV(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, m := range l.Movements() {
		rec := []string{
			m.ID, m.Date.String(), m.Description,
			m.Debit.String(), m.Credit.String(),
			m.CategoryID, m.AccountID, m.Currency, m.Bank, m.SourceSheet,
			m.CompanyID, m.Country,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("cannot write movement %q: %w", m.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
