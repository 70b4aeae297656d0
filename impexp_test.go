package balancegrid

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestImportMovementsCSV(t *testing.T) {
	doc := `id,date,description,debit,credit,category,accountId,currency,bank,sourceSheet,company,country
m-1,2025-01-05,salary,,1000,salary,acc-1,USD,BankA,,co-1,US
m-2,2025-01-10,corner shop,42.50,,groceries,acc-1,USD,BankA,,co-1,US
`
	l, err := ImportMovementsCSV(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ImportMovementsCSV() error = %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	for _, m := range l.Movements() {
		switch m.ID {
		case "m-1":
			if !m.Credit.Equal(decimal.NewFromInt(1000)) || !m.Debit.IsZero() {
				t.Errorf("m-1 = debit %v credit %v, want 0/1000", m.Debit, m.Credit)
			}
		case "m-2":
			if !m.Debit.Equal(decimal.NewFromFloat(42.50)) {
				t.Errorf("m-2 debit = %v, want 42.5", m.Debit)
			}
		}
	}
}

func TestImportMovementsCSV_Errors(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{
			name: "wrong header",
			doc:  "id,when,description,debit,credit,category,accountId,currency,bank,sourceSheet,company,country\n",
		},
		{
			name: "bad date",
			doc: "id,date,description,debit,credit,category,accountId,currency,bank,sourceSheet,company,country\n" +
				"m-1,not-a-date,,,,c,a,USD,BankA,,co,US\n",
		},
		{
			name: "bad amount",
			doc: "id,date,description,debit,credit,category,accountId,currency,bank,sourceSheet,company,country\n" +
				"m-1,2025-01-05,,oops,,c,a,USD,BankA,,co,US\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ImportMovementsCSV(strings.NewReader(tc.doc)); err == nil {
				t.Error("ImportMovementsCSV() succeeded, want error")
			}
		})
	}
}

func TestExportMovementsCSV_RoundTrip(t *testing.T) {
	in := NewLedger()
	in.Append(
		Movement{ID: "m-1", Date: MustParseDate("2025-01-05"), Credit: decimal.NewFromInt(100), Currency: "USD", Bank: "BankA"},
		Movement{ID: "m-2", Date: MustParseDate("2025-01-10"), Debit: decimal.NewFromFloat(7.5), Currency: "EUR", Bank: "BankB"},
	)
	var buf bytes.Buffer
	if err := ExportMovementsCSV(&buf, in); err != nil {
		t.Fatalf("ExportMovementsCSV() error = %v", err)
	}
	out, err := ImportMovementsCSV(&buf)
	if err != nil {
		t.Fatalf("ImportMovementsCSV() error = %v", err)
	}
	if out.Len() != in.Len() {
		t.Fatalf("Len() = %d, want %d", out.Len(), in.Len())
	}
	for _, m := range out.Movements() {
		if m.ID == "m-2" && !m.Debit.Equal(decimal.NewFromFloat(7.5)) {
			t.Errorf("m-2 debit = %v, want 7.5", m.Debit)
		}
	}
}
