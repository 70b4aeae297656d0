package balancegrid

import (
	"testing"
	"time"
)

func TestLedger_Append_ExcludesUnresolvable(t *testing.T) {
	l := NewLedger()
	l.Append(
		mov("a", "2025-01-05", "1", 100),
		Movement{ID: "no-currency", Date: MustParseDate("2025-01-06"), Bank: "BankA"},
		Movement{ID: "no-account", Date: MustParseDate("2025-01-07"), Currency: "USD"},
	)
	if got := l.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
	if got := l.Excluded(); got != 2 {
		t.Errorf("Excluded() = %d, want 2", got)
	}
}

func TestLedger_ChronologicalOrder(t *testing.T) {
	l := NewLedger()
	l.Append(
		mov("late", "2025-03-01", "1", 10),
		mov("early", "2025-01-01", "1", 10),
		mov("same-day-1", "2025-02-01", "1", 10),
		mov("same-day-2", "2025-02-01", "1", 10),
	)
	var ids []string
	for _, m := range l.Movements() {
		ids = append(ids, m.ID)
	}
	want := []string{"early", "same-day-1", "same-day-2", "late"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("movement order = %v, want %v", ids, want)
		}
	}
}

func TestMovement_AccountLabel(t *testing.T) {
	testCases := []struct {
		name string
		m    Movement
		want string
	}{
		{name: "source sheet preferred", m: Movement{SourceSheet: "Sheet1", Bank: "BankA"}, want: "Sheet1"},
		{name: "bank fallback", m: Movement{Bank: "BankA"}, want: "BankA"},
		{name: "nothing resolvable", m: Movement{}, want: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.AccountLabel(); got != tc.want {
				t.Errorf("AccountLabel() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIndex_Hierarchy(t *testing.T) {
	l := NewLedger()
	l.Append(
		mov("a", "2025-01-05", "1", 100),
		mov("b", "2025-01-05", "1", 50),
		mov("c", "2025-02-10", "1", 25),
		at(mov("d", "2024-12-31", "1", 10), "EUR", "BankB"),
	)
	ix := l.Index()

	roots := ix.Roots()
	if len(roots) != 2 {
		t.Fatalf("Roots() = %d currencies, want 2", len(roots))
	}
	// currencies sorted by code: EUR before USD
	if got := ix.Path(roots[0]).Currency; got != "EUR" {
		t.Errorf("first root currency = %q, want EUR", got)
	}
	if got := ix.Path(roots[1]).Currency; got != "USD" {
		t.Errorf("second root currency = %q, want USD", got)
	}

	// USD/BankA/2025 has two months, in chronological order.
	year, ok := ix.Lookup(YearPath("USD", "BankA", 2025))
	if !ok {
		t.Fatal("missing USD/BankA/2025 node")
	}
	months := ix.Children(year)
	if len(months) != 2 {
		t.Fatalf("year children = %d, want 2", len(months))
	}
	if got := ix.Path(months[0]).Month; got != time.January {
		t.Errorf("first month = %v, want January", got)
	}

	// Movements on the same date keep their supplied order.
	day, ok := ix.Lookup(DatePath("USD", "BankA", MustParseDate("2025-01-05")))
	if !ok {
		t.Fatal("missing date node")
	}
	movs := ix.MovementsAt(day)
	if len(movs) != 2 || movs[0].ID != "a" || movs[1].ID != "b" {
		t.Errorf("MovementsAt() = %v, want [a b]", movs)
	}
}

func TestIndex_Dates_Chronological(t *testing.T) {
	l := NewLedger()
	l.Append(
		mov("a", "2025-12-31", "1", 1),
		mov("b", "2026-01-01", "1", 1),
		mov("c", "2025-01-15", "1", 1),
	)
	ix := l.Index()
	account, ok := ix.Lookup(AccountPath("USD", "BankA"))
	if !ok {
		t.Fatal("missing account node")
	}
	dates := ix.Dates(account)
	want := []string{"2025-01-15", "2025-12-31", "2026-01-01"}
	if len(dates) != len(want) {
		t.Fatalf("Dates() = %d nodes, want %d", len(dates), len(want))
	}
	for i, did := range dates {
		if got := ix.Path(did).Date().String(); got != want[i] {
			t.Errorf("dates[%d] = %s, want %s", i, got, want[i])
		}
	}
}
