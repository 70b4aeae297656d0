package balancegrid

import "testing"

func TestGrid_FullyCollapsed(t *testing.T) {
	ix := buildIndex(t) // EUR/BankB and USD/BankA, several years
	g := NewGrid(ix, NewSelection())
	if g.Len() != 2 {
		t.Fatalf("Len() = %d, want one column per currency", g.Len())
	}
	if g.Columns[0].Path.Currency != "EUR" || g.Columns[1].Path.Currency != "USD" {
		t.Errorf("columns not sorted by currency code: %v", g.Columns)
	}
	if g.Columns[0].Grain != GrainCurrency {
		t.Errorf("collapsed column grain = %v, want currency", g.Columns[0].Grain)
	}
}

// A currency expanded over a collapsed account contributes exactly one
// column for that currency+account pair, regardless of how many years,
// months and dates exist underneath.
func TestGrid_CollapsedAccountIsOneColumn(t *testing.T) {
	ix := buildIndex(t)
	s := NewSelection()
	s.Expand(CurrencyPath("USD"))

	g := NewGrid(ix, s)
	var usdCols []Column
	for _, c := range g.Columns {
		if c.Path.Currency == "USD" {
			usdCols = append(usdCols, c)
		}
	}
	if len(usdCols) != 1 {
		t.Fatalf("USD columns = %d, want 1", len(usdCols))
	}
	if usdCols[0].Grain != GrainAccount || usdCols[0].Path.Account != "BankA" {
		t.Errorf("USD column = %+v, want collapsed BankA account", usdCols[0])
	}
}

func TestGrid_YearsMostRecentFirst(t *testing.T) {
	ix := buildIndex(t) // USD/BankA has movements in 2025 and 2026
	s := NewSelection()
	s.Expand(CurrencyPath("USD"))
	s.Expand(AccountPath("USD", "BankA"))

	g := NewGrid(ix, s)
	var years []int
	for _, c := range g.Columns {
		if c.Path.Currency == "USD" && c.Grain == GrainYear {
			years = append(years, c.Path.Year)
		}
	}
	if len(years) != 2 || years[0] != 2026 || years[1] != 2025 {
		t.Errorf("year columns = %v, want [2026 2025]", years)
	}
}

func TestGrid_MonthsAndDatesAscending(t *testing.T) {
	l := NewLedger()
	l.Append(
		mov("a", "2025-03-10", "1", 1),
		mov("b", "2025-01-05", "1", 1),
		mov("c", "2025-01-20", "1", 1),
	)
	ix := l.Index()
	s := NewSelection()
	s.Expand(CurrencyPath("USD"))
	s.Expand(AccountPath("USD", "BankA"))
	s.Expand(YearPath("USD", "BankA", 2025))
	s.Expand(MonthPath("USD", "BankA", 2025, 1))

	g := NewGrid(ix, s)
	var labels []string
	for _, c := range g.Columns {
		labels = append(labels, c.Path.Label())
	}
	want := []string{"2025-01-05", "2025-01-20", "Mar 2025"}
	if len(labels) != len(want) {
		t.Fatalf("columns = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("columns = %v, want %v", labels, want)
			break
		}
	}
}

func TestGrid_HeaderSpans(t *testing.T) {
	l := NewLedger()
	l.Append(
		mov("a", "2025-01-05", "1", 1),
		mov("b", "2025-02-10", "1", 1),
		at(mov("c", "2025-06-15", "1", 1), "EUR", "BankB"),
	)
	ix := l.Index()
	s := NewSelection()
	s.Expand(CurrencyPath("USD"))
	s.Expand(AccountPath("USD", "BankA"))
	s.Expand(YearPath("USD", "BankA", 2025))

	// Columns: EUR (collapsed), USD/BankA/2025/Jan, USD/BankA/2025/Feb.
	g := NewGrid(ix, s)
	if g.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", g.Len())
	}

	// The currency header row spans the two USD month columns.
	row := g.Headers[GrainCurrency]
	if len(row) != 2 {
		t.Fatalf("currency header = %v, want 2 cells", row)
	}
	if row[0].Label != "EUR" || row[0].Span != 1 {
		t.Errorf("currency header[0] = %+v, want EUR span 1", row[0])
	}
	if row[1].Label != "USD" || row[1].Span != 2 {
		t.Errorf("currency header[1] = %+v, want USD span 2", row[1])
	}

	// The account header row has a blank filler under the EUR column.
	row = g.Headers[GrainAccount]
	if row[0].Label != "" || row[0].Span != 1 {
		t.Errorf("account header[0] = %+v, want blank filler", row[0])
	}
	if row[1].Label != "BankA" || row[1].Span != 2 {
		t.Errorf("account header[1] = %+v, want BankA span 2", row[1])
	}
}

func TestGrid_ColumnOf(t *testing.T) {
	ix := buildIndex(t)
	s := NewSelection()
	s.Expand(CurrencyPath("USD"))

	g := NewGrid(ix, s)
	m := mov("x", "2025-01-05", "1", 10) // USD/BankA, account collapsed
	i, ok := g.ColumnOf(s, m)
	if !ok {
		t.Fatal("ColumnOf() not found")
	}
	if got := g.Columns[i].Path; got != AccountPath("USD", "BankA") {
		t.Errorf("ColumnOf() = %v, want USD/BankA", got)
	}
}
