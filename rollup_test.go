package balancegrid

import (
	"testing"
	"time"
)

func TestRollup_MonthOfCreditAndDebit(t *testing.T) {
	l := NewLedger()
	l.Append(
		mov("a", "2025-01-05", "1", 100),
		mov("b", "2025-01-10", "1", -30),
	)
	ix := l.Index()
	r := NewRollup(ix, DefaultEpoch)

	month, ok := ix.Lookup(MonthPath("USD", "BankA", 2025, time.January))
	if !ok {
		t.Fatal("missing month node")
	}
	mp := r.Period(month)
	if !mp.Opening.Equal(USD(0)) {
		t.Errorf("Opening(Jan-2025) = %v, want 0", mp.Opening)
	}
	if !mp.Closing.Equal(USD(70)) {
		t.Errorf("Closing(Jan-2025) = %v, want 70", mp.Closing)
	}
	if mp.Count != 2 {
		t.Errorf("Count(Jan-2025) = %d, want 2", mp.Count)
	}

	day5, _ := ix.Lookup(DatePath("USD", "BankA", MustParseDate("2025-01-05")))
	if got := r.Period(day5).Closing; !got.Equal(USD(100)) {
		t.Errorf("Closing(2025-01-05) = %v, want 100", got)
	}
	day10, _ := ix.Lookup(DatePath("USD", "BankA", MustParseDate("2025-01-10")))
	if got := r.Period(day10).Opening; !got.Equal(USD(100)) {
		t.Errorf("Opening(2025-01-10) = %v, want 100", got)
	}
	if got := r.Period(day10).Closing; !got.Equal(USD(70)) {
		t.Errorf("Closing(2025-01-10) = %v, want 70", got)
	}
}

// Every node must satisfy Opening + Net == Closing, a parent's closing
// must equal its last child's closing, and a parent's net must equal
// the sum of its children's nets.
func TestRollup_ConsistencyLaws(t *testing.T) {
	l := NewLedger()
	l.Append(
		mov("a", "2025-01-05", "1", 100),
		mov("b", "2025-01-10", "2", -30),
		mov("c", "2025-02-14", "1", 45),
		mov("d", "2025-12-31", "2", -5),
		mov("e", "2026-01-01", "1", 60),
		at(mov("f", "2025-06-15", "1", 200), "USD", "BankB"),
	)
	ix := l.Index()
	r := NewRollup(ix, DefaultEpoch)

	for id := 0; id < ix.Len(); id++ {
		node := NodeID(id)
		p := r.Period(node)
		if !p.Opening.Add(p.Net).Equal(p.Closing) {
			t.Errorf("%v: opening %v + net %v != closing %v", ix.Path(node), p.Opening, p.Net, p.Closing)
		}
		children := ix.Children(node)
		if len(children) == 0 || ix.Path(node).Grain() == GrainCurrency {
			continue
		}
		if last := r.Period(children[len(children)-1]); !p.Closing.Equal(last.Closing) {
			t.Errorf("%v: closing %v != last child closing %v", ix.Path(node), p.Closing, last.Closing)
		}
		net := USD(0)
		for _, c := range children {
			net = net.Add(r.Period(c).Net)
		}
		if !p.Net.Equal(net) {
			t.Errorf("%v: net %v != sum of child nets %v", ix.Path(node), p.Net, net)
		}
	}
}

// Chronologically adjacent periods must chain: Opening(B) == Closing(A),
// across month and year boundaries alike.
func TestRollup_BalanceContinuity(t *testing.T) {
	l := NewLedger()
	l.Append(
		mov("a", "2025-11-20", "1", 100),
		mov("b", "2025-12-05", "1", -40),
		mov("c", "2026-02-10", "1", 15),
	)
	ix := l.Index()
	r := NewRollup(ix, DefaultEpoch)

	account, _ := ix.Lookup(AccountPath("USD", "BankA"))
	dates := ix.Dates(account)
	for i := 1; i < len(dates); i++ {
		prev, next := r.Period(dates[i-1]), r.Period(dates[i])
		if !next.Opening.Equal(prev.Closing) {
			t.Errorf("Opening(%v) = %v, want Closing(%v) = %v",
				ix.Path(dates[i]), next.Opening, ix.Path(dates[i-1]), prev.Closing)
		}
	}

	// Year 2026 opens where year 2025 closed.
	y25, _ := ix.Lookup(YearPath("USD", "BankA", 2025))
	y26, _ := ix.Lookup(YearPath("USD", "BankA", 2026))
	if o, c := r.Period(y26).Opening, r.Period(y25).Closing; !o.Equal(c) {
		t.Errorf("Opening(2026) = %v, want Closing(2025) = %v", o, c)
	}
}

func TestRollup_BalanceAsOfDayStart(t *testing.T) {
	l := NewLedger()
	l.Append(
		mov("a", "2025-01-31", "1", 100),
		mov("b", "2025-02-02", "1", -30),
	)
	r := NewRollup(l.Index(), DefaultEpoch)

	testCases := []struct {
		name string
		day  string
		want Money
	}{
		{name: "before any movement", day: "2025-01-31", want: USD(0)},
		{name: "across month boundary", day: "2025-02-01", want: USD(100)},
		{name: "on a movement day", day: "2025-02-02", want: USD(100)},
		{name: "after all movements", day: "2025-03-15", want: USD(70)},
		{name: "on the epoch", day: "2025-01-01", want: USD(0)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := r.BalanceAsOfDayStart("USD", "BankA", MustParseDate(tc.day))
			if !got.Equal(tc.want) {
				t.Errorf("BalanceAsOfDayStart(%s) = %v, want %v", tc.day, got, tc.want)
			}
		})
	}
}

func TestRollup_CurrencySumsAccounts(t *testing.T) {
	l := NewLedger()
	l.Append(
		mov("a", "2025-01-05", "1", 100),
		at(mov("b", "2025-03-01", "1", 50), "USD", "BankB"),
	)
	ix := l.Index()
	r := NewRollup(ix, DefaultEpoch)

	usd, _ := ix.Lookup(CurrencyPath("USD"))
	if got := r.Period(usd).Closing; !got.Equal(USD(150)) {
		t.Errorf("Closing(USD) = %v, want 150", got)
	}
	if got := r.Period(usd).Count; got != 2 {
		t.Errorf("Count(USD) = %d, want 2", got)
	}
}

func TestRollup_CategoryPeriods(t *testing.T) {
	l := NewLedger()
	l.Append(
		mov("a", "2025-01-05", "groceries", -40),
		mov("b", "2025-01-05", "salary", 1000),
		mov("c", "2025-02-01", "groceries", -60),
	)
	ix := l.Index()
	r := NewRollup(ix, DefaultEpoch)

	year, _ := ix.Lookup(YearPath("USD", "BankA", 2025))
	if got := r.CategoryPeriod(year, "groceries").Net; !got.Equal(USD(-100)) {
		t.Errorf("Net(groceries, 2025) = %v, want -100", got)
	}
	if got := r.CategoryPeriod(year, "salary").Net; !got.Equal(USD(1000)) {
		t.Errorf("Net(salary, 2025) = %v, want 1000", got)
	}
	// A category with no activity yields a zero period.
	if got := r.CategoryPeriod(year, "rent").Net; !got.IsZero() {
		t.Errorf("Net(rent, 2025) = %v, want 0", got)
	}

	// Category running balances carry across periods.
	feb, _ := ix.Lookup(MonthPath("USD", "BankA", 2025, 2))
	if got := r.CategoryPeriod(feb, "groceries").Opening; !got.Equal(USD(-40)) {
		t.Errorf("Opening(groceries, Feb) = %v, want -40", got)
	}
}
