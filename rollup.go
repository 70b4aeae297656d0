package balancegrid

// DefaultEpoch is the system-start date of the deployed instance: every
// balance is zero on or before this date unless configured otherwise.
var DefaultEpoch = NewDate(2025, 1, 1)

// Period is the computed (opening balance, net-of-period, closing
// balance) of one hierarchy node, together with the number of
// movements it covers. Opening + Net == Closing always holds.
type Period struct {
	Opening Money
	Net     Money
	Closing Money
	Count   int
}

// Rollup holds the memoized per-node periods of one computation pass.
// It is built in a single bottom-up pass over the index: a chronological
// scan per account produces the date-level periods, which are then
// folded into month, year, account and currency periods. No balance is
// ever recomputed by re-scanning the movement list.
//
// Rollups are always computed over the complete, unfiltered ledger;
// display filters select rows, never balance inputs.
type Rollup struct {
	index      *Index
	epoch      Date
	combined   []Period            // arena-aligned, all categories together
	byCategory map[string][]Period // category id → arena-aligned periods
	prevDay    []NodeID            // date node → previous date node with data in the same account, or -1
}

// NewRollup computes all periods for the index in one pass.
func NewRollup(ix *Index, epoch Date) *Rollup {
	if epoch.IsZero() {
		epoch = DefaultEpoch
	}
	r := &Rollup{
		index:      ix,
		epoch:      epoch,
		combined:   make([]Period, ix.Len()),
		byCategory: make(map[string][]Period),
		prevDay:    make([]NodeID, ix.Len()),
	}
	for i := range r.prevDay {
		r.prevDay[i] = -1
	}
	for _, cid := range ix.Roots() {
		currency := ix.Path(cid).Currency
		for _, aid := range ix.Children(cid) {
			r.scanAccount(aid, currency)
			r.fold(aid)
		}
		r.sumAccounts(cid, currency)
	}
	return r
}

// Epoch returns the configured system-start date.
func (r *Rollup) Epoch() Date { return r.epoch }

// Period returns the combined period of any node.
func (r *Rollup) Period(id NodeID) Period { return r.combined[id] }

// CategoryPeriod returns the period of one category at any node. A
// category with no activity under the node yields a zero period.
func (r *Rollup) CategoryPeriod(id NodeID, categoryID string) Period {
	ps, ok := r.byCategory[categoryID]
	if !ok {
		zero := M(0, r.index.Path(id).Currency)
		return Period{Opening: zero, Net: zero, Closing: zero}
	}
	return ps[id]
}

// BalanceAsOfDayStart returns the running balance of an account at the
// start of the given day: the closing balance of the immediately
// preceding calendar day with any movement, independent of month and
// year boundaries. Days on or before the epoch always open at zero.
func (r *Rollup) BalanceAsOfDayStart(currency, account string, day Date) Money {
	zero := M(0, currency)
	if !day.After(r.epoch) {
		return zero
	}
	aid, ok := r.index.Lookup(AccountPath(currency, account))
	if !ok {
		return zero
	}
	balance := zero
	for _, did := range r.index.Dates(aid) {
		if !r.index.Path(did).Date().Before(day) {
			break
		}
		balance = r.combined[did].Closing
	}
	return balance
}

// PreviousDay returns the preceding date-level node with data in the
// same account, or -1 when the given date node is the account's first.
func (r *Rollup) PreviousDay(id NodeID) NodeID { return r.prevDay[id] }

// scanAccount walks the account's date nodes chronologically, carrying
// the running balance (combined and per category) across month and year
// boundaries.
func (r *Rollup) scanAccount(aid NodeID, currency string) {
	zero := M(0, currency)
	running := zero
	runningCat := make(map[string]Money)
	last := NodeID(-1)

	for _, did := range r.index.Dates(aid) {
		net := zero
		catNet := make(map[string]Money)
		catCount := make(map[string]int)
		movs := r.index.MovementsAt(did)
		for _, m := range movs {
			n := m.Net()
			net = net.Add(n)
			if prev, ok := catNet[m.CategoryID]; ok {
				catNet[m.CategoryID] = prev.Add(n)
			} else {
				catNet[m.CategoryID] = n
			}
			catCount[m.CategoryID]++
		}

		r.combined[did] = Period{Opening: running, Net: net, Closing: running.Add(net), Count: len(movs)}
		running = r.combined[did].Closing
		r.prevDay[did] = last
		last = did

		// New categories start carrying a balance from this day on.
		for cat := range catNet {
			if _, ok := runningCat[cat]; !ok {
				runningCat[cat] = zero
			}
		}
		// Every active category gets a period on every date node, so
		// that folding can read opening/closing off the first and last
		// child without chasing gaps.
		for cat, open := range runningCat {
			n, ok := catNet[cat]
			if !ok {
				n = zero
			}
			ps := r.categoryArena(cat)
			ps[did] = Period{Opening: open, Net: n, Closing: open.Add(n), Count: catCount[cat]}
			runningCat[cat] = open.Add(n)
		}
	}
}

func (r *Rollup) categoryArena(categoryID string) []Period {
	ps, ok := r.byCategory[categoryID]
	if !ok {
		ps = make([]Period, r.index.Len())
		r.byCategory[categoryID] = ps
	}
	return ps
}

// fold computes the period of every non-date node under id from its
// children: opening of the first child, closing of the last child, sum
// of nets. This is what makes a collapsed period's closing balance equal
// to what an expanded view of its last day would show.
func (r *Rollup) fold(id NodeID) {
	children := r.index.Children(id)
	if len(children) == 0 {
		return
	}
	for _, c := range children {
		r.fold(c)
	}
	r.combined[id] = foldChildren(r.combined, children)
	for _, ps := range r.byCategory {
		ps[id] = foldChildren(ps, children)
	}
}

func foldChildren(ps []Period, children []NodeID) Period {
	p := Period{Opening: ps[children[0]].Opening}
	for _, c := range children {
		cp := ps[c]
		p.Net = p.Net.Add(cp.Net)
		p.Closing = cp.Closing
		p.Count += cp.Count
	}
	return p
}

// sumAccounts computes a currency node's period as the sum over its
// accounts: accounts are parallel series, not chronological siblings.
func (r *Rollup) sumAccounts(cid NodeID, currency string) {
	r.combined[cid] = sumSiblings(r.combined, r.index.Children(cid), currency)
	for _, ps := range r.byCategory {
		ps[cid] = sumSiblings(ps, r.index.Children(cid), currency)
	}
}

func sumSiblings(ps []Period, siblings []NodeID, currency string) Period {
	zero := M(0, currency)
	p := Period{Opening: zero, Net: zero, Closing: zero}
	for _, s := range siblings {
		sp := ps[s]
		p.Opening = p.Opening.Add(sp.Opening)
		p.Net = p.Net.Add(sp.Net)
		p.Closing = p.Closing.Add(sp.Closing)
		p.Count += sp.Count
	}
	return p
}
