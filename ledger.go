package balancegrid

import (
	"iter"
	"slices"
	"sort"
	"strings"
)

// Ledger holds the flat list of movements supplied by the data source.
//
// In a Ledger movements are always in chronological order; movements on
// the same day keep the order they were supplied in.
type Ledger struct {
	movements  []Movement
	categories *Categories
	excluded   int // movements dropped for missing dimensional attributes
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{categories: NewCategories()}
}

// SetCategories declares the known categories.
func (l *Ledger) SetCategories(c *Categories) { l.categories = c }

// Categories returns the declared categories.
func (l *Ledger) Categories() *Categories { return l.categories }

// Append adds movements to the ledger and maintains the chronological
// order. Movements whose currency or account cannot be resolved are
// excluded and counted, never silently dropped.
func (l *Ledger) Append(movs ...Movement) {
	for _, m := range movs {
		if m.Currency == "" || m.AccountLabel() == "" {
			l.excluded++
			continue
		}
		l.movements = append(l.movements, m)
	}
	l.stableSort()
}

// stableSort sorts the ledger by movement date. The sort is stable, so
// movements on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.movements, func(i, j int) bool {
		return l.movements[i].Date.Before(l.movements[j].Date)
	})
}

// Excluded returns the number of movements excluded for missing
// dimensional attributes since the ledger was created.
func (l *Ledger) Excluded() int { return l.excluded }

// Len returns the number of indexed movements.
func (l *Ledger) Len() int { return len(l.movements) }

// Movements returns an iterator over movements accepted by all the
// given predicates, in chronological order.
func (l *Ledger) Movements(filters ...func(Movement) bool) iter.Seq2[int, Movement] {
	return func(yield func(int, Movement) bool) {
	next:
		for i, m := range l.movements {
			for _, filter := range filters {
				if !filter(m) {
					continue next
				}
			}
			if !yield(i, m) {
				return
			}
		}
	}
}

// CategoryIDs returns the distinct category ids referenced by the
// ledger, in order of first appearance.
func (l *Ledger) CategoryIDs() []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, m := range l.movements {
		if _, ok := seen[m.CategoryID]; !ok {
			seen[m.CategoryID] = struct{}{}
			ids = append(ids, m.CategoryID)
		}
	}
	return ids
}

// OldestMovementDate returns the date of the earliest movement, or the
// zero date if the ledger is empty.
func (l *Ledger) OldestMovementDate() Date {
	if len(l.movements) == 0 {
		return Date{}
	}
	return l.movements[0].Date
}

// NewestMovementDate returns the date of the latest movement, or the
// zero date if the ledger is empty.
func (l *Ledger) NewestMovementDate() Date {
	if len(l.movements) == 0 {
		return Date{}
	}
	return l.movements[len(l.movements)-1].Date
}

// NodeID addresses one node of an Index. Nodes live in a flat arena and
// reference each other by index.
type NodeID int

type node struct {
	path      DimensionPath
	parent    NodeID
	children  []NodeID
	movements []int // ledger movement indexes; date-level nodes only
}

// Index is the nested grouping of a ledger's movements by currency,
// account label, year, month and date. It is built in a single pass and
// immutable once returned.
type Index struct {
	ledger *Ledger
	nodes  []node
	roots  []NodeID // currency nodes, sorted by code
	byPath map[DimensionPath]NodeID
}

// Index groups the ledger's movements into a hierarchy index. No
// movement is duplicated or dropped: exclusion happened at Append time.
func (l *Ledger) Index() *Index {
	ix := &Index{ledger: l, byPath: make(map[DimensionPath]NodeID)}
	for i, m := range l.movements {
		id := ix.ensure(m.Path())
		ix.nodes[id].movements = append(ix.nodes[id].movements, i)
	}
	ix.sortChildren()
	return ix
}

// ensure returns the node for the path, creating it and its ancestor
// chain when missing.
func (ix *Index) ensure(p DimensionPath) NodeID {
	if id, ok := ix.byPath[p]; ok {
		return id
	}
	id := NodeID(len(ix.nodes))
	ix.nodes = append(ix.nodes, node{path: p, parent: -1})
	ix.byPath[p] = id
	if g := p.Grain(); g == GrainCurrency {
		ix.roots = append(ix.roots, id)
	} else {
		parent := ix.ensure(p.Truncate(g.Coarser()))
		ix.nodes[id].parent = parent
		ix.nodes[parent].children = append(ix.nodes[parent].children, id)
	}
	return id
}

// sortChildren orders every sibling list: currencies and accounts
// lexicographically, years, months and dates chronologically.
func (ix *Index) sortChildren() {
	slices.SortFunc(ix.roots, func(a, b NodeID) int {
		return strings.Compare(ix.nodes[a].path.Currency, ix.nodes[b].path.Currency)
	})
	for i := range ix.nodes {
		slices.SortFunc(ix.nodes[i].children, func(a, b NodeID) int {
			pa, pb := ix.nodes[a].path, ix.nodes[b].path
			if pa.Grain() == GrainAccount {
				return strings.Compare(pa.Account, pb.Account)
			}
			return pa.Date().Compare(pb.Date())
		})
	}
}

// Roots returns the currency-level nodes, sorted by currency code.
func (ix *Index) Roots() []NodeID { return ix.roots }

// Path returns the DimensionPath of a node.
func (ix *Index) Path(id NodeID) DimensionPath { return ix.nodes[id].path }

// Parent returns the parent node, or -1 for currency-level nodes.
func (ix *Index) Parent(id NodeID) NodeID { return ix.nodes[id].parent }

// Children returns a node's children in their canonical order.
func (ix *Index) Children(id NodeID) []NodeID { return ix.nodes[id].children }

// Lookup finds the node for a path.
func (ix *Index) Lookup(p DimensionPath) (NodeID, bool) {
	id, ok := ix.byPath[p]
	return id, ok
}

// MovementsAt returns the movements of a date-level node, in the order
// they were supplied.
func (ix *Index) MovementsAt(id NodeID) []Movement {
	n := ix.nodes[id]
	out := make([]Movement, 0, len(n.movements))
	for _, i := range n.movements {
		out = append(out, ix.ledger.movements[i])
	}
	return out
}

// Dates returns the date-level nodes under a node, in chronological order.
func (ix *Index) Dates(id NodeID) []NodeID {
	if ix.nodes[id].path.Grain() == GrainDate {
		return []NodeID{id}
	}
	var out []NodeID
	for _, c := range ix.nodes[id].children {
		out = append(out, ix.Dates(c)...)
	}
	return out
}

// Len returns the number of nodes in the index.
func (ix *Index) Len() int { return len(ix.nodes) }
