package balancegrid

// Selection holds the set of hierarchy nodes currently expanded. It is
// owned by the UI layer and passed into each computation call; the
// engine never mutates it.
//
// Expansion is tracked per node, keyed by the node's DimensionPath.
// Expansion at a level only matters if all ancestor levels are also
// expanded: an account cannot be visibly expanded without its currency
// being expanded. VisibleGrain enforces that invariant structurally, so
// a stale flag on an unreachable node is harmless.
type Selection struct {
	expanded map[DimensionPath]struct{}
}

// NewSelection creates a fully collapsed selection.
func NewSelection() *Selection {
	return &Selection{expanded: make(map[DimensionPath]struct{})}
}

// Expand marks the node as expanded to its children. Expanding a
// date-level node is meaningless and ignored.
func (s *Selection) Expand(p DimensionPath) {
	if p.Grain() == GrainDate {
		return
	}
	s.expanded[p] = struct{}{}
}

// Collapse clears the node's expansion flag.
func (s *Selection) Collapse(p DimensionPath) {
	delete(s.expanded, p)
}

// IsExpanded returns the raw expansion flag of a node, regardless of
// whether the node is reachable under the ancestor invariant.
func (s *Selection) IsExpanded(p DimensionPath) bool {
	_, ok := s.expanded[p]
	return ok
}

// VisibleGrain returns the deepest grain reachable for the given path:
// the level at which the walk from the currency root first meets a
// collapsed node.
func (s *Selection) VisibleGrain(p DimensionPath) Grain {
	for g := GrainCurrency; g < p.Grain(); g++ {
		if !s.IsExpanded(p.Truncate(g)) {
			return g
		}
	}
	return p.Grain()
}

// ExpandOneLevel expands the next unexpanded level across the entire
// tree, one level at a time: all currencies, then all accounts, then
// all years, then all months. It returns false when the tree was
// already fully expanded (the call is a no-op).
func (s *Selection) ExpandOneLevel(ix *Index) bool {
	for g := GrainCurrency; g <= GrainMonth; g++ {
		var todo []DimensionPath
		for _, id := range ix.nodesAtGrain(g) {
			if p := ix.Path(id); !s.IsExpanded(p) {
				todo = append(todo, p)
			}
		}
		if len(todo) > 0 {
			for _, p := range todo {
				s.Expand(p)
			}
			return true
		}
	}
	return false
}

// CollapseOneLevel collapses the deepest expanded level across the
// entire tree: all months, then all years, then all accounts, then all
// currencies. It returns false when the tree was already fully
// collapsed (the call is a no-op).
func (s *Selection) CollapseOneLevel(ix *Index) bool {
	for g := GrainMonth; g >= GrainCurrency; g-- {
		var todo []DimensionPath
		for _, id := range ix.nodesAtGrain(g) {
			if p := ix.Path(id); s.IsExpanded(p) {
				todo = append(todo, p)
			}
		}
		if len(todo) > 0 {
			for _, p := range todo {
				s.Collapse(p)
			}
			return true
		}
	}
	return false
}

// nodesAtGrain returns every node of the index at the given grain.
func (ix *Index) nodesAtGrain(g Grain) []NodeID {
	var out []NodeID
	for id := range ix.nodes {
		if ix.nodes[id].path.Grain() == g {
			out = append(out, NodeID(id))
		}
	}
	return out
}
