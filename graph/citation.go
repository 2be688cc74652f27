package graph

// CitationEligible reports whether arc i->j is a legal citation-ERGM
// proposal: the source must carry the latest term, and the constraint
// from.term >= to.term must hold (spec.md §3, "citation-ERGM variant").
// Meaningless (always true) when citation mode is off, so sampler code can
// call it unconditionally.
func (g *Graph) CitationEligible(i, j int) bool {
	if !g.citationMode {
		return true
	}

	return g.term[i] == g.latestTerm && g.term[i] >= g.term[j]
}
