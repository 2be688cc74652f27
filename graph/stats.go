package graph

// GraphStats is a read-only, O(1) snapshot of a Graph's configuration and
// size, useful for CLI progress lines, logging, and tests.
type GraphStats struct {
	N         int
	NA        int
	Directed  bool
	Bipartite bool
	NumEdges  int
	Density   float64
}

// Stats produces a GraphStats snapshot. Complexity: O(1).
func (g *Graph) Stats() GraphStats {
	s := GraphStats{
		N:         g.n,
		NA:        g.nA,
		Directed:  g.directed,
		Bipartite: g.bipartite,
		NumEdges:  g.numEdges,
	}
	s.Density = density(g)

	return s
}

func density(g *Graph) float64 {
	var possible float64
	switch {
	case g.bipartite:
		nB := float64(g.n - g.nA)
		possible = float64(g.nA) * nB
	case g.directed:
		possible = float64(g.n) * float64(g.n-1)
	default:
		possible = float64(g.n) * float64(g.n-1) / 2
	}
	if possible == 0 {
		return 0
	}

	return float64(g.numEdges) / possible
}

// Bootstrap inserts every pair in pairs (already de-duplicated and
// self-loop-free by the caller) into an otherwise-empty Graph in order,
// invoking onInsert(i,j) after each successful insertion. Because onInsert
// sees the graph after the edge is in place, obs_stats is not computed
// here: netio.BootstrapObservedStatistics evaluates each Delta before its
// insertion instead.
func (g *Graph) Bootstrap(pairs [][2]int, onInsert func(i, j int)) error {
	for _, p := range pairs {
		ok, err := g.InsertEdge(p[0], p[1])
		if err != nil {
			return err
		}
		if ok && onInsert != nil {
			onInsert(p[0], p[1])
		}
	}

	return nil
}
