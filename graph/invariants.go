package graph

import "fmt"

// EnableInvariantChecks gates the expensive O(V+E) re-derivation performed
// by CheckInvariants. It is off by default (production builds trust the
// incremental maintenance in edges.go); test code and debug tooling set it
// to true, matching spec.md §7's "detected only in debug builds" policy.
var EnableInvariantChecks = false

// CheckInvariants re-derives degree counters (and, for undirected and
// bipartite graphs, two-path counts; directed graphs get the degree checks
// only) from scratch and compares them against the incrementally maintained
// state, returning ErrInvariantViolation (wrapped with detail) on any
// mismatch. It returns nil without checking anything while
// EnableInvariantChecks is false.
// It is O(V+E) for degree checks and up to O(V^2 * deg) for a full two-path
// re-derivation; callers should invoke it periodically in tests, not on
// every toggle.
func (g *Graph) CheckInvariants() error {
	if !EnableInvariantChecks {
		return nil
	}
	if g.directed {
		return g.checkDirectedInvariants()
	}

	return g.checkUndirectedInvariants()
}

func (g *Graph) checkUndirectedInvariants() error {
	for i := 0; i < g.n; i++ {
		if len(g.neighbours[i]) != g.degree[i] {
			return fmt.Errorf("%w: node %d degree=%d but neighbours has %d entries",
				ErrInvariantViolation, i, g.degree[i], len(g.neighbours[i]))
		}
		for _, j := range g.neighbours[i] {
			if !g.IsEdge(j, i) {
				return fmt.Errorf("%w: node %d lists %d as neighbour but reverse edge missing",
					ErrInvariantViolation, i, j)
			}
		}
	}

	if g.bipartite {
		return g.checkTwoPathInvariant(func(i, j int) int { return g.twoPathBipartite(i, j) },
			func(i, j int) bool { return g.InA(i) == g.InA(j) && i != j })
	}

	return g.checkTwoPathInvariant(func(i, j int) int { return g.twoPathUndirectedCount(i, j) },
		func(i, j int) bool { return i != j })
}

func (g *Graph) checkTwoPathInvariant(get func(i, j int) int, eligible func(i, j int) bool) error {
	for i := 0; i < g.n; i++ {
		for j := i + 1; j < g.n; j++ {
			if !eligible(i, j) {
				continue
			}
			want := countCommon(g.neighbours[i], g.neighbours[j])
			got := get(i, j)
			if want != got {
				return fmt.Errorf("%w: twoPath(%d,%d) cached=%d direct=%d", ErrInvariantViolation, i, j, got, want)
			}
		}
	}

	return nil
}

func (g *Graph) checkDirectedInvariants() error {
	for i := 0; i < g.n; i++ {
		if len(g.out[i]) != g.outDeg[i] {
			return fmt.Errorf("%w: node %d outDeg=%d but out list has %d entries",
				ErrInvariantViolation, i, g.outDeg[i], len(g.out[i]))
		}
		if len(g.in[i]) != g.inDeg[i] {
			return fmt.Errorf("%w: node %d inDeg=%d but in list has %d entries",
				ErrInvariantViolation, i, g.inDeg[i], len(g.in[i]))
		}
	}

	return nil
}
