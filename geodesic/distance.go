package geodesic

import (
	"context"

	"github.com/katalvlaran/ergmee/changestat"
	"github.com/katalvlaran/ergmee/graph"
)

// DistanceTable holds all-pairs shortest-path distances over a covariate
// network, one dense row per source node. Unreached pairs are left at -1.
type DistanceTable struct {
	n    int
	dist [][]float64
}

// ComputeDistances runs one BFS per node of g (treated as unweighted: every
// edge/arc has length 1) and returns the resulting all-pairs distance table.
// g is read-only throughout; this is a one-time precomputation over a static
// covariate network, not a per-toggle operation over the ERGM graph itself.
func ComputeDistances(ctx context.Context, g *graph.Graph) (*DistanceTable, error) {
	neighbors := g.Neighbours
	if g.Directed() {
		neighbors = g.OutNeighbours
	}

	n := g.N()
	table := &DistanceTable{n: n, dist: make([][]float64, n)}
	for s := 0; s < n; s++ {
		row := make([]float64, n)
		for v := range row {
			row[v] = -1
		}
		if err := singleSourceBFS(ctx, g, neighbors, s, row); err != nil {
			return nil, err
		}
		table.dist[s] = row
	}

	return table, nil
}

// Lookup returns the geodesic distance from i to j, or 0 if the pair is
// unreached (no path exists in the covariate network). This mirrors the
// NA-attribute convention elsewhere in package changestat: a pair for which
// the covariate is undefined suppresses the term's contribution rather than
// poisoning it with +Inf.
func (t *DistanceTable) Lookup(i, j int) float64 {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return 0
	}
	d := t.dist[i][j]
	if d < 0 {
		return 0
	}

	return d
}

// Covariate builds the changestat.DyadicCovariate term backed by t, named
// for model/trace output.
func (t *DistanceTable) Covariate(name string) changestat.DyadicCovariate {
	return changestat.DyadicCovariate{AttrName: name, Lookup: t.Lookup}
}
