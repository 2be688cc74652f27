package netio

import (
	"github.com/katalvlaran/ergmee/changestat"
	"github.com/katalvlaran/ergmee/graph"
)

// BootstrapObservedStatistics inserts every pair from an otherwise-empty g
// in order, summing each statistic's pre-insertion Delta before applying
// the insertion (spec.md §4.4, "bootstrapping observed statistics": this
// exploits the same correctness property package changestat is tested
// against, so the result equals stat(G_observed) by construction). Pairs
// already present (duplicates in the source file) contribute nothing and
// are skipped, matching "duplicates silently de-duplicated on load".
func BootstrapObservedStatistics(g *graph.Graph, pairs [][2]int, stats []changestat.Statistic) ([]float64, error) {
	obsStats := make([]float64, len(stats))
	for _, p := range pairs {
		if g.IsEdge(p[0], p[1]) {
			continue
		}
		for i, s := range stats {
			obsStats[i] += s.Delta(g, p[0], p[1])
		}
		if _, err := g.InsertEdge(p[0], p[1]); err != nil {
			return nil, err
		}
	}

	return obsStats, nil
}
