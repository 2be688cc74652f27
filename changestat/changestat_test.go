package changestat_test

import (
	"testing"

	"github.com/katalvlaran/ergmee/changestat"
	"github.com/katalvlaran/ergmee/graph"
	"github.com/stretchr/testify/require"
)

// accumulate builds g from scratch via the given edge sequence, summing
// stat.Delta before each insertion, and returns the running total — the
// "summation identity": the sum of per-toggle deltas over a build sequence
// must equal the statistic's value on the resulting graph, since Delta is
// defined exactly as that per-toggle change.
func accumulate(g *graph.Graph, stat changestat.Statistic, edges [][2]int) float64 {
	total := 0.0
	for _, e := range edges {
		total += stat.Delta(g, e[0], e[1])
		_, err := g.InsertEdge(e[0], e[1])
		if err != nil {
			panic(err)
		}
	}

	return total
}

func TestTrianglesSummationIdentityOnK4(t *testing.T) {
	g := graph.New(4)
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	total := accumulate(g, changestat.Triangles{}, edges)
	require.Equal(t, 4.0, total) // C(4,3) triangles in K4
}

func TestKStarSummationIdentityOnK4(t *testing.T) {
	g := graph.New(4)
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	total := accumulate(g, changestat.KStar{K: 2}, edges)
	require.Equal(t, 12.0, total) // Σ_v C(3,2) = 4*3 = 12
}

// TestSeedScenario3FourCyclesAndAltKTriangles reproduces spec.md §8 seed
// scenario 3: on the 4-cycle, FourCycles == 1 and AltKTriangles(λ=2) == 0
// (the 4-cycle contains no triangles, so every edge's shared-partner count
// is zero).
func TestSeedScenario3FourCyclesAndAltKTriangles(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}

	g1 := graph.New(4)
	require.Equal(t, 1.0, accumulate(g1, changestat.FourCycles{}, edges))

	g2 := graph.New(4)
	require.Equal(t, 0.0, accumulate(g2, changestat.AltKTriangles{Lambda: 2}, edges))
}

// TestSeedScenario4AltStars reproduces spec.md §8 seed scenario 4: on the
// directed 3-cycle 0->1->2->0, AltInStars(λ=2) and AltOutStars(λ=2) both
// equal 3·(1-(-0.5)^1) = 4.5.
func TestSeedScenario4AltStars(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}}

	gOut := graph.New(3, graph.WithDirected())
	require.InDelta(t, 4.5, accumulate(gOut, changestat.AltOutStars{Lambda: 2}, edges), 1e-9)

	gIn := graph.New(3, graph.WithDirected())
	require.InDelta(t, 4.5, accumulate(gIn, changestat.AltInStars{Lambda: 2}, edges), 1e-9)
}

// TestSeedScenario4MutualAndAsymmetric checks that the directed 3-cycle has
// no reciprocated dyads and exactly three asymmetric ones.
func TestSeedScenario4MutualAndAsymmetric(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}}

	gMutual := graph.New(3, graph.WithDirected())
	require.Equal(t, 0.0, accumulate(gMutual, changestat.Mutual{}, edges))

	gAsym := graph.New(3, graph.WithDirected())
	require.Equal(t, 3.0, accumulate(gAsym, changestat.Asymmetric{}, edges))
}

// TestSeedScenario2BipartiteExactlyOneNeighbourA exercises the statistic of
// seed scenario 2 on a smaller graph: three A-nodes each gain exactly one
// B-neighbour, so the accumulated count is 3.
func TestSeedScenario2BipartiteExactlyOneNeighbourA(t *testing.T) {
	g := graph.New(5, graph.WithBipartite(3))
	edges := [][2]int{{0, 3}, {1, 3}, {2, 4}}
	total := accumulate(g, changestat.BipartiteExactlyOneNeighbourA{}, edges)
	require.Equal(t, 3.0, total)
}

// TestDeltaConsistencyAcrossInsertRemove checks that inserting then removing
// an edge restores the graph to a state where Delta reports the same value
// it did before the insertion, for several statistic families at once.
func TestDeltaConsistencyAcrossInsertRemove(t *testing.T) {
	g := graph.New(6)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {0, 2}} {
		_, err := g.InsertEdge(e[0], e[1])
		require.NoError(t, err)
	}

	stats := []changestat.Statistic{
		changestat.EdgeCount{},
		changestat.Triangles{},
		changestat.KStar{K: 3},
		changestat.AltKStars{Lambda: 1.5},
		changestat.AltKTriangles{Lambda: 1.5},
		changestat.FourCycles{},
	}

	for _, stat := range stats {
		before := stat.Delta(g, 4, 5)

		ok, err := g.InsertEdge(4, 5)
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = g.RemoveEdge(4, 5)
		require.NoError(t, err)
		require.True(t, ok)

		after := stat.Delta(g, 4, 5)
		require.InDelta(t, before, after, 1e-9, "statistic %s not consistent across insert/remove", stat.Name())
	}
}

func TestAttributeStatisticsRespectNA(t *testing.T) {
	g := graph.New(3)
	g.SetBinary("active", []int8{1, -1, 0})
	g.SetCategorical("group", []int64{1, graph.NAInt, 2})
	g.SetContinuous("weight", []float64{1.0, 2.0, 3.0})

	require.Equal(t, 1.0, changestat.Activity{Attr: "active"}.Delta(g, 0, 2)) // node0=1 true, node2=0 false
	require.Equal(t, 0.0, changestat.Interaction{Attr: "active"}.Delta(g, 0, 1))

	require.Equal(t, 0.0, changestat.Match{Attr: "group"}.Delta(g, 0, 1)) // node1 is NA
	require.Equal(t, 1.0, changestat.Mismatch{Attr: "group"}.Delta(g, 0, 2))

	require.Equal(t, 4.0, changestat.Sum{Attr: "weight"}.Delta(g, 0, 2))
	require.Equal(t, 2.0, changestat.Diff{Attr: "weight"}.Delta(g, 0, 2))
}

func TestNodematchAlphaAndBeta(t *testing.T) {
	// A = {0,1,2}, B = {3,4}. Nodes 0 and 1 share category 1; node 2 is
	// category 2. Node 1 is already linked to B-node 3.
	g := graph.New(5, graph.WithBipartite(3))
	g.SetCategorical("kind", []int64{1, 1, 2, graph.NAInt, graph.NAInt})
	_, err := g.InsertEdge(1, 3)
	require.NoError(t, err)

	// Inserting 0-3: node1 matches 0's category and is already a
	// B-neighbour of 3, so TwoPath(0,1) goes from 0 to 1 common neighbour.
	alpha := changestat.NodematchAlpha{Attr: "kind", Alpha: 2}
	require.Equal(t, 1.0, alpha.Delta(g, 0, 3))

	// Alpha=0 exercises the pow0(0,0)=0 convention: 1^0 - 0^0 = 1 - 0 = 1.
	alphaZero := changestat.NodematchAlpha{Attr: "kind", Alpha: 0}
	require.Equal(t, 1.0, alphaZero.Delta(g, 0, 3))

	// Non-matching A-node 2 never shares a B-neighbour count with anything.
	require.Equal(t, 0.0, alpha.Delta(g, 2, 3))

	// Beta: the new edge 0-3 gets matched=1 (node1) co-neighbour, and the
	// existing edge 1-3 gains node0 as a new matching co-neighbour (0->1).
	beta := changestat.NodematchBeta{Attr: "kind", Beta: 1}
	require.Equal(t, 2.0, beta.Delta(g, 0, 3))
}
