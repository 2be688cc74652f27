package sampler

import (
	"testing"

	"github.com/katalvlaran/ergmee/changestat"
	"github.com/katalvlaran/ergmee/graph"
	"github.com/stretchr/testify/require"
)

func TestProposalDeltaInsertionMatchesStatistic(t *testing.T) {
	g := graph.New(3)
	_, err := g.InsertEdge(0, 1)
	require.NoError(t, err)
	_, err = g.InsertEdge(1, 2)
	require.NoError(t, err)

	c := newCommon(g, []changestat.Statistic{changestat.Triangles{}}, nil)
	delta, inserting := c.proposalDelta(0, 2)
	require.True(t, inserting)
	require.Equal(t, []float64{1}, delta) // closes one triangle via shared neighbour 1

	// graph must be untouched.
	require.False(t, g.IsEdge(0, 2))
	require.Equal(t, 2, g.NumEdges())
}

func TestProposalDeltaRemovalMatchesStatistic(t *testing.T) {
	g := graph.New(3)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}} {
		_, err := g.InsertEdge(e[0], e[1])
		require.NoError(t, err)
	}

	c := newCommon(g, []changestat.Statistic{changestat.Triangles{}}, nil)
	delta, inserting := c.proposalDelta(0, 1)
	require.False(t, inserting)
	require.Equal(t, []float64{-1}, delta) // removing (0,1) destroys the one triangle

	// graph must be restored to its original (all-3-edges) state.
	require.True(t, g.IsEdge(0, 1))
	require.Equal(t, 3, g.NumEdges())
}

func TestRestrictedRejectsFixedNodes(t *testing.T) {
	g := graph.New(3)
	c := newCommon(g, []changestat.Statistic{changestat.EdgeCount{}}, []Option{WithFixedNodes([]bool{true, false, false})})
	require.True(t, c.restricted(0, 1, true))
	require.False(t, c.restricted(1, 2, true))
}
