package geodesic_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/ergmee/geodesic"
	"github.com/katalvlaran/ergmee/graph"
	"github.com/stretchr/testify/require"
)

func TestComputeDistancesOnPath(t *testing.T) {
	// 0-1-2-3-4, undirected path: distance(0,4) == 4, distance(1,3) == 2.
	g := graph.New(5)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}} {
		_, err := g.InsertEdge(e[0], e[1])
		require.NoError(t, err)
	}

	table, err := geodesic.ComputeDistances(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, 4.0, table.Lookup(0, 4))
	require.Equal(t, 2.0, table.Lookup(1, 3))
	require.Equal(t, 0.0, table.Lookup(2, 2))
	require.Equal(t, table.Lookup(0, 4), table.Lookup(4, 0)) // undirected: symmetric
}

func TestComputeDistancesUnreachableSuppressed(t *testing.T) {
	// two disjoint components: {0,1} and {2,3}; cross-component pairs have
	// no path and must read back as 0, not +Inf.
	g := graph.New(4)
	_, err := g.InsertEdge(0, 1)
	require.NoError(t, err)
	_, err = g.InsertEdge(2, 3)
	require.NoError(t, err)

	table, err := geodesic.ComputeDistances(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, 0.0, table.Lookup(0, 2))
	require.Equal(t, 1.0, table.Lookup(0, 1))
}

func TestComputeDistancesDirected(t *testing.T) {
	// 0->1->2, directed: distance(0,2) == 2 but distance(2,0) is unreached.
	g := graph.New(3, graph.WithDirected())
	_, err := g.InsertEdge(0, 1)
	require.NoError(t, err)
	_, err = g.InsertEdge(1, 2)
	require.NoError(t, err)

	table, err := geodesic.ComputeDistances(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, 2.0, table.Lookup(0, 2))
	require.Equal(t, 0.0, table.Lookup(2, 0))
}

func TestCovariateWiresIntoDyadicCovariate(t *testing.T) {
	g := graph.New(3)
	_, err := g.InsertEdge(0, 1)
	require.NoError(t, err)
	_, err = g.InsertEdge(1, 2)
	require.NoError(t, err)

	table, err := geodesic.ComputeDistances(context.Background(), g)
	require.NoError(t, err)

	cov := table.Covariate("GeodesicDistance")
	require.Equal(t, "DyadicCovariate(GeodesicDistance)", cov.Name())
	require.Equal(t, 2.0, cov.Delta(g, 0, 2))
}
