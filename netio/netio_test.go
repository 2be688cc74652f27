package netio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ergmee/changestat"
	"github.com/katalvlaran/ergmee/graph"
	"github.com/katalvlaran/ergmee/netio"
)

func TestReadPajekUndirectedEdgesDropsSelfLoopAndConvertsToZeroBased(t *testing.T) {
	src := "*vertices 4\n*edges\n1 2\n2 3\n3 3\n3 4\n"
	net, err := netio.ReadPajek(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 4, net.N)
	require.False(t, net.Directed)
	require.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}, net.Pairs)
}

func TestReadPajekArcsIsDirected(t *testing.T) {
	net, err := netio.ReadPajek(strings.NewReader("*vertices 3\n*arcs\n1 2\n2 3\n"))
	require.NoError(t, err)
	require.True(t, net.Directed)
	require.Equal(t, [][2]int{{0, 1}, {1, 2}}, net.Pairs)
}

func TestReadPajekBipartiteHeader(t *testing.T) {
	net, err := netio.ReadPajek(strings.NewReader("*vertices 6 4\n*edges\n1 5\n2 6\n"))
	require.NoError(t, err)
	require.True(t, net.Bipartite)
	require.Equal(t, 4, net.NA)
	require.Equal(t, [][2]int{{0, 4}, {1, 5}}, net.Pairs)
}

func TestReadPajekMissingHeaderErrors(t *testing.T) {
	_, err := netio.ReadPajek(strings.NewReader("*edges\n1 2\n"))
	require.ErrorIs(t, err, netio.ErrMissingHeader)
}

func TestWritePajekRoundTripsThroughReadPajek(t *testing.T) {
	g := graph.New(4)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}} {
		_, err := g.InsertEdge(e[0], e[1])
		require.NoError(t, err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "out.net")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, netio.WritePajek(f, g))
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	net, err := netio.ReadPajek(strings.NewReader(string(data)))
	require.NoError(t, err)
	require.Equal(t, 4, net.N)
	require.ElementsMatch(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}, net.Pairs)
}

func TestPajekWriterWritesPrefixedFile(t *testing.T) {
	g := graph.New(3)
	_, err := g.InsertEdge(0, 1)
	require.NoError(t, err)

	dir := t.TempDir()
	w := netio.PajekWriter{Dir: dir, Prefix: "sim"}
	require.NoError(t, w.WriteNetwork(7, g))

	_, err = os.Stat(filepath.Join(dir, "sim_7.net"))
	require.NoError(t, err)
}

func TestReadAttributeTableAndLoadBinary(t *testing.T) {
	src := "sex active\n1 0\n0 NA\nNA 1\n"
	table, err := netio.ReadAttributeTable(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, []string{"sex", "active"}, table.Names)

	g := graph.New(3)
	require.NoError(t, netio.LoadBinary(g, table, "sex"))
	v0, ok0 := g.Binary("sex", 0)
	require.True(t, ok0)
	require.Equal(t, int8(1), v0)
	_, ok1 := g.Binary("sex", 1)
	require.False(t, ok1) // NA
}

func TestLoadCategoricalAndContinuous(t *testing.T) {
	src := "group score\n1 2.5\nNA NA\n3 -1.0\n"
	table, err := netio.ReadAttributeTable(strings.NewReader(src))
	require.NoError(t, err)

	g := graph.New(3)
	require.NoError(t, netio.LoadCategorical(g, table, "group"))
	require.NoError(t, netio.LoadContinuous(g, table, "score"))

	v, ok := g.Categorical("group", 0)
	require.True(t, ok)
	require.Equal(t, int64(1), v)
	_, ok = g.Categorical("group", 1)
	require.False(t, ok)

	s, ok := g.Continuous("score", 2)
	require.True(t, ok)
	require.Equal(t, -1.0, s)
}

func TestBootstrapObservedStatisticsMatchesDirectCount(t *testing.T) {
	g := graph.New(4)
	pairs := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 1}} // duplicate (0,1)
	stats := []changestat.Statistic{changestat.EdgeCount{}, changestat.Triangles{}}

	obs, err := netio.BootstrapObservedStatistics(g, pairs, stats)
	require.NoError(t, err)
	require.Equal(t, 4.0, obs[0]) // duplicate contributes nothing
	require.Equal(t, 0.0, obs[1])
	require.Equal(t, 4, g.NumEdges())
}
