package simulate_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ergmee/changestat"
	"github.com/katalvlaran/ergmee/graph"
	"github.com/katalvlaran/ergmee/rng"
	"github.com/katalvlaran/ergmee/sampler"
	"github.com/katalvlaran/ergmee/simulate"
)

type recordingWriter struct {
	steps []int
}

func (w *recordingWriter) WriteNetwork(step int, _ *graph.Graph) error {
	w.steps = append(w.steps, step)

	return nil
}

func TestRunEmitsOneNetworkAndStatsLinePerSample(t *testing.T) {
	g := graph.New(6)
	smp := sampler.NewBasic(g, []changestat.Statistic{changestat.EdgeCount{}})
	cfg := simulate.Config{BurnIn: 20, SampleSize: 5, Interval: 10}
	var statsBuf bytes.Buffer
	rec := &recordingWriter{}

	s := simulate.New(g, []changestat.Statistic{changestat.EdgeCount{}}, smp, rng.New(3), []float64{0}, []float64{0}, cfg, zerolog.Nop(), rec, &statsBuf)

	require.NoError(t, s.Run(context.Background()))
	require.Equal(t, []int{1, 2, 3, 4, 5}, rec.steps)

	lines := strings.Split(strings.TrimSpace(statsBuf.String()), "\n")
	require.Equal(t, cfg.SampleSize, len(lines))
}

func TestRunWithNilWritersStillAccumulates(t *testing.T) {
	g := graph.New(6)
	smp := sampler.NewBasic(g, []changestat.Statistic{changestat.EdgeCount{}})
	cfg := simulate.Config{BurnIn: 5, SampleSize: 3, Interval: 5}

	s := simulate.New(g, []changestat.Statistic{changestat.EdgeCount{}}, smp, rng.New(9), []float64{0}, []float64{2}, cfg, zerolog.Nop(), nil, nil)

	require.NoError(t, s.Run(context.Background()))
	require.Len(t, s.CumulativeStatistics(), 1)
}

func TestRunRespectsContextCancellation(t *testing.T) {
	g := graph.New(6)
	smp := sampler.NewBasic(g, []changestat.Statistic{changestat.EdgeCount{}})
	cfg := simulate.Config{BurnIn: 1000, SampleSize: 1000, Interval: 5}

	s := simulate.New(g, []changestat.Statistic{changestat.EdgeCount{}}, smp, rng.New(1), []float64{0}, []float64{0}, cfg, zerolog.Nop(), nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, s.Run(ctx))
}

func TestIFDSimulationPinsTargetDensity(t *testing.T) {
	g := graph.New(6)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}} {
		_, err := g.InsertEdge(e[0], e[1])
		require.NoError(t, err)
	}
	smp := sampler.NewIFD(g, []changestat.Statistic{changestat.EdgeCount{}}, 5, 0.5)
	cfg := simulate.Config{BurnIn: 2000, SampleSize: 5, Interval: 100}

	s := simulate.New(g, []changestat.Statistic{changestat.EdgeCount{}}, smp, rng.New(5), []float64{0}, []float64{0}, cfg, zerolog.Nop(), nil, nil)

	require.NoError(t, s.Run(context.Background()))
	require.Equal(t, 5, g.NumEdges())
}
