package estimator_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ergmee/changestat"
	"github.com/katalvlaran/ergmee/estimator"
	"github.com/katalvlaran/ergmee/graph"
	"github.com/katalvlaran/ergmee/rng"
	"github.com/katalvlaran/ergmee/sampler"
)

func TestRunWritesTraceHeaderAndOneLinePerEEStep(t *testing.T) {
	g := graph.New(6)
	smp := sampler.NewBasic(g, []changestat.Statistic{changestat.EdgeCount{}})
	cfg := estimator.Config{SSteps: 3, EESteps: 4, EEInnerSteps: 2, SamplerSteps: 5, ACA_S: 0.5, ACA_EE: 0.2, CompC: 10}

	var traceTheta, traceDzA bytes.Buffer
	e := estimator.New(g, []changestat.Statistic{changestat.EdgeCount{}}, smp, rng.New(1), []float64{0}, cfg, zerolog.Nop(), &traceTheta, &traceDzA)

	require.NoError(t, e.Run(context.Background()))

	thetaLines := strings.Split(strings.TrimSpace(traceTheta.String()), "\n")
	require.Equal(t, 1+cfg.EESteps, len(thetaLines)) // header + one line per EE outer step
	require.Equal(t, "t EdgeCount", thetaLines[0])

	dzALines := strings.Split(strings.TrimSpace(traceDzA.String()), "\n")
	require.Equal(t, 1+cfg.EESteps, len(dzALines))
}

func TestRunRespectsContextCancellation(t *testing.T) {
	g := graph.New(6)
	smp := sampler.NewBasic(g, []changestat.Statistic{changestat.EdgeCount{}})
	cfg := estimator.Config{SSteps: 100, EESteps: 100, EEInnerSteps: 2, SamplerSteps: 5, ACA_S: 0.5, ACA_EE: 0.2, CompC: 10}

	e := estimator.New(g, []changestat.Statistic{changestat.EdgeCount{}}, smp, rng.New(1), []float64{0}, cfg, zerolog.Nop(), nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, e.Run(ctx))
}

func TestRunWithBorisenkoUpdateCompletesWithoutError(t *testing.T) {
	g := graph.New(6)
	smp := sampler.NewTNT(g, []changestat.Statistic{changestat.EdgeCount{}, changestat.Triangles{}}, 0.5)
	cfg := estimator.Config{SSteps: 2, EESteps: 3, EEInnerSteps: 2, SamplerSteps: 5, ACA_S: 0.3, ACA_EE: 0.1, CompC: 10, UseBorisenkoUpdate: true}

	e := estimator.New(g, []changestat.Statistic{changestat.EdgeCount{}, changestat.Triangles{}}, smp, rng.New(7), []float64{0, 0}, cfg, zerolog.Nop(), nil, nil)

	require.NoError(t, e.Run(context.Background()))
	require.Len(t, e.Theta(), 2)
}
