package estimator

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ergmee/rng"
)

// fakeSampler deterministically accepts/rejects according to pattern,
// cycling if Step is called more times than len(pattern), always
// contributing a delta of 1 on the single tracked statistic when accepted.
type fakeSampler struct {
	pattern []bool
	calls   int
}

func (f *fakeSampler) Step(_ *rng.Source, theta []float64) (bool, []float64, error) {
	accepted := f.pattern[f.calls%len(f.pattern)]
	f.calls++
	delta := make([]float64, len(theta))
	if accepted {
		delta[0] = 1
	}

	return accepted, delta, nil
}

func newTestEstimator(theta0 []float64) *Estimator {
	cfg := Config{SSteps: 1, EESteps: 1, EEInnerSteps: 1, SamplerSteps: 1, ACA_S: 0.1, ACA_EE: 0.1, CompC: 2.0}

	return New(nil, nil, nil, nil, theta0, cfg, zerolog.Nop(), nil, nil)
}

func TestClassicalUpdateMovesThetaOppositeDzASign(t *testing.T) {
	e := newTestEstimator([]float64{0, 0})
	e.classicalUpdate([]float64{3, -3})

	require.Less(t, e.theta[0], 0.0)
	require.Greater(t, e.theta[1], 0.0)
}

func TestBorisenkoUpdateGrowsStepOnPersistentSign(t *testing.T) {
	e := newTestEstimator([]float64{0})
	e.borisenkoUpdate([]float64{1})
	first := e.stepSize[0]
	e.borisenkoUpdate([]float64{1}) // same sign again: step should grow
	require.Greater(t, e.stepSize[0], first)

	e.borisenkoUpdate([]float64{-1}) // sign flip: step should shrink
	require.Less(t, e.stepSize[0], first)
	require.Greater(t, e.stepSize[0], 0.0)
}

func TestMaybeHalveStepTriggersOnLargeDzA(t *testing.T) {
	e := newTestEstimator([]float64{1})
	require.Equal(t, 1.0, e.decay)
	halved := e.maybeHalveStep([]float64{10}) // CompC=2.0, |theta|=1 -> threshold 2
	require.True(t, halved)
	require.Equal(t, 0.5, e.decay)

	halved = e.maybeHalveStep([]float64{0.1})
	require.False(t, halved)
	require.Equal(t, 0.5, e.decay)
}

func TestCheckFiniteDetectsNaN(t *testing.T) {
	e := newTestEstimator([]float64{1, 2})
	require.NoError(t, e.checkFinite())

	e.theta[1] = math.NaN()
	require.ErrorIs(t, e.checkFinite(), ErrNonFinite)
}

func TestAccumulateSumsOnlyAcceptedDeltas(t *testing.T) {
	e := newTestEstimator([]float64{0})
	e.smp = &fakeSampler{pattern: []bool{true, false, true}}
	dzA, err := e.accumulate(3)
	require.NoError(t, err)
	require.Equal(t, []float64{2}, dzA) // two accepted steps, each contributing 1
}
