package estimator

import (
	"io"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/ergmee/changestat"
	"github.com/katalvlaran/ergmee/graph"
	"github.com/katalvlaran/ergmee/rng"
	"github.com/katalvlaran/ergmee/sampler"
)

// Config holds the iteration budget and step-size constants for both
// phases, matching the config keys of spec.md §6.
type Config struct {
	SSteps             int     // outer iterations of Algorithm S
	EESteps            int     // outer iterations of Algorithm EE
	EEInnerSteps       int     // sampler blocks per EE outer step
	SamplerSteps       int     // sampler.Step calls per block
	ACA_S              float64 // Algorithm S step-size constant
	ACA_EE             float64 // Algorithm EE step-size constant
	CompC              float64 // step-halving threshold multiplier
	UseBorisenkoUpdate bool    // EE update rule selector (false = classical)
}

// Estimator runs Algorithm S then Algorithm EE against one graph, one
// sampler, and one owned PRNG stream.
//
// An Estimator is single-owner, matching spec.md §5's "intra-estimator"
// model: one goroutine drives Run to completion; nothing about it is safe
// for concurrent use. The multi-rank harness gives each goroutine its own
// Estimator rather than sharing one.
type Estimator struct {
	g     *graph.Graph
	stats []changestat.Statistic
	smp   sampler.Sampler
	r     *rng.Source
	theta []float64
	cfg   Config
	log   zerolog.Logger

	traceTheta io.Writer // nil disables theta trace output
	traceDzA   io.Writer // nil disables dzA trace output

	// Borisenko update state: per-parameter adaptive step and the sign of
	// the previous outer step's dzA (nil before the first EE step).
	stepSize  []float64
	prevSigns []float64

	// decay is the step-halving multiplier applied to Algorithm EE's
	// updates; starts at 1 and is halved each time dzA's norm exceeds
	// CompC times theta's norm.
	decay float64
}

// New constructs an Estimator. theta0 is copied, not retained by the
// caller's slice. traceTheta/traceDzA may be nil to suppress trace output
// (used by tests that only care about the final theta).
func New(g *graph.Graph, stats []changestat.Statistic, smp sampler.Sampler, r *rng.Source, theta0 []float64, cfg Config, log zerolog.Logger, traceTheta, traceDzA io.Writer) *Estimator {
	theta := make([]float64, len(theta0))
	copy(theta, theta0)

	return &Estimator{
		g:          g,
		stats:      stats,
		smp:        smp,
		r:          r,
		theta:      theta,
		cfg:        cfg,
		log:        log.With().Str("component", "estimator").Logger(),
		traceTheta: traceTheta,
		traceDzA:   traceDzA,
		stepSize:   initialStepSize(len(theta)),
		decay:      1.0,
	}
}

// Theta returns the current parameter vector (a copy).
func (e *Estimator) Theta() []float64 {
	out := make([]float64, len(e.theta))
	copy(out, e.theta)

	return out
}

func initialStepSize(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = 0.1
	}

	return s
}

// accumulate runs n sampler.Step calls and sums the realized delta of
// every accepted toggle into dzA, per spec.md §4.3 "step semantics": a
// rejected toggle contributes nothing. It returns ErrNonFinite if the summed
// dzA has a NaN/Inf component.
func (e *Estimator) accumulate(n int) ([]float64, error) {
	dzA := make([]float64, len(e.theta))
	for i := 0; i < n; i++ {
		accepted, delta, err := e.smp.Step(e.r, e.theta)
		if err != nil {
			return nil, err
		}
		if !accepted {
			continue
		}
		for p := range dzA {
			dzA[p] += delta[p]
		}
	}
	for _, v := range dzA {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFinite
		}
	}

	return dzA, nil
}

// checkFinite reports ErrNonFinite if theta has developed a NaN/Inf
// component.
func (e *Estimator) checkFinite() error {
	for _, v := range e.theta {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}

	return nil
}

func norm(v []float64) float64 {
	var sumSq float64
	for _, x := range v {
		sumSq += x * x
	}

	return math.Sqrt(sumSq)
}

func signOf(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
