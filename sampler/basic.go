package sampler

import (
	"github.com/katalvlaran/ergmee/changestat"
	"github.com/katalvlaran/ergmee/graph"
	"github.com/katalvlaran/ergmee/rng"
)

// Basic is the plain uniform-random-dyad proposal kernel: every step draws
// one dyad uniformly from all NumDyads() possible pairs. Simple and
// correct, but on a sparse graph almost every draw is a non-tie, so
// removals of existing ties are rarely proposed — TNT exists to fix that
// without changing the target distribution.
type Basic struct {
	common
}

// NewBasic constructs a Basic sampler over g with the given statistic list.
func NewBasic(g *graph.Graph, stats []changestat.Statistic, opts ...Option) *Basic {
	return &Basic{common: newCommon(g, stats, opts)}
}

// Step proposes graph.RandomDyad, computes the Metropolis-Hastings
// acceptance probability (proposal is symmetric, so no Hastings
// correction term is needed), and applies the toggle if accepted.
func (b *Basic) Step(r *rng.Source, theta []float64) (bool, []float64, error) {
	if len(theta) != len(b.stats) {
		return false, nil, ErrThetaLength
	}
	if b.g.NumDyads() == 0 {
		return false, nil, ErrNoDyads
	}

	i, j := b.g.RandomDyad(r)
	inserting := !b.g.IsEdge(i, j)
	if b.restricted(i, j, inserting) {
		return false, zeros(len(theta)), nil
	}

	delta, inserting := b.proposalDelta(i, j)
	logOdds := dot(theta, delta)
	if !decide(r, logOdds) {
		return false, zeros(len(theta)), nil
	}

	if err := b.applyToggle(i, j, inserting); err != nil {
		return false, nil, err
	}

	return true, delta, nil
}
