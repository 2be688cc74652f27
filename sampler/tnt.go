package sampler

import (
	"math"

	"github.com/katalvlaran/ergmee/changestat"
	"github.com/katalvlaran/ergmee/graph"
	"github.com/katalvlaran/ergmee/rng"
)

// defaultTieProb is TNT's default probability of drawing its proposal from
// the existing-tie branch, matching the commonly used statnet/ergm default.
const defaultTieProb = 0.5

// TNT is the tie/no-tie proposal kernel (Morris, Handcock & Hunter 2008).
// With probability TieProb it proposes removing a uniformly chosen existing
// edge (O(1) via graph.RandomEdge); otherwise it proposes toggling a
// uniformly chosen dyad from the full dyad space. Because these two
// branches draw from overlapping, asymmetric distributions, every proposal
// carries a Hastings correction (see hastingsLogRatio) rather than the
// uniform-proposal shortcut Basic uses.
type TNT struct {
	common
	TieProb float64
}

// NewTNT constructs a TNT sampler. tieProb<=0 selects the default 0.5.
func NewTNT(g *graph.Graph, stats []changestat.Statistic, tieProb float64, opts ...Option) *TNT {
	if tieProb <= 0 {
		tieProb = defaultTieProb
	}

	return &TNT{common: newCommon(g, stats, opts), TieProb: tieProb}
}

func (t *TNT) Step(r *rng.Source, theta []float64) (bool, []float64, error) {
	if len(theta) != len(t.stats) {
		return false, nil, ErrThetaLength
	}
	if t.g.NumDyads() == 0 {
		return false, nil, ErrNoDyads
	}

	i, j := t.proposeDyad(r)
	inserting := !t.g.IsEdge(i, j)
	if t.restricted(i, j, inserting) {
		return false, zeros(len(theta)), nil
	}

	delta, inserting := t.proposalDelta(i, j)
	logOdds := dot(theta, delta) + t.hastingsLogRatio(inserting)

	if !decide(r, logOdds) {
		return false, zeros(len(theta)), nil
	}

	if err := t.applyToggle(i, j, inserting); err != nil {
		return false, nil, err
	}

	return true, delta, nil
}

// proposeDyad draws (i,j) from the blended tie/no-tie distribution.
func (t *TNT) proposeDyad(r *rng.Source) (i, j int) {
	if t.g.NumEdges() > 0 && r.Float64() < t.TieProb {
		i, j, _ = t.g.RandomEdge(r)

		return i, j
	}

	return t.g.RandomDyad(r)
}

// hastingsLogRatio computes log(q(y->x)/q(x->y)) for the blended proposal:
//
//	q_state(d) = TieProb/max(nEdges,1) · [d is a tie in state] + (1-TieProb)/nDyads
//
// For an insertion (d a non-tie in x, a tie in y with nEdges(y)=nEdges(x)+1):
//
//	q_x(d) = (1-TieProb)/nDyads                      (only the no-tie branch can draw a non-tie)
//	q_y(d) = TieProb/nEdges(y) + (1-TieProb)/nDyads
//
// For a removal (d a tie in x, a non-tie in y), the roles invert.
//
// On an empty state proposeDyad skips the tie branch, so there
// q_state(d) = 1/nDyads.
func (t *TNT) hastingsLogRatio(inserting bool) float64 {
	nDyads := float64(t.g.NumDyads())
	noTieTerm := (1 - t.TieProb) / nDyads

	var qx, qy float64
	if inserting {
		nEdgesY := float64(t.g.NumEdges() + 1)
		qx = noTieTerm
		if t.g.NumEdges() == 0 {
			qx = 1 / nDyads
		}
		qy = t.TieProb/nEdgesY + noTieTerm
	} else {
		nEdgesX := float64(t.g.NumEdges())
		qx = t.TieProb/nEdgesX + noTieTerm
		qy = noTieTerm
		if t.g.NumEdges() == 1 {
			qy = 1 / nDyads
		}
	}

	return math.Log(qy) - math.Log(qx)
}
