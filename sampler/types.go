package sampler

import (
	"math"

	"github.com/katalvlaran/ergmee/changestat"
	"github.com/katalvlaran/ergmee/graph"
	"github.com/katalvlaran/ergmee/rng"
)

// Sampler is the shared interface for every proposal kernel. Step proposes
// one dyad toggle, decides accept/reject via the Metropolis-Hastings rule,
// applies it to the graph if accepted, and reports what happened.
//
// delta is the realized change in each configured Statistic's value: all
// zero when accepted is false (the graph is unchanged), otherwise the
// signed per-statistic change actually applied (positive for an inserted
// edge's forward contribution, negated for a removed edge).
type Sampler interface {
	Step(r *rng.Source, theta []float64) (accepted bool, delta []float64, err error)
}

// Option configures a sampler at construction time.
type Option func(*common)

// WithFixedNodes marks the listed node ids as fixed: no proposal ever
// touches a dyad with a fixed endpoint (conditional ERGM estimation, spec
// §4.3).
func WithFixedNodes(fixed []bool) Option {
	return func(c *common) { c.fixed = fixed }
}

// common holds the state and proposal-restriction logic shared by Basic,
// TNT, and IFD so each kernel's Step implements only its own proposal
// distribution.
type common struct {
	g     *graph.Graph
	stats []changestat.Statistic
	fixed []bool
}

func newCommon(g *graph.Graph, stats []changestat.Statistic, opts []Option) common {
	c := common{g: g, stats: stats}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// restricted reports whether dyad (i,j) must never be proposed: either
// endpoint is fixed, or (for an insertion) the citation-ERGM term
// constraint rejects the arc outright.
func (c *common) restricted(i, j int, inserting bool) bool {
	if c.fixed != nil && (c.fixed[i] || c.fixed[j]) {
		return true
	}
	if inserting && c.g.CitationMode() && !c.g.CitationEligible(i, j) {
		return true
	}

	return false
}

// proposalDelta computes the signed change each configured statistic would
// undergo from toggling dyad (i,j), using the temporary-removal trick
// documented in doc.go when the dyad is currently an edge. The graph is
// returned to its original state before this function returns; the caller
// applies the real mutation only after the accept/reject decision.
func (c *common) proposalDelta(i, j int) (delta []float64, inserting bool) {
	delta = make([]float64, len(c.stats))
	inserting = !c.g.IsEdge(i, j)

	if inserting {
		for k, stat := range c.stats {
			delta[k] = stat.Delta(c.g, i, j)
		}

		return delta, true
	}

	// Removal: temporarily undo the edge so each Statistic sees the
	// pre-insertion state its Delta contract assumes, then restore it.
	if _, err := c.g.RemoveEdge(i, j); err != nil {
		panic(err) // i,j was confirmed an existing, in-range edge above
	}
	for k, stat := range c.stats {
		delta[k] = -stat.Delta(c.g, i, j)
	}
	if _, err := c.g.InsertEdge(i, j); err != nil {
		panic(err)
	}

	return delta, false
}

// applyToggle performs the real mutation once a proposal has been accepted.
func (c *common) applyToggle(i, j int, inserting bool) error {
	var err error
	if inserting {
		_, err = c.g.InsertEdge(i, j)
	} else {
		_, err = c.g.RemoveEdge(i, j)
	}

	return err
}

// dot computes theta·delta.
func dot(theta, delta []float64) float64 {
	total := 0.0
	for k := range delta {
		total += theta[k] * delta[k]
	}

	return total
}

// decide applies the Metropolis-Hastings rule to a combined log-odds (the
// statistic log-likelihood-ratio term plus any proposal-asymmetry Hastings
// correction): always accept when logOdds>=0, otherwise accept with
// probability exp(logOdds).
func decide(r *rng.Source, logOdds float64) bool {
	if logOdds >= 0 {
		return true
	}

	return math.Log(r.Float64()) < logOdds
}

func zeros(n int) []float64 { return make([]float64, n) }
