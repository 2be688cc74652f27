package changestat

import "github.com/katalvlaran/ergmee/graph"

// DyadicCovariate sums an externally supplied pairwise covariate (e.g.
// geographic distance, prior tie strength) over edges/arcs. The covariate
// is not a vertex attribute, so it is not stored on graph.Graph; the caller
// supplies a lookup closure at model-build time (the CLI's wiring package
// builds one from package geodesic), keyed by the two endpoint ids in the
// direction the edge/arc was proposed.
type DyadicCovariate struct {
	AttrName string
	Lookup   func(i, j int) float64
}

func (s DyadicCovariate) Name() string  { return "DyadicCovariate(" + s.AttrName + ")" }
func (DyadicCovariate) Kind() ParamKind { return KindDyadic }
func (s DyadicCovariate) Delta(g *graph.Graph, i, j int) float64 {
	if s.Lookup == nil {
		return 0
	}

	return s.Lookup(i, j)
}
