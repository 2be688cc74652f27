package changestat

import "github.com/katalvlaran/ergmee/graph"

// ParamKind classifies a Statistic for reporting and registry purposes; it
// plays no role in Delta's arithmetic.
type ParamKind int

const (
	KindStructural ParamKind = iota
	KindBinaryAttr
	KindCategoricalAttr
	KindContinuousAttr
	KindDyadic
)

// Statistic is one term of the ERGM linear predictor. A sum type per family
// (rather than a shared struct with a function pointer field) keeps each
// term's parameters in its own named type, so a misconfigured term is a
// compile error instead of a nil-pointer panic at sample time.
type Statistic interface {
	// Name reports the term's display name, e.g. "AltKTriangles".
	Name() string
	// Kind reports the statistic family, for registry/report grouping.
	Kind() ParamKind
	// Delta returns the change in this statistic's value that inserting
	// edge/arc i->j would cause, evaluated against g *before* the toggle is
	// applied. Delta for removing the same edge is -Delta for inserting it;
	// callers negate as needed rather than calling a separate method.
	Delta(g *graph.Graph, i, j int) float64
}

// comb returns C(n,k), the binomial coefficient, as a float64. Returns 0 for
// k<0 or k>n (the empty count), matching the combinatorial convention used
// throughout the star/triangle statistics below.
func comb(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	if k > n-k {
		k = n - k
	}

	result := 1.0
	for i := 0; i < k; i++ {
		result *= float64(n-i) / float64(i+1)
	}

	return result
}

// altWeight computes S(d) = 1 - (-1/lambda)^d, the per-node/per-edge term
// shared by every alternating-* statistic below (design note: this closed
// form reproduces the named seed-scenario values exactly, see
// changestat_test.go).
func altWeight(lambda float64, d int) float64 {
	return 1 - pow(-1/lambda, d)
}

// pow computes base^exp for a non-negative integer exponent without pulling
// in math.Pow's float-exponent generality (exp is always a small count).
func pow(base float64, exp int) float64 {
	result := 1.0
	for i := 0; i < exp; i++ {
		result *= base
	}

	return result
}

// commonNeighbours returns the undirected neighbours shared by i and j,
// iterating the shorter of the two neighbour lists and testing membership
// against the graph's edge-existence index. Used by the edge-indexed
// alternating-triangle statistic, which must visit each common neighbour
// once per toggle rather than recomputing the whole graph.
func commonNeighbours(g *graph.Graph, i, j int) []int {
	scan, other := g.Neighbours(i), j
	if len(g.Neighbours(j)) < len(scan) {
		scan, other = g.Neighbours(j), i
	}

	var out []int
	for _, k := range scan {
		if k != i && k != j && g.IsEdge(k, other) {
			out = append(out, k)
		}
	}

	return out
}
