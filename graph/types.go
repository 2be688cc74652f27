package graph

// CacheKind selects the runtime representation of the two-path cache. All
// three kinds satisfy the same TwoPathStore trait, so change-statistic code
// never branches on representation (the build-time compile flag of the
// originating C implementation is a runtime choice here).
type CacheKind int

const (
	// CacheNone disables the two-path cache; TwoPath falls back to a direct
	// count of the common entries of the two nodes' neighbour lists.
	CacheNone CacheKind = iota
	// CacheDense stores counts in a 2-D slice, O(1) lookup, O(n^2) memory.
	CacheDense
	// CacheHash stores counts in a map keyed by canonicalised pair, O(1)
	// average lookup, memory proportional to the number of non-zero pairs.
	CacheHash
)

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithDirected marks the graph as directed. Default is undirected.
func WithDirected() Option {
	return func(g *Graph) { g.directed = true }
}

// WithBipartite marks the graph as bipartite with nA nodes of type A (ids
// [0,nA)) and the remainder of type B (ids [nA,N)).
func WithBipartite(nA int) Option {
	return func(g *Graph) {
		g.bipartite = true
		g.nA = nA
	}
}

// WithCache selects the two-path cache representation. Default is
// CacheHash, favouring sparse large graphs over a pre-sized dense array.
func WithCache(kind CacheKind) Option {
	return func(g *Graph) { g.cacheKind = kind }
}

// WithCitationTerms enables the citation-ERGM variant: each node carries an
// integer time-period index, and arcs are restricted to flow from a later
// or equal term to an earlier one (from.term >= to.term).
func WithCitationTerms(terms []int) Option {
	return func(g *Graph) { g.term = terms }
}

// Graph is the in-memory ERGM graph store: node set, directed/undirected or
// bipartite adjacency, vertex attributes, and the two-path cache.
//
// Graph is single-owner: exactly one sampler loop mutates one Graph at a
// time (spec §5 "Intra-estimator" concurrency model). It carries no
// synchronisation of its own — callers needing concurrent access must
// provide their own, which no component in this module does.
type Graph struct {
	n         int
	directed  bool
	bipartite bool
	nA        int // valid only if bipartite

	cacheKind CacheKind

	// Undirected adjacency: neighbours[i] is i's neighbour list in
	// insertion order (not sorted by value).
	neighbours [][]int
	degree     []int

	// Directed adjacency.
	out    [][]int
	in     [][]int
	outDeg []int
	inDeg  []int

	// edgeSet provides O(1) average edge-existence testing independent of
	// neighbour-list length.
	edgeSet  map[dyad]struct{}
	numEdges int

	// edgeList and edgePos together give O(1) uniform-random-edge selection
	// (sampler.TNT's tie-proposal step) and O(1) removal via swap-to-end,
	// independent of edgeSet's map (which is unordered and not indexable).
	edgeList [][2]int
	edgePos  map[dyad]int

	// Two-path caches. Exactly the subset relevant to the graph's
	// directedness/bipartiteness is non-nil.
	twoPathUndirected TwoPathStore // non-bipartite undirected
	twoPathA          TwoPathStore // bipartite, pairs within partition A
	twoPathB          TwoPathStore // bipartite, pairs within partition B
	twoPathMixed      TwoPathStore // directed: mixed in/out two-paths
	twoPathIn         TwoPathStore // directed: shared in-neighbours
	twoPathOut        TwoPathStore // directed: shared out-neighbours

	attrs *attributeSet

	// Citation-ERGM: term[i] is node i's time-period; nil when unused.
	term         []int
	latestTerm   int
	citationMode bool
}

// dyad is a canonical edge key: for undirected graphs (lo,hi) with lo<hi;
// for directed graphs (from,to) verbatim.
type dyad struct{ a, b int }

// New allocates an empty Graph on n nodes with the given options applied in
// order. Complexity: O(n) (or O(n^2) if WithCache(CacheDense) is chosen).
func New(n int, opts ...Option) *Graph {
	g := &Graph{n: n, cacheKind: CacheHash}
	for _, opt := range opts {
		opt(g)
	}

	g.attrs = newAttributeSet(n)
	g.edgeSet = make(map[dyad]struct{})
	g.edgePos = make(map[dyad]int)

	if g.directed {
		g.out = make([][]int, n)
		g.in = make([][]int, n)
		g.outDeg = make([]int, n)
		g.inDeg = make([]int, n)
		g.twoPathMixed = newTwoPathStore(g.cacheKind, n, n, false)
		g.twoPathIn = newTwoPathStore(g.cacheKind, n, n, true)
		g.twoPathOut = newTwoPathStore(g.cacheKind, n, n, true)
	} else {
		g.neighbours = make([][]int, n)
		g.degree = make([]int, n)
		if g.bipartite {
			nB := n - g.nA
			g.twoPathA = newTwoPathStore(g.cacheKind, g.nA, g.nA, true)
			g.twoPathB = newTwoPathStore(g.cacheKind, nB, nB, true)
		} else {
			g.twoPathUndirected = newTwoPathStore(g.cacheKind, n, n, true)
		}
	}

	if g.term != nil {
		g.citationMode = true
		for _, t := range g.term {
			if t > g.latestTerm {
				g.latestTerm = t
			}
		}
	}

	return g
}

// N returns the number of nodes.
func (g *Graph) N() int { return g.n }

// NA returns the size of bipartite partition A (0 if the graph is not
// bipartite).
func (g *Graph) NA() int { return g.nA }

// Directed reports whether the graph is directed.
func (g *Graph) Directed() bool { return g.directed }

// Bipartite reports whether the graph is bipartite.
func (g *Graph) Bipartite() bool { return g.bipartite }

// NumEdges returns the number of distinct edges/arcs currently present.
func (g *Graph) NumEdges() int { return g.numEdges }

// CitationMode reports whether per-node term indices were supplied.
func (g *Graph) CitationMode() bool { return g.citationMode }

// Term returns node i's citation time-period, or 0 if citation mode is off.
func (g *Graph) Term(i int) int {
	if !g.citationMode {
		return 0
	}

	return g.term[i]
}

// LatestTerm returns the maximum term index across all nodes.
func (g *Graph) LatestTerm() int { return g.latestTerm }

// InA reports whether node i is in bipartite partition A.
func (g *Graph) InA(i int) bool { return i < g.nA }

func canonical(i, j int) dyad {
	if i < j {
		return dyad{i, j}
	}

	return dyad{j, i}
}
