package graph

// TwoPathStore is the runtime-selectable representation of a two-path
// count cache over node pairs (design note: the build-time
// no-cache/dense/hash compile flag of the originating implementation is a
// runtime strategy object here, selected per Graph at construction time).
//
// Get(i,j) returns the exact two-path count between i and j; Add adjusts
// the count by delta. Symmetric stores (undirected/bipartite/shared-in/
// shared-out flavours) treat (i,j) and (j,i) as the same entry; the
// asymmetric store (the directed "mixed" flavour, where a->k->b and
// b->k->a are different paths) keeps them separate. A count of zero is
// represented by absence in the hash-table implementation, by construction
// matching spec.md §3's "zero entries absent" invariant.
type TwoPathStore interface {
	// Get returns the two-path count between rowIdx and colIdx.
	Get(rowIdx, colIdx int) int
	// Add adjusts the count for (rowIdx, colIdx) by delta (may be negative).
	Add(rowIdx, colIdx int, delta int)
	// Enabled reports whether Get is O(1); when false, callers must fall
	// back to a direct O(deg) recount instead of calling Get.
	Enabled() bool
}

// newTwoPathStore builds a store of the requested kind. symmetric selects
// whether (i,j) and (j,i) are the same logical entry.
func newTwoPathStore(kind CacheKind, rows, cols int, symmetric bool) TwoPathStore {
	switch kind {
	case CacheDense:
		return newDenseTwoPathStore(rows, cols, symmetric)
	case CacheHash:
		return newHashTwoPathStore(symmetric)
	default:
		return noCacheStore{}
	}
}

// noCacheStore disables the two-path cache entirely. Get/Add are no-ops;
// TwoPath computation falls back to a direct recount (see graph.TwoPath).
type noCacheStore struct{}

func (noCacheStore) Get(int, int) int  { return 0 }
func (noCacheStore) Add(int, int, int) {}
func (noCacheStore) Enabled() bool     { return false }

// denseTwoPathStore stores every pair's count in a flat row-major slice.
// When symmetric, Add mirrors the update into (j,i) as well.
type denseTwoPathStore struct {
	rows, cols int
	symmetric  bool
	counts     []int
}

func newDenseTwoPathStore(rows, cols int, symmetric bool) *denseTwoPathStore {
	return &denseTwoPathStore{rows: rows, cols: cols, symmetric: symmetric, counts: make([]int, rows*cols)}
}

func (d *denseTwoPathStore) idx(i, j int) int { return i*d.cols + j }

func (d *denseTwoPathStore) Get(i, j int) int {
	return d.counts[d.idx(i, j)]
}

func (d *denseTwoPathStore) Add(i, j int, delta int) {
	d.counts[d.idx(i, j)] += delta
	if d.symmetric && i != j {
		d.counts[d.idx(j, i)] += delta
	}
}

func (d *denseTwoPathStore) Enabled() bool { return true }

// hashTwoPathStore stores only non-zero counts. When symmetric, keys are
// canonicalised unordered pairs; otherwise the raw ordered (i,j) is used.
type hashTwoPathStore struct {
	symmetric bool
	counts    map[dyad]int
}

func newHashTwoPathStore(symmetric bool) *hashTwoPathStore {
	return &hashTwoPathStore{symmetric: symmetric, counts: make(map[dyad]int)}
}

func (h *hashTwoPathStore) key(i, j int) dyad {
	if h.symmetric {
		return canonical(i, j)
	}

	return dyad{i, j}
}

func (h *hashTwoPathStore) Get(i, j int) int {
	return h.counts[h.key(i, j)]
}

func (h *hashTwoPathStore) Add(i, j int, delta int) {
	key := h.key(i, j)
	v := h.counts[key] + delta
	if v == 0 {
		delete(h.counts, key)
	} else {
		h.counts[key] = v
	}
}

func (h *hashTwoPathStore) Enabled() bool { return true }
