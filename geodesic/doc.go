// Package geodesic precomputes all-pairs shortest-path distances over a
// static covariate network and exposes them as a changestat.DyadicCovariate,
// the "geodesic distance" dyadic term spec.md §4.2 names as a placeholder
// ("implementer may stub if not in the input model").
//
// Unlike the ERGM graph itself, the covariate network is fixed for the
// lifetime of a run (it is not the graph the sampler toggles edges on), so
// its distances are computed once, up front, rather than incrementally: one
// breadth-first search per node, since the covariate network carries no
// weights. The walker here mirrors the queue/visited/depth-map shape of a
// classic unweighted-shortest-path BFS, adapted to the package's plain int
// node ids instead of string vertex handles.
package geodesic
