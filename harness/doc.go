// Package harness is the in-process stand-in for the original MPI
// multi-run harness: it launches N goroutines, each owning its own rank
// index, PRNG stream, and output-file prefix, and runs an arbitrary
// per-rank function to completion.
//
// Per spec.md §5 ("no inter-rank communication during estimation"), one
// rank's failure never affects its siblings: Run captures each rank's
// error into its own slot rather than letting a failure cancel or even
// observably interrupt the others. Results are reported back to the
// caller (the harness's "off-line combination of results across runs")
// once every rank has finished.
package harness
