// Package rng provides the deterministic, per-rank pseudo-random source used
// throughout the estimator, simulator, and sampler kernels.
//
// A single process (MPI "rank" in the original harness, a goroutine in the
// local harness.Run) owns exactly one *Source for its lifetime; *Source is
// not safe for concurrent use, matching math/rand.Rand's own contract.
// Independent streams (one per rank, or one per auxiliary use within a rank)
// are derived with Derive, which applies a SplitMix64-style avalanche mix so
// nearby seeds or stream IDs do not produce correlated sequences.
package rng
