// Package simulate draws networks from a fixed-parameter ERGM: a burn-in
// block of discarded sampler steps, then repeated sample-interval blocks
// each followed by a network snapshot and a cumulative sufficient-statistics
// line. It shares the sampler.Sampler interface and rng.Source plumbing
// with package estimator, differing only in that theta is never updated.
package simulate
