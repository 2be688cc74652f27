// Package model provides the static, case-insensitive term registry and the
// term-string parser that turn a configuration file's term list
// ("AltKTriangles(2.0)", "Activity(binAttr)", "EdgeCount") into a slice of
// changestat.Statistic values ready for the sampler/estimator/simulator.
//
// Registration follows a builder-style functional pattern: each family
// registers itself with Register, supplying a TermBuilder closure that
// knows how to parse its own argument list. Adding a new term is therefore
// a single call to Register, never a change to the parser.
package model
