package changestat

import "errors"

// ErrUnknownAttribute names the case of a graph that does not carry the
// attribute a statistic was built against. Delta has no error result, so no
// function in this package returns it.
var ErrUnknownAttribute = errors.New("changestat: unknown attribute")

// ErrBadMode names the case of a statistic evaluated against a graph whose
// directedness/bipartiteness does not match what the statistic requires
// (e.g. Reciprocity on an undirected graph). No function in this package
// returns it.
var ErrBadMode = errors.New("changestat: statistic not valid for this graph mode")
