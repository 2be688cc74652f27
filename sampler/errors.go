package sampler

import "errors"

// ErrThetaLength is returned when the theta vector passed to Step does not
// have one entry per configured Statistic.
var ErrThetaLength = errors.New("sampler: theta length does not match statistic count")

// ErrNoDyads is returned when a graph has no valid dyads left to propose
// (e.g. a 1-node graph), which would otherwise spin forever.
var ErrNoDyads = errors.New("sampler: graph has no proposable dyads")
