package estimator

import "errors"

// ErrNonFinite is returned when theta or dzA develops a NaN/Inf component.
// Per the non-retryable numerical-non-finiteness error kind, the estimator
// writes whatever trace lines it already has and stops; it does not try to
// recover or continue sampling from a poisoned state.
var ErrNonFinite = errors.New("estimator: theta or dzA is non-finite")
