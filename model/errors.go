package model

import "errors"

// ErrUnknownTerm is returned when a term string names no registered term.
var ErrUnknownTerm = errors.New("model: unknown term")

// ErrMalformedTerm is returned when a term string cannot be parsed at all
// (unbalanced parentheses).
var ErrMalformedTerm = errors.New("model: malformed term string")

// ErrBadArgs is returned when a term's argument list has the wrong count or
// an argument fails to parse as the expected type.
var ErrBadArgs = errors.New("model: bad term arguments")

// ErrUnknownAttribute is returned when a term names a graph attribute that
// the graph does not carry.
var ErrUnknownAttribute = errors.New("model: unknown attribute")
