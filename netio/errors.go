package netio

import "errors"

var (
	// ErrMissingHeader is returned when a Pajek file lacks a "*vertices"
	// header line.
	ErrMissingHeader = errors.New("netio: missing *vertices header")
	// ErrMalformedHeader is returned when the header line cannot be parsed.
	ErrMalformedHeader = errors.New("netio: malformed *vertices header")
	// ErrMalformedRow is returned when an edge/arc/attribute row has the
	// wrong number of fields or non-numeric content.
	ErrMalformedRow = errors.New("netio: malformed row")
)
