package config

import "errors"

var (
	// ErrUnknownKey is returned for a "key = value" line whose key is not
	// in the recognised set of spec.md §6.
	ErrUnknownKey = errors.New("config: unknown key")
	// ErrMalformedLine is returned for a line that is neither a comment,
	// blank, a recognised block opener, nor a parsable "key = value" pair.
	ErrMalformedLine = errors.New("config: malformed line")
	// ErrBadValue is returned when a recognised key's value cannot be
	// parsed as the type that key requires (bool/int/float).
	ErrBadValue = errors.New("config: bad value")
	// ErrMissingRequiredKey is returned by Validate when the chosen
	// sampler/mode requires a key that was not set (e.g. numArcs under
	// useIFDsampler).
	ErrMissingRequiredKey = errors.New("config: missing required key")
	// ErrUnterminatedBlock is returned when a "{" block is never closed.
	ErrUnterminatedBlock = errors.New("config: unterminated block")
)
