package roster

import "errors"

var (
	// ErrInputNotFound indicates a declared input location does not exist
	// or is unreadable.
	ErrInputNotFound = errors.New("roster: input not found")

	// ErrMalformedInput indicates input content does not parse as the
	// expected list of records.
	ErrMalformedInput = errors.New("roster: malformed input")
)
