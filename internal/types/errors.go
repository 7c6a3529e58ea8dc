// internal/types/errors.go
package types

import "errors"

var (
	// ErrOutOfBounds is returned when a position or index lies outside the document or row.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrNoMatch is returned when a search cycle completes without finding the query.
	ErrNoMatch = errors.New("no match")
	// ErrInvalidBoundary is returned for a byte offset that falls inside a grapheme cluster.
	ErrInvalidBoundary = errors.New("offset is not on a character boundary")
)
