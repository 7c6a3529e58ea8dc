// internal/types/position.go
package types

// Position is a cursor or text position within a document.
// Line is the 0-based row index.
// Col is the 0-based character index within the row, counted in grapheme
// clusters, never in bytes or display columns.
type Position struct {
	Line int
	Col  int // Grapheme index
}

