// internal/utils/columns.go
package utils

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bethropolis/kite/internal/types"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is used when a caller passes a non-positive tab width.
const DefaultTabWidth = 8

// ControlPlaceholder is drawn in place of control characters.
const ControlPlaceholder = "?"

// SplitGraphemes segments s into extended grapheme clusters.
func SplitGraphemes(s string) []string {
	if s == "" {
		return nil
	}
	chars := make([]string, 0, utf8.RuneCountInString(s))
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		chars = append(chars, gr.Str())
	}
	return chars
}

// IsControl reports whether a character should be drawn as the placeholder.
// Tabs are not control characters here; they expand.
func IsControl(ch string) bool {
	r, _ := utf8.DecodeRuneInString(ch)
	return r != '\t' && unicode.IsControl(r)
}

// CharWidth returns the number of display columns ch occupies when it
// starts at display column col. Every character takes at least one column.
func CharWidth(ch string, col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	if ch == "\t" {
		return tabWidth - col%tabWidth
	}
	if IsControl(ch) {
		return 1
	}
	if w := uniseg.StringWidth(ch); w > 0 {
		return w
	}
	return 1
}

// CharToColumn returns the display column at which character idx starts.
// An idx at or past the end gives the total width of the row.
func CharToColumn(chars []string, idx, tabWidth int) int {
	if idx > len(chars) {
		idx = len(chars)
	}
	col := 0
	for i := 0; i < idx; i++ {
		col += CharWidth(chars[i], col, tabWidth)
	}
	return col
}

// ColumnToChar returns the index of the character covering display column
// col. Negative columns give 0 and columns past the end give len(chars).
func ColumnToChar(chars []string, col, tabWidth int) int {
	if col <= 0 {
		return 0
	}
	start := 0
	for i, ch := range chars {
		end := start + CharWidth(ch, start, tabWidth)
		if col < end {
			return i
		}
		start = end
	}
	return len(chars)
}

// Width returns the total display width of chars.
func Width(chars []string, tabWidth int) int {
	return CharToColumn(chars, len(chars), tabWidth)
}

// Render returns the display text of chars[start:end]: tabs are expanded
// from the start of the row and control characters are replaced.
func Render(chars []string, start, end, tabWidth int) string {
	if start < 0 {
		start = 0
	}
	if end > len(chars) {
		end = len(chars)
	}
	if start >= end {
		return ""
	}
	var sb strings.Builder
	col := CharToColumn(chars, start, tabWidth)
	for _, ch := range chars[start:end] {
		w := CharWidth(ch, col, tabWidth)
		switch {
		case ch == "\t":
			sb.WriteString(strings.Repeat(" ", w))
		case IsControl(ch):
			sb.WriteString(ControlPlaceholder)
		default:
			sb.WriteString(ch)
		}
		col += w
	}
	return sb.String()
}

// CharIndexToByteOffset converts a character index to a byte offset in
// the joined text. Indexes past the end return the text length.
func CharIndexToByteOffset(chars []string, idx int) int {
	offset := 0
	for i := 0; i < idx && i < len(chars); i++ {
		offset += len(chars[i])
	}
	return offset
}

// ByteOffsetToCharIndex converts a byte offset to a character index.
// Offsets inside a cluster give ErrInvalidBoundary.
func ByteOffsetToCharIndex(chars []string, offset int) (int, error) {
	if offset < 0 {
		return 0, fmt.Errorf("byte offset %d: %w", offset, types.ErrOutOfBounds)
	}
	pos := 0
	for i, ch := range chars {
		if pos == offset {
			return i, nil
		}
		pos += len(ch)
		if offset < pos {
			return 0, fmt.Errorf("byte offset %d: %w", offset, types.ErrInvalidBoundary)
		}
	}
	if pos == offset {
		return len(chars), nil
	}
	return 0, fmt.Errorf("byte offset %d past end %d: %w", offset, pos, types.ErrOutOfBounds)
}

// CharCountBefore returns how many characters start before byte offset.
// For an offset inside a cluster this counts the containing cluster, so it
// maps the end of a byte span to the character index just past the span.
func CharCountBefore(chars []string, offset int) int {
	pos := 0
	for i, ch := range chars {
		if pos >= offset {
			return i
		}
		pos += len(ch)
	}
	return len(chars)
}
