// internal/buffer/row.go
package buffer

import (
	"fmt"
	"strings"

	"github.com/bethropolis/kite/internal/highlighter"
	"github.com/bethropolis/kite/internal/types"
	"github.com/bethropolis/kite/internal/utils"
)

// Row is one line of text held as grapheme clusters, with one highlight
// tag per cluster. Mutations reset the tags to TagNone; the Document
// re-highlights the row afterwards.
type Row struct {
	chars []string
	tags  []types.Tag
	state highlighter.State // Carry-out of the last highlight pass
}

// NewRow creates an un-highlighted row from text. text must not contain '\n'.
func NewRow(text string) *Row {
	r := &Row{}
	r.setText(text)
	return r
}

// setText re-segments text into clusters and clears the tags.
func (r *Row) setText(text string) {
	r.chars = utils.SplitGraphemes(text)
	r.tags = make([]types.Tag, len(r.chars))
	r.state = highlighter.State{}
}

// Len returns the number of characters.
func (r *Row) Len() int { return len(r.chars) }

// String returns the row text.
func (r *Row) String() string { return strings.Join(r.chars, "") }

// Chars returns the clusters. The slice is owned by the row; do not modify it.
func (r *Row) Chars() []string { return r.chars }

// Tags returns the highlight tags, parallel to Chars.
func (r *Row) Tags() []types.Tag { return r.tags }

// State returns the highlighter state recorded by the last highlight pass.
func (r *Row) State() highlighter.State { return r.state }

func (r *Row) checkIndex(idx, limit int) error {
	if idx < 0 || idx > limit {
		return fmt.Errorf("index %d, row length %d: %w", idx, len(r.chars), types.ErrOutOfBounds)
	}
	return nil
}

// Insert inserts ch before character idx and returns the index just past
// the inserted text. ch may merge with its neighbours into one cluster
// (a combining mark joins the character before it).
func (r *Row) Insert(idx int, ch string) (int, error) {
	if err := r.checkIndex(idx, len(r.chars)); err != nil {
		return idx, err
	}
	head := strings.Join(r.chars[:idx], "")
	r.setText(head + ch + strings.Join(r.chars[idx:], ""))
	return utils.CharCountBefore(r.chars, len(head)+len(ch)), nil
}

// Delete removes character idx.
func (r *Row) Delete(idx int) error {
	if err := r.checkIndex(idx, len(r.chars)-1); err != nil {
		return err
	}
	r.setText(strings.Join(r.chars[:idx], "") + strings.Join(r.chars[idx+1:], ""))
	return nil
}

// Append moves the text of other onto the end of r. other is left empty.
func (r *Row) Append(other *Row) {
	r.setText(r.String() + other.String())
	other.setText("")
}

// Split returns two new rows holding the characters before and from idx.
// r itself is not modified.
func (r *Row) Split(idx int) (left, right *Row, err error) {
	if err := r.checkIndex(idx, len(r.chars)); err != nil {
		return nil, nil, err
	}
	return NewRow(strings.Join(r.chars[:idx], "")), NewRow(strings.Join(r.chars[idx:], "")), nil
}

// --- Highlight storage ---

// applyTags stores a highlight result. len(tags) must equal r.Len().
func (r *Row) applyTags(tags []types.Tag, state highlighter.State) {
	r.tags = tags
	r.state = state
}

// overlay sets tag on characters [start, start+n).
func (r *Row) overlay(start, n int, tag types.Tag) {
	for i := start; i < start+n && i < len(r.tags); i++ {
		if i >= 0 {
			r.tags[i] = tag
		}
	}
}

// --- Searching ---

// offsets returns the byte offset of every character plus the total length.
func (r *Row) offsets() []int {
	offs := make([]int, len(r.chars)+1)
	for i, ch := range r.chars {
		offs[i+1] = offs[i] + len(ch)
	}
	return offs
}

// Find looks for query starting on a character boundary. Forward searches
// match starts in [from, Len()); backward searches match starts in [0, from)
// and return the closest one. It returns -1 when there is no match.
func (r *Row) Find(query string, from int, forward bool) int {
	if query == "" {
		return -1
	}
	text := r.String()
	offs := r.offsets()
	if forward {
		for i := max(from, 0); i < len(r.chars); i++ {
			if strings.HasPrefix(text[offs[i]:], query) {
				return i
			}
		}
		return -1
	}
	for i := min(from, len(r.chars)) - 1; i >= 0; i-- {
		if strings.HasPrefix(text[offs[i]:], query) {
			return i
		}
	}
	return -1
}

// Matches returns the start of every non-overlapping occurrence of query.
func (r *Row) Matches(query string) []int {
	var starts []int
	for i := r.Find(query, 0, true); i >= 0; i = r.Find(query, i+r.MatchLen(i, query), true) {
		starts = append(starts, i)
	}
	return starts
}

// MatchLen returns how many characters a match of query starting at
// character start spans. A match ending inside a cluster covers the cluster.
func (r *Row) MatchLen(start int, query string) int {
	if start < 0 || start >= len(r.chars) {
		return 0
	}
	end := utils.CharIndexToByteOffset(r.chars, start) + len(query)
	return max(utils.CharCountBefore(r.chars, end)-start, 1)
}
