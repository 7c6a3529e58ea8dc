// internal/buffer/document.go
package buffer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bethropolis/kite/internal/highlighter"
	"github.com/bethropolis/kite/internal/highlighter/lang"
	"github.com/bethropolis/kite/internal/logger"
	"github.com/bethropolis/kite/internal/types"
	"github.com/bethropolis/kite/internal/utils"
)

// Document is an ordered list of rows that always holds at least one row.
// Every structural edit re-highlights exactly the rows it touched.
type Document struct {
	rows            []*Row
	language        *lang.Language
	filePath        string
	modified        bool
	trailingNewline bool // Written back on save
}

// New creates an empty document of plain text.
func New() *Document {
	return FromLines(nil, lang.Plain)
}

// FromLines builds a highlighted document. An empty slice gives one empty row.
func FromLines(lines []string, language *lang.Language) *Document {
	if language == nil {
		language = lang.Plain
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	d := &Document{
		rows:            make([]*Row, len(lines)),
		language:        language,
		trailingNewline: true,
	}
	for i, line := range lines {
		d.rows[i] = NewRow(line)
	}
	d.highlightAll()
	return d
}

// ToLines returns the text of every row. Tags are never part of the text.
func (d *Document) ToLines() []string {
	lines := make([]string, len(d.rows))
	for i, r := range d.rows {
		lines[i] = r.String()
	}
	return lines
}

// --- Accessors ---

func (d *Document) LineCount() int { return len(d.rows) }

// Row returns row i, or nil when i is out of range.
func (d *Document) Row(i int) *Row {
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	return d.rows[i]
}

// Chars returns the characters of row i, or nil when out of range.
func (d *Document) Chars(i int) []string {
	if r := d.Row(i); r != nil {
		return r.Chars()
	}
	return nil
}

// Line returns the text of row i.
func (d *Document) Line(i int) (string, error) {
	r := d.Row(i)
	if r == nil {
		return "", fmt.Errorf("line %d of %d: %w", i, len(d.rows), types.ErrOutOfBounds)
	}
	return r.String(), nil
}

func (d *Document) Language() *lang.Language { return d.language }
func (d *Document) FilePath() string         { return d.filePath }
func (d *Document) IsModified() bool         { return d.modified }

// SetFilePath binds the document to a path without touching the disk.
func (d *Document) SetFilePath(path string) { d.filePath = path }

// SetLanguage switches the grammar and re-highlights every row.
func (d *Document) SetLanguage(l *lang.Language) {
	if l == nil {
		l = lang.Plain
	}
	d.language = l
	d.highlightAll()
}

// --- Highlighting ---

func (d *Document) highlightAll() {
	for i := range d.rows {
		d.highlightRow(i)
	}
}

// highlightRow re-runs the highlighter on row i with the state of the row
// above. Nothing cascades to the rows below.
func (d *Document) highlightRow(i int) {
	var prev highlighter.State
	if i > 0 {
		prev = d.rows[i-1].State()
	}
	r := d.rows[i]
	tags, state := highlighter.Highlight(r.Chars(), &d.language.Options, prev)
	r.applyTags(tags, state)
}

// Rehighlight recomputes the tags of row i from scratch, dropping any
// search overlay on it.
func (d *Document) Rehighlight(i int) error {
	if d.Row(i) == nil {
		return fmt.Errorf("rehighlight line %d: %w", i, types.ErrOutOfBounds)
	}
	d.highlightRow(i)
	return nil
}

// OverlayMatches re-highlights row i and paints every occurrence of query
// with TagMatch and the occurrence starting at focus with TagPrimaryMatch.
func (d *Document) OverlayMatches(i int, query string, focus int) error {
	if err := d.Rehighlight(i); err != nil {
		return err
	}
	r := d.rows[i]
	for _, start := range r.Matches(query) {
		r.overlay(start, r.MatchLen(start, query), types.TagMatch)
	}
	if focus >= 0 && focus < r.Len() {
		r.overlay(focus, r.MatchLen(focus, query), types.TagPrimaryMatch)
	}
	return nil
}

// --- Edits ---

// checkPosition validates pos against the current rows. A column may sit
// one past the last character.
func (d *Document) checkPosition(pos types.Position) error {
	if pos.Line < 0 || pos.Line >= len(d.rows) {
		return fmt.Errorf("line %d of %d: %w", pos.Line, len(d.rows), types.ErrOutOfBounds)
	}
	if n := d.rows[pos.Line].Len(); pos.Col < 0 || pos.Col > n {
		return fmt.Errorf("column %d on line %d of length %d: %w", pos.Col, pos.Line, n, types.ErrOutOfBounds)
	}
	return nil
}

// InsertChar inserts one character at pos and returns the position just
// after it. A "\n" splits the row instead.
func (d *Document) InsertChar(pos types.Position, ch string) (types.Position, error) {
	if ch == "\n" {
		return d.InsertNewline(pos)
	}
	if err := d.checkPosition(pos); err != nil {
		return pos, fmt.Errorf("insert: %w", err)
	}
	col, err := d.rows[pos.Line].Insert(pos.Col, ch)
	if err != nil {
		return pos, fmt.Errorf("insert: %w", err)
	}
	d.highlightRow(pos.Line)
	d.modified = true
	return types.Position{Line: pos.Line, Col: col}, nil
}

// InsertText inserts text that may span several lines and returns the
// position after it.
func (d *Document) InsertText(pos types.Position, text string) (types.Position, error) {
	if err := d.checkPosition(pos); err != nil {
		return pos, fmt.Errorf("insert text: %w", err)
	}
	for i, part := range strings.Split(text, "\n") {
		if i > 0 {
			pos, _ = d.InsertNewline(pos) // pos is valid by construction
		}
		if part == "" {
			continue
		}
		col, _ := d.rows[pos.Line].Insert(pos.Col, part)
		d.highlightRow(pos.Line)
		d.modified = true
		pos.Col = col
	}
	return pos, nil
}

// InsertNewline splits the row at pos. The cursor goes to the start of
// the new row.
func (d *Document) InsertNewline(pos types.Position) (types.Position, error) {
	if err := d.checkPosition(pos); err != nil {
		return pos, fmt.Errorf("newline: %w", err)
	}
	left, right, err := d.rows[pos.Line].Split(pos.Col)
	if err != nil {
		return pos, fmt.Errorf("newline: %w", err)
	}
	d.rows[pos.Line] = left
	d.rows = slices.Insert(d.rows, pos.Line+1, right)
	d.highlightRow(pos.Line)
	d.highlightRow(pos.Line + 1)
	d.modified = true
	logger.DebugTagf("edit", "Split line %d at %d", pos.Line, pos.Col)
	return types.Position{Line: pos.Line + 1, Col: 0}, nil
}

// InsertLine inserts a new row with text before row idx. idx may equal
// LineCount to append.
func (d *Document) InsertLine(idx int, text string) error {
	if idx < 0 || idx > len(d.rows) {
		return fmt.Errorf("insert line %d of %d: %w", idx, len(d.rows), types.ErrOutOfBounds)
	}
	text, _, _ = strings.Cut(text, "\n")
	d.rows = slices.Insert(d.rows, idx, NewRow(text))
	d.highlightRow(idx)
	d.modified = true
	return nil
}

// DeleteChar removes the character before pos (Backspace). At the start
// of a row it joins the row onto the previous one. At (0,0) it does nothing.
func (d *Document) DeleteChar(pos types.Position) (types.Position, error) {
	if err := d.checkPosition(pos); err != nil {
		return pos, fmt.Errorf("delete: %w", err)
	}
	switch {
	case pos.Col > 0:
		if err := d.rows[pos.Line].Delete(pos.Col - 1); err != nil {
			return pos, fmt.Errorf("delete: %w", err)
		}
		d.highlightRow(pos.Line)
		d.modified = true
		return types.Position{Line: pos.Line, Col: pos.Col - 1}, nil
	case pos.Line > 0:
		return d.joinWithNext(pos.Line - 1), nil
	default:
		return pos, nil
	}
}

// DeleteForward removes the character at pos (Delete). At the end of a
// row it joins the next row onto it.
func (d *Document) DeleteForward(pos types.Position) (types.Position, error) {
	if err := d.checkPosition(pos); err != nil {
		return pos, fmt.Errorf("delete forward: %w", err)
	}
	r := d.rows[pos.Line]
	switch {
	case pos.Col < r.Len():
		if err := r.Delete(pos.Col); err != nil {
			return pos, fmt.Errorf("delete forward: %w", err)
		}
		d.highlightRow(pos.Line)
		d.modified = true
		return pos, nil
	case pos.Line+1 < len(d.rows):
		return d.joinWithNext(pos.Line), nil
	default:
		return pos, nil
	}
}

// joinWithNext appends row i+1 to row i, drops row i+1 and returns the
// join point.
func (d *Document) joinWithNext(i int) types.Position {
	upper, lower := d.rows[i], d.rows[i+1]
	joinByte := len(upper.String())
	upper.Append(lower)
	d.rows = slices.Delete(d.rows, i+1, i+2)
	d.highlightRow(i)
	d.modified = true
	logger.DebugTagf("edit", "Joined line %d onto %d", i+1, i)
	return types.Position{Line: i, Col: utils.CharCountBefore(upper.Chars(), joinByte)}
}
