package core

import (
	"fmt"
	"strings"

	"github.com/bethropolis/kite/internal/core/cursor"
	"github.com/bethropolis/kite/internal/core/find"
	"github.com/bethropolis/kite/internal/event"
	"github.com/bethropolis/kite/internal/logger"
	"github.com/bethropolis/kite/internal/types"
)

// --- Text operations ---

// applyEdit moves the cursor to the result of a successful edit and
// announces the change.
func (e *Editor) applyEdit(op string, pos types.Position, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	e.cursor.SetPosition(pos)
	logger.DebugTagf("core", "%s → cursor %+v", op, pos)
	e.eventManager.Dispatch(event.TypeBufferModified, event.BufferModifiedData{Position: pos})
	return nil
}

// InsertRune types r at the cursor.
func (e *Editor) InsertRune(r rune) error {
	pos, err := e.doc.InsertChar(e.cursor.GetPosition(), string(r))
	return e.applyEdit("insert rune", pos, err)
}

// InsertTab types a tab character.
func (e *Editor) InsertTab() error {
	return e.InsertRune('\t')
}

// InsertNewLine splits the row at the cursor.
func (e *Editor) InsertNewLine() error {
	pos, err := e.doc.InsertNewline(e.cursor.GetPosition())
	return e.applyEdit("insert newline", pos, err)
}

// DeleteBackward removes the character before the cursor, joining rows at
// column zero.
func (e *Editor) DeleteBackward() error {
	at := e.cursor.GetPosition()
	if at == (types.Position{}) {
		return nil // Start of document
	}
	pos, err := e.doc.DeleteChar(at)
	return e.applyEdit("delete backward", pos, err)
}

// DeleteForward removes the character under the cursor, joining the next
// row at the end of a row.
func (e *Editor) DeleteForward() error {
	at := e.cursor.GetPosition()
	if at.Line == e.doc.LineCount()-1 && at.Col >= len(e.doc.Chars(at.Line)) {
		return nil // End of document
	}
	pos, err := e.doc.DeleteForward(at)
	return e.applyEdit("delete forward", pos, err)
}

// --- Cursor movement ---

// MoveCursor applies one motion and announces the new position.
func (e *Editor) MoveCursor(mv cursor.Movement) {
	before := e.cursor.GetPosition()
	e.cursor.Move(mv)
	if after := e.cursor.GetPosition(); after != before {
		e.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: after})
	}
}

// --- Clipboard ---

// CopyLine copies the cursor row, with its newline, to the clipboard.
func (e *Editor) CopyLine() error {
	line, err := e.doc.Line(e.cursor.GetPosition().Line)
	if err != nil {
		return fmt.Errorf("copy line: %w", err)
	}
	e.clipboard.Copy(line + "\n")
	logger.Debugf("Copied line %d (%d bytes)", e.cursor.GetPosition().Line, len(line)+1)
	return nil
}

// Paste inserts the clipboard text at the cursor. Newlines split rows.
// It returns false when the clipboard is empty.
func (e *Editor) Paste() (bool, error) {
	text := strings.ReplaceAll(e.clipboard.Paste(), "\r\n", "\n")
	if text == "" {
		return false, nil
	}
	pos, err := e.doc.InsertText(e.cursor.GetPosition(), text)
	if err := e.applyEdit("paste", pos, err); err != nil {
		return false, err
	}
	return true, nil
}

// --- Search ---

// SearchState returns the state of the search machine.
func (e *Editor) SearchState() find.State { return e.search.State() }

// SearchQuery returns the query of the open search.
func (e *Editor) SearchQuery() string { return e.search.Query() }

// StartSearch opens a search session at the cursor.
func (e *Editor) StartSearch() {
	e.search.Open()
	e.eventManager.Dispatch(event.TypeSearchStarted, nil)
}

// UpdateSearch sets the query typed so far.
func (e *Editor) UpdateSearch(query string) error {
	return e.searchMoved(e.search.SetQuery(query))
}

// SearchForward and SearchBackward step between matches.
func (e *Editor) SearchForward() error  { return e.searchMoved(e.search.Forward()) }
func (e *Editor) SearchBackward() error { return e.searchMoved(e.search.Backward()) }

func (e *Editor) searchMoved(err error) error {
	if err == nil {
		e.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: e.cursor.GetPosition()})
	}
	return err
}

// EndSearch confirms the match or cancels back to the starting position.
func (e *Editor) EndSearch(confirm bool) {
	if !e.search.Active() {
		return
	}
	if confirm {
		e.search.Confirm()
	} else {
		e.search.Cancel()
	}
	pos := e.cursor.GetPosition()
	e.eventManager.Dispatch(event.TypeSearchEnded, event.SearchEndedData{Confirmed: confirm, Position: pos})
	e.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: pos})
}
