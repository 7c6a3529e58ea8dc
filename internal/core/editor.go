// internal/core/editor.go
package core

import (
	"errors"
	"fmt"

	"github.com/bethropolis/kite/internal/buffer"
	"github.com/bethropolis/kite/internal/core/clipboard"
	"github.com/bethropolis/kite/internal/core/cursor"
	"github.com/bethropolis/kite/internal/core/find"
	"github.com/bethropolis/kite/internal/event"
	"github.com/bethropolis/kite/internal/logger"
	"github.com/bethropolis/kite/internal/types"
	"github.com/bethropolis/kite/internal/utils"
)

// StatusBarHeight is the number of screen rows below the text area.
const StatusBarHeight = 1

// Editor is the editing context: one document, its cursor and viewport,
// an optional search session and the clipboard. Every editing operation
// goes through it, so several editors can live side by side in tests.
type Editor struct {
	doc          *buffer.Document
	cursor       *cursor.Manager
	search       *find.Manager
	clipboard    *clipboard.Manager
	eventManager *event.Manager
	tabWidth     int
}

// NewEditor creates an editor over doc with the cursor at the start.
func NewEditor(doc *buffer.Document, tabWidth int) *Editor {
	if doc == nil {
		doc = buffer.New()
	}
	if tabWidth <= 0 {
		tabWidth = utils.DefaultTabWidth
	}
	e := &Editor{
		doc:       doc,
		tabWidth:  tabWidth,
		clipboard: clipboard.NewManager(false),
	}
	e.cursor = cursor.NewManager(doc, tabWidth)
	e.search = find.NewManager(doc, e.cursor)
	return e
}

// SetEventManager sets the bus used to announce changes.
func (e *Editor) SetEventManager(mgr *event.Manager) { e.eventManager = mgr }

// SetClipboard replaces the clipboard, e.g. with one backed by the OS.
func (e *Editor) SetClipboard(c *clipboard.Manager) { e.clipboard = c }

// --- Accessors ---

func (e *Editor) GetBuffer() *buffer.Document     { return e.doc }
func (e *Editor) GetCursor() types.Position       { return e.cursor.GetPosition() }
func (e *Editor) CursorManager() *cursor.Manager  { return e.cursor }
func (e *Editor) GetEventManager() *event.Manager { return e.eventManager }
func (e *Editor) TabWidth() int                   { return e.tabWidth }

// SetCursor moves the cursor, clamped to the document.
func (e *Editor) SetCursor(pos types.Position) {
	e.cursor.SetPosition(pos)
	e.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: e.cursor.GetPosition()})
}

// SetViewSize takes the full screen size; the status bar rows are removed.
func (e *Editor) SetViewSize(width, height int) {
	e.cursor.SetViewSize(width, max(height-StatusBarHeight, 0))
}

// GetViewport returns the first visible row and display column.
func (e *Editor) GetViewport() (int, int) { return e.cursor.Viewport() }

// ScreenCursor returns the cursor cell relative to the text area.
func (e *Editor) ScreenCursor() (x, y int) { return e.cursor.ScreenPosition() }

// ReplaceDocument swaps in a newly loaded document. An open search is
// cancelled first.
func (e *Editor) ReplaceDocument(doc *buffer.Document) {
	e.search.Cancel()
	e.doc = doc
	e.cursor.SetDocument(doc)
	e.cursor.SetPosition(types.Position{})
	e.search = find.NewManager(doc, e.cursor)
	e.eventManager.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{
		FilePath: doc.FilePath(),
		Language: doc.Language().Name,
	})
}

// --- Saving ---

// SaveBuffer writes the document to its own path.
func (e *Editor) SaveBuffer() error {
	return e.SaveAs("")
}

// SaveAs writes the document to path, or to its own path when path is
// empty. buffer.ErrNoFilePath tells the caller to ask for a name.
func (e *Editor) SaveAs(path string) error {
	if err := e.doc.Save(path); err != nil {
		if errors.Is(err, buffer.ErrNoFilePath) {
			return err
		}
		return fmt.Errorf("save: %w", err)
	}
	logger.Infof("Saved %s", e.doc.FilePath())
	e.eventManager.Dispatch(event.TypeBufferSaved, event.BufferSavedData{
		FilePath: e.doc.FilePath(),
		Language: e.doc.Language().Name,
	})
	return nil
}
