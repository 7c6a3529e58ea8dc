// internal/tui/drawing.go
package tui

import (
	"github.com/bethropolis/kite/internal/buffer"
	"github.com/bethropolis/kite/internal/core"
	"github.com/bethropolis/kite/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// DrawBuffer paints the text area: every visible row cell by cell in the
// style of its tag, scrolled by the viewport. Rows past the end of the
// document show a tilde.
func DrawBuffer(t *TUI, editor *core.Editor, th *theme.Theme) {
	if th == nil {
		th = theme.KiteDark
	}
	width, height := t.Size()
	viewHeight := height - core.StatusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	defaultStyle := th.GetStyle(theme.StyleDefault)
	tildeStyle := th.GetStyle(theme.StyleTilde)
	rowOffset, colOffset := editor.GetViewport()
	rows := editor.GetBuffer().VisibleRows(rowOffset, viewHeight, editor.TabWidth())

	for y := 0; y < viewHeight; y++ {
		for x := 0; x < width; x++ {
			t.screen.SetContent(x, y, ' ', nil, defaultStyle)
		}
		if y >= len(rows) {
			t.screen.SetContent(0, y, '~', nil, tildeStyle)
			continue
		}
		drawRow(t.screen, rows[y], y, colOffset, width, th)
	}
}

// drawRow paints cells overlapping display columns [colOffset,
// colOffset+width). A wide glyph cut by either edge becomes spaces.
func drawRow(screen tcell.Screen, row buffer.RenderedRow, y, colOffset, width int, th *theme.Theme) {
	for _, cell := range row.Cells {
		start := cell.Col - colOffset
		end := start + cell.Width
		if end <= 0 {
			continue
		}
		if start >= width {
			break
		}
		style := th.TagStyle(cell.Tag)

		runes := []rune(cell.Text)
		clipped := start < 0 || end > width
		if len(runes) == 0 || runes[0] == ' ' || (clipped && cell.Width > 1) {
			for x := max(start, 0); x < min(end, width); x++ {
				screen.SetContent(x, y, ' ', nil, style)
			}
			continue
		}
		screen.SetContent(start, y, runes[0], runes[1:], style)
	}
}

// DrawCursor shows the terminal cursor at the editor cursor, or hides it
// when the cursor is outside the text area.
func DrawCursor(t *TUI, editor *core.Editor) {
	width, height := t.Size()
	x, y := editor.ScreenCursor()
	if x < 0 || x >= width || y < 0 || y >= height-core.StatusBarHeight {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(x, y)
}

// DrawPromptCursor places the cursor on the status bar row.
func DrawPromptCursor(t *TUI, x int) {
	_, height := t.Size()
	t.screen.ShowCursor(x, height-1)
}
