package app

import (
	"github.com/bethropolis/kite/internal/logger"
	"github.com/bethropolis/kite/internal/tui"
)

// drawEditor clears the screen and redraws every component.
func (a *App) drawEditor() {
	th := a.themeManager.Current()
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	logger.DebugTagf("draw", "drawEditor: screen %dx%d", width, height)

	a.tuiManager.Clear()
	tui.DrawBuffer(a.tuiManager, a.editor, th)
	a.statusBar.Draw(screen, th, width, height)

	if x, ok := a.statusBar.PromptCursor(width); ok {
		tui.DrawPromptCursor(a.tuiManager, x)
	} else {
		tui.DrawCursor(a.tuiManager, a.editor)
	}
	a.tuiManager.Show()
}
