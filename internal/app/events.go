package app

import (
	"github.com/bethropolis/kite/internal/event"
	"github.com/bethropolis/kite/internal/logger"
)

// subscribe wires app-level reactions to editor events. The status bar
// subscribes itself.
func (a *App) subscribe() {
	a.eventManager.Subscribe(event.TypeThemeChanged, a.handleThemeChanged)
	a.eventManager.Subscribe(event.TypeBufferLoaded, a.handleBufferLoaded)
	a.eventManager.Subscribe(event.TypeAppQuit, func(event.Event) bool {
		logger.Debugf("App: quit requested")
		return false
	})
}

func (a *App) handleThemeChanged(e event.Event) bool {
	if data, ok := e.Data.(event.ThemeChangedData); ok {
		logger.Infof("App: theme changed to %s", data.Name)
	}
	a.tuiManager.SetTheme(a.themeManager.Current())
	return false
}

// handleBufferLoaded resets the view for a newly loaded document.
func (a *App) handleBufferLoaded(e event.Event) bool {
	a.editor.SetViewSize(a.tuiManager.Size())
	return false
}
