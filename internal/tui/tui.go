// internal/tui/tui.go
package tui

import (
	"fmt"

	"github.com/bethropolis/kite/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// TUI manages the terminal screen using tcell.
type TUI struct {
	screen tcell.Screen
}

// New creates and initializes a terminal screen.
func New(th *theme.Theme) (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return NewWithScreen(s, th)
}

// NewWithScreen wraps an existing screen, e.g. a tcell.SimulationScreen.
func NewWithScreen(s tcell.Screen, th *theme.Theme) (*TUI, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	t := &TUI{screen: s}
	t.SetTheme(th)
	return t, nil
}

// SetTheme sets the screen background to the theme's default style.
func (t *TUI) SetTheme(th *theme.Theme) {
	if th != nil {
		t.screen.SetStyle(th.GetStyle(theme.StyleDefault))
	}
}

// Close finalizes the tcell screen.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

func (t *TUI) PollEvent() tcell.Event { return t.screen.PollEvent() }
func (t *TUI) Clear()                 { t.screen.Clear() }
func (t *TUI) Show()                  { t.screen.Show() }
func (t *TUI) Sync()                  { t.screen.Sync() }
func (t *TUI) Size() (int, int)       { return t.screen.Size() }

// GetScreen provides direct access to the underlying screen.
func (t *TUI) GetScreen() tcell.Screen { return t.screen }
