// internal/app/app.go
package app

import (
	"fmt"
	"time"

	"github.com/bethropolis/kite/internal/buffer"
	"github.com/bethropolis/kite/internal/config"
	"github.com/bethropolis/kite/internal/core"
	"github.com/bethropolis/kite/internal/core/clipboard"
	"github.com/bethropolis/kite/internal/event"
	"github.com/bethropolis/kite/internal/input"
	"github.com/bethropolis/kite/internal/logger"
	"github.com/bethropolis/kite/internal/modehandler"
	"github.com/bethropolis/kite/internal/statusbar"
	"github.com/bethropolis/kite/internal/theme"
	"github.com/bethropolis/kite/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// Options configures a new App.
type Options struct {
	Config    *config.Config
	FilePath  string       // File to open; "" starts an empty document
	Screen    tcell.Screen // nil opens the terminal
	ThemesDir string       // "" means theme.DefaultThemesDir()
}

// App owns the screen and wires the editor, input and status bar together.
// Key handling and drawing happen on the goroutine that calls Run; a
// helper goroutine only forwards terminal events.
type App struct {
	tuiManager   *tui.TUI
	editor       *core.Editor
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	modeHandler  *modehandler.ModeHandler
	themeManager *theme.Manager

	quit   chan struct{}
	events chan tcell.Event
}

// NewApp loads the file, sets up the screen and connects the components.
func NewApp(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	doc := buffer.New()
	if opts.FilePath != "" {
		loaded, err := buffer.Load(opts.FilePath)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", opts.FilePath, err)
		}
		doc = loaded
	}

	themesDir := opts.ThemesDir
	if themesDir == "" {
		themesDir = theme.DefaultThemesDir()
	}
	themeManager := theme.NewManager(themesDir)
	if err := themeManager.SetTheme(cfg.Editor.Theme); err != nil {
		logger.Warnf("%v, using %s", err, themeManager.Current().Name)
	}

	screen := opts.Screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("failed to create tcell screen: %w", err)
		}
		screen = s
	}
	tuiManager, err := tui.NewWithScreen(screen, themeManager.Current())
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	eventManager := event.NewManager()
	editor := core.NewEditor(doc, cfg.Editor.TabWidth)
	editor.SetEventManager(eventManager)
	editor.SetClipboard(clipboard.NewManager(cfg.Editor.SystemClipboard))

	statusBar := statusbar.New()
	statusBar.SetFileInfo(doc.FilePath(), doc.Language().Name, false)
	statusBar.SetEditorMode(modehandler.ModeEdit.String())
	statusBar.Subscribe(eventManager)

	quit := make(chan struct{})
	a := &App{
		tuiManager:   tuiManager,
		editor:       editor,
		statusBar:    statusBar,
		eventManager: eventManager,
		themeManager: themeManager,
		quit:         quit,
		events:       make(chan tcell.Event, 16),
		modeHandler: modehandler.New(modehandler.Config{
			Editor:         editor,
			InputProcessor: input.NewInputProcessor(),
			EventManager:   eventManager,
			StatusBar:      statusBar,
			QuitSignal:     quit,
		}),
	}
	a.modeHandler.SetThemeSwitcher(a)
	a.subscribe()

	editor.SetViewSize(tuiManager.Size())
	logger.Infof("Editor ready: %q (%s, %d lines)", doc.FilePath(), doc.Language().Name, doc.LineCount())
	return a, nil
}

// Run handles events until the user quits, then restores the terminal.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.pollEvents()

	a.eventManager.Dispatch(event.TypeAppReady, nil)
	a.statusBar.SetTemporaryMessage("%s %s | Ctrl-S save | Ctrl-F find | Ctrl-Q quit", config.AppName, config.Version)
	a.drawEditor()

	// Temporary messages expire without input, so redraw now and then.
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			if a.editor.GetBuffer().IsModified() {
				logger.Warnf("Exiting with unsaved changes")
			}
			logger.Infof("Exiting application")
			return nil
		case ev := <-a.events:
			if a.handleEvent(ev) {
				a.drawEditor()
			}
		case <-ticker.C:
			a.drawEditor()
		}
	}
}

// pollEvents forwards terminal events until the screen is finalized.
func (a *App) pollEvents() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-a.quit:
			return
		}
	}
}

// handleEvent reports whether the screen needs a redraw.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		a.editor.SetViewSize(a.tuiManager.Size())
		return true
	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(ev)
	}
	return false
}

// CycleTheme activates the theme after the current one, in ListThemes
// order, wrapping at the end.
func (a *App) CycleTheme() (string, error) {
	names := a.themeManager.ListThemes()
	current := a.themeManager.Current().Name
	next := names[0]
	for i, name := range names {
		if name == current {
			next = names[(i+1)%len(names)]
			break
		}
	}
	if err := a.SetTheme(next); err != nil {
		return "", err
	}
	return next, nil
}

// SetTheme switches the active theme by name.
func (a *App) SetTheme(name string) error {
	if err := a.themeManager.SetTheme(name); err != nil {
		return err
	}
	a.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: a.themeManager.Current().Name})
	return nil
}

// Editor exposes the editing context, mainly for tests.
func (a *App) Editor() *core.Editor { return a.editor }
