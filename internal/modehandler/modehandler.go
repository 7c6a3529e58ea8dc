// internal/modehandler/modehandler.go
package modehandler

import (
	"strings"

	"github.com/bethropolis/kite/internal/config"
	"github.com/bethropolis/kite/internal/core"
	"github.com/bethropolis/kite/internal/event"
	"github.com/bethropolis/kite/internal/input"
	"github.com/bethropolis/kite/internal/logger"
	"github.com/bethropolis/kite/internal/statusbar"
	"github.com/bethropolis/kite/internal/utils"
	"github.com/gdamore/tcell/v2"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeEdit   InputMode = iota
	ModeFind             // Typing a search query
	ModeSaveAs           // Typing a file name
)

func (m InputMode) String() string {
	switch m {
	case ModeFind:
		return "FIND"
	case ModeSaveAs:
		return "SAVE AS"
	default:
		return "EDIT"
	}
}

// Prompt labels shown on the status bar.
const (
	findPrompt        = "Search (Esc/Arrows/Enter): "
	findPromptMissing = "Search [no match]: "
	saveAsPrompt      = "Save as: "
)

// ThemeSwitcher activates the theme after the current one and returns
// its name.
type ThemeSwitcher interface {
	CycleTheme() (string, error)
}

// ModeHandler routes key presses to the editor according to the mode.
type ModeHandler struct {
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	themes         ThemeSwitcher
	quitSignal     chan<- struct{}

	currentMode InputMode
	promptInput string // Query in ModeFind, file name in ModeSaveAs
	quitPresses int    // Ctrl-Q presses seen with unsaved changes
	quitting    bool
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	Themes         ThemeSwitcher   // Optional; Ctrl-T does nothing without it
	QuitSignal     chan<- struct{} // Closed once when the user quits
}

// New creates a ModeHandler in edit mode.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	return &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		themes:         cfg.Themes,
		quitSignal:     cfg.QuitSignal,
		currentMode:    ModeEdit,
	}
}

// HandleKeyEvent applies one key press. It returns true when the screen
// needs a redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	actionEvent := mh.inputProcessor.ProcessEvent(ev)
	if actionEvent.Action == input.ActionUnknown {
		return false
	}
	logger.DebugTagf("input", "Mode %s: %s", mh.currentMode, actionEvent.Action)

	switch mh.currentMode {
	case ModeFind:
		return mh.handleActionFind(actionEvent)
	case ModeSaveAs:
		return mh.handleActionSaveAs(actionEvent)
	default:
		return mh.executeAction(actionEvent)
	}
}

// SetThemeSwitcher sets the target of Ctrl-T.
func (mh *ModeHandler) SetThemeSwitcher(ts ThemeSwitcher) { mh.themes = ts }

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode { return mh.currentMode }

// PromptInput returns the text typed at the current prompt.
func (mh *ModeHandler) PromptInput() string { return mh.promptInput }

func (mh *ModeHandler) setMode(mode InputMode) {
	if mh.currentMode == mode {
		return
	}
	mh.currentMode = mode
	mh.promptInput = ""
	if mode == ModeEdit {
		mh.statusBar.ClearPrompt()
	}
	mh.eventManager.Dispatch(event.TypeModeChanged, event.ModeChangedData{Mode: mode.String()})
}

// quit closes the quit signal. With unsaved changes the first
// config.QuitConfirmations presses only warn.
func (mh *ModeHandler) quit() {
	if mh.editor.GetBuffer().IsModified() && mh.quitPresses < config.QuitConfirmations {
		mh.quitPresses++
		mh.statusBar.SetTemporaryMessage("Unsaved changes! Press Ctrl-Q %d more time(s) to quit.",
			config.QuitConfirmations-mh.quitPresses+1)
		return
	}
	if mh.quitting {
		return
	}
	mh.quitting = true
	mh.eventManager.Dispatch(event.TypeAppQuit, nil)
	close(mh.quitSignal)
}

// dropLastGrapheme removes the last user-perceived character of s.
func dropLastGrapheme(s string) string {
	chars := utils.SplitGraphemes(s)
	if len(chars) == 0 {
		return ""
	}
	return strings.Join(chars[:len(chars)-1], "")
}
