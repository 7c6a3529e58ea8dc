// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/bethropolis/kite/internal/config"
	"github.com/bethropolis/kite/internal/event"
	"github.com/bethropolis/kite/internal/theme"
	"github.com/bethropolis/kite/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// StatusBar is the last screen row. It shows file, position and mode, a
// temporary message, or an input prompt, in that order of precedence:
// prompt first, then message, then the normal line.
type StatusBar struct {
	mu sync.RWMutex

	filePath   string
	language   string
	cursorPos  types.Position
	isModified bool
	editorMode string

	tempMessage     string
	tempMessageTime time.Time
	timeout         time.Duration

	promptLabel string
	promptInput string
	prompting   bool

	now func() time.Time
}

// New creates an empty status bar.
func New() *StatusBar {
	return &StatusBar{timeout: config.MessageTimeout, now: time.Now}
}

// Subscribe keeps the bar in sync with the editor through the event bus.
func (sb *StatusBar) Subscribe(mgr *event.Manager) {
	mgr.Subscribe(event.TypeCursorMoved, func(e event.Event) bool {
		if data, ok := e.Data.(event.CursorMovedData); ok {
			sb.SetCursorInfo(data.NewPosition)
		}
		return false
	})
	mgr.Subscribe(event.TypeBufferModified, func(e event.Event) bool {
		sb.mu.Lock()
		sb.isModified = true
		if data, ok := e.Data.(event.BufferModifiedData); ok {
			sb.cursorPos = data.Position
		}
		sb.mu.Unlock()
		return false
	})
	mgr.Subscribe(event.TypeBufferSaved, func(e event.Event) bool {
		if data, ok := e.Data.(event.BufferSavedData); ok {
			sb.SetFileInfo(data.FilePath, data.Language, false)
			sb.SetTemporaryMessage("Saved %s", filepath.Base(data.FilePath))
		}
		return false
	})
	mgr.Subscribe(event.TypeBufferLoaded, func(e event.Event) bool {
		if data, ok := e.Data.(event.BufferLoadedData); ok {
			sb.SetFileInfo(data.FilePath, data.Language, false)
		}
		return false
	})
	mgr.Subscribe(event.TypeModeChanged, func(e event.Event) bool {
		if data, ok := e.Data.(event.ModeChangedData); ok {
			sb.SetEditorMode(data.Mode)
		}
		return false
	})
}

// SetFileInfo updates the file path, type name and modified flag.
func (sb *StatusBar) SetFileInfo(path, language string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.language = language
	sb.isModified = modified
}

func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

func (sb *StatusBar) SetEditorMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.editorMode = mode
}

// SetTemporaryMessage shows a message until the timeout passes.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...any) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// SetPrompt shows label followed by the text typed so far.
func (sb *StatusBar) SetPrompt(label, input string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.promptLabel = label
	sb.promptInput = input
	sb.prompting = true
}

// ClearPrompt goes back to the normal line.
func (sb *StatusBar) ClearPrompt() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.prompting = false
	sb.promptLabel = ""
	sb.promptInput = ""
}

// Text returns the line that Draw would paint and the style name for it.
// An expired message is cleared as a side effect.
func (sb *StatusBar) Text(width int) (string, string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if sb.prompting {
		return sb.promptLabel + sb.promptInput, theme.StyleStatusBarPrompt
	}

	if !sb.tempMessageTime.IsZero() {
		if sb.now().Sub(sb.tempMessageTime) <= sb.timeout {
			return runewidth.Truncate(sb.tempMessage, width, "…"), theme.StyleStatusBarMessage
		}
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	styleName := theme.StyleStatusBar
	if sb.isModified {
		styleName = theme.StyleStatusBarModified
	}
	return sb.defaultText(width), styleName
}

// defaultText lays out "name [modified] -- MODE" on the left and
// "Type | line:col" on the right. The left part is truncated first.
func (sb *StatusBar) defaultText(width int) string {
	name := "[No Name]"
	if sb.filePath != "" {
		name = filepath.Base(sb.filePath)
	}
	left := name
	if sb.isModified {
		left += " [modified]"
	}
	if sb.editorMode != "" {
		left += " -- " + sb.editorMode
	}

	language := sb.language
	if language == "" {
		language = "Text"
	}
	right := fmt.Sprintf("%s | %d:%d", language, sb.cursorPos.Line+1, sb.cursorPos.Col+1)

	rightWidth := runewidth.StringWidth(right)
	if rightWidth+1 >= width {
		return runewidth.Truncate(left, width, "…")
	}
	left = runewidth.Truncate(left, width-rightWidth-1, "…")
	gap := width - runewidth.StringWidth(left) - rightWidth
	return left + runewidth.FillLeft(right, rightWidth+gap)
}

// Draw paints the bar on the last screen row. A prompt keeps its tail
// visible so the cursor end of the input is never cut off.
func (sb *StatusBar) Draw(screen tcell.Screen, th *theme.Theme, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	text, styleName := sb.Text(width)
	style := th.GetStyle(styleName)

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	if styleName == theme.StyleStatusBarPrompt {
		text = keepTail(text, width-1)
	}

	gr := uniseg.NewGraphemes(text)
	x := 0
	for gr.Next() {
		w := gr.Width()
		if x+w > width {
			break
		}
		if runes := gr.Runes(); len(runes) > 0 {
			screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += w
	}
}

// PromptCursor returns the screen column just past the prompt input.
func (sb *StatusBar) PromptCursor(width int) (int, bool) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	if !sb.prompting {
		return 0, false
	}
	return min(uniseg.StringWidth(sb.promptLabel+sb.promptInput), max(width-1, 0)), true
}

// keepTail drops leading grapheme clusters until s fits in width columns.
func keepTail(s string, width int) string {
	for uniseg.StringWidth(s) > width && s != "" {
		_, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
		s = rest
	}
	return s
}
