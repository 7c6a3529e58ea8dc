package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestProcessEvent(t *testing.T) {
	p := NewInputProcessor()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want ActionEvent
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), ActionEvent{Action: ActionInsertRune, Rune: 'a'}},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift), ActionEvent{Action: ActionInsertRune, Rune: 'A'}},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), ActionEvent{Action: ActionUnknown}},
		{"ctrl-q", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), ActionEvent{Action: ActionQuit}},
		{"ctrl-s", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), ActionEvent{Action: ActionSave}},
		{"ctrl-f", tcell.NewEventKey(tcell.KeyCtrlF, 0, tcell.ModCtrl), ActionEvent{Action: ActionFind}},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionEvent{Action: ActionCopyLine}},
		{"ctrl-v", tcell.NewEventKey(tcell.KeyCtrlV, 0, tcell.ModCtrl), ActionEvent{Action: ActionPaste}},
		{"ctrl-t", tcell.NewEventKey(tcell.KeyCtrlT, 0, tcell.ModCtrl), ActionEvent{Action: ActionCycleTheme}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionEvent{Action: ActionInsertNewLine}},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ActionEvent{Action: ActionInsertTab}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionEvent{Action: ActionCancel}},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), ActionEvent{Action: ActionDeleteCharForward}},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), ActionEvent{Action: ActionDeleteCharBackward}},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), ActionEvent{Action: ActionMovePageDown}},
		{"shift up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), ActionEvent{Action: ActionMoveUp}},
		{"unbound", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), ActionEvent{Action: ActionUnknown}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ProcessEvent(tt.ev))
		})
	}
}

func TestBind(t *testing.T) {
	p := NewInputProcessor()
	p.Bind(tcell.KeyF5, ActionSave)
	assert.Equal(t, ActionSave, p.ProcessEvent(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone)).Action)
}

func TestActionHelpers(t *testing.T) {
	assert.True(t, ActionMoveHome.IsMovement())
	assert.False(t, ActionInsertRune.IsMovement())
	assert.Equal(t, "Find", ActionFind.String())
	assert.Equal(t, "Unknown", Action(999).String())
}
