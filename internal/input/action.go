// internal/input/action.go
package input

// Action represents an operation requested by a key press.
type Action int

const (
	// --- Meta Actions ---
	ActionUnknown Action = iota
	ActionQuit
	ActionSave
	ActionFind
	ActionCancel // Esc: leave a prompt

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome
	ActionMoveEnd

	// --- Text Manipulation ---
	ActionInsertRune
	ActionInsertTab
	ActionInsertNewLine
	ActionDeleteCharForward
	ActionDeleteCharBackward

	// --- Clipboard ---
	ActionCopyLine
	ActionPaste

	// --- UI ---
	ActionCycleTheme
)

var actionNames = map[Action]string{
	ActionQuit:               "Quit",
	ActionSave:               "Save",
	ActionFind:               "Find",
	ActionCancel:             "Cancel",
	ActionMoveUp:             "MoveUp",
	ActionMoveDown:           "MoveDown",
	ActionMoveLeft:           "MoveLeft",
	ActionMoveRight:          "MoveRight",
	ActionMovePageUp:         "MovePageUp",
	ActionMovePageDown:       "MovePageDown",
	ActionMoveHome:           "MoveHome",
	ActionMoveEnd:            "MoveEnd",
	ActionInsertRune:         "InsertRune",
	ActionInsertTab:          "InsertTab",
	ActionInsertNewLine:      "InsertNewLine",
	ActionDeleteCharForward:  "DeleteCharForward",
	ActionDeleteCharBackward: "DeleteCharBackward",
	ActionCopyLine:           "CopyLine",
	ActionPaste:              "Paste",
	ActionCycleTheme:         "CycleTheme",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// IsMovement reports whether the action only moves the cursor.
func (a Action) IsMovement() bool {
	return a >= ActionMoveUp && a <= ActionMoveEnd
}

// ActionEvent is a decoded key press.
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionInsertRune
}
