package modehandler

import (
	"errors"

	"github.com/bethropolis/kite/internal/buffer"
	"github.com/bethropolis/kite/internal/core/cursor"
	"github.com/bethropolis/kite/internal/input"
	"github.com/bethropolis/kite/internal/logger"
)

var movements = map[input.Action]cursor.Movement{
	input.ActionMoveUp:       cursor.MoveUp,
	input.ActionMoveDown:     cursor.MoveDown,
	input.ActionMoveLeft:     cursor.MoveLeft,
	input.ActionMoveRight:    cursor.MoveRight,
	input.ActionMovePageUp:   cursor.MovePageUp,
	input.ActionMovePageDown: cursor.MovePageDown,
	input.ActionMoveHome:     cursor.MoveHome,
	input.ActionMoveEnd:      cursor.MoveEnd,
}

// executeAction handles actions in ModeEdit.
func (mh *ModeHandler) executeAction(actionEvent input.ActionEvent) bool {
	if actionEvent.Action != input.ActionQuit {
		mh.quitPresses = 0
	}

	if mv, ok := movements[actionEvent.Action]; ok {
		mh.editor.MoveCursor(mv)
		return true
	}

	var err error
	switch actionEvent.Action {
	case input.ActionQuit:
		mh.quit()
		return true

	case input.ActionSave:
		err = mh.editor.SaveBuffer()
		if errors.Is(err, buffer.ErrNoFilePath) {
			mh.setMode(ModeSaveAs)
			mh.statusBar.SetPrompt(saveAsPrompt, "")
			return true
		}

	case input.ActionFind:
		mh.editor.StartSearch()
		mh.setMode(ModeFind)
		mh.statusBar.SetPrompt(findPrompt, "")
		return true

	case input.ActionCancel:
		return false

	case input.ActionCycleTheme:
		if mh.themes == nil {
			return false
		}
		var name string
		if name, err = mh.themes.CycleTheme(); err == nil {
			mh.statusBar.SetTemporaryMessage("Theme: %s", name)
		}

	case input.ActionInsertRune:
		err = mh.editor.InsertRune(actionEvent.Rune)
	case input.ActionInsertTab:
		err = mh.editor.InsertTab()
	case input.ActionInsertNewLine:
		err = mh.editor.InsertNewLine()
	case input.ActionDeleteCharBackward:
		err = mh.editor.DeleteBackward()
	case input.ActionDeleteCharForward:
		err = mh.editor.DeleteForward()

	case input.ActionCopyLine:
		if err = mh.editor.CopyLine(); err == nil {
			mh.statusBar.SetTemporaryMessage("Line copied")
		}
	case input.ActionPaste:
		var pasted bool
		if pasted, err = mh.editor.Paste(); err == nil && !pasted {
			mh.statusBar.SetTemporaryMessage("Clipboard empty")
		}

	default:
		return false
	}

	if err != nil {
		logger.Warnf("%s failed: %v", actionEvent.Action, err)
		mh.statusBar.SetTemporaryMessage("%s failed: %v", actionEvent.Action, err)
	}
	return true
}
