package modehandler

import (
	"path/filepath"

	"github.com/bethropolis/kite/internal/input"
)

// handleActionSaveAs collects a file name for a document without a path.
func (mh *ModeHandler) handleActionSaveAs(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionInsertRune:
		mh.promptInput += string(actionEvent.Rune)
	case input.ActionDeleteCharBackward:
		mh.promptInput = dropLastGrapheme(mh.promptInput)

	case input.ActionInsertNewLine:
		name := mh.promptInput
		mh.setMode(ModeEdit)
		if name == "" {
			mh.statusBar.SetTemporaryMessage("Save aborted")
			return true
		}
		if err := mh.editor.SaveAs(filepath.Clean(name)); err != nil {
			mh.statusBar.SetTemporaryMessage("Save failed: %v", err)
		}
		return true

	case input.ActionCancel:
		mh.setMode(ModeEdit)
		mh.statusBar.SetTemporaryMessage("Save aborted")
		return true

	default:
		return false
	}

	mh.statusBar.SetPrompt(saveAsPrompt, mh.promptInput)
	return true
}
