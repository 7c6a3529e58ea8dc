package modehandler

import (
	"errors"

	"github.com/bethropolis/kite/internal/input"
	"github.com/bethropolis/kite/internal/logger"
	"github.com/bethropolis/kite/internal/types"
)

// handleActionFind handles actions while the search prompt is open. Every
// change to the query searches again; arrows step between matches.
func (mh *ModeHandler) handleActionFind(actionEvent input.ActionEvent) bool {
	var err error
	switch actionEvent.Action {
	case input.ActionInsertRune:
		mh.promptInput += string(actionEvent.Rune)
		err = mh.editor.UpdateSearch(mh.promptInput)

	case input.ActionDeleteCharBackward:
		mh.promptInput = dropLastGrapheme(mh.promptInput)
		err = mh.editor.UpdateSearch(mh.promptInput)

	case input.ActionMoveRight, input.ActionMoveDown:
		err = mh.editor.SearchForward()
	case input.ActionMoveLeft, input.ActionMoveUp:
		err = mh.editor.SearchBackward()

	case input.ActionInsertNewLine:
		mh.endFind(true)
		return true
	case input.ActionCancel:
		mh.endFind(false)
		return true

	default:
		return false
	}

	label := findPrompt
	if errors.Is(err, types.ErrNoMatch) {
		label = findPromptMissing
	} else if err != nil {
		logger.Warnf("Search failed: %v", err)
	}
	mh.statusBar.SetPrompt(label, mh.promptInput)
	return true
}

func (mh *ModeHandler) endFind(confirm bool) {
	query := mh.promptInput
	mh.editor.EndSearch(confirm)
	mh.setMode(ModeEdit)
	if !confirm {
		mh.statusBar.SetTemporaryMessage("Search cancelled")
	} else if query != "" {
		logger.Debugf("Search for %q confirmed at %+v", query, mh.editor.GetCursor())
	}
}
