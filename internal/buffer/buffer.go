// internal/buffer/buffer.go
package buffer

import (
	"github.com/bethropolis/kite/internal/highlighter/lang"
	"github.com/bethropolis/kite/internal/types"
)

// Buffer is the read side of a Document used by views such as the
// status bar and the terminal renderer.
type Buffer interface {
	LineCount() int
	Chars(line int) []string
	VisibleRows(rowOffset, height, tabWidth int) []RenderedRow
	Language() *lang.Language
	FilePath() string
	IsModified() bool
}

// Editable is the write side used by the editor context.
type Editable interface {
	Buffer
	InsertChar(pos types.Position, ch string) (types.Position, error)
	InsertNewline(pos types.Position) (types.Position, error)
	DeleteChar(pos types.Position) (types.Position, error)
	DeleteForward(pos types.Position) (types.Position, error)
	Save(filePath string) error
}

var _ Editable = (*Document)(nil)
