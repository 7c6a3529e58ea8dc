package cursor

import (
	"github.com/bethropolis/kite/internal/logger"
	"github.com/bethropolis/kite/internal/types"
	"github.com/bethropolis/kite/internal/utils"
)

// Document is the slice of a document the cursor needs.
type Document interface {
	LineCount() int
	Chars(line int) []string
}

// Movement is a cursor motion bound to a key.
type Movement int

const (
	MoveUp Movement = iota
	MoveDown
	MoveLeft
	MoveRight
	MovePageUp
	MovePageDown
	MoveHome
	MoveEnd
)

// Manager tracks the cursor and the viewport that follows it.
type Manager struct {
	doc       Document
	position  types.Position
	rowOffset int // First document row on screen
	colOffset int // First display column on screen
	width     int
	height    int
	tabWidth  int
}

// NewManager creates a cursor at the start of doc.
func NewManager(doc Document, tabWidth int) *Manager {
	if tabWidth <= 0 {
		tabWidth = utils.DefaultTabWidth
	}
	return &Manager{doc: doc, tabWidth: tabWidth}
}

// SetDocument swaps the document and re-clamps the cursor.
func (m *Manager) SetDocument(doc Document) {
	m.doc = doc
	m.SetPosition(m.position)
}

// SetViewSize updates the text area dimensions.
func (m *Manager) SetViewSize(width, height int) {
	m.width = width
	m.height = height
	m.Scroll()
}

// Viewport returns the first visible row and display column.
func (m *Manager) Viewport() (rowOffset, colOffset int) {
	return m.rowOffset, m.colOffset
}

// ViewSize returns the text area dimensions.
func (m *Manager) ViewSize() (width, height int) {
	return m.width, m.height
}

// GetPosition returns the current cursor position.
func (m *Manager) GetPosition() types.Position {
	return m.position
}

// SetPosition clamps pos to the document and scrolls it into view.
func (m *Manager) SetPosition(pos types.Position) {
	m.position = m.clamp(pos)
	m.Scroll()
}

func (m *Manager) clamp(pos types.Position) types.Position {
	lines := m.doc.LineCount()
	pos.Line = max(0, min(pos.Line, lines-1))
	pos.Col = max(0, min(pos.Col, len(m.doc.Chars(pos.Line))))
	return pos
}

// DisplayColumn returns the cursor's display column on its row.
func (m *Manager) DisplayColumn() int {
	return utils.CharToColumn(m.doc.Chars(m.position.Line), m.position.Col, m.tabWidth)
}

// ScreenPosition returns the cursor cell relative to the viewport.
func (m *Manager) ScreenPosition() (x, y int) {
	return m.DisplayColumn() - m.colOffset, m.position.Line - m.rowOffset
}

// Move applies one motion.
func (m *Manager) Move(mv Movement) {
	pos := m.position
	chars := m.doc.Chars(pos.Line)

	switch mv {
	case MoveUp:
		pos = m.verticalTarget(pos.Line - 1)
	case MoveDown:
		pos = m.verticalTarget(pos.Line + 1)
	case MovePageUp:
		pos = m.verticalTarget(pos.Line - max(m.height, 1))
	case MovePageDown:
		pos = m.verticalTarget(pos.Line + max(m.height, 1))
	case MoveLeft:
		if pos.Col > 0 {
			pos.Col--
		} else if pos.Line > 0 {
			pos.Line--
			pos.Col = len(m.doc.Chars(pos.Line))
		}
	case MoveRight:
		if pos.Col < len(chars) {
			pos.Col++
		} else if pos.Line+1 < m.doc.LineCount() {
			pos.Line++
			pos.Col = 0
		}
	case MoveHome:
		pos.Col = 0
	case MoveEnd:
		pos.Col = len(chars)
	default:
		logger.Warnf("cursor: unknown movement %d", mv)
		return
	}
	m.SetPosition(pos)
}

// verticalTarget keeps the current display column on the target row. A
// column inside a tab or wide glyph lands on that character.
func (m *Manager) verticalTarget(line int) types.Position {
	col := m.DisplayColumn()
	line = max(0, min(line, m.doc.LineCount()-1))
	return types.Position{
		Line: line,
		Col:  utils.ColumnToChar(m.doc.Chars(line), col, m.tabWidth),
	}
}

// Scroll moves the viewport the least amount that shows the cursor.
func (m *Manager) Scroll() {
	if m.height <= 0 || m.width <= 0 {
		return // View not initialized
	}

	if m.position.Line < m.rowOffset {
		m.rowOffset = m.position.Line
	} else if m.position.Line >= m.rowOffset+m.height {
		m.rowOffset = m.position.Line - m.height + 1
	}

	chars := m.doc.Chars(m.position.Line)
	start := utils.CharToColumn(chars, m.position.Col, m.tabWidth)
	end := start + 1 // The cursor past the last character takes one cell
	if m.position.Col < len(chars) {
		end = start + utils.CharWidth(chars[m.position.Col], start, m.tabWidth)
	}
	if start < m.colOffset {
		m.colOffset = start
	} else if end > m.colOffset+m.width {
		m.colOffset = end - m.width
	}
}
