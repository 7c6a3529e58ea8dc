// internal/core/find/manager.go
package find

import (
	"errors"
	"fmt"

	"github.com/bethropolis/kite/internal/buffer"
	"github.com/bethropolis/kite/internal/logger"
	"github.com/bethropolis/kite/internal/types"
)

// ErrInactive is returned by operations that need an open search.
var ErrInactive = errors.New("no search in progress")

// Document is what the search needs from a document.
type Document interface {
	LineCount() int
	Row(i int) *buffer.Row
	Rehighlight(i int) error
	OverlayMatches(i int, query string, focus int) error
}

// Cursor is the cursor the search drives.
type Cursor interface {
	GetPosition() types.Position
	SetPosition(types.Position)
}

// State of the search machine.
type State int

const (
	Idle State = iota
	ActiveForward
	ActiveBackward
)

func (s State) String() string {
	switch s {
	case ActiveForward:
		return "forward"
	case ActiveBackward:
		return "backward"
	default:
		return "idle"
	}
}

// SearchState lives for one search session.
type SearchState struct {
	Query     string
	LastMatch *types.Position
	origin    types.Position // Cursor when the session opened
	overlaid  int            // Row carrying the match overlay, -1 for none
}

// Manager runs incremental searches over a document. Whatever it paints
// on a row is removed by re-highlighting that row, never by restoring a
// saved copy of its tags.
type Manager struct {
	doc    Document
	cursor Cursor
	state  State
	search SearchState
}

// NewManager creates an idle search manager.
func NewManager(doc Document, cursor Cursor) *Manager {
	return &Manager{doc: doc, cursor: cursor, search: SearchState{overlaid: -1}}
}

// State returns the current machine state.
func (m *Manager) State() State { return m.state }

// Active reports whether a session is open.
func (m *Manager) Active() bool { return m.state != Idle }

// Query returns the query of the open session.
func (m *Manager) Query() string { return m.search.Query }

// LastMatch returns the focused match, if any.
func (m *Manager) LastMatch() (types.Position, bool) {
	if m.search.LastMatch == nil {
		return types.Position{}, false
	}
	return *m.search.LastMatch, true
}

// --- Transitions ---

// Open starts a forward session with an empty query. The cursor position
// is kept so Cancel can return to it.
func (m *Manager) Open() {
	if m.Active() {
		m.clearOverlay()
	}
	m.search = SearchState{origin: m.cursor.GetPosition(), overlaid: -1}
	m.state = ActiveForward
	logger.DebugTagf("search", "Search opened at %+v", m.search.origin)
}

// SetQuery replaces the query and searches again from the focused match
// (inclusive) or from the start of the document. An empty query drops the
// overlay and returns the cursor to where the session started.
func (m *Manager) SetQuery(query string) error {
	if !m.Active() {
		return ErrInactive
	}
	m.search.Query = query
	if query == "" {
		m.clearOverlay()
		m.search.LastMatch = nil
		m.cursor.SetPosition(m.search.origin)
		return nil
	}

	from := types.Position{}
	if m.search.LastMatch != nil {
		from = *m.search.LastMatch
	}
	err := m.run(from, true)
	if errors.Is(err, types.ErrNoMatch) {
		m.clearOverlay()
	}
	return err
}

// Next moves to the following match in the current direction.
func (m *Manager) Next() error {
	if !m.Active() {
		return ErrInactive
	}
	if m.search.Query == "" {
		return nil
	}
	from := m.cursor.GetPosition()
	if m.search.LastMatch != nil {
		from = *m.search.LastMatch
	}
	return m.run(from, false)
}

// Reverse flips the direction and moves to the neighbouring match on the
// other side of the focused one.
func (m *Manager) Reverse() error {
	switch m.state {
	case ActiveForward:
		m.state = ActiveBackward
	case ActiveBackward:
		m.state = ActiveForward
	default:
		return ErrInactive
	}
	logger.DebugTagf("search", "Search direction now %s", m.state)
	return m.Next()
}

// Forward searches forwards, reversing first when going backwards.
func (m *Manager) Forward() error {
	if m.state == ActiveBackward {
		return m.Reverse()
	}
	return m.Next()
}

// Backward searches backwards, reversing first when going forwards.
func (m *Manager) Backward() error {
	if m.state == ActiveForward {
		return m.Reverse()
	}
	return m.Next()
}

// Confirm ends the session leaving the cursor on the match.
func (m *Manager) Confirm() {
	if !m.Active() {
		return
	}
	m.clearOverlay()
	m.state = Idle
	logger.DebugTagf("search", "Search confirmed at %+v", m.cursor.GetPosition())
}

// Cancel ends the session and puts the cursor back where it started.
func (m *Manager) Cancel() {
	if !m.Active() {
		return
	}
	m.clearOverlay()
	m.cursor.SetPosition(m.search.origin)
	m.state = Idle
	logger.DebugTagf("search", "Search cancelled, cursor back at %+v", m.search.origin)
}

// --- Scanning ---

func (m *Manager) clearOverlay() {
	if m.search.overlaid < 0 {
		return
	}
	if err := m.doc.Rehighlight(m.search.overlaid); err != nil {
		logger.Warnf("search: clearing overlay: %v", err)
	}
	m.search.overlaid = -1
}

// run scans one full cycle from `from` in the current direction.
func (m *Manager) run(from types.Position, inclusive bool) error {
	query := m.search.Query
	match, ok := m.scan(query, from, inclusive, m.state == ActiveForward)
	if !ok {
		logger.DebugTagf("search", "No match for %q", query)
		return fmt.Errorf("search %q: %w", query, types.ErrNoMatch)
	}

	if m.search.overlaid >= 0 && m.search.overlaid != match.Line {
		m.clearOverlay()
	}
	if err := m.doc.OverlayMatches(match.Line, query, match.Col); err != nil {
		return fmt.Errorf("search %q: %w", query, err)
	}
	m.search.overlaid = match.Line
	m.search.LastMatch = &match
	m.cursor.SetPosition(match)
	return nil
}

// scan visits the start row from `from`, the other rows in order with
// wrap-around, and finally the part of the start row it skipped.
func (m *Manager) scan(query string, from types.Position, inclusive, forward bool) (types.Position, bool) {
	n := m.doc.LineCount()
	if n == 0 {
		return types.Position{}, false
	}
	from.Line = max(0, min(from.Line, n-1))

	for k := 0; k <= n; k++ {
		var line, col int
		if forward {
			line = (from.Line + k) % n
			row := m.doc.Row(line)
			switch k {
			case 0:
				start := from.Col
				if !inclusive {
					start++
				}
				col = row.Find(query, start, true)
			default:
				col = row.Find(query, 0, true)
			}
		} else {
			line = ((from.Line-k)%n + n) % n
			row := m.doc.Row(line)
			switch k {
			case 0:
				bound := from.Col
				if inclusive {
					bound++
				}
				col = row.Find(query, bound, false)
			default:
				col = row.Find(query, row.Len(), false)
			}
		}
		if col >= 0 {
			return types.Position{Line: line, Col: col}, true
		}
	}
	return types.Position{}, false
}
