package find

import (
	"testing"

	"github.com/bethropolis/kite/internal/buffer"
	"github.com/bethropolis/kite/internal/core/cursor"
	"github.com/bethropolis/kite/internal/highlighter"
	"github.com/bethropolis/kite/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(lines ...string) (*Manager, *buffer.Document, *cursor.Manager) {
	doc := buffer.FromLines(lines, highlighter.Rust)
	cur := cursor.NewManager(doc, 8)
	cur.SetViewSize(80, 24)
	return NewManager(doc, cur), doc, cur
}

func at(line, col int) types.Position { return types.Position{Line: line, Col: col} }

// snapshot copies every row's tags.
func snapshot(doc *buffer.Document) [][]types.Tag {
	out := make([][]types.Tag, doc.LineCount())
	for i := range out {
		out[i] = append([]types.Tag(nil), doc.Row(i).Tags()...)
	}
	return out
}

func TestInactiveOperations(t *testing.T) {
	m, _, _ := setup("foo")
	assert.ErrorIs(t, m.SetQuery("foo"), ErrInactive)
	assert.ErrorIs(t, m.Next(), ErrInactive)
	assert.ErrorIs(t, m.Reverse(), ErrInactive)
	m.Confirm()
	m.Cancel()
	assert.Equal(t, Idle, m.State())
}

func TestSearchWrapsAround(t *testing.T) {
	m, _, cur := setup("foo", "bar", "foo")
	m.Open()
	assert.Equal(t, ActiveForward, m.State())

	require.NoError(t, m.SetQuery("foo"))
	assert.Equal(t, at(0, 0), cur.GetPosition())

	require.NoError(t, m.Next())
	assert.Equal(t, at(2, 0), cur.GetPosition())

	require.NoError(t, m.Next())
	assert.Equal(t, at(0, 0), cur.GetPosition(), "wraps past the last row")

	require.NoError(t, m.Reverse())
	assert.Equal(t, ActiveBackward, m.State())
	assert.Equal(t, at(2, 0), cur.GetPosition(), "backward wraps past the first row")

	require.NoError(t, m.Next())
	assert.Equal(t, at(0, 0), cur.GetPosition())
}

func TestSearchWithinRow(t *testing.T) {
	m, _, cur := setup("ab ab ab")
	m.Open()
	require.NoError(t, m.SetQuery("ab"))
	require.NoError(t, m.Forward())
	assert.Equal(t, at(0, 3), cur.GetPosition())
	require.NoError(t, m.Forward())
	assert.Equal(t, at(0, 6), cur.GetPosition())
	require.NoError(t, m.Backward())
	assert.Equal(t, ActiveBackward, m.State())
	assert.Equal(t, at(0, 3), cur.GetPosition(), "reverse does not land on the same match")
	require.NoError(t, m.Backward())
	assert.Equal(t, at(0, 0), cur.GetPosition())
}

func TestSingleOccurrenceFindsItself(t *testing.T) {
	m, _, cur := setup("x", "needle", "y")
	m.Open()
	require.NoError(t, m.SetQuery("needle"))
	require.NoError(t, m.Next())
	assert.Equal(t, at(1, 0), cur.GetPosition())
	require.NoError(t, m.Reverse())
	assert.Equal(t, at(1, 0), cur.GetPosition())
}

func TestFirstQueryStartsAtDocumentStart(t *testing.T) {
	m, _, cur := setup("foo", "bar", "foo")
	cur.SetPosition(at(2, 1))
	m.Open()
	require.NoError(t, m.SetQuery("foo"))
	assert.Equal(t, at(0, 0), cur.GetPosition())
	require.NoError(t, m.Next())
	assert.Equal(t, at(2, 0), cur.GetPosition(), "next follows the focused match")
}

func TestIncrementalQueryKeepsPosition(t *testing.T) {
	m, _, cur := setup("fo", "foo", "food")
	m.Open()
	require.NoError(t, m.SetQuery("f"))
	require.NoError(t, m.Next())
	assert.Equal(t, at(1, 0), cur.GetPosition())

	// Extending the query re-checks the focused match first.
	require.NoError(t, m.SetQuery("foo"))
	assert.Equal(t, at(1, 0), cur.GetPosition())
	require.NoError(t, m.SetQuery("food"))
	assert.Equal(t, at(2, 0), cur.GetPosition())
}

func TestNoMatch(t *testing.T) {
	m, doc, cur := setup("fn foo", "bar")
	fresh := snapshot(doc)
	cur.SetPosition(at(1, 1))
	m.Open()

	require.NoError(t, m.SetQuery("foo"))
	assert.Equal(t, at(0, 3), cur.GetPosition())

	err := m.SetQuery("fooz")
	assert.ErrorIs(t, err, types.ErrNoMatch)
	assert.Equal(t, at(0, 3), cur.GetPosition(), "cursor does not move on no match")
	assert.Equal(t, fresh, snapshot(doc), "overlay removed")

	assert.ErrorIs(t, m.Next(), types.ErrNoMatch)
	assert.True(t, m.Active(), "no match keeps the session open")
}

func TestEmptyQueryReturnsToOrigin(t *testing.T) {
	m, doc, cur := setup("abc", "zzz abc")
	fresh := snapshot(doc)
	cur.SetPosition(at(1, 1))
	m.Open()
	require.NoError(t, m.SetQuery("abc"))
	assert.Equal(t, at(0, 0), cur.GetPosition())

	require.NoError(t, m.SetQuery(""))
	assert.Equal(t, at(1, 1), cur.GetPosition())
	assert.Equal(t, fresh, snapshot(doc))
	_, ok := m.LastMatch()
	assert.False(t, ok)
	assert.NoError(t, m.Next(), "next with an empty query does nothing")
}

func TestOverlayMovesBetweenRows(t *testing.T) {
	m, doc, _ := setup("let x", "x fn x", "x")
	fresh := snapshot(doc)
	m.Open()
	require.NoError(t, m.SetQuery("x"))

	tags := doc.Row(0).Tags()
	assert.Equal(t, types.TagPrimaryMatch, tags[4])

	require.NoError(t, m.Next())
	assert.Equal(t, fresh[0], doc.Row(0).Tags(), "previous row re-highlighted")
	tags = doc.Row(1).Tags()
	assert.Equal(t, types.TagPrimaryMatch, tags[0])
	assert.Equal(t, types.TagKeywordPrimary, tags[2])
	assert.Equal(t, types.TagMatch, tags[5])

	require.NoError(t, m.Next())
	tags = doc.Row(1).Tags()
	assert.Equal(t, types.TagMatch, tags[0])
	assert.Equal(t, types.TagPrimaryMatch, tags[5])
}

func TestCancelRestoresCursorAndTags(t *testing.T) {
	m, doc, cur := setup("fn main() {", "  let foo = 1;", "  foo + 1 // foo")
	fresh := snapshot(doc)
	cur.SetPosition(at(2, 5))
	m.Open()

	require.NoError(t, m.SetQuery("foo"))
	require.NoError(t, m.Next())
	assert.NotEqual(t, fresh, snapshot(doc))

	m.Cancel()
	assert.Equal(t, Idle, m.State())
	assert.Equal(t, at(2, 5), cur.GetPosition())
	assert.Equal(t, fresh, snapshot(doc))
}

func TestConfirmKeepsCursor(t *testing.T) {
	m, doc, cur := setup("abc", "xyz")
	fresh := snapshot(doc)
	m.Open()
	require.NoError(t, m.SetQuery("yz"))
	m.Confirm()
	assert.Equal(t, Idle, m.State())
	assert.Equal(t, at(1, 1), cur.GetPosition())
	assert.Equal(t, fresh, snapshot(doc))
}
