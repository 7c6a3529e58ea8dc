package buffer

import (
	"testing"

	"github.com/bethropolis/kite/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowInsertDelete(t *testing.T) {
	r := NewRow("ac")
	r.tags[0] = types.TagKeywordPrimary

	next, err := r.Insert(1, "b")
	require.NoError(t, err)
	assert.Equal(t, 2, next)
	assert.Equal(t, "abc", r.String())
	assert.Equal(t, []types.Tag{types.TagNone, types.TagNone, types.TagNone}, r.Tags(), "mutation resets tags")

	require.NoError(t, r.Delete(2))
	assert.Equal(t, "ab", r.String())

	_, err = r.Insert(5, "x")
	assert.ErrorIs(t, err, types.ErrOutOfBounds)
	assert.ErrorIs(t, r.Delete(2), types.ErrOutOfBounds, "no character at Len")
	assert.ErrorIs(t, r.Delete(-1), types.ErrOutOfBounds)
	assert.Equal(t, "ab", r.String(), "failed ops leave the row unchanged")
}

func TestRowInsertCombiningMergesCluster(t *testing.T) {
	r := NewRow("ex")
	next, err := r.Insert(1, "\u0301")
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len(), "combining mark joins the e")
	assert.Equal(t, 1, next)
	assert.Len(t, r.Tags(), r.Len())
}

func TestRowAppendSplit(t *testing.T) {
	a, b := NewRow("abc"), NewRow("def")
	a.Append(b)
	assert.Equal(t, "abcdef", a.String())
	assert.Equal(t, 0, b.Len())
	assert.Len(t, a.Tags(), 6)

	left, right, err := a.Split(2)
	require.NoError(t, err)
	assert.Equal(t, "ab", left.String())
	assert.Equal(t, "cdef", right.String())
	assert.Equal(t, "abcdef", a.String(), "split does not modify the receiver")

	left, right, err = a.Split(6)
	require.NoError(t, err)
	assert.Equal(t, "abcdef", left.String())
	assert.Equal(t, 0, right.Len())

	_, _, err = a.Split(7)
	assert.ErrorIs(t, err, types.ErrOutOfBounds)
}

func TestRowFind(t *testing.T) {
	r := NewRow("foo bar foo")
	assert.Equal(t, 0, r.Find("foo", 0, true))
	assert.Equal(t, 8, r.Find("foo", 1, true))
	assert.Equal(t, -1, r.Find("foo", 9, true))
	assert.Equal(t, 0, r.Find("foo", 8, false), "backward excludes from")
	assert.Equal(t, 8, r.Find("foo", 11, false))
	assert.Equal(t, -1, r.Find("foo", 0, false))
	assert.Equal(t, -1, r.Find("", 0, true))
	assert.Equal(t, []int{0, 8}, r.Matches("foo"))
	assert.Equal(t, 3, r.MatchLen(0, "foo"))
}

func TestRowFindGraphemes(t *testing.T) {
	r := NewRow("a世界b")
	assert.Equal(t, 1, r.Find("世界", 0, true))
	assert.Equal(t, 2, r.MatchLen(1, "世界"))

	r = NewRow("xe\u0301")
	assert.Equal(t, 1, r.Find("e", 0, true))
	assert.Equal(t, 1, r.MatchLen(1, "e"), "a match ending inside a cluster covers it")
}
