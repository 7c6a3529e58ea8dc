package buffer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bethropolis/kite/internal/highlighter"
	"github.com/bethropolis/kite/internal/highlighter/lang"
	"github.com/bethropolis/kite/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(line, col int) types.Position { return types.Position{Line: line, Col: col} }

func assertTagsParallel(t *testing.T, d *Document) {
	t.Helper()
	for i := 0; i < d.LineCount(); i++ {
		assert.Len(t, d.Row(i).Tags(), d.Row(i).Len(), "row %d", i)
	}
}

func TestFromLinesRoundTrip(t *testing.T) {
	inputs := [][]string{
		{""},
		{"fn main() {", "\tlet x = 'a';", "}"},
		{"héllo 世界", "👨‍👩‍👧 family", ""},
	}
	for _, lines := range inputs {
		d := FromLines(lines, highlighter.Rust)
		assert.Equal(t, lines, d.ToLines())
		assertTagsParallel(t, d)
	}
	assert.Equal(t, []string{""}, FromLines(nil, nil).ToLines())
	assert.Same(t, lang.Plain, New().Language())
}

func TestInsertDeleteRestoresText(t *testing.T) {
	original := []string{"let a = 1;", "b"}
	for _, ch := range []string{"x", "世", "\t", "'", "\""} {
		d := FromLines(original, highlighter.Rust)
		after, err := d.InsertChar(pos(0, 4), ch)
		require.NoError(t, err)
		assert.Equal(t, pos(0, 5), after)
		assertTagsParallel(t, d)

		back, err := d.DeleteChar(after)
		require.NoError(t, err)
		assert.Equal(t, pos(0, 4), back)
		assert.Equal(t, original, d.ToLines())
		assert.True(t, d.IsModified())
	}
}

func TestInsertCombiningThenDeleteRemovesMergedCluster(t *testing.T) {
	d := FromLines([]string{"ab"}, nil)
	after, err := d.InsertChar(pos(0, 1), "\u0301")
	require.NoError(t, err)
	assert.Equal(t, pos(0, 1), after)
	assert.Equal(t, []string{"a\u0301b"}, d.ToLines())

	back, err := d.DeleteChar(after)
	require.NoError(t, err)
	assert.Equal(t, pos(0, 0), back)
	assert.Equal(t, []string{"b"}, d.ToLines())
}

func TestInsertCharHighlightsRow(t *testing.T) {
	d := FromLines([]string{"f"}, highlighter.Rust)
	assert.Equal(t, types.TagNone, d.Row(0).Tags()[0])

	_, err := d.InsertChar(pos(0, 1), "n")
	require.NoError(t, err)
	assert.Equal(t, []types.Tag{types.TagKeywordPrimary, types.TagKeywordPrimary}, d.Row(0).Tags())
}

func TestInsertCharErrors(t *testing.T) {
	d := FromLines([]string{"ab"}, nil)
	_, err := d.InsertChar(pos(1, 0), "x")
	assert.ErrorIs(t, err, types.ErrOutOfBounds)
	_, err = d.InsertChar(pos(0, 3), "x")
	assert.ErrorIs(t, err, types.ErrOutOfBounds)
	_, err = d.InsertChar(pos(-1, 0), "x")
	assert.ErrorIs(t, err, types.ErrOutOfBounds)
	assert.Equal(t, []string{"ab"}, d.ToLines())
	assert.False(t, d.IsModified())
}

func TestInsertNewlineSplits(t *testing.T) {
	d := FromLines([]string{"abcdef"}, nil)
	next, err := d.InsertChar(pos(0, 3), "\n")
	require.NoError(t, err)
	assert.Equal(t, pos(1, 0), next)
	assert.Equal(t, []string{"abc", "def"}, d.ToLines())

	next, err = d.InsertNewline(pos(1, 3))
	require.NoError(t, err)
	assert.Equal(t, pos(2, 0), next)
	assert.Equal(t, []string{"abc", "def", ""}, d.ToLines())
	assertTagsParallel(t, d)
}

func TestDeleteCharJoinsRows(t *testing.T) {
	d := FromLines([]string{"abc", "def"}, nil)
	next, err := d.DeleteChar(pos(1, 0))
	require.NoError(t, err)
	assert.Equal(t, pos(0, 3), next)
	assert.Equal(t, []string{"abcdef"}, d.ToLines())

	next, err = d.DeleteChar(pos(0, 0))
	require.NoError(t, err)
	assert.Equal(t, pos(0, 0), next, "no-op at document start")
	assert.Equal(t, []string{"abcdef"}, d.ToLines())
}

func TestDeleteForward(t *testing.T) {
	d := FromLines([]string{"ab", "cd"}, nil)
	next, err := d.DeleteForward(pos(0, 2))
	require.NoError(t, err)
	assert.Equal(t, pos(0, 2), next)
	assert.Equal(t, []string{"abcd"}, d.ToLines())

	_, err = d.DeleteForward(pos(0, 0))
	require.NoError(t, err)
	assert.Equal(t, []string{"bcd"}, d.ToLines())

	_, err = d.DeleteForward(pos(0, 3))
	require.NoError(t, err, "end of last row is a no-op")
	assert.Equal(t, []string{"bcd"}, d.ToLines())
}

func TestInsertLineAndText(t *testing.T) {
	d := FromLines([]string{"b"}, nil)
	require.NoError(t, d.InsertLine(0, "a"))
	require.NoError(t, d.InsertLine(2, "c"))
	assert.Equal(t, []string{"a", "b", "c"}, d.ToLines())
	assert.ErrorIs(t, d.InsertLine(9, "x"), types.ErrOutOfBounds)

	end, err := d.InsertText(pos(1, 1), "1\n2\n3")
	require.NoError(t, err)
	assert.Equal(t, pos(3, 1), end)
	assert.Equal(t, []string{"a", "b1", "2", "3", "c"}, d.ToLines())
}

func TestOverlayAndRehighlight(t *testing.T) {
	d := FromLines([]string{"fn foo fn"}, highlighter.Rust)
	fresh := append([]types.Tag(nil), d.Row(0).Tags()...)

	require.NoError(t, d.OverlayMatches(0, "fn", 7))
	tags := d.Row(0).Tags()
	assert.Equal(t, types.TagMatch, tags[0])
	assert.Equal(t, types.TagMatch, tags[1])
	assert.Equal(t, types.TagPrimaryMatch, tags[7])
	assert.Equal(t, types.TagPrimaryMatch, tags[8])

	require.NoError(t, d.Rehighlight(0))
	assert.Equal(t, fresh, d.Row(0).Tags())
	assert.ErrorIs(t, d.Rehighlight(3), types.ErrOutOfBounds)
}

func TestVisibleRows(t *testing.T) {
	d := FromLines([]string{"a\tb", "世", "x"}, nil)
	rows := d.VisibleRows(0, 2, 4)
	require.Len(t, rows, 2)
	assert.Equal(t, "a   b", rows[0].Text)
	assert.Equal(t, Cell{Text: "   ", Col: 1, Width: 3, Tag: types.TagNone}, rows[0].Cells[1])
	assert.Equal(t, 4, rows[0].Cells[2].Col)
	assert.Equal(t, 2, rows[1].Cells[0].Width)

	assert.Len(t, d.VisibleRows(2, 10, 4), 1)
	assert.Nil(t, d.VisibleRows(5, 10, 4))
}

func TestSetLanguage(t *testing.T) {
	d := FromLines([]string{"fn"}, nil)
	assert.Equal(t, types.TagNone, d.Row(0).Tags()[0])
	d.SetLanguage(highlighter.Rust)
	assert.Equal(t, types.TagKeywordPrimary, d.Row(0).Tags()[0])
}

func TestLoadSave(t *testing.T) {
	highlighter.RegisterLanguages()
	dir := t.TempDir()

	path := filepath.Join(dir, "main.rs")
	require.NoError(t, os.WriteFile(path, []byte("fn main() {\r\n}\n"), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Rust", d.Language().Name)
	assert.Equal(t, []string{"fn main() {\r", "}"}, d.ToLines(), "no line-ending normalization")

	_, err = d.InsertChar(pos(1, 1), "x")
	require.NoError(t, err)
	require.NoError(t, d.Save(""))
	assert.False(t, d.IsModified())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fn main() {\r\n}x\n", string(content))

	// No trailing newline is preserved too.
	plain := filepath.Join(dir, "notes")
	require.NoError(t, os.WriteFile(plain, []byte("a\nb"), 0o644))
	d, err = Load(plain)
	require.NoError(t, err)
	require.NoError(t, d.Save(""))
	content, _ = os.ReadFile(plain)
	assert.Equal(t, "a\nb", string(content))
}

func TestLoadMissingAndSaveAs(t *testing.T) {
	highlighter.RegisterLanguages()
	dir := t.TempDir()

	d, err := Load(filepath.Join(dir, "new.txt"))
	require.NoError(t, err)
	assert.Equal(t, []string{""}, d.ToLines())
	assert.False(t, d.IsModified())

	fresh := New()
	assert.ErrorIs(t, fresh.Save(""), ErrNoFilePath)

	_, err = fresh.InsertText(pos(0, 0), "fn x")
	require.NoError(t, err)
	target := filepath.Join(dir, "out.rs")
	require.NoError(t, fresh.Save(target))
	assert.Equal(t, target, fresh.FilePath())
	assert.Equal(t, "Rust", fresh.Language().Name, "language re-detected after save-as")
	assert.Equal(t, types.TagKeywordPrimary, fresh.Row(0).Tags()[0])

	content, _ := os.ReadFile(target)
	assert.True(t, strings.HasSuffix(string(content), "\n"))

	err = fresh.Save(filepath.Join(dir, "missing", "x.rs"))
	assert.Error(t, err)
}
