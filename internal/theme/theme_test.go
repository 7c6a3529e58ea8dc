package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/kite/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStyleFallback(t *testing.T) {
	def := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	kw := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	th := &Theme{Name: "t", Styles: map[string]tcell.Style{
		StyleDefault: def,
		"Keyword":    kw,
	}}

	assert.Equal(t, kw, th.GetStyle("Keyword"))
	assert.Equal(t, kw, th.GetStyle("Keyword.Secondary"), "falls back to base name")
	assert.Equal(t, def, th.GetStyle("Comment"))
	assert.Equal(t, kw, th.TagStyle(types.TagKeywordSecondary))

	empty := &Theme{Name: "empty", Styles: map[string]tcell.Style{}}
	assert.Equal(t, tcell.StyleDefault, empty.GetStyle("Comment"))
}

func TestKiteDarkCoversTags(t *testing.T) {
	for tag := types.TagNone; tag <= types.TagPrimaryMatch; tag++ {
		_, ok := KiteDark.Styles[tag.String()]
		assert.True(t, ok, "missing style for %s", tag)
	}
	fg, _, _ := KiteDark.TagStyle(types.TagNumber).Decompose()
	assert.Equal(t, tcell.NewRGBColor(244, 162, 97), fg)
}

func TestParseTheme(t *testing.T) {
	data := `
is_dark = true
[styles.Default]
fg = "#ffffff"
bg = "black"
[styles.Comment]
fg = "gray"
italic = true
[styles.Broken]
fg = "notacolor"
`
	th, err := ParseTheme(data, "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", th.Name)
	assert.True(t, th.IsDark)

	fg, bg, _ := th.GetStyle(StyleDefault).Decompose()
	assert.Equal(t, tcell.NewHexColor(0xffffff), fg)
	assert.Equal(t, tcell.ColorBlack, bg)

	fg, bg, attrs := th.GetStyle("Comment").Decompose()
	assert.Equal(t, tcell.ColorGray, fg)
	assert.Equal(t, tcell.ColorBlack, bg, "inherits Default background")
	assert.NotZero(t, attrs&tcell.AttrItalic)

	_, ok := th.Styles["Broken"]
	assert.False(t, ok)
}

func TestParseThemeInvalidTOML(t *testing.T) {
	_, err := ParseTheme("name = ", "x")
	assert.Error(t, err)
}

func TestParseColorString(t *testing.T) {
	c, err := parseColorString("#FF0000")
	require.NoError(t, err)
	assert.Equal(t, tcell.NewHexColor(0xff0000), c)

	c, err = parseColorString("reset")
	require.NoError(t, err)
	assert.Equal(t, tcell.ColorReset, c)

	_, err = parseColorString("#fff")
	assert.Error(t, err)
	_, err = parseColorString("nope")
	assert.Error(t, err)
}

func TestManager(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ocean.toml"), []byte("name = \"Ocean\"\n[styles.Default]\nfg = \"blue\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.toml"), []byte("name = "), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	m := NewManager(dir)
	assert.Equal(t, KiteDark, m.Current())
	assert.Equal(t, []string{"Kite Dark", "Kite Light", "Ocean"}, m.ListThemes())

	require.NoError(t, m.SetTheme("ocean"))
	assert.Equal(t, "Ocean", m.Current().Name)

	assert.Error(t, m.SetTheme("missing"))
	assert.Equal(t, "Ocean", m.Current().Name)
}

func TestManagerMissingDir(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "nope"))
	assert.Equal(t, []string{"Kite Dark", "Kite Light"}, m.ListThemes())
}
