// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/kite/internal/logger"
	"github.com/bethropolis/kite/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Style names used outside the text area.
const (
	StyleDefault           = "Default"
	StyleStatusBar         = "StatusBar"
	StyleStatusBarModified = "StatusBar.Modified"
	StyleStatusBarMessage  = "StatusBar.Message"
	StyleStatusBarPrompt   = "StatusBar.Prompt"
	StyleTilde             = "Tilde" // Filler for rows past the end of the document
)

// Theme maps style names to tcell styles. Names are dotted, e.g.
// "Keyword.Secondary"; a missing name falls back to the part before the dot.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle resolves name: exact match, base name before the first dot,
// "Default", then tcell's default style.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if base, _, found := strings.Cut(name, "."); found {
		if style, ok := t.Styles[base]; ok {
			return style
		}
	}

	if style, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.DebugTagf("theme", "Theme '%s': style '%s' not found, using Default", t.Name, name)
		}
		return style
	}

	logger.Warnf("Theme '%s': neither '%s' nor Default defined, using terminal default", t.Name, name)
	return tcell.StyleDefault
}

// TagStyle returns the style used to paint a highlight tag.
func (t *Theme) TagStyle(tag types.Tag) tcell.Style {
	return t.GetStyle(tag.String())
}

// --- Built-in themes ---

// KiteDark is the default theme.
var KiteDark = newKiteDark()

func newKiteDark() *Theme {
	bg := tcell.NewHexColor(0x2a2f38)
	fg := tcell.NewHexColor(0xc5cdd9)
	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(fg)

	return &Theme{
		Name:   "Kite Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault: base,

			"Number":            base.Foreground(tcell.NewRGBColor(244, 162, 97)),
			"String":            base.Foreground(tcell.NewRGBColor(233, 237, 201)),
			"String.Character":  base.Foreground(tcell.NewRGBColor(255, 200, 221)),
			"Comment":           base.Foreground(tcell.NewRGBColor(133, 153, 0)).Italic(true),
			"Keyword":           base.Foreground(tcell.ColorGreen).Bold(true),
			"Keyword.Secondary": base.Foreground(tcell.ColorYellow),
			"Type":              base.Foreground(tcell.NewHexColor(0x56b6c2)),
			"Search.Match":      base.Foreground(tcell.ColorBlack).Background(tcell.ColorDarkCyan),
			"Search.Current":    base.Foreground(tcell.ColorBlack).Background(tcell.ColorOrange).Bold(true),

			StyleTilde:             base.Foreground(tcell.NewHexColor(0x5c6370)),
			StyleStatusBar:         tcell.StyleDefault.Background(bg).Foreground(fg),
			StyleStatusBarModified: tcell.StyleDefault.Background(bg).Foreground(tcell.NewHexColor(0xe5c07b)),
			StyleStatusBarMessage:  tcell.StyleDefault.Background(bg).Foreground(fg).Bold(true),
			StyleStatusBarPrompt:   tcell.StyleDefault.Background(bg).Foreground(tcell.NewHexColor(0x98c379)).Bold(true),
		},
	}
}

// KiteLight is a light counterpart using only palette colours.
var KiteLight = &Theme{
	Name: "Kite Light",
	Styles: map[string]tcell.Style{
		StyleDefault:        tcell.StyleDefault,
		"Number":            tcell.StyleDefault.Foreground(tcell.ColorMaroon),
		"String":            tcell.StyleDefault.Foreground(tcell.ColorGreen),
		"String.Character":  tcell.StyleDefault.Foreground(tcell.ColorPurple),
		"Comment":           tcell.StyleDefault.Foreground(tcell.ColorGray).Italic(true),
		"Keyword":           tcell.StyleDefault.Foreground(tcell.ColorNavy).Bold(true),
		"Keyword.Secondary": tcell.StyleDefault.Foreground(tcell.ColorTeal),
		"Type":              tcell.StyleDefault.Foreground(tcell.ColorOlive),
		"Search":            tcell.StyleDefault.Reverse(true),
		"Search.Current":    tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack),
		StyleTilde:          tcell.StyleDefault.Foreground(tcell.ColorSilver),
		StyleStatusBar:      tcell.StyleDefault.Reverse(true),
	},
}
