// internal/theme/loader.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/kite/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// TomlStyleDef is one style in a theme file. Pointers tell unset
// attributes from false ones, so unset attributes inherit from Default.
type TomlStyleDef struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

// TomlTheme is the layout of a theme file:
//
//	name = "Solarized"
//	is_dark = true
//	[styles.Default]
//	fg = "#839496"
//	[styles."Keyword.Secondary"]
//	fg = "yellow"
//	bold = true
type TomlTheme struct {
	Name   string                  `toml:"name"`
	IsDark bool                    `toml:"is_dark"`
	Styles map[string]TomlStyleDef `toml:"styles"`
}

// LoadThemeFromFile reads and parses a theme file. A file without a name
// is named after the file.
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file '%s': %w", filePath, err)
	}
	fallback := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	t, err := ParseTheme(string(data), fallback)
	if err != nil {
		return nil, fmt.Errorf("theme file '%s': %w", filePath, err)
	}
	return t, nil
}

// ParseTheme converts TOML theme text to a Theme.
func ParseTheme(data, fallbackName string) (*Theme, error) {
	var tt TomlTheme
	metadata, err := toml.Decode(data, &tt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML theme: %w", err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Theme '%s': unrecognized keys: %v", tt.Name, undecoded)
	}
	if tt.Name == "" {
		tt.Name = fallbackName
	}

	t := &Theme{Name: tt.Name, IsDark: tt.IsDark, Styles: make(map[string]tcell.Style, len(tt.Styles)+1)}

	base := tcell.StyleDefault
	if def, ok := tt.Styles[StyleDefault]; ok {
		if base, err = convertTomlStyle(def, tcell.StyleDefault); err != nil {
			logger.Warnf("Theme '%s': bad Default style, using terminal default: %v", t.Name, err)
			base = tcell.StyleDefault
		}
	}
	t.Styles[StyleDefault] = base

	for name, def := range tt.Styles {
		if name == StyleDefault {
			continue
		}
		style, err := convertTomlStyle(def, base)
		if err != nil {
			logger.Warnf("Theme '%s': skipping style '%s': %v", t.Name, name, err)
			continue
		}
		t.Styles[name] = style
	}
	return t, nil
}

func convertTomlStyle(def TomlStyleDef, base tcell.Style) (tcell.Style, error) {
	style := base
	if def.Fg != nil {
		c, err := parseColorString(*def.Fg)
		if err != nil {
			return style, fmt.Errorf("foreground: %w", err)
		}
		style = style.Foreground(c)
	}
	if def.Bg != nil {
		c, err := parseColorString(*def.Bg)
		if err != nil {
			return style, fmt.Errorf("background: %w", err)
		}
		style = style.Background(c)
	}
	if def.Bold != nil {
		style = style.Bold(*def.Bold)
	}
	if def.Italic != nil {
		style = style.Italic(*def.Italic)
	}
	if def.Underline != nil {
		style = style.Underline(*def.Underline)
	}
	if def.Reverse != nil {
		style = style.Reverse(*def.Reverse)
	}
	return style, nil
}

// parseColorString accepts "#RRGGBB", the W3C colour names tcell knows
// ("red", "darkcyan", ...), "reset" and "default".
func parseColorString(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "reset":
		return tcell.ColorReset, nil
	case "default", "":
		return tcell.ColorDefault, nil
	}
	if strings.HasPrefix(s, "#") && len(s) != 7 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color '%s', must be #RRGGBB", s)
	}
	if c := tcell.GetColor(s); c != tcell.ColorDefault {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color '%s'", s)
}
