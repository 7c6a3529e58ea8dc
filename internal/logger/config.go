// Package logger wraps log/slog with printf-style helpers and
// tag, package and file filtering.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// debugFilter prints every filtering decision to stderr. Only useful when
// working on the logger itself.
var debugFilter = false

// Config holds all settings for the logger.
type Config struct {
	// LogLevel is the minimum level to log ("debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`

	// LogFilePath is the output file. Empty or "-" means stderr.
	LogFilePath string `toml:"log_file"`

	// --- Filtering Options ---

	// EnabledTags only logs messages with these tags (if non-empty).
	EnabledTags []string `toml:"enabled_tags"`
	// DisabledTags drops messages with these tags. Overrides EnabledTags.
	DisabledTags []string `toml:"disabled_tags"`

	// EnabledPackages only logs messages from these packages (directory name, e.g. "find").
	EnabledPackages []string `toml:"enabled_packages"`
	// DisabledPackages drops messages from these packages. Overrides EnabledPackages.
	DisabledPackages []string `toml:"disabled_packages"`

	// EnabledFiles only logs messages from these base file names (e.g. "document.go").
	EnabledFiles []string `toml:"enabled_files"`
	// DisabledFiles drops messages from these files. Overrides EnabledFiles.
	DisabledFiles []string `toml:"disabled_files"`

	// --- Internal processed fields ---
	level    slog.Level
	tags     filterSet
	packages filterSet
	files    filterSet
}

// filterSet is an allow list and a deny list. A nil map means "not set".
type filterSet struct {
	enabled  map[string]struct{}
	disabled map[string]struct{}
}

// allows reports whether key passes the set. The deny list wins.
func (f filterSet) allows(key string) bool {
	key = strings.ToLower(key)
	if _, found := f.disabled[key]; found {
		return false
	}
	if f.enabled != nil {
		_, found := f.enabled[key]
		return found
	}
	return true
}

// NewConfig creates a Config with default values.
func NewConfig() Config {
	return Config{
		LogLevel:    "info",
		LogFilePath: "kite.log",
	}
}

// ParseLevel maps a level name to a slog.Level. Unknown names give Info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// process turns the string lists into lookup sets.
func (c *Config) process() {
	c.level = ParseLevel(c.LogLevel)
	c.tags = filterSet{enabled: sliceToSet(c.EnabledTags), disabled: sliceToSet(c.DisabledTags)}
	c.packages = filterSet{enabled: sliceToSet(c.EnabledPackages), disabled: sliceToSet(c.DisabledPackages)}
	c.files = filterSet{enabled: sliceToSet(c.EnabledFiles), disabled: sliceToSet(c.DisabledFiles)}

	if debugFilter {
		fmt.Fprintf(os.Stderr, "[CONFIG PROCESS] level=%s packages=%+v files=%+v tags=%+v\n",
			c.level, c.packages, c.files, c.tags)
	}
}

func sliceToSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			set[strings.ToLower(item)] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}
