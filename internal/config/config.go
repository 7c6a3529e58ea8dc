// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/kite/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`

	// Undecoded lists keys found in the file that no field knows about.
	// They are reported once the logger is up.
	Undecoded []string `toml:"-"`
	// Source is the file the configuration came from, empty for defaults.
	Source string `toml:"-"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int    `toml:"tab_width"`
	SystemClipboard bool   `toml:"system_clipboard"`
	Theme           string `toml:"theme"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			SystemClipboard: SystemClipboard,
			Theme:           DefaultThemeName,
		},
	}
}

// DefaultConfigPath returns ~/.config/kite/config.toml, or "" when the
// user config directory is unknown.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, ConfigDirName, DefaultConfigFileName)
}

// decodeFile decodes a TOML file over cfg, so keys missing from the file
// keep their current values. A missing file is not an error.
func decodeFile(filePath string, cfg *Config) error {
	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	cfg.Source = filePath
	for _, key := range metadata.Undecoded() {
		cfg.Undecoded = append(cfg.Undecoded, key.String())
	}
	return nil
}

// validate resets invalid values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 || c.Editor.TabWidth > 32 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.Theme == "" {
		c.Editor.Theme = defaults.Editor.Theme
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Load builds the configuration: defaults, then the TOML file, then the
// flags that were set on the command line, then validation. configFilePath
// "" means the default location. The logger is not initialized yet, so
// nothing is logged here.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	path := configFilePath
	if path == "" {
		path = DefaultConfigPath()
	}

	var loadErr error
	if path != "" {
		// A broken file still yields a usable config of defaults.
		if err := decodeFile(path, cfg); err != nil {
			cfg = NewDefaultConfig()
			loadErr = err
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, loadErr
}

// ReportUndecoded logs unknown keys found while loading.
func (c *Config) ReportUndecoded() {
	if len(c.Undecoded) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", c.Source, c.Undecoded)
	}
}
