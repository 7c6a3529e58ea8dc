// internal/theme/manager.go
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bethropolis/kite/internal/config"
	"github.com/bethropolis/kite/internal/logger"
)

// Manager holds loaded themes and the active one.
type Manager struct {
	mutex       sync.RWMutex
	themes      map[string]*Theme // Lower-case name -> theme
	activeTheme *Theme
	themesDir   string
}

// DefaultThemesDir returns ~/.config/kite/themes, or "".
func DefaultThemesDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, config.ConfigDirName, config.ThemesDirName)
}

// NewManager loads the built-in themes and every *.toml file in
// themesDir. An empty themesDir skips the directory.
func NewManager(themesDir string) *Manager {
	m := &Manager{themes: make(map[string]*Theme), themesDir: themesDir}
	m.add(KiteDark)
	m.add(KiteLight)

	if themesDir != "" {
		if err := m.LoadThemesFromDir(); err != nil {
			logger.Errorf("Error loading themes from '%s': %v", themesDir, err)
		}
	}
	m.activeTheme = KiteDark
	return m
}

func (m *Manager) add(t *Theme) {
	key := strings.ToLower(t.Name)
	if existing, ok := m.themes[key]; ok && existing != t {
		logger.Warnf("Theme '%s' overrides existing theme '%s'", t.Name, existing.Name)
	}
	m.themes[key] = t
}

// LoadThemesFromDir loads every *.toml file in the themes directory. A
// missing directory is not an error. Broken files are skipped.
func (m *Manager) LoadThemesFromDir() error {
	files, err := os.ReadDir(m.themesDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debugf("Theme directory '%s' does not exist", m.themesDir)
			return nil
		}
		return fmt.Errorf("failed to read theme directory '%s': %w", m.themesDir, err)
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	loaded := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(strings.ToLower(file.Name()), ".toml") {
			continue
		}
		path := filepath.Join(m.themesDir, file.Name())
		t, err := LoadThemeFromFile(path)
		if err != nil {
			logger.Warnf("Failed to load theme from '%s': %v", path, err)
			continue
		}
		m.add(t)
		loaded++
	}
	logger.Infof("Loaded %d custom themes from %s", loaded, m.themesDir)
	return nil
}

// Current returns the active theme.
func (m *Manager) Current() *Theme {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.activeTheme
}

// SetTheme activates a theme by name, case-insensitively.
func (m *Manager) SetTheme(name string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	t, ok := m.themes[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("theme '%s' not found", name)
	}
	if m.activeTheme != t {
		m.activeTheme = t
		logger.Infof("Active theme set to: %s", t.Name)
	}
	return nil
}

// ListThemes returns the names of all loaded themes, sorted.
func (m *Manager) ListThemes() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	names := make([]string, 0, len(m.themes))
	for _, t := range m.themes {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}
