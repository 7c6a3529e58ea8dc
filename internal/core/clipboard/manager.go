package clipboard

import (
	"github.com/atotto/clipboard"
	"github.com/bethropolis/kite/internal/logger"
)

// Manager holds copied text. With the system clipboard enabled it also
// goes through the OS clipboard and falls back to its own register when
// that fails (no X display, no xclip, ...).
type Manager struct {
	useSystem bool
	register  string
}

// NewManager creates a clipboard. useSystem is ignored on platforms the
// clipboard library does not support.
func NewManager(useSystem bool) *Manager {
	if useSystem && clipboard.Unsupported {
		logger.Infof("System clipboard unsupported here, using internal register")
		useSystem = false
	}
	return &Manager{useSystem: useSystem}
}

// UsesSystem reports whether the OS clipboard is in use.
func (m *Manager) UsesSystem() bool { return m.useSystem }

// Copy stores text.
func (m *Manager) Copy(text string) {
	m.register = text
	if !m.useSystem {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		logger.Warnf("clipboard: system write failed, kept internally: %v", err)
	}
}

// Paste returns the most recent text, preferring the OS clipboard.
func (m *Manager) Paste() string {
	if m.useSystem {
		text, err := clipboard.ReadAll()
		if err == nil {
			return text
		}
		logger.Warnf("clipboard: system read failed, using internal register: %v", err)
	}
	return m.register
}
