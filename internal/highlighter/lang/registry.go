package lang

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/bethropolis/kite/internal/logger"
)

var registry struct {
	sync.RWMutex
	languages     []*Language
	extToLanguage map[string]*Language
}

// Register adds a language to the registry. A later registration of the
// same extension wins.
func Register(l *Language) {
	registry.Lock()
	defer registry.Unlock()

	if registry.extToLanguage == nil {
		registry.extToLanguage = make(map[string]*Language)
	}
	registry.languages = append(registry.languages, l)

	for _, ext := range l.Extensions {
		lowerExt := strings.ToLower(ext)
		if existing, ok := registry.extToLanguage[lowerExt]; ok {
			logger.Warnf("Extension %s already registered to %s, overriding with %s",
				lowerExt, existing.Name, l.Name)
		}
		registry.extToLanguage[lowerExt] = l
	}

	logger.Debugf("Registered language: %s with extensions: %v", l.Name, l.Extensions)
}

// GetForFile returns the registered language for a path, or nil.
func GetForFile(filePath string) *Language {
	registry.RLock()
	defer registry.RUnlock()

	return registry.extToLanguage[strings.ToLower(filepath.Ext(filePath))]
}

// GetAll returns all registered languages.
func GetAll() []*Language {
	registry.RLock()
	defer registry.RUnlock()

	result := make([]*Language, len(registry.languages))
	copy(result, registry.languages)
	return result
}

// Detect picks the language for a path. Registered languages come first.
// Otherwise chroma's lexer table is asked for a name so the status bar can
// say "Python" or "Makefile"; such languages have no highlighting.
func Detect(filePath string) *Language {
	if filePath == "" {
		return Plain
	}
	if l := GetForFile(filePath); l != nil {
		return l
	}
	if lexer := lexers.Match(filepath.Base(filePath)); lexer != nil {
		if name := lexer.Config().Name; name != "" {
			logger.DebugTagf("lang", "No grammar for %s, named %q by lexer table", filePath, name)
			return &Language{Name: name}
		}
	}
	return Plain
}
