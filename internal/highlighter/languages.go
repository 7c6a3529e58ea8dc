// internal/highlighter/languages.go
package highlighter

import (
	"sync"

	"github.com/bethropolis/kite/internal/highlighter/lang"
	"github.com/bethropolis/kite/internal/logger"
)

var registerOnce sync.Once

// Rust is the built-in Rust grammar.
var Rust = &lang.Language{
	Name:       "Rust",
	Extensions: []string{".rs"},
	Options: lang.Options{
		Numbers:      true,
		Strings:      true,
		Characters:   true,
		Comments:     true,
		LineComment:  "//",
		StringQuotes: `"`,
		CharQuote:    '\'',
		PrimaryKeywords: []string{
			"as", "break", "const", "continue", "crate", "else", "enum", "extern",
			"false", "fn", "for", "if", "impl", "in", "let", "loop", "match", "mod",
			"move", "mut", "pub", "ref", "return", "self", "Self", "static", "struct",
			"super", "trait", "true", "type", "unsafe", "use", "where", "while",
			"dyn", "abstract", "become", "box", "do", "final", "macro", "override",
			"priv", "typeof", "unsized", "virtual", "yield", "async", "await", "try",
		},
		SecondaryKeywords: []string{
			"bool", "char", "i8", "i16", "i32", "i64", "i128", "isize",
			"u8", "u16", "u32", "u64", "u128", "usize", "f32", "f64", "str",
		},
	},
}

// Go is the built-in Go grammar. Raw strings use backquotes.
var Go = &lang.Language{
	Name:       "Go",
	Extensions: []string{".go"},
	Options: lang.Options{
		Numbers:      true,
		Strings:      true,
		Characters:   true,
		Comments:     true,
		Types:        true,
		LineComment:  "//",
		StringQuotes: "\"`",
		CharQuote:    '\'',
		PrimaryKeywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer", "else",
			"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
			"map", "package", "range", "return", "select", "struct", "switch", "type",
			"var", "true", "false", "nil", "iota",
		},
		SecondaryKeywords: []string{
			"bool", "byte", "complex64", "complex128", "error", "float32", "float64",
			"int", "int8", "int16", "int32", "int64", "rune", "string",
			"uint", "uint8", "uint16", "uint32", "uint64", "uintptr", "any",
		},
	},
}

// RegisterLanguages registers the built-in grammars once.
func RegisterLanguages() {
	registerOnce.Do(func() {
		lang.Register(Rust)
		lang.Register(Go)
		logger.Debugf("Registration complete. Registered %d languages.", len(lang.GetAll()))
	})
}
