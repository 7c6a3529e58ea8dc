// internal/highlighter/lang/language.go
package lang

// Options selects which token categories a language highlights and the
// tokens that drive them. A zero Options highlights nothing.
type Options struct {
	Numbers    bool
	Strings    bool
	Characters bool
	Comments   bool
	Types      bool // Capitalised identifiers are tagged as types

	LineComment  string // e.g. "//"
	StringQuotes string // Each rune opens and closes a string, e.g. "\"`"
	CharQuote    rune   // Opens and closes a character literal, e.g. '\''

	PrimaryKeywords   []string
	SecondaryKeywords []string
}

// Language is a file type: a display name, the extensions it claims and
// its highlighting options. Languages are immutable once registered.
type Language struct {
	// Name is the display name shown in the status bar.
	Name string

	// Extensions are matched case-insensitively, including the dot.
	Extensions []string

	Options Options
}

// Plain is the language of files nothing else claims.
var Plain = &Language{Name: "Text"}

// HasHighlighting reports whether any category is switched on.
func (l *Language) HasHighlighting() bool {
	o := l.Options
	return o.Numbers || o.Strings || o.Characters || o.Comments || o.Types ||
		len(o.PrimaryKeywords) > 0 || len(o.SecondaryKeywords) > 0
}
