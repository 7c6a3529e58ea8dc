// internal/highlighter/highlighter.go
package highlighter

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bethropolis/kite/internal/highlighter/lang"
	"github.com/bethropolis/kite/internal/types"
)

// maxEscapeLiteral bounds the lookahead for an escaped character literal
// such as '\u{1F600}'.
const maxEscapeLiteral = 12

// State is what a row hands to the next one. OpenLiteral records that the
// row ended inside an unterminated string or character literal.
type State struct {
	OpenLiteral bool
}

// Highlight tags every character of one row. It is a pure function: the
// same characters, options and state always give the same tags.
//
// prev is the state of the row above. The built-in grammars have no
// constructs spanning rows, so every row is scanned from a reset state and
// a literal left open at the end of a row closes there.
func Highlight(chars []string, opts *lang.Options, prev State) ([]types.Tag, State) {
	tags := make([]types.Tag, len(chars))
	if opts == nil || len(chars) == 0 {
		return tags, State{}
	}

	s := scanner{chars: chars, opts: opts, tags: tags}
	for s.i < len(chars) {
		switch {
		case s.open != 0:
			s.continueLiteral()
		case s.atComment():
			s.fill(s.i, len(chars), types.TagComment)
			s.i = len(chars)
		case s.atStringQuote():
			s.openLiteral(types.TagString)
		case s.atCharQuote():
			if s.charLiteralAhead() {
				s.openLiteral(types.TagCharacter)
			} else {
				s.i++ // Lifetime or stray apostrophe
			}
		case s.atNumber():
			s.number()
		case isWordChar(chars[s.i]):
			s.word()
		default:
			s.i++
		}
	}
	return tags, State{OpenLiteral: s.open != 0}
}

type scanner struct {
	chars   []string
	opts    *lang.Options
	tags    []types.Tag
	i       int
	open    rune // Quote of the literal being scanned, 0 outside literals
	openTag types.Tag
}

func (s *scanner) fill(from, to int, tag types.Tag) {
	for j := from; j < to; j++ {
		s.tags[j] = tag
	}
}

func (s *scanner) openLiteral(tag types.Tag) {
	s.open = singleRune(s.chars[s.i])
	s.openTag = tag
	s.tags[s.i] = tag
	s.i++
}

// continueLiteral tags one character (two for an escape) of an open literal.
func (s *scanner) continueLiteral() {
	ch := s.chars[s.i]
	s.tags[s.i] = s.openTag
	if ch == `\` && s.i+1 < len(s.chars) {
		s.tags[s.i+1] = s.openTag
		s.i += 2
		return
	}
	if singleRune(ch) == s.open {
		s.open = 0
	}
	s.i++
}

func (s *scanner) atComment() bool {
	delim := s.opts.LineComment
	if !s.opts.Comments || delim == "" {
		return false
	}
	var sb strings.Builder
	for j := s.i; j < len(s.chars) && sb.Len() < len(delim); j++ {
		sb.WriteString(s.chars[j])
	}
	return sb.String() == delim
}

func (s *scanner) atStringQuote() bool {
	r := singleRune(s.chars[s.i])
	return s.opts.Strings && r != 0 && strings.ContainsRune(s.opts.StringQuotes, r)
}

func (s *scanner) atCharQuote() bool {
	return s.opts.Characters && s.opts.CharQuote != 0 && singleRune(s.chars[s.i]) == s.opts.CharQuote
}

// charLiteralAhead decides whether the quote at s.i opens a character
// literal: 'x' with exactly one character, or an escape such as '\n' or
// '\u{41}' closed within a short distance. A quote right after a word
// character never opens one.
func (s *scanner) charLiteralAhead() bool {
	if s.i > 0 && isWordChar(s.chars[s.i-1]) {
		return false
	}
	quote := s.opts.CharQuote
	if s.i+2 < len(s.chars) && s.chars[s.i+1] != `\` && singleRune(s.chars[s.i+2]) == quote {
		return true
	}
	if s.i+1 >= len(s.chars) || s.chars[s.i+1] != `\` {
		return false
	}
	for j := s.i + 3; j < len(s.chars) && j <= s.i+maxEscapeLiteral; j++ {
		ch := s.chars[j]
		if singleRune(ch) == quote {
			return true
		}
		if strings.TrimSpace(ch) == "" {
			return false
		}
	}
	return false
}

func (s *scanner) atNumber() bool {
	if !s.opts.Numbers || !isDigit(s.chars[s.i]) {
		return false
	}
	return s.i == 0 || !isWordChar(s.chars[s.i-1])
}

// number tags a run of digits with at most one embedded decimal point.
func (s *scanner) number() {
	start := s.i
	seenDot := false
	for s.i < len(s.chars) {
		ch := s.chars[s.i]
		if isDigit(ch) {
			s.i++
			continue
		}
		if ch == "." && !seenDot && s.i+1 < len(s.chars) && isDigit(s.chars[s.i+1]) {
			seenDot = true
			s.i++
			continue
		}
		break
	}
	s.fill(start, s.i, types.TagNumber)
}

// word consumes a maximal identifier and tags it when it is a keyword or,
// with Types on, a capitalised name. The rest of a run that began with a
// number (a suffix such as the u32 of 5u32) never matches.
func (s *scanner) word() {
	start := s.i
	for s.i < len(s.chars) && isWordChar(s.chars[s.i]) {
		s.i++
	}
	if start > 0 && isWordChar(s.chars[start-1]) {
		return
	}
	word := strings.Join(s.chars[start:s.i], "")

	tag := types.TagNone
	switch {
	case slices.Contains(s.opts.PrimaryKeywords, word):
		tag = types.TagKeywordPrimary
	case slices.Contains(s.opts.SecondaryKeywords, word):
		tag = types.TagKeywordSecondary
	case s.opts.Types:
		if r, _ := utf8.DecodeRuneInString(word); unicode.IsUpper(r) {
			tag = types.TagType
		}
	}
	s.fill(start, s.i, tag)
}

// --- Character classes ---

// singleRune returns the rune of a one-rune character, or 0.
func singleRune(ch string) rune {
	r, size := utf8.DecodeRuneInString(ch)
	if size != len(ch) || r == utf8.RuneError {
		return 0
	}
	return r
}

func isDigit(ch string) bool {
	r := singleRune(ch)
	return r >= '0' && r <= '9'
}

// isWordChar reports whether ch can be part of an identifier. Everything
// that is not whitespace or ASCII punctuation is, except that '_' joins words.
func isWordChar(ch string) bool {
	r, _ := utf8.DecodeRuneInString(ch)
	if r == '_' {
		return true
	}
	if unicode.IsSpace(r) || unicode.IsControl(r) {
		return false
	}
	return r >= utf8.RuneSelf || !(unicode.IsPunct(r) || unicode.IsSymbol(r))
}
