// internal/types/highlight.go
package types

// Tag classifies one character of a row for rendering.
type Tag uint8

const (
	TagNone Tag = iota
	TagComment
	TagKeywordPrimary
	TagKeywordSecondary
	TagString
	TagCharacter
	TagNumber
	TagType
	// Search overlay tags. They only exist while a search session is active.
	TagMatch
	TagPrimaryMatch
)

var tagNames = [...]string{
	TagNone:             "Default",
	TagComment:          "Comment",
	TagKeywordPrimary:   "Keyword",
	TagKeywordSecondary: "Keyword.Secondary",
	TagString:           "String",
	TagCharacter:        "String.Character",
	TagNumber:           "Number",
	TagType:             "Type",
	TagMatch:            "Search.Match",
	TagPrimaryMatch:     "Search.Current",
}

// String returns the theme style name used to paint the tag.
func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return tagNames[TagNone]
}

// IsSearchOverlay reports whether the tag is a transient search tag.
func (t Tag) IsSearchOverlay() bool {
	return t == TagMatch || t == TagPrimaryMatch
}
