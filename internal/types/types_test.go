package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagString(t *testing.T) {
	assert.Equal(t, "Default", TagNone.String())
	assert.Equal(t, "Keyword", TagKeywordPrimary.String())
	assert.Equal(t, "Search.Current", TagPrimaryMatch.String())
	assert.Equal(t, "Default", Tag(200).String())
	assert.True(t, TagMatch.IsSearchOverlay())
	assert.False(t, TagString.IsSearchOverlay())
}
