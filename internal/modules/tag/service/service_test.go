package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcher_WholeTokenBoundaries(t *testing.T) {
	m := New([]string{"news"})

	assert.False(t, m.Matches("see #newsroom"), "tag must not match inside a longer token")
	assert.True(t, m.Matches("see #news today"))
	assert.True(t, m.Matches("#news"))
	assert.True(t, m.Matches("breaking: #news, more later"))
	assert.False(t, m.Matches("see #news_extra"), "underscore continues the token")
	assert.False(t, m.Matches("prefix#news"), "hashtag must start the text or follow whitespace")
	assert.False(t, m.Matches("plain news without a hashtag"))
}

func TestMatcher_CaseInsensitive(t *testing.T) {
	m := New([]string{"news"})

	assert.True(t, m.Matches("#News"))
	assert.True(t, m.Matches("#NEWS"))
}

func TestMatcher_MultipleTags(t *testing.T) {
	m := New([]string{"news", "alerts"})

	assert.True(t, m.Matches("morning #alerts digest"))
	assert.True(t, m.Matches("morning #news digest"))
	assert.False(t, m.Matches("morning #digest"))
}

func TestMatcher_EmptyTagSetNeverMatches(t *testing.T) {
	m := New(nil)

	assert.False(t, m.Matches("#news"))
	assert.False(t, m.Matches("anything at all"))
}

func TestMatcher_BlankTagsFiltered(t *testing.T) {
	m := New([]string{"", "  "})

	assert.False(t, m.Matches("#news"))
	assert.Empty(t, m.Tags())
}

func TestMatcher_RegexMetacharactersEscaped(t *testing.T) {
	m := New([]string{"c++"})

	assert.True(t, m.Matches("learning #c++ today"))
	assert.False(t, m.Matches("learning #ccc today"))
}
