package service

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// Matcher decides whether a message text carries one of the configured
// hashtags. It is stateless after construction and safe for concurrent use.
type Matcher struct {
	pattern *regexp.Regexp
	tags    []string
}

// New creates a matcher for a set of normalized tags (lowercase, no
// leading '#'). An empty tag set produces a matcher that never matches,
// so a misconfigured bot relays nothing rather than everything.
func New(tags []string) *Matcher {
	tags = lo.Filter(tags, func(tag string, _ int) bool {
		return strings.TrimSpace(tag) != ""
	})
	if len(tags) == 0 {
		return &Matcher{}
	}

	// Tags are operator-supplied strings, not trusted regex literals.
	escaped := lo.Map(tags, func(tag string, _ int) string {
		return regexp.QuoteMeta(tag)
	})

	// A tag matches only as a whole hashtag token: preceded by start of
	// text or whitespace, and not followed by a word character, so that
	// configured "news" does not match inside "#newsroom".
	pattern := regexp.MustCompile(`(?i)(?:^|\s)#(?:` + strings.Join(escaped, "|") + `)(?:$|[^\w])`)

	return &Matcher{
		pattern: pattern,
		tags:    tags,
	}
}

// Matches reports whether the text contains any of the configured tags
// as a whole hashtag token. Matching is case-insensitive.
func (m *Matcher) Matches(text string) bool {
	if m.pattern == nil {
		return false
	}
	return m.pattern.MatchString(text)
}

// Tags returns the normalized tags the matcher was built with.
func (m *Matcher) Tags() []string {
	return m.tags
}
