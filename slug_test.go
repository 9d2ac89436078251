package main

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct{ title, want string }{
		{"Intro", "intro"},
		{"  Getting Started  ", "getting-started"},
		{"FAQ & Troubleshooting", "faq--troubleshooting"},
		{"What's new in v2.0?", "whats-new-in-v20"},
		{"snake_case and-kebab", "snake_case-and-kebab"},
		{"Über Straße", "über-straße"},
		{"日本語 見出し", "日本語-見出し"},
		{"(parenthesized) [text]", "parenthesized-text"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, slugify(tc.title), "title %q", tc.title)
	}
}

func TestSlugifyCharacterSet(t *testing.T) {
	allowed := regexp.MustCompile(`^[\p{Ll}\p{Lo}\p{N}_-]*$`)
	for _, title := range []string{"Hello, World!", "A/B Testing", "C++ & Go", "Tabs\tand spaces", "100% Done."} {
		slug := slugify(title)
		assert.Regexp(t, allowed, slug, "title %q", title)
		assert.NotContains(t, slug, " ")
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	assert.Equal(t, slugify("Setup"), slugify("Setup"))
	assert.Equal(t, slugify("Setup!"), slugify("  setup "))
}
