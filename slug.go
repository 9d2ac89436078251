package main

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// slugUnsafe matches everything GitHub drops from a heading anchor: any rune
// that is not a letter, number, underscore, hyphen or space.
var slugUnsafe = regexp.MustCompile(`[^\p{L}\p{N}_\- ]+`)

// slugify converts a heading title into the fragment identifier GitHub
// assigns to it. Repeated titles yield repeated slugs.
func slugify(title string) string {
	text := cases.Lower(language.Und).String(strings.TrimSpace(title))
	text = slugUnsafe.ReplaceAllString(text, "")
	return strings.ReplaceAll(text, " ", "-")
}
