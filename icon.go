package main

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// iconRanges approximates "emoji-like" code points: Miscellaneous Symbols and
// Dingbats, plus the pictograph blocks from U+1F300 through U+1FAFF.
var iconRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2600, Hi: 0x27BF, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1F300, Hi: 0x1FAFF, Stride: 1},
	},
}

// splitIcon separates a single leading pictograph from the heading text.
// Only one code point is recognized, so sequences such as "⚙️" (gear plus
// variation selector) stay part of the title.
func splitIcon(text string) (string, string) {
	text = strings.TrimSpace(text)
	head, rest, ok := strings.Cut(text, " ")
	if !ok || !isIcon(head) {
		return "", text
	}
	return head, strings.TrimSpace(rest)
}

func isIcon(s string) bool {
	if utf8.RuneCountInString(s) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.Is(iconRanges, r)
}
