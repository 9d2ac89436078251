package main

import (
	"fmt"
	"strconv"
	"strings"
)

type indexOptions struct {
	links    bool
	numbered bool
}

// indexRenderer turns headings into Markdown list items. counters holds the
// outline number of the most recent heading at each depth.
type indexRenderer struct {
	options  indexOptions
	counters []int
}

// renderIndex returns one list item per heading, in document order.
func renderIndex(headings []heading, opts indexOptions) []string {
	r := indexRenderer{options: opts}
	lines := make([]string, 0, len(headings))
	for _, h := range headings {
		lines = append(lines, r.renderHeading(h))
	}
	return lines
}

func (r *indexRenderer) renderHeading(h heading) string {
	number := r.advance(h.level)
	label := h.title
	if r.options.numbered {
		label = fmt.Sprintf("%s· %s", number, h.title)
	}
	indent := strings.Repeat("  ", h.level-1)
	if r.options.links {
		return indent + linkItem(h.icon, label, h.slug)
	}
	return indent + plainItem(h.icon, label)
}

// advance bumps the counter for level and discards any deeper counters.
func (r *indexRenderer) advance(level int) string {
	for len(r.counters) < level {
		r.counters = append(r.counters, 0)
	}
	r.counters = r.counters[:level]
	r.counters[level-1]++

	parts := make([]string, len(r.counters))
	for i, n := range r.counters {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

func linkItem(icon, label, slug string) string {
	if icon == "" {
		return fmt.Sprintf("- [%s](#%s)", label, slug)
	}
	return fmt.Sprintf("- %s [%s](#%s)", icon, label, slug)
}

// plainItem renders an unlinked entry. An empty label leaves a bare "-".
func plainItem(icon, label string) string {
	text := strings.TrimSpace(label)
	if icon != "" {
		text = strings.TrimSpace(icon + " " + text)
	}
	if text == "" {
		return "-"
	}
	return "- " + text
}
