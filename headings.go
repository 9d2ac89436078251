package main

import (
	"bytes"
	"io"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// headingPattern matches ATX heading markers. The marker is capped at six
// hashes, so "####### x" is plain text. The separator accepts Unicode spaces
// and vertical tabs as well as ASCII whitespace.
var headingPattern = regexp.MustCompile(`^(#{1,6})[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]+(.*)`)

// heading is one entry of the index. level is relative to the base level, so
// the shallowest included heading is always 1.
type heading struct {
	level int
	icon  string
	title string
	slug  string
}

type headingParser struct {
	baseLevel int
	log       logrus.FieldLogger
}

func newHeadingParser(baseLevel int, log logrus.FieldLogger) *headingParser {
	if log == nil {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		log = quiet
	}
	return &headingParser{baseLevel: baseLevel, log: log}
}

// parseHeadings scans lines for ATX headings at or below baseLevel.
func parseHeadings(lines []string, baseLevel int) []heading {
	return newHeadingParser(baseLevel, nil).parseLines(lines)
}

// parseHeadingsCommonMark extracts headings from a goldmark AST. Unlike the
// line scanner it honors setext headings and ignores code blocks.
func parseHeadingsCommonMark(source []byte, baseLevel int) []heading {
	return newHeadingParser(baseLevel, nil).parseCommonMark(source)
}

func (p *headingParser) parseLines(lines []string) []heading {
	var headings []heading
	for i, line := range lines {
		match := headingPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		h, ok := p.newHeading(len(match[1]), match[2])
		if !ok {
			p.log.WithFields(logrus.Fields{"line": i + 1, "depth": len(match[1])}).Debug("skipping heading shallower than base level")
			continue
		}
		headings = append(headings, h)
	}
	p.log.WithField("count", len(headings)).Debug("parsed headings")
	return headings
}

func (p *headingParser) parseCommonMark(source []byte) []heading {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var headings []heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		node, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		h, ok := p.newHeading(node.Level, inlineText(node, source))
		if !ok {
			p.log.WithField("depth", node.Level).Debug("skipping heading shallower than base level")
			return ast.WalkSkipChildren, nil
		}
		headings = append(headings, h)
		return ast.WalkSkipChildren, nil
	})
	p.log.WithField("count", len(headings)).Debug("parsed headings")
	return headings
}

// newHeading builds the record for a heading of depth rawLevel. It reports
// false when the heading is shallower than the base level.
func (p *headingParser) newHeading(rawLevel int, fullTitle string) (heading, bool) {
	if rawLevel < p.baseLevel {
		return heading{}, false
	}
	icon, title := splitIcon(strings.TrimSpace(fullTitle))
	return heading{
		level: rawLevel - p.baseLevel + 1,
		icon:  icon,
		title: title,
		slug:  slugify(title),
	}, true
}

// inlineText concatenates the literal text below n, dropping markup.
func inlineText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

// splitLines breaks content into lines, treating CRLF like LF.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
