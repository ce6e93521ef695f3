// Package ssml translates Markdown documents into SSML markup with
// pacing breaks after headings, paragraphs and rules, and emphasis
// markers for styled text.
package ssml

import "strings"

// Break durations per heading level. Levels outside the table fall
// back to DefaultBreak.
var headingBreaks = map[int]string{
	1: "300ms",
	2: "200ms",
	3: "100ms",
	4: "0ms",
}

const (
	DefaultBreak   = "0ms"
	ParagraphBreak = "100ms"
	LineBreak      = "400ms"
	RuleBreak      = "600ms"
)

// HeadingBreak returns the break duration spoken after a heading of
// the given level.
func HeadingBreak(level int) string {
	if d, ok := headingBreaks[level]; ok {
		return d
	}

	return DefaultBreak
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// Escape replaces XML special characters with their entity forms.
// Already-escaped input is escaped again; there is no unescape step.
func Escape(s string) string {
	return escaper.Replace(s)
}
