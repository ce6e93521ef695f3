package ssml

import (
	"fmt"
	"strings"
	"testing"
)

func translate(t *testing.T, source string) string {
	t.Helper()

	out, err := NewTranslator().Translate(source)

	if err != nil {
		t.Fatalf("Translate(%q): %v", source, err)
	}

	return out
}

func TestTranslateHeadingAndParagraph(t *testing.T) {
	got := translate(t, "# Title\n\nHello world.")
	want := "<speak>Title<break time=\"300ms\"/>\n<p>Hello world.<break time=\"100ms\"/></p>\n</speak>"

	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTranslateHeadingLevels(t *testing.T) {
	durations := []string{"300ms", "200ms", "100ms", "0ms", "0ms", "0ms"}

	for level := 1; level <= 6; level++ {
		source := strings.Repeat("#", level) + " Title"
		got := translate(t, source)
		want := fmt.Sprintf("<speak>Title<break time=%q/>\n</speak>", durations[level-1])

		if got != want {
			t.Errorf("level %d: got %q, want %q", level, got, want)
		}
	}
}

func TestTranslateEmphasis(t *testing.T) {
	got := translate(t, "**bold** and *italic*")

	if !strings.Contains(got, `<emphasis level="strong">bold</emphasis>`) {
		t.Errorf("missing strong emphasis in %q", got)
	}

	if !strings.Contains(got, `<emphasis level="moderate">italic</emphasis>`) {
		t.Errorf("missing moderate emphasis in %q", got)
	}
}

func TestTranslateImageWithTitle(t *testing.T) {
	got := translate(t, `![alt](src "My Title")`)
	want := "<speak><p>image of My Title<break time=\"100ms\"/></p>\n</speak>"

	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTranslateImageWithoutTitle(t *testing.T) {
	got := translate(t, `![alt](src)`)
	want := "<speak><p><break time=\"100ms\"/></p>\n</speak>"

	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTranslateLink(t *testing.T) {
	got := translate(t, "[link text](http://example.com)")
	want := "<speak><p>link text<break time=\"100ms\"/></p>\n</speak>"

	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTranslateThematicBreak(t *testing.T) {
	got := translate(t, "before\n\n---\n\nafter")

	if !strings.Contains(got, `<break time="600ms"/>`) {
		t.Errorf("missing rule break in %q", got)
	}
}

func TestTranslateHardLineBreak(t *testing.T) {
	got := translate(t, "line one  \nline two")

	if !strings.Contains(got, "<break time=\"400ms\"/>\n") {
		t.Errorf("missing line break in %q", got)
	}
}

func TestTranslateEscapesText(t *testing.T) {
	got := translate(t, `Tom & Jerry say "1 < 2"`)

	for _, raw := range []string{" & ", " < ", `"1 < 2"`} {
		if strings.Contains(got, raw) {
			t.Errorf("unescaped %q in %q", raw, got)
		}
	}

	if !strings.Contains(got, "Tom &amp; Jerry say &quot;1 &lt; 2&quot;") {
		t.Errorf("missing escaped text in %q", got)
	}
}

func TestTranslateCodeSpan(t *testing.T) {
	got := translate(t, "run `a < b` now")

	// Code spans read as plain escaped text, without extra markup.
	if !strings.Contains(got, "run a &lt; b now") {
		t.Errorf("code span not rendered as text in %q", got)
	}
}

func TestTranslateCodeBlock(t *testing.T) {
	got := translate(t, "```go\nif a < b {\n}\n```")

	if !strings.Contains(got, "if a &lt; b {\n}\n") {
		t.Errorf("code block not escaped in %q", got)
	}

	if strings.Contains(got, "go") {
		t.Errorf("info string leaked into %q", got)
	}
}

func TestTranslateParagraphCount(t *testing.T) {
	source := "one\n\ntwo\n\nthree\n\nfour"
	got := translate(t, source)

	if n := strings.Count(got, "<p>"); n != 4 {
		t.Errorf("got %d <p> tags, want 4: %q", n, got)
	}

	if open, closed := strings.Count(got, "<p>"), strings.Count(got, "</p>"); open != closed {
		t.Errorf("unbalanced paragraph tags in %q", got)
	}
}

func TestTranslateList(t *testing.T) {
	got := translate(t, "- first\n- second\n")

	if !strings.Contains(got, "first\nsecond") {
		t.Errorf("list items not separated in %q", got)
	}

	if strings.Contains(got, "<li>") || strings.Contains(got, "<ul>") {
		t.Errorf("html list markup leaked into %q", got)
	}
}

func TestTranslateRawHTMLEscaped(t *testing.T) {
	got := translate(t, "before <b>bold</b> after")

	if strings.Contains(got, "<b>") {
		t.Errorf("raw html leaked into %q", got)
	}

	if !strings.Contains(got, "&lt;b&gt;bold&lt;/b&gt;") {
		t.Errorf("raw html not escaped in %q", got)
	}
}

func TestTranslateEnvelope(t *testing.T) {
	got := translate(t, "Hello.")

	if !strings.HasPrefix(got, "<speak>") || !strings.HasSuffix(got, "</speak>") {
		t.Errorf("missing speak envelope in %q", got)
	}
}

func TestTranslateEmptyDocument(t *testing.T) {
	got := translate(t, "")

	if got != "<speak></speak>" {
		t.Errorf("got %q, want %q", got, "<speak></speak>")
	}
}
