package ssml

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// Translator converts Markdown source into an SSML document wrapped
// in a <speak> envelope. It is stateless and safe to reuse across
// documents.
type Translator struct {
	markdown goldmark.Markdown
}

func NewTranslator() *Translator {
	markdown := goldmark.New(
		goldmark.WithRenderer(
			renderer.NewRenderer(
				renderer.WithNodeRenderers(
					util.Prioritized(NewRenderer(), 1000),
				),
			),
		),
	)

	return &Translator{
		markdown: markdown,
	}
}

func (t *Translator) Translate(source string) (string, error) {
	var buf bytes.Buffer

	if err := t.markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("markdown parse: %w", err)
	}

	return buf.String(), nil
}
