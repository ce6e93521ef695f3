package ssml

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

var _ renderer.NodeRenderer = (*Renderer)(nil)

// Renderer emits an SSML fragment per Markdown node. Fragments stay
// balanced on their own, so concatenating them in document order
// always yields well-formed XML.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	// blocks
	reg.Register(ast.KindDocument, r.renderDocument)
	reg.Register(ast.KindHeading, r.renderHeading)
	reg.Register(ast.KindParagraph, r.renderParagraph)
	reg.Register(ast.KindBlockquote, r.renderChildren)
	reg.Register(ast.KindList, r.renderChildren)
	reg.Register(ast.KindListItem, r.renderChildren)
	reg.Register(ast.KindTextBlock, r.renderTextBlock)
	reg.Register(ast.KindThematicBreak, r.renderThematicBreak)
	reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindFencedCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindHTMLBlock, r.renderHTMLBlock)

	// inlines
	reg.Register(ast.KindText, r.renderText)
	reg.Register(ast.KindString, r.renderString)
	reg.Register(ast.KindEmphasis, r.renderEmphasis)
	reg.Register(ast.KindCodeSpan, r.renderCodeSpan)
	reg.Register(ast.KindLink, r.renderChildren)
	reg.Register(ast.KindAutoLink, r.renderAutoLink)
	reg.Register(ast.KindImage, r.renderImage)
	reg.Register(ast.KindRawHTML, r.renderRawHTML)
}

func (r *Renderer) renderDocument(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		w.WriteString("<speak>")
	} else {
		w.WriteString("</speak>")
	}

	return ast.WalkContinue, nil
}

func (r *Renderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ast.Heading)

	w.WriteString(`<break time="` + HeadingBreak(n.Level) + `"/>` + "\n")

	return ast.WalkContinue, nil
}

func (r *Renderer) renderParagraph(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		w.WriteString("<p>")
	} else {
		w.WriteString(`<break time="` + ParagraphBreak + `"/></p>` + "\n")
	}

	return ast.WalkContinue, nil
}

// renderChildren renders a node transparently. Blockquotes, lists and
// links have no SSML equivalent; only their spoken content survives.
func (r *Renderer) renderChildren(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	return ast.WalkContinue, nil
}

func (r *Renderer) renderTextBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		return ast.WalkContinue, nil
	}

	// Separate tight list items so their text does not run together.
	if node.NextSibling() != nil {
		w.WriteString("\n")
	} else if p := node.Parent(); p != nil && p.Kind() == ast.KindListItem && p.NextSibling() != nil {
		w.WriteString("\n")
	}

	return ast.WalkContinue, nil
}

func (r *Renderer) renderThematicBreak(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	w.WriteString(`<break time="` + RuleBreak + `"/>` + "\n")

	return ast.WalkContinue, nil
}

func (r *Renderer) renderCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	// The info string of fenced blocks is dropped; code reads as text.
	for i := 0; i < node.Lines().Len(); i++ {
		line := node.Lines().At(i)
		w.WriteString(Escape(string(line.Value(source))))
	}

	return ast.WalkContinue, nil
}

func (r *Renderer) renderHTMLBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ast.HTMLBlock)

	for i := 0; i < n.Lines().Len(); i++ {
		line := n.Lines().At(i)
		w.WriteString(Escape(string(line.Value(source))))
	}

	if n.HasClosure() {
		w.WriteString(Escape(string(n.ClosureLine.Value(source))))
	}

	return ast.WalkContinue, nil
}

func (r *Renderer) renderText(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ast.Text)

	w.WriteString(Escape(string(n.Segment.Value(source))))

	if n.HardLineBreak() {
		w.WriteString(`<break time="` + LineBreak + `"/>` + "\n")
	} else if n.SoftLineBreak() {
		w.WriteString("\n")
	}

	return ast.WalkContinue, nil
}

func (r *Renderer) renderString(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ast.String)

	w.WriteString(Escape(string(n.Value)))

	return ast.WalkContinue, nil
}

func (r *Renderer) renderEmphasis(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Emphasis)

	level := "moderate"

	if n.Level == 2 {
		level = "strong"
	}

	if entering {
		w.WriteString(`<emphasis level="` + level + `">`)
	} else {
		w.WriteString("</emphasis>")
	}

	return ast.WalkContinue, nil
}

func (r *Renderer) renderCodeSpan(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			w.WriteString(Escape(string(t.Segment.Value(source))))
		}
	}

	return ast.WalkSkipChildren, nil
}

func (r *Renderer) renderAutoLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ast.AutoLink)

	w.WriteString(Escape(string(n.Label(source))))

	return ast.WalkContinue, nil
}

func (r *Renderer) renderImage(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ast.Image)

	// Only the title is spoken. Source and alt text are dropped.
	if len(n.Title) > 0 {
		w.WriteString("image of " + string(n.Title))
	}

	return ast.WalkSkipChildren, nil
}

func (r *Renderer) renderRawHTML(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ast.RawHTML)

	for i := 0; i < n.Segments.Len(); i++ {
		segment := n.Segments.At(i)
		w.WriteString(Escape(string(segment.Value(source))))
	}

	return ast.WalkSkipChildren, nil
}
