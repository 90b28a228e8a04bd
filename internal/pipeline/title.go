package pipeline

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// titleParser is shared: goldmark parsers are safe for concurrent use.
var titleParser = goldmark.New().Parser()

// FirstHeading returns the text of the first level-1 ATX or setext heading
// as CommonMark sees it, so '#' lines inside fenced code are ignored.
// It returns "" when the document has none.
func FirstHeading(source []byte) string {
	doc := titleParser.Parse(text.NewReader(source))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			var b strings.Builder
			writeInlineText(&b, h, source)
			title = strings.TrimSpace(b.String())
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}

// writeInlineText appends the plain text of n's inline descendants.
func writeInlineText(b *strings.Builder, n ast.Node, source []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		default:
			writeInlineText(b, c, source)
		}
	}
}
