package pipeline

import (
	"context"
	"strings"

	"github.com/alnah/go-md2docx/internal/docx"
)

// CodeMode selects how lines between code fences are rendered.
type CodeMode string

const (
	// CodeInline classifies lines between fences like any other line.
	CodeInline CodeMode = "inline"
	// CodePreformatted emits lines between fences verbatim in the Code style.
	CodePreformatted CodeMode = "preformatted"
)

// HeadingOverflow selects how headings deeper than level 4 are rendered.
type HeadingOverflow string

const (
	// OverflowPassthrough maps level n to Heading(n-1), clamped at Heading9.
	OverflowPassthrough HeadingOverflow = "passthrough"
	// OverflowClamp renders every deeper heading as Heading3.
	OverflowClamp HeadingOverflow = "clamp"
)

// deepestStyledLevel is the markdown level rendered as Heading3.
const deepestStyledLevel = 4

// tabWidth is the number of spaces a tab expands to in preformatted code.
const tabWidth = 4

// cancelCheckInterval is how many lines are processed between context checks.
const cancelCheckInterval = 1024

// Builder appends classified lines to a docx.Document.
// A Builder is immutable after construction and safe for concurrent use;
// per-run state lives in Build.
type Builder struct {
	codeMode    CodeMode
	overflow    HeadingOverflow
	highlighter *Highlighter
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithCodeMode sets the code fence handling. Default: CodeInline.
func WithCodeMode(m CodeMode) BuilderOption {
	return func(b *Builder) {
		b.codeMode = m
	}
}

// WithHeadingOverflow sets the handling of headings deeper than level 4.
// Default: OverflowPassthrough.
func WithHeadingOverflow(o HeadingOverflow) BuilderOption {
	return func(b *Builder) {
		b.overflow = o
	}
}

// WithHighlighter colours preformatted code blocks that carry a known
// language tag. Without it code is emitted as plain runs.
func WithHighlighter(h *Highlighter) BuilderOption {
	return func(b *Builder) {
		b.highlighter = h
	}
}

// NewBuilder creates a Builder with the given options.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		codeMode: CodeInline,
		overflow: OverflowPassthrough,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Overflow returns the heading overflow policy in effect.
func (b *Builder) Overflow() HeadingOverflow {
	return b.overflow
}

// buildState is the per-run state of Build.
type buildState struct {
	inFence bool
	lang    string
	code    []string
}

// Build classifies every line of content and appends the resulting blocks
// to doc in input order. content must already use '\n' line endings.
func (b *Builder) Build(ctx context.Context, doc *docx.Document, content string) error {
	var st buildState

	for i, raw := range strings.Split(content, "\n") {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		if st.inFence && b.codeMode == CodePreformatted {
			if l, ok := Classify(raw); ok && l.Kind == KindFence {
				b.flushCode(doc, &st)
				st.inFence = false
				continue
			}
			st.code = append(st.code, raw)
			continue
		}

		l, ok := Classify(raw)
		if !ok {
			continue
		}
		b.append(doc, &st, l)
	}

	if st.inFence && b.codeMode == CodePreformatted {
		b.flushCode(doc, &st)
	}
	return nil
}

// append emits the block for one classified line.
func (b *Builder) append(doc *docx.Document, st *buildState, l Line) {
	switch l.Kind {
	case KindHeading:
		b.heading(doc, l.Level, l.Text)
	case KindFence:
		st.inFence = !st.inFence
		st.lang = l.Lang
		st.code = st.code[:0]
	case KindBullet:
		doc.AddListItem(l.Text, docx.ListBullet)
	case KindNumbered:
		doc.AddListItem(l.Text, docx.ListNumber)
	default:
		doc.AddParagraph(l.Text, docx.StyleNormal)
	}
}

// heading maps a markdown heading level to a document heading.
// Level 1 becomes the centered Title followed by a blank spacer paragraph.
func (b *Builder) heading(doc *docx.Document, level int, text string) {
	switch {
	case level <= 1:
		p := doc.AddHeading(text, 0)
		p.Align = docx.AlignCenter
		doc.AddParagraph("", docx.StyleNormal)
	case level == 2:
		p := doc.AddHeading(text, 1)
		p.Align = docx.AlignLeft
	case level <= deepestStyledLevel:
		doc.AddHeading(text, level-1)
	case b.overflow == OverflowClamp:
		doc.AddHeading(text, deepestStyledLevel-1)
	default:
		doc.AddHeading(text, level-1)
	}
}

// flushCode emits the buffered fence body as Code paragraphs, one per line.
func (b *Builder) flushCode(doc *docx.Document, st *buildState) {
	lines := make([]string, len(st.code))
	for i, line := range st.code {
		lines[i] = strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))
	}

	colored, ok := b.highlighter.Highlight(st.lang, lines)
	for i, line := range lines {
		p := doc.AddParagraph("", docx.StyleCode)
		switch {
		case ok:
			p.Runs = colored[i]
		case line != "":
			p.AddRun(docx.Run{Text: line})
		}
	}
	st.code = st.code[:0]
}
