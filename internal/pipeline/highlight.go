package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-md2docx/internal/docx"
)

// DefaultTheme is the chroma style used when none is configured.
const DefaultTheme = "github"

// ErrUnknownTheme indicates the requested chroma style is not registered.
var ErrUnknownTheme = errors.New("unknown code theme")

// Highlighter turns code into coloured runs using a chroma style.
// It is safe for concurrent use: lexers are looked up per call.
type Highlighter struct {
	style *chroma.Style
}

// NewHighlighter creates a Highlighter for the named chroma style.
// An empty name selects DefaultTheme.
func NewHighlighter(theme string) (*Highlighter, error) {
	if theme == "" {
		theme = DefaultTheme
	}
	style, ok := styles.Registry[strings.ToLower(theme)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, theme)
	}
	return &Highlighter{style: style}, nil
}

// Themes lists the registered chroma style names.
func Themes() []string {
	return styles.Names()
}

// Highlight tokenises lines as lang and returns one run slice per input
// line. ok is false when the language is unknown or tokenising fails; the
// caller then emits plain text.
func (h *Highlighter) Highlight(lang string, lines []string) (runs [][]docx.Run, ok bool) {
	if h == nil || lang == "" {
		return nil, false
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		return nil, false
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, strings.Join(lines, "\n"))
	if err != nil {
		return nil, false
	}

	runs = make([][]docx.Run, len(lines))
	row := 0
	for token := iterator(); token != chroma.EOF; token = iterator() {
		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				row++
			}
			if part == "" || row >= len(lines) {
				continue
			}
			runs[row] = appendRun(runs[row], h.run(token.Type, part))
		}
	}
	return runs, true
}

// run styles a token's text with the style entry for its type.
func (h *Highlighter) run(tt chroma.TokenType, text string) docx.Run {
	entry := h.style.Get(tt)
	r := docx.Run{
		Text:   text,
		Bold:   entry.Bold == chroma.Yes,
		Italic: entry.Italic == chroma.Yes,
	}
	if entry.Colour.IsSet() {
		r.Color = fmt.Sprintf("%02X%02X%02X", entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue())
	}
	return r
}

// appendRun merges r into the previous run when formatting matches.
func appendRun(runs []docx.Run, r docx.Run) []docx.Run {
	if n := len(runs); n > 0 {
		last := &runs[n-1]
		if last.Color == r.Color && last.Bold == r.Bold && last.Italic == r.Italic {
			last.Text += r.Text
			return runs
		}
	}
	return append(runs, r)
}
