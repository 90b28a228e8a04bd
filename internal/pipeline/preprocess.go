package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// byteOrderMark is the UTF-8 encoded U+FEFF some editors prepend.
const byteOrderMark = "\uFEFF"

// Line ending normalization.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Preprocessor defines the contract for raw input preprocessing.
type Preprocessor interface {
	Preprocess(ctx context.Context, content string) string
}

// TextPreprocessor normalizes input so the classifier sees plain LF lines.
type TextPreprocessor struct{}

// Preprocess strips a leading byte order mark and converts \r\n and \r to \n.
// Blank lines are kept: they matter inside preformatted code blocks.
func (p *TextPreprocessor) Preprocess(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, byteOrderMark)
	return normalizeLineEndings(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// Compile-time interface check.
var _ Preprocessor = (*TextPreprocessor)(nil)
