package md2docx

import (
	"fmt"
	"strings"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 1.0
)

// Code block modes.
const (
	// CodeInline classifies lines between fences like any other line.
	CodeInline = "inline"
	// CodePreformatted emits lines between fences verbatim in the Code style.
	CodePreformatted = "preformatted"
)

// Heading overflow policies for headings deeper than level 4.
const (
	// OverflowPassthrough renders level n as Heading(n-1), up to Heading9.
	OverflowPassthrough = "passthrough"
	// OverflowClamp renders every deeper heading as Heading3.
	OverflowClamp = "clamp"
)

// PageSettings configures page dimensions for every section.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all four sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults). Zero values of
// individual fields also mean the default.
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if p.Size != "" && !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if p.Orientation != "" && !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin != 0 && (p.Margin < MinMargin || p.Margin > MaxMargin) {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Metadata sets document properties. Non-empty fields take precedence
// over front matter.
type Metadata struct {
	Title       string
	Author      string
	Subject     string
	Description string
	Keywords    []string
}

// Input contains conversion parameters.
type Input struct {
	Markdown   string        // Markdown content, may be empty
	SourceName string        // File name used as the last-resort title (optional)
	Page       *PageSettings // Page settings (optional, nil = defaults)
	Metadata   *Metadata     // Document properties (optional)
}

// BlockKind identifies what a generated paragraph represents.
type BlockKind string

// Block kinds.
const (
	BlockTitle     BlockKind = "title"
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockBullet    BlockKind = "bullet"
	BlockNumbered  BlockKind = "numbered"
	BlockCode      BlockKind = "code"
)

// Block describes one paragraph of the generated document.
type Block struct {
	Kind  BlockKind
	Level int    // Heading style level 1-9 for BlockHeading, 0 otherwise
	Style string // Paragraph style ID, e.g. "Heading1"
	Text  string
	Align string // "center", "left" or "" when inherited from the style
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	DOCX   []byte  // The .docx package
	Blocks []Block // Generated paragraphs in document order
	Title  string  // Resolved document title
}
