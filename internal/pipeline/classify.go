package pipeline

import "strings"

// Kind is the category a trimmed input line falls into.
type Kind int

const (
	KindParagraph Kind = iota // Plain text
	KindHeading               // One or more leading '#'
	KindFence                 // Code fence delimiter (```)
	KindBullet                // "- " or "* "
	KindNumbered              // "1. ", "2. " or "3. "
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindFence:
		return "fence"
	case KindBullet:
		return "bullet"
	case KindNumbered:
		return "numbered"
	default:
		return "paragraph"
	}
}

const fenceMarker = "```"

// numberedPrefixes are the only ordinal markers recognised as list items.
var numberedPrefixes = []string{"1. ", "2. ", "3. "}

// Line is a classified input line.
type Line struct {
	Kind  Kind
	Level int    // heading level (count of leading '#'), 0 otherwise
	Text  string // payload with the markup prefix removed
	Lang  string // language tag of a fence, may be empty
}

// Classify assigns a line to exactly one Kind. The line is trimmed first;
// ok is false for empty or whitespace-only lines, which produce nothing.
//
// Precedence: heading, fence, bullet, numbered, paragraph. Malformed markup
// never fails: "#" alone is a level-1 heading with empty text, and "- "
// trims to "-", a paragraph.
func Classify(line string) (l Line, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Line{}, false
	}

	if strings.HasPrefix(line, "#") {
		rest := strings.TrimLeft(line, "#")
		return Line{
			Kind:  KindHeading,
			Level: len(line) - len(rest),
			Text:  strings.TrimSpace(rest),
		}, true
	}

	if strings.HasPrefix(line, fenceMarker) {
		return Line{Kind: KindFence, Lang: fenceLang(line)}, true
	}

	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return Line{Kind: KindBullet, Text: line[2:]}, true
	}

	for _, prefix := range numberedPrefixes {
		if strings.HasPrefix(line, prefix) {
			return Line{Kind: KindNumbered, Text: line[len(prefix):]}, true
		}
	}

	return Line{Kind: KindParagraph, Text: line}, true
}

// fenceLang extracts the info string's first word from a fence line,
// e.g. "go" from "```go title=main.go".
func fenceLang(line string) string {
	info := strings.TrimSpace(strings.TrimLeft(line, "`"))
	if info == "" {
		return ""
	}
	return strings.Fields(info)[0]
}
