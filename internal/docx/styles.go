package docx

import (
	"encoding/xml"
	"fmt"
	"slices"
)

// RequiredStyles lists the paragraph style IDs a styles part must define
// for generated documents to render as intended.
var RequiredStyles = []string{
	StyleNormal,
	StyleTitle,
	"Heading1",
	"Heading2",
	"Heading3",
	StyleListBullet,
	StyleListNumber,
	StyleCode,
}

// DeepHeadingStyles lists the heading styles only reached by markdown
// headings of level 5 and deeper when they are passed through.
var DeepHeadingStyles = []string{
	"Heading4",
	"Heading5",
	"Heading6",
	"Heading7",
	"Heading8",
	"Heading9",
}

// ValidateStyles checks that data is a styles part defining every style in
// RequiredStyles, plus any extra style IDs, as a paragraph style.
func ValidateStyles(data []byte, extra ...string) error {
	if len(data) == 0 {
		return ErrMissingStyles
	}

	var in stylesIn
	if err := xml.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStyles, err)
	}

	defined := make(map[string]bool, len(in.Styles))
	for _, s := range in.Styles {
		if s.Type == "paragraph" {
			defined[s.StyleID] = true
		}
	}

	for _, id := range slices.Concat(RequiredStyles, extra) {
		if !defined[id] {
			return fmt.Errorf("%w: %q", ErrMissingStyle, id)
		}
	}
	return nil
}
