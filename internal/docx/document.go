package docx

import (
	"strconv"
	"strings"
	"time"
)

// TwipsPerInch is the number of twentieths of a point in one inch.
const TwipsPerInch = 1440

// MaxHeadingLevel is the deepest heading style Word defines.
const MaxHeadingLevel = 9

// Style IDs used by generated paragraphs.
// Every styles.xml shipped with the converter defines them.
const (
	StyleNormal     = "Normal"
	StyleTitle      = "Title"
	StyleListBullet = "ListBullet"
	StyleListNumber = "ListNumber"
	StyleCode       = "Code"
)

// Numbering instance IDs defined in word/numbering.xml.
const (
	numIDBullet = 1
	numIDNumber = 2
)

// Alignment is a paragraph justification value (w:jc).
type Alignment string

// Alignment values.
const (
	AlignDefault Alignment = ""
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignBoth    Alignment = "both"
)

// ListKind identifies the numbering definition a paragraph is bound to.
type ListKind int

const (
	ListNone   ListKind = iota // Not a list item
	ListBullet                 // Bulleted list
	ListNumber                 // Decimal numbered list
)

// String returns the list kind name.
func (k ListKind) String() string {
	switch k {
	case ListBullet:
		return "bullet"
	case ListNumber:
		return "numbered"
	default:
		return "none"
	}
}

// Run is a span of text with uniform character formatting.
type Run struct {
	Text   string
	Color  string // RRGGBB hex, empty = inherit from style
	Bold   bool
	Italic bool
}

// Paragraph is a block-level paragraph (w:p).
type Paragraph struct {
	Style string // style ID, empty = Normal
	Align Alignment
	List  ListKind
	Runs  []Run
}

// Text returns the concatenated text of all runs.
func (p *Paragraph) Text() string {
	if len(p.Runs) == 1 {
		return p.Runs[0].Text
	}
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// AddRun appends a run to the paragraph.
func (p *Paragraph) AddRun(r Run) {
	p.Runs = append(p.Runs, r)
}

// HeadingLevel returns the heading level encoded in the paragraph style:
// 0 for Title, 1-9 for Heading1..Heading9, and -1 for anything else.
func (p *Paragraph) HeadingLevel() int {
	if p.Style == StyleTitle {
		return 0
	}
	rest, ok := strings.CutPrefix(p.Style, "Heading")
	if !ok {
		return -1
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || n > MaxHeadingLevel {
		return -1
	}
	return n
}

// PageSize holds page dimensions in twips, portrait orientation.
type PageSize struct {
	Width  int
	Height int
}

// Standard page sizes.
var (
	PageLetter = PageSize{Width: 12240, Height: 15840}
	PageA4     = PageSize{Width: 11906, Height: 16838}
	PageLegal  = PageSize{Width: 12240, Height: 20160}
)

// Margins holds page margins in twips.
type Margins struct {
	Top    int
	Right  int
	Bottom int
	Left   int
	Header int
	Footer int
}

// UniformMargins returns margins of the given size in inches on all four
// sides, with header and footer distances at half an inch.
func UniformMargins(inches float64) Margins {
	tw := InchesToTwips(inches)
	return Margins{
		Top:    tw,
		Right:  tw,
		Bottom: tw,
		Left:   tw,
		Header: TwipsPerInch / 2,
		Footer: TwipsPerInch / 2,
	}
}

// InchesToTwips converts inches to twips, rounding to the nearest twip.
func InchesToTwips(inches float64) int {
	v := inches * TwipsPerInch
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

// Section describes page layout for a run of paragraphs.
// A section starts at paragraph index Start and ends where the next one begins.
type Section struct {
	Start     int
	Size      PageSize
	Landscape bool
	Margins   Margins
}

// CoreProperties holds docProps/core.xml metadata.
type CoreProperties struct {
	Title       string
	Subject     string
	Creator     string
	Description string
	Keywords    []string
	Created     time.Time
	Modified    time.Time
}

// Document is an in-memory WordprocessingML document.
type Document struct {
	Paragraphs []*Paragraph
	Sections   []*Section
	Core       CoreProperties
}

// New returns an empty document with a single US Letter portrait section
// and one-inch margins.
func New() *Document {
	return &Document{
		Sections: []*Section{{
			Size:    PageLetter,
			Margins: UniformMargins(1),
		}},
	}
}

// AddParagraph appends a paragraph with the given text and style ID.
// An empty text produces a paragraph without runs.
func (d *Document) AddParagraph(text, style string) *Paragraph {
	p := &Paragraph{Style: style}
	if text != "" {
		p.Runs = []Run{{Text: text}}
	}
	d.Paragraphs = append(d.Paragraphs, p)
	return p
}

// AddHeading appends a heading paragraph. Level 0 uses the Title style,
// levels 1-9 use Heading1..Heading9. Out-of-range levels are clamped.
func (d *Document) AddHeading(text string, level int) *Paragraph {
	return d.AddParagraph(text, HeadingStyle(level))
}

// AddListItem appends a list paragraph bound to the bullet or decimal
// numbering definition.
func (d *Document) AddListItem(text string, kind ListKind) *Paragraph {
	style := StyleListBullet
	if kind == ListNumber {
		style = StyleListNumber
	}
	p := d.AddParagraph(text, style)
	p.List = kind
	return p
}

// SetMargins applies m to every section.
func (d *Document) SetMargins(m Margins) {
	for _, s := range d.Sections {
		s.Margins = m
	}
}

// SetPageSize applies the page size and orientation to every section.
func (d *Document) SetPageSize(size PageSize, landscape bool) {
	for _, s := range d.Sections {
		s.Size = size
		s.Landscape = landscape
	}
}

// HeadingStyle returns the style ID for a heading level.
func HeadingStyle(level int) string {
	if level <= 0 {
		return StyleTitle
	}
	if level > MaxHeadingLevel {
		level = MaxHeadingLevel
	}
	return "Heading" + strconv.Itoa(level)
}
