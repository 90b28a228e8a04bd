package docx

import "encoding/xml"

// XML namespaces used in generated parts.
const (
	nsW        = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsCP       = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsDC       = "http://purl.org/dc/elements/1.1/"
	nsDCTerms  = "http://purl.org/dc/terms/"
	nsDCMIType = "http://purl.org/dc/dcmitype/"
	nsXSI      = "http://www.w3.org/2001/XMLSchema-instance"
	nsExtProps = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
)

// Marshal-side structures. Element names carry the w: prefix literally so
// encoding/xml emits them the way Word expects; the namespace is declared
// once on the root element. Field order follows the WordprocessingML schema
// sequence.

// documentOut is word/document.xml.
type documentOut struct {
	XMLName xml.Name `xml:"w:document"`
	NSW     string   `xml:"xmlns:w,attr"`
	NSR     string   `xml:"xmlns:r,attr"`
	Body    bodyOut  `xml:"w:body"`
}

// bodyOut is the document body (w:body).
type bodyOut struct {
	Paragraphs []paragraphOut `xml:"w:p"`
	SectPr     *sectPrOut     `xml:"w:sectPr"`
}

// paragraphOut is a paragraph (w:p).
type paragraphOut struct {
	PPr  *pPrOut  `xml:"w:pPr"`
	Runs []runOut `xml:"w:r"`
}

// pPrOut holds paragraph properties (w:pPr).
type pPrOut struct {
	Style  *valOut    `xml:"w:pStyle"`
	NumPr  *numPrOut  `xml:"w:numPr"`
	Jc     *valOut    `xml:"w:jc"`
	SectPr *sectPrOut `xml:"w:sectPr"`
}

// valOut is any element carrying a single w:val attribute.
type valOut struct {
	Val string `xml:"w:val,attr"`
}

// numPrOut binds a paragraph to a numbering instance (w:numPr).
type numPrOut struct {
	ILvl  valOut `xml:"w:ilvl"`
	NumID valOut `xml:"w:numId"`
}

// runOut is a text run (w:r).
type runOut struct {
	RPr  *rPrOut `xml:"w:rPr"`
	Text textOut `xml:"w:t"`
}

// rPrOut holds run properties (w:rPr).
type rPrOut struct {
	Bold   *emptyOut `xml:"w:b"`
	Italic *emptyOut `xml:"w:i"`
	Color  *valOut   `xml:"w:color"`
}

// emptyOut is an on/off toggle element such as w:b.
type emptyOut struct{}

// textOut is w:t with whitespace preservation.
type textOut struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

// sectPrOut holds section properties (w:sectPr).
type sectPrOut struct {
	PgSz  pgSzOut  `xml:"w:pgSz"`
	PgMar pgMarOut `xml:"w:pgMar"`
}

// pgSzOut is the page size (w:pgSz).
type pgSzOut struct {
	W      int    `xml:"w:w,attr"`
	H      int    `xml:"w:h,attr"`
	Orient string `xml:"w:orient,attr,omitempty"`
}

// pgMarOut is the page margins (w:pgMar).
type pgMarOut struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

// corePropertiesOut is docProps/core.xml.
type corePropertiesOut struct {
	XMLName     xml.Name   `xml:"cp:coreProperties"`
	NSCP        string     `xml:"xmlns:cp,attr"`
	NSDC        string     `xml:"xmlns:dc,attr"`
	NSDCTerms   string     `xml:"xmlns:dcterms,attr"`
	NSDCMIType  string     `xml:"xmlns:dcmitype,attr"`
	NSXSI       string     `xml:"xmlns:xsi,attr"`
	Title       string     `xml:"dc:title,omitempty"`
	Subject     string     `xml:"dc:subject,omitempty"`
	Creator     string     `xml:"dc:creator,omitempty"`
	Keywords    string     `xml:"cp:keywords,omitempty"`
	Description string     `xml:"dc:description,omitempty"`
	Revision    int        `xml:"cp:revision"`
	Created     *w3cdtfOut `xml:"dcterms:created"`
	Modified    *w3cdtfOut `xml:"dcterms:modified"`
}

// w3cdtfOut is a dcterms date in W3CDTF form.
type w3cdtfOut struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

// appPropertiesOut is docProps/app.xml.
type appPropertiesOut struct {
	XMLName     xml.Name `xml:"Properties"`
	NS          string   `xml:"xmlns,attr"`
	Application string   `xml:"Application"`
	DocSecurity int      `xml:"DocSecurity"`
	Paragraphs  int      `xml:"Paragraphs"`
	Words       int      `xml:"Words"`
	Characters  int      `xml:"Characters"`
}

// Unmarshal-side structures. encoding/xml matches on local names when the
// tag has no namespace, so these read both prefixed and default-namespace
// documents.

// documentIn is word/document.xml.
type documentIn struct {
	XMLName xml.Name `xml:"document"`
	Body    bodyIn   `xml:"body"`
}

// bodyIn is the document body.
type bodyIn struct {
	Paragraphs []paragraphIn `xml:"p"`
	SectPr     *sectPrIn     `xml:"sectPr"`
}

// paragraphIn is a paragraph.
type paragraphIn struct {
	PPr  pPrIn   `xml:"pPr"`
	Runs []runIn `xml:"r"`
}

// pPrIn holds paragraph properties.
type pPrIn struct {
	Style  valIn     `xml:"pStyle"`
	NumPr  *numPrIn  `xml:"numPr"`
	Jc     valIn     `xml:"jc"`
	SectPr *sectPrIn `xml:"sectPr"`
}

// valIn reads a w:val attribute.
type valIn struct {
	Val string `xml:"val,attr"`
}

// numPrIn reads list numbering properties.
type numPrIn struct {
	ILvl  valIn `xml:"ilvl"`
	NumID valIn `xml:"numId"`
}

// runIn is a text run.
type runIn struct {
	RPr  rPrIn    `xml:"rPr"`
	Text []string `xml:"t"`
}

// rPrIn holds run properties.
type rPrIn struct {
	Bold   *struct{} `xml:"b"`
	Italic *struct{} `xml:"i"`
	Color  valIn     `xml:"color"`
}

// sectPrIn holds section properties.
type sectPrIn struct {
	PgSz  pgSzIn  `xml:"pgSz"`
	PgMar pgMarIn `xml:"pgMar"`
}

// pgSzIn reads the page size.
type pgSzIn struct {
	W      int    `xml:"w,attr"`
	H      int    `xml:"h,attr"`
	Orient string `xml:"orient,attr"`
}

// pgMarIn reads page margins.
type pgMarIn struct {
	Top    int `xml:"top,attr"`
	Right  int `xml:"right,attr"`
	Bottom int `xml:"bottom,attr"`
	Left   int `xml:"left,attr"`
	Header int `xml:"header,attr"`
	Footer int `xml:"footer,attr"`
}

// corePropertiesIn reads docProps/core.xml.
type corePropertiesIn struct {
	XMLName     xml.Name `xml:"coreProperties"`
	Title       string   `xml:"title"`
	Subject     string   `xml:"subject"`
	Creator     string   `xml:"creator"`
	Keywords    string   `xml:"keywords"`
	Description string   `xml:"description"`
	Created     string   `xml:"created"`
	Modified    string   `xml:"modified"`
}

// stylesIn reads word/styles.xml.
type stylesIn struct {
	XMLName xml.Name  `xml:"styles"`
	Styles  []styleIn `xml:"style"`
}

// styleIn is a single style definition.
type styleIn struct {
	Type    string `xml:"type,attr"`
	StyleID string `xml:"styleId,attr"`
	Name    valIn  `xml:"name"`
}
