package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Application is written to docProps/app.xml.
const Application = "go-md2docx"

// Package part names.
const (
	partContentTypes = "[Content_Types].xml"
	partRootRels     = "_rels/.rels"
	partCore         = "docProps/core.xml"
	partApp          = "docProps/app.xml"
	partDocument     = "word/document.xml"
	partStyles       = "word/styles.xml"
	partNumbering    = "word/numbering.xml"
	partSettings     = "word/settings.xml"
	partDocumentRels = "word/_rels/document.xml.rels"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>
<Override PartName="/word/settings.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"/>
<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>
</Types>`

const rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>
<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings" Target="settings.xml"/>
</Relationships>`

const settingsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:settings xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:defaultTabStop w:val="720"/>
<w:characterSpacingControl w:val="doNotCompress"/>
<w:compat><w:compatSetting w:name="compatibilityMode" w:uri="http://schemas.microsoft.com/office/word" w:val="15"/></w:compat>
</w:settings>`

// numberingXML defines abstract list 0 (bullet) and 1 (decimal), bound to
// numbering instances numIDBullet and numIDNumber.
const numberingXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:abstractNum w:abstractNumId="0">
<w:multiLevelType w:val="singleLevel"/>
<w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="bullet"/><w:lvlText w:val="•"/><w:lvlJc w:val="left"/><w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr></w:lvl>
</w:abstractNum>
<w:abstractNum w:abstractNumId="1">
<w:multiLevelType w:val="singleLevel"/>
<w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="decimal"/><w:lvlText w:val="%1."/><w:lvlJc w:val="left"/><w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr></w:lvl>
</w:abstractNum>
<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>
<w:num w:numId="2"><w:abstractNumId w:val="1"/></w:num>
</w:numbering>`

// part is a named entry in the package.
type part struct {
	name string
	data []byte
}

// Write serializes doc as a .docx package to w.
// styles is the content of word/styles.xml and must not be empty.
func Write(w io.Writer, doc *Document, styles []byte) error {
	if len(styles) == 0 {
		return ErrMissingStyles
	}

	documentPart, err := renderDocument(doc)
	if err != nil {
		return err
	}
	corePart, err := renderCore(doc.Core)
	if err != nil {
		return err
	}
	appPart, err := renderApp(doc)
	if err != nil {
		return err
	}

	parts := []part{
		{partContentTypes, []byte(contentTypesXML)},
		{partRootRels, []byte(rootRelsXML)},
		{partCore, corePart},
		{partApp, appPart},
		{partDocument, documentPart},
		{partStyles, styles},
		{partNumbering, []byte(numberingXML)},
		{partSettings, []byte(settingsXML)},
		{partDocumentRels, []byte(documentRelsXML)},
	}

	zw := zip.NewWriter(w)
	for _, p := range parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     p.name,
			Method:   zip.Deflate,
			Modified: doc.Core.Modified.UTC(),
		})
		if err != nil {
			return fmt.Errorf("creating %s: %w", p.name, err)
		}
		if _, err := fw.Write(p.data); err != nil {
			return fmt.Errorf("writing %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing package: %w", err)
	}
	return nil
}

// renderDocument marshals word/document.xml.
func renderDocument(doc *Document) ([]byte, error) {
	body, err := buildBody(doc)
	if err != nil {
		return nil, err
	}
	return marshalPart(documentOut{NSW: nsW, NSR: nsR, Body: body})
}

// buildBody converts paragraphs and sections into the body element.
// Every section but the last closes with a sectPr on its final paragraph;
// the last section's sectPr is the body's trailing child.
func buildBody(doc *Document) (bodyOut, error) {
	if len(doc.Sections) == 0 {
		return bodyOut{}, ErrNoSections
	}

	var body bodyOut
	body.Paragraphs = make([]paragraphOut, 0, len(doc.Paragraphs))
	secs := doc.Sections
	next := 1
	open := 0

	closeSection := func(s *Section) {
		sp := sectionOut(s)
		if open == 0 {
			body.Paragraphs = append(body.Paragraphs, paragraphOut{PPr: &pPrOut{SectPr: sp}})
		} else {
			last := &body.Paragraphs[len(body.Paragraphs)-1]
			if last.PPr == nil {
				last.PPr = &pPrOut{}
			}
			last.PPr.SectPr = sp
		}
		open = 0
	}

	for i, p := range doc.Paragraphs {
		for next < len(secs) && secs[next].Start <= i {
			closeSection(secs[next-1])
			next++
		}
		body.Paragraphs = append(body.Paragraphs, paragraphToOut(p))
		open++
	}
	for next < len(secs) {
		closeSection(secs[next-1])
		next++
	}

	body.SectPr = sectionOut(secs[len(secs)-1])
	return body, nil
}

// paragraphToOut converts a model paragraph to its XML form.
func paragraphToOut(p *Paragraph) paragraphOut {
	var out paragraphOut

	var ppr pPrOut
	hasPPr := false
	if p.Style != "" && p.Style != StyleNormal {
		ppr.Style = &valOut{Val: p.Style}
		hasPPr = true
	}
	switch p.List {
	case ListBullet:
		ppr.NumPr = &numPrOut{ILvl: valOut{Val: "0"}, NumID: valOut{Val: strconv.Itoa(numIDBullet)}}
		hasPPr = true
	case ListNumber:
		ppr.NumPr = &numPrOut{ILvl: valOut{Val: "0"}, NumID: valOut{Val: strconv.Itoa(numIDNumber)}}
		hasPPr = true
	}
	if p.Align != AlignDefault {
		ppr.Jc = &valOut{Val: string(p.Align)}
		hasPPr = true
	}
	if hasPPr {
		out.PPr = &ppr
	}

	for _, r := range p.Runs {
		out.Runs = append(out.Runs, runToOut(r))
	}
	return out
}

// runToOut converts a model run to its XML form.
func runToOut(r Run) runOut {
	out := runOut{Text: textOut{Value: r.Text}}
	if needsPreserve(r.Text) {
		out.Text.Space = "preserve"
	}
	if r.Bold || r.Italic || r.Color != "" {
		rpr := &rPrOut{}
		if r.Bold {
			rpr.Bold = &emptyOut{}
		}
		if r.Italic {
			rpr.Italic = &emptyOut{}
		}
		if r.Color != "" {
			rpr.Color = &valOut{Val: r.Color}
		}
		out.RPr = rpr
	}
	return out
}

// needsPreserve reports whether Word would collapse whitespace in s.
func needsPreserve(s string) bool {
	if s == "" {
		return false
	}
	return s != strings.TrimSpace(s) || strings.Contains(s, "  ")
}

// sectionOut converts a section to sectPr.
func sectionOut(s *Section) *sectPrOut {
	w, h := s.Size.Width, s.Size.Height
	orient := ""
	if s.Landscape {
		w, h = h, w
		orient = "landscape"
	}
	return &sectPrOut{
		PgSz: pgSzOut{W: w, H: h, Orient: orient},
		PgMar: pgMarOut{
			Top:    s.Margins.Top,
			Right:  s.Margins.Right,
			Bottom: s.Margins.Bottom,
			Left:   s.Margins.Left,
			Header: s.Margins.Header,
			Footer: s.Margins.Footer,
		},
	}
}

// renderCore marshals docProps/core.xml.
func renderCore(c CoreProperties) ([]byte, error) {
	out := corePropertiesOut{
		NSCP:        nsCP,
		NSDC:        nsDC,
		NSDCTerms:   nsDCTerms,
		NSDCMIType:  nsDCMIType,
		NSXSI:       nsXSI,
		Title:       c.Title,
		Subject:     c.Subject,
		Creator:     c.Creator,
		Keywords:    strings.Join(c.Keywords, ", "),
		Description: c.Description,
		Revision:    1,
	}
	if !c.Created.IsZero() {
		out.Created = w3cdtf(c.Created)
	}
	if !c.Modified.IsZero() {
		out.Modified = w3cdtf(c.Modified)
	}
	return marshalPart(out)
}

// w3cdtf formats t for dcterms:created/modified.
func w3cdtf(t time.Time) *w3cdtfOut {
	return &w3cdtfOut{Type: "dcterms:W3CDTF", Value: t.UTC().Format(time.RFC3339)}
}

// renderApp marshals docProps/app.xml with simple document statistics.
func renderApp(doc *Document) ([]byte, error) {
	words, chars := 0, 0
	for _, p := range doc.Paragraphs {
		text := p.Text()
		words += len(strings.Fields(text))
		chars += utf8.RuneCountInString(text)
	}
	return marshalPart(appPropertiesOut{
		NS:          nsExtProps,
		Application: Application,
		Paragraphs:  len(doc.Paragraphs),
		Words:       words,
		Characters:  chars,
	})
}

// marshalPart encodes v with the standard XML declaration.
func marshalPart(v any) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPackage, err)
	}
	return append([]byte(xml.Header), data...), nil
}
