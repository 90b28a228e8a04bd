package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// maxPartSize caps how much of a single package part Read decompresses.
const maxPartSize = 64 << 20

// Read parses a .docx package into a Document.
// Only paragraphs, sections and core properties are recovered; styles,
// numbering definitions and app properties are ignored.
func Read(r io.ReaderAt, size int64) (*Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotDocx, err)
	}

	data, err := readPart(zr, partDocument)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%w: missing %s", ErrNotDocx, partDocument)
	}

	var in documentIn
	if err := xml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPackage, partDocument, err)
	}

	doc := &Document{}
	start := 0
	for _, p := range in.Body.Paragraphs {
		if p.PPr.SectPr != nil {
			sec := sectionIn(p.PPr.SectPr)
			sec.Start = start
			doc.Sections = append(doc.Sections, sec)
		}
		doc.Paragraphs = append(doc.Paragraphs, paragraphFromIn(p))
		if p.PPr.SectPr != nil {
			start = len(doc.Paragraphs)
		}
	}
	if in.Body.SectPr != nil {
		sec := sectionIn(in.Body.SectPr)
		sec.Start = start
		doc.Sections = append(doc.Sections, sec)
	}

	core, err := readPart(zr, partCore)
	if err != nil {
		return nil, err
	}
	if core != nil {
		if err := parseCore(core, &doc.Core); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// ReadBytes parses an in-memory .docx package.
func ReadBytes(data []byte) (*Document, error) {
	return Read(bytes.NewReader(data), int64(len(data)))
}

// readPart returns the content of the named part, or nil if it is absent.
func readPart(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: opening %s: %v", ErrInvalidPackage, name, err)
		}
		defer rc.Close()

		data, err := io.ReadAll(io.LimitReader(rc, maxPartSize))
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidPackage, name, err)
		}
		return data, nil
	}
	return nil, nil
}

// paragraphFromIn converts a parsed paragraph to the model.
func paragraphFromIn(in paragraphIn) *Paragraph {
	p := &Paragraph{
		Style: in.PPr.Style.Val,
		Align: Alignment(in.PPr.Jc.Val),
	}
	if p.Style == "" {
		p.Style = StyleNormal
	}
	if in.PPr.NumPr != nil {
		switch in.PPr.NumPr.NumID.Val {
		case strconv.Itoa(numIDBullet):
			p.List = ListBullet
		case strconv.Itoa(numIDNumber):
			p.List = ListNumber
		}
	}
	for _, r := range in.Runs {
		p.Runs = append(p.Runs, Run{
			Text:   strings.Join(r.Text, ""),
			Color:  r.RPr.Color.Val,
			Bold:   r.RPr.Bold != nil,
			Italic: r.RPr.Italic != nil,
		})
	}
	return p
}

// sectionIn converts parsed section properties to the model.
func sectionIn(in *sectPrIn) *Section {
	s := &Section{
		Size: PageSize{Width: in.PgSz.W, Height: in.PgSz.H},
		Margins: Margins{
			Top:    in.PgMar.Top,
			Right:  in.PgMar.Right,
			Bottom: in.PgMar.Bottom,
			Left:   in.PgMar.Left,
			Header: in.PgMar.Header,
			Footer: in.PgMar.Footer,
		},
	}
	if in.PgSz.Orient == "landscape" {
		s.Landscape = true
		s.Size.Width, s.Size.Height = s.Size.Height, s.Size.Width
	}
	return s
}

// parseCore fills c from docProps/core.xml.
func parseCore(data []byte, c *CoreProperties) error {
	var in corePropertiesIn
	if err := xml.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPackage, partCore, err)
	}
	c.Title = in.Title
	c.Subject = in.Subject
	c.Creator = in.Creator
	c.Description = in.Description
	if in.Keywords != "" {
		for _, k := range strings.Split(in.Keywords, ",") {
			if k = strings.TrimSpace(k); k != "" {
				c.Keywords = append(c.Keywords, k)
			}
		}
	}
	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(in.Created)); err == nil {
		c.Created = t
	}
	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(in.Modified)); err == nil {
		c.Modified = t
	}
	return nil
}
