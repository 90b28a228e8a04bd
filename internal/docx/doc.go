// Package docx builds WordprocessingML documents and writes them as .docx
// packages.
//
// # Model
//
// A Document is an ordered list of paragraphs plus one or more sections:
//
//	Document
//	    ├── Paragraphs []*Paragraph   - style ID, alignment, list kind, runs
//	    ├── Sections   []*Section     - page size, orientation, margins
//	    └── Core       CoreProperties - docProps/core.xml metadata
//
// Paragraphs are appended with AddParagraph, AddHeading and AddListItem.
// Headings follow the Word convention: level 0 is the Title style and levels
// 1-9 map to Heading1..Heading9. Levels outside that range are clamped.
//
// # Package Layout
//
// Write produces a minimal but complete OPC package:
//
//	[Content_Types].xml
//	_rels/.rels
//	docProps/core.xml
//	docProps/app.xml
//	word/document.xml
//	word/styles.xml            (caller supplied, see internal/assets)
//	word/numbering.xml         (bullet and decimal list definitions)
//	word/settings.xml
//	word/_rels/document.xml.rels
//
// Zip entry timestamps come from Core.Modified so that identical documents
// produce identical bytes.
//
// # Reading
//
// Read parses a package back into the same model. It understands the subset
// of WordprocessingML that Write emits plus anything with the same element
// names, which is enough to inspect generated files in tests and tools.
package docx
