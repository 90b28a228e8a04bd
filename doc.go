// Package md2docx converts Markdown documents to Word (.docx) files.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv, err := md2docx.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2docx.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.docx", result.DOCX, 0644)
//
// The result contains the package bytes (result.DOCX), the generated
// paragraphs in document order (result.Blocks) and the resolved title.
//
// # Conversion Pipeline
//
// The conversion is a single linear pass:
//
//  1. Text preprocessing (byte order mark, CRLF and CR line endings)
//  2. Optional front matter extraction (YAML or TOML)
//  3. Line classification and document building
//  4. Packaging as WordprocessingML with the selected styles.xml
//
// Every input line is trimmed and classified by prefix:
//
//	# Title         centered Title paragraph plus a blank spacer
//	## Section      Heading1, left aligned
//	### Sub         Heading2
//	#### Subsub     Heading3
//	- item, * item  bulleted list item
//	1. 2. 3.        numbered list item
//	```             code fence, never visible
//	anything else   Normal paragraph
//
// Blank lines produce nothing. Inline markup is kept as literal text.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2docx.NewConverter(
//	    md2docx.WithStyle("technical"),
//	    md2docx.WithCodeBlocks(md2docx.CodePreformatted),
//	    md2docx.WithCodeTheme("monokai"),
//	    md2docx.WithFrontMatter(true),
//	)
//
// Per-conversion settings are passed via Input:
//
//	result, err := conv.Convert(ctx, md2docx.Input{
//	    Markdown:   content,
//	    SourceName: "notes.md", // fallback title
//	    Page:       &md2docx.PageSettings{Size: "a4", Orientation: "portrait", Margin: 1},
//	    Metadata:   &md2docx.Metadata{Author: "Jane Doe"},
//	})
//
// A Converter holds no per-conversion state and may be shared between
// goroutines.
//
// # Custom Styles
//
// Paragraph formatting comes from a styles.xml part. Two are built in,
// "default" and "technical". Override them with an asset directory:
//
//	loader, err := md2docx.NewAssetLoader("/path/to/assets")
//	conv, err := md2docx.NewConverter(md2docx.WithAssetLoader(loader))
//
// Asset directory structure:
//
//	assets/
//	└── styles/
//	    └── custom.xml
//
// A custom styles part must define the Normal, Title, Heading1-3,
// ListBullet, ListNumber and Code paragraph styles.
package md2docx
