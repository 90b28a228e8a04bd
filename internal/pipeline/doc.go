// Package pipeline implements the Markdown-to-DOCX conversion pipeline.
//
// This package handles the text stages that precede packaging:
//   - Preprocessing (BOM removal, line ending normalization)
//   - Front matter extraction (adrg/frontmatter, decoded with go-yaml)
//   - Title discovery from the first level-1 heading (goldmark AST)
//   - Line classification (heading, fence, bullet, numbered, paragraph)
//   - Document building into an internal/docx Document
//   - Syntax colouring of preformatted code blocks (chroma)
//
// Packaging into a .docx file is handled by internal/docx, and style sheets
// come from internal/assets. The root md2docx package wires the stages
// together.
package pipeline
