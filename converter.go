package md2docx

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-md2docx/internal/assets"
	"github.com/alnah/go-md2docx/internal/docx"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.Preprocessor = (*pipeline.TextPreprocessor)(nil)
	_ assets.AssetLoader    = (*publicToInternalAdapter)(nil)
	_ AssetLoader           = (*assetLoaderAdapter)(nil)
)

// outputPerm is the mode of files written by ConvertFile.
const outputPerm = 0o644

// Converter orchestrates the markdown-to-DOCX pipeline.
// Create with NewConverter() and use Convert() or ConvertFile().
// A Converter is immutable after construction and safe for concurrent use.
type Converter struct {
	cfg               converterConfig
	assetLoader       assets.AssetLoader
	publicAssetLoader AssetLoader
	preprocessor      pipeline.Preprocessor
	builder           *pipeline.Builder
	styles            []byte
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithStyle, WithCodeBlocks).
// Returns error if an option value is invalid or the style cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			codeBlocks: CodeInline,
			overflow:   OverflowPassthrough,
			now:        time.Now,
		},
		assetLoader:  assets.NewEmbeddedLoader(),
		preprocessor: &pipeline.TextPreprocessor{},
	}

	for _, opt := range opts {
		opt(c)
	}

	// Handle WithAssetPath: resolve to internal loader
	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	// Handle WithAssetLoader (public interface): wrap to internal interface
	if c.publicAssetLoader != nil {
		c.assetLoader = &publicToInternalAdapter{pub: c.publicAssetLoader}
	}

	builder, err := c.newBuilder()
	if err != nil {
		return nil, err
	}
	c.builder = builder

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	return c, nil
}

// newBuilder validates the code and heading options and creates the
// document builder.
func (c *Converter) newBuilder() (*pipeline.Builder, error) {
	var mode pipeline.CodeMode
	switch strings.ToLower(c.cfg.codeBlocks) {
	case "", CodeInline:
		mode = pipeline.CodeInline
	case CodePreformatted:
		mode = pipeline.CodePreformatted
	default:
		return nil, fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidCodeMode, c.cfg.codeBlocks, CodeInline, CodePreformatted)
	}

	var overflow pipeline.HeadingOverflow
	switch strings.ToLower(c.cfg.overflow) {
	case "", OverflowPassthrough:
		overflow = pipeline.OverflowPassthrough
	case OverflowClamp:
		overflow = pipeline.OverflowClamp
	default:
		return nil, fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidHeadingOverflow, c.cfg.overflow, OverflowPassthrough, OverflowClamp)
	}

	highlighter, err := pipeline.NewHighlighter(c.cfg.codeTheme)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCodeTheme, err)
	}

	return pipeline.NewBuilder(
		pipeline.WithCodeMode(mode),
		pipeline.WithHeadingOverflow(overflow),
		pipeline.WithHighlighter(highlighter),
	), nil
}

// resolveStyle loads the styles.xml named by WithStyle (a style name or a
// file path) and checks that it defines every style the builder emits.
// Passed-through deep headings need Heading4 to Heading9 as well.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		input = DefaultStyle
	}

	var content []byte
	if fileutil.IsFilePath(input) {
		data, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: loading style file %q: %w", ErrStyleNotFound, input, err)
		}
		content = data
	} else {
		s, err := c.assetLoader.LoadStyle(input)
		if err != nil {
			return fmt.Errorf("loading style %q: %w", input, convertAssetError(err))
		}
		content = []byte(s)
	}

	var extra []string
	if c.builder.Overflow() == pipeline.OverflowPassthrough {
		extra = docx.DeepHeadingStyles
	}
	if err := docx.ValidateStyles(content, extra...); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidStyles, input, err)
	}
	c.styles = content
	return nil
}

// Convert runs the full pipeline and returns the .docx package with the
// generated blocks. The context is used for cancellation.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := input.Page.Validate(); err != nil {
		return nil, err
	}

	// Normalize line endings
	content := c.preprocessor.Preprocess(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var fm pipeline.FrontMatter
	if c.cfg.frontMatter {
		fm, content, err = pipeline.ParseFrontMatter(content)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFrontMatter, err)
		}
	}

	// Page setup applies to every section before any block is appended
	doc := docx.New()
	size, landscape, margins := pageLayout(input.Page)
	doc.SetPageSize(size, landscape)
	doc.SetMargins(margins)

	if err := c.builder.Build(ctx, doc, content); err != nil {
		return nil, err
	}

	doc.Core = c.coreProperties(input, fm, content)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var buf bytes.Buffer
	if err := docx.Write(&buf, doc, c.styles); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentWrite, err)
	}

	return &ConvertResult{
		DOCX:   buf.Bytes(),
		Blocks: blocksOf(doc),
		Title:  doc.Core.Title,
	}, nil
}

// ConvertFile converts the markdown file at inputPath and writes the
// package to outputPath. An empty outputPath writes next to the input
// with a .docx extension. Page and Metadata are taken from settings;
// its Markdown and SourceName are replaced by the file.
// The output is written atomically: a failed conversion or write never
// leaves a partial file.
func (c *Converter) ConvertFile(ctx context.Context, inputPath, outputPath string, settings Input) (*ConvertResult, error) {
	if outputPath == "" {
		p, err := fileutil.ReplaceExt(inputPath, ".docx")
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		outputPath = p
	}

	data, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	settings.Markdown = string(data)
	settings.SourceName = inputPath
	result, err := c.Convert(ctx, settings)
	if err != nil {
		return nil, err
	}

	if err := fileutil.WriteAtomic(outputPath, result.DOCX, outputPerm); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return result, nil
}

// coreProperties resolves document properties. Explicit metadata wins over
// front matter; the title falls back to the first level-1 heading and then
// to the source file name.
func (c *Converter) coreProperties(input Input, fm pipeline.FrontMatter, content string) docx.CoreProperties {
	var meta Metadata
	if input.Metadata != nil {
		meta = *input.Metadata
	}

	now := c.cfg.now().UTC().Truncate(time.Second)
	core := docx.CoreProperties{
		Title:       firstNonEmpty(meta.Title, fm.Title),
		Creator:     firstNonEmpty(meta.Author, fm.Author),
		Subject:     firstNonEmpty(meta.Subject, fm.Subject),
		Description: firstNonEmpty(meta.Description, fm.Description),
		Keywords:    meta.Keywords,
		Created:     now,
		Modified:    now,
	}
	if len(core.Keywords) == 0 {
		core.Keywords = fm.Keywords
	}
	if core.Title == "" {
		core.Title = pipeline.FirstHeading([]byte(content))
	}
	if core.Title == "" && input.SourceName != "" {
		base := filepath.Base(input.SourceName)
		core.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return core
}

// pageLayout maps page settings to section geometry. nil means defaults.
func pageLayout(p *PageSettings) (docx.PageSize, bool, docx.Margins) {
	if p == nil {
		p = DefaultPageSettings()
	}
	size := docx.PageLetter
	switch strings.ToLower(p.Size) {
	case PageSizeA4:
		size = docx.PageA4
	case PageSizeLegal:
		size = docx.PageLegal
	}
	margin := p.Margin
	if margin == 0 {
		margin = DefaultMargin
	}
	return size, strings.EqualFold(p.Orientation, OrientationLandscape), docx.UniformMargins(margin)
}

// blocksOf projects the document paragraphs to public blocks.
func blocksOf(doc *docx.Document) []Block {
	blocks := make([]Block, 0, len(doc.Paragraphs))
	for _, p := range doc.Paragraphs {
		b := Block{
			Kind:  BlockParagraph,
			Style: p.Style,
			Text:  p.Text(),
			Align: string(p.Align),
		}
		switch level := p.HeadingLevel(); {
		case level == 0:
			b.Kind = BlockTitle
		case level > 0:
			b.Kind = BlockHeading
			b.Level = level
		case p.List == docx.ListBullet:
			b.Kind = BlockBullet
		case p.List == docx.ListNumber:
			b.Kind = BlockNumbered
		case p.Style == docx.StyleCode:
			b.Kind = BlockCode
		}
		blocks = append(blocks, b)
	}
	return blocks
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
