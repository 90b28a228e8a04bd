package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds core document property flags.
type documentFlags struct {
	title       string
	author      string
	subject     string
	description string
	keywords    []string
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// assetFlags holds style sheet flags.
type assetFlags struct {
	style     string // Style name or path to a styles.xml
	assetPath string // Override asset directory
}

// structureFlags holds flags that change how markdown lines map to blocks.
type structureFlags struct {
	codeBlocks      string
	codeTheme       string
	headingOverflow string
	frontMatter     bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common    commonFlags
	output    string
	workers   int
	document  documentFlags
	page      pageFlags
	assets    assetFlags
	structure structureFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addDocumentFlags adds document property flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "document title (\"\" = front matter, first H1, file name)")
	fs.StringVar(&f.author, "author", "", "document author")
	fs.StringVar(&f.subject, "subject", "", "document subject")
	fs.StringVar(&f.description, "description", "", "document description")
	fs.StringSliceVar(&f.keywords, "keywords", nil, "comma-separated document keywords")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// addAssetFlags adds style sheet flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "style name or styles.xml path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// addStructureFlags adds block mapping flags to a FlagSet.
func addStructureFlags(fs *flag.FlagSet, f *structureFlags) {
	fs.StringVar(&f.codeBlocks, "code-blocks", "", "fenced code handling: inline, preformatted")
	fs.StringVar(&f.codeTheme, "code-theme", "", "chroma style for preformatted code")
	fs.StringVar(&f.headingOverflow, "heading-overflow", "", "headings deeper than level 4: passthrough, clamp")
	fs.BoolVar(&f.frontMatter, "front-matter", false, "read document properties from front matter")
}

// newConvertFlagSet registers every convert flag on a new FlagSet bound to f.
// Completion reads the same FlagSet, so flags are declared only here.
func newConvertFlagSet(name string, f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addPageFlags(fs, &f.page)
	addAssetFlags(fs, &f.assets)
	addStructureFlags(fs, &f.structure)

	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
// Usage goes to w on -h or a parse error.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet("convert", f)
	fs.SetOutput(w)
	fs.Usage = func() { printConvertUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
