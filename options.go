package md2docx

import "time"

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds options resolved by NewConverter.
type converterConfig struct {
	styleInput  string // style name or path to a styles.xml
	assetPath   string
	codeBlocks  string
	codeTheme   string
	overflow    string
	frontMatter bool
	now         func() time.Time
}

// WithStyle selects the styles.xml by name ("default", "technical") or by
// file path. Names are resolved through the asset loader.
func WithStyle(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = nameOrPath
	}
}

// WithAssetPath loads styles from basePath/styles/{name}.xml, falling back
// to the embedded styles.
func WithAssetPath(basePath string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = basePath
	}
}

// WithAssetLoader sets a custom asset loader. Takes precedence over
// WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}

// WithCodeBlocks sets fenced code handling: CodeInline (default) or
// CodePreformatted.
func WithCodeBlocks(mode string) Option {
	return func(c *Converter) {
		c.cfg.codeBlocks = mode
	}
}

// WithCodeTheme sets the chroma style used to colour preformatted code
// blocks. Default: "github".
func WithCodeTheme(theme string) Option {
	return func(c *Converter) {
		c.cfg.codeTheme = theme
	}
}

// WithHeadingOverflow sets the policy for headings deeper than level 4:
// OverflowPassthrough (default) or OverflowClamp.
func WithHeadingOverflow(policy string) Option {
	return func(c *Converter) {
		c.cfg.overflow = policy
	}
}

// WithFrontMatter enables parsing of a leading YAML or TOML metadata
// block, which is then removed from the body.
func WithFrontMatter(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.frontMatter = enabled
	}
}

// WithClock sets the time source for the created and modified document
// properties. A fixed clock makes output byte-for-byte reproducible.
// Panics if now is nil (programmer error).
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("md2docx: WithClock requires a non-nil clock")
	}
	return func(c *Converter) {
		c.cfg.now = now
	}
}
