package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDirName is the directory under the user config dir searched for
// named configs.
const AppDirName = "go-md2docx"

// Default document paths, relative to the working directory.
const (
	DefaultInputPath  = "WhisperSOS_Technical_Writeup.md"
	DefaultOutputPath = "WhisperSOS_Technical_Writeup.docx"
)

// Defaults for the remaining settings.
const (
	DefaultStyle           = "default"
	DefaultPageSize        = "letter"
	DefaultOrientation     = "portrait"
	DefaultMargin          = 1.0
	DefaultCodeBlocks      = "inline"
	DefaultCodeTheme       = "github"
	DefaultHeadingOverflow = "passthrough"
)

// Margin bounds in inches.
const (
	MinMargin = 0.25
	MaxMargin = 3.0
)

// Field length limits for multi-tenant safety.
const (
	MaxPathLength        = 4096 // PATH_MAX on Linux
	MaxStyleLength       = 100  // Style name; a styles.xml path gets MaxPathLength
	MaxPageSizeLength    = 10   // "letter", "a4", "legal"
	MaxOrientationLength = 10   // "portrait", "landscape"
	MaxTitleLength       = 200  // Document title
	MaxAuthorLength      = 100  // Full name (generous)
	MaxSubjectLength     = 200
	MaxDescriptionLength = 1000
	MaxKeywordLength     = 50
	MaxKeywords          = 50
	MaxThemeLength       = 50 // chroma style name
)

// Config holds all configuration for document generation.
type Config struct {
	Input       InputConfig       `yaml:"input"`
	Output      OutputConfig      `yaml:"output"`
	Style       string            `yaml:"style"` // Name of embedded/custom style, or path to a styles.xml
	Assets      AssetsConfig      `yaml:"assets"`
	Page        PageConfig        `yaml:"page"`
	Document    DocumentConfig    `yaml:"document"`
	FrontMatter FrontMatterConfig `yaml:"frontMatter"`
	Code        CodeConfig        `yaml:"code"`
	Headings    HeadingsConfig    `yaml:"headings"`
}

// InputConfig defines input source options.
type InputConfig struct {
	Path string `yaml:"path"` // Markdown file or directory
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Path string `yaml:"path"` // Empty = input path with .docx extension
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// PageConfig defines page layout settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal" (default: "letter")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margin      float64 `yaml:"margin"`      // inches (default: 1.0)
}

// DocumentConfig defines core document properties.
type DocumentConfig struct {
	Title       string   `yaml:"title"` // Empty = front matter, first H1, then file name
	Author      string   `yaml:"author"`
	Subject     string   `yaml:"subject"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
}

// FrontMatterConfig defines front matter handling.
type FrontMatterConfig struct {
	Enabled bool `yaml:"enabled"`
}

// CodeConfig defines fenced code block handling.
type CodeConfig struct {
	Blocks string `yaml:"blocks"` // "inline", "preformatted" (default: "inline")
	Theme  string `yaml:"theme"`  // chroma style for preformatted blocks (default: "github")
}

// HeadingsConfig defines handling of headings deeper than level 4.
type HeadingsConfig struct {
	Overflow string `yaml:"overflow"` // "passthrough", "clamp" (default: "passthrough")
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually (e.g., API adapters, library users).
// Empty values are accepted and mean "use the default".
func (c *Config) Validate() error {
	styleMax := MaxStyleLength
	if fileutil.IsFilePath(c.Style) {
		styleMax = MaxPathLength
	}

	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"input.path", c.Input.Path, MaxPathLength},
		{"output.path", c.Output.Path, MaxPathLength},
		{"style", c.Style, styleMax},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"page.size", c.Page.Size, MaxPageSizeLength},
		{"page.orientation", c.Page.Orientation, MaxOrientationLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.author", c.Document.Author, MaxAuthorLength},
		{"document.subject", c.Document.Subject, MaxSubjectLength},
		{"document.description", c.Document.Description, MaxDescriptionLength},
		{"code.theme", c.Code.Theme, MaxThemeLength},
	}
	for _, l := range lengths {
		if err := validateFieldLength(l.field, l.value, l.max); err != nil {
			return err
		}
	}

	if len(c.Document.Keywords) > MaxKeywords {
		return fmt.Errorf("%w: document.keywords (%d items, max %d)", ErrFieldTooLong, len(c.Document.Keywords), MaxKeywords)
	}
	for i, k := range c.Document.Keywords {
		if err := validateFieldLength(fmt.Sprintf("document.keywords[%d]", i), k, MaxKeywordLength); err != nil {
			return err
		}
	}

	if err := validateEnum("page.size", c.Page.Size, "letter", "a4", "legal"); err != nil {
		return err
	}
	if err := validateEnum("page.orientation", c.Page.Orientation, "portrait", "landscape"); err != nil {
		return err
	}
	if c.Page.Margin != 0 && (c.Page.Margin < MinMargin || c.Page.Margin > MaxMargin) {
		return fmt.Errorf("%w: page.margin: must be between %.2f and %.2f, got %.2f",
			ErrInvalidValue, MinMargin, MaxMargin, c.Page.Margin)
	}
	if err := validateEnum("code.blocks", c.Code.Blocks, "inline", "preformatted"); err != nil {
		return err
	}
	if err := validateEnum("headings.overflow", c.Headings.Overflow, "passthrough", "clamp"); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateEnum checks that a non-empty value is one of allowed (case-insensitive).
func validateEnum(fieldName, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s: %q (must be %s)", ErrInvalidValue, fieldName, value, strings.Join(allowed, ", "))
}

// DefaultConfig returns the configuration used when no file is given:
// the default document paths, letter portrait pages with one-inch margins,
// inline code handling and passthrough heading overflow.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{Path: DefaultInputPath},
		Output: OutputConfig{Path: ""},
		Style:  DefaultStyle,
		Assets: AssetsConfig{BasePath: ""},
		Page: PageConfig{
			Size:        DefaultPageSize,
			Orientation: DefaultOrientation,
			Margin:      DefaultMargin,
		},
		FrontMatter: FrontMatterConfig{Enabled: false},
		Code:        CodeConfig{Blocks: DefaultCodeBlocks, Theme: DefaultCodeTheme},
		Headings:    HeadingsConfig{Overflow: DefaultHeadingOverflow},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Values missing from the file keep their DefaultConfig value.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order:
// current directory first, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
