package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-md2docx/internal/config"
)

// envPrefix is the prefix of every recognised environment variable.
const envPrefix = "MD2DOCX_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	// Tier 1 - Essential
	ConfigPath string // MD2DOCX_CONFIG: config file name or path
	Style      string // MD2DOCX_STYLE: style name or styles.xml path
	Input      string // MD2DOCX_INPUT: markdown file or directory
	Output     string // MD2DOCX_OUTPUT: output file or directory

	// Tier 2 - Identity and layout
	Author      string  // MD2DOCX_AUTHOR: document author
	PageSize    string  // MD2DOCX_PAGE_SIZE: letter, a4, legal
	Orientation string  // MD2DOCX_ORIENTATION: portrait, landscape
	Margin      float64 // MD2DOCX_MARGIN: inches

	// Tier 3 - Extended
	AssetPath       string // MD2DOCX_ASSET_PATH: custom asset directory
	CodeBlocks      string // MD2DOCX_CODE_BLOCKS: inline, preformatted
	CodeTheme       string // MD2DOCX_CODE_THEME: chroma style
	HeadingOverflow string // MD2DOCX_HEADING_OVERFLOW: passthrough, clamp
	FrontMatter     *bool  // MD2DOCX_FRONT_MATTER: true/false
	Workers         int    // MD2DOCX_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2DOCX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	// Tier 1 - Essential
	"MD2DOCX_CONFIG": true,
	"MD2DOCX_STYLE":  true,
	"MD2DOCX_INPUT":  true,
	"MD2DOCX_OUTPUT": true,
	// Tier 2 - Identity and layout
	"MD2DOCX_AUTHOR":      true,
	"MD2DOCX_PAGE_SIZE":   true,
	"MD2DOCX_ORIENTATION": true,
	"MD2DOCX_MARGIN":      true,
	// Tier 3 - Extended
	"MD2DOCX_ASSET_PATH":       true,
	"MD2DOCX_CODE_BLOCKS":      true,
	"MD2DOCX_CODE_THEME":       true,
	"MD2DOCX_HEADING_OVERFLOW": true,
	"MD2DOCX_FRONT_MATTER":     true,
	"MD2DOCX_WORKERS":          true,
}

// loadEnvConfig reads configuration from environment variables.
// Numeric and boolean values that do not parse are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		// Tier 1
		ConfigPath: os.Getenv("MD2DOCX_CONFIG"),
		Style:      os.Getenv("MD2DOCX_STYLE"),
		Input:      os.Getenv("MD2DOCX_INPUT"),
		Output:     os.Getenv("MD2DOCX_OUTPUT"),
		// Tier 2
		Author:      os.Getenv("MD2DOCX_AUTHOR"),
		PageSize:    os.Getenv("MD2DOCX_PAGE_SIZE"),
		Orientation: os.Getenv("MD2DOCX_ORIENTATION"),
		// Tier 3
		AssetPath:       os.Getenv("MD2DOCX_ASSET_PATH"),
		CodeBlocks:      os.Getenv("MD2DOCX_CODE_BLOCKS"),
		CodeTheme:       os.Getenv("MD2DOCX_CODE_THEME"),
		HeadingOverflow: os.Getenv("MD2DOCX_HEADING_OVERFLOW"),
	}

	if margin := os.Getenv("MD2DOCX_MARGIN"); margin != "" {
		if m, err := strconv.ParseFloat(margin, 64); err == nil && m > 0 {
			cfg.Margin = m
		}
	}

	if fm := os.Getenv("MD2DOCX_FRONT_MATTER"); fm != "" {
		if b, err := strconv.ParseBool(fm); err == nil {
			cfg.FrontMatter = &b
		}
	}

	if workers := os.Getenv("MD2DOCX_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2DOCX_* variables.
// Helps catch typos like MD2DOCX_AUTOR instead of MD2DOCX_AUTHOR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies set environment variables over config values.
// Resulting precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	// Tier 1
	if env.Style != "" {
		cfg.Style = env.Style
	}
	if env.Input != "" {
		cfg.Input.Path = env.Input
	}
	if env.Output != "" {
		cfg.Output.Path = env.Output
	}

	// Tier 2
	if env.Author != "" {
		cfg.Document.Author = env.Author
	}
	if env.PageSize != "" {
		cfg.Page.Size = env.PageSize
	}
	if env.Orientation != "" {
		cfg.Page.Orientation = env.Orientation
	}
	if env.Margin != 0 {
		cfg.Page.Margin = env.Margin
	}

	// Tier 3
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.CodeBlocks != "" {
		cfg.Code.Blocks = env.CodeBlocks
	}
	if env.CodeTheme != "" {
		cfg.Code.Theme = env.CodeTheme
	}
	if env.HeadingOverflow != "" {
		cfg.Headings.Overflow = env.HeadingOverflow
	}
	if env.FrontMatter != nil {
		cfg.FrontMatter.Enabled = *env.FrontMatter
	}
}
