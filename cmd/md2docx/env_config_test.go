package main

// Notes:
// - loadEnvConfig: we test every variable across the three tiers, and that
//   unparseable numbers and booleans are ignored rather than reported.
// - warnUnknownEnvVars: we test typo detection and that known vars don't warn.
// - applyEnvConfig: env values replace config file values; unset variables
//   leave the config untouched.
// - Tests use t.Setenv() which prevents t.Parallel() at parent level.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-md2docx/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Run("Tier 1 - Essential", func(t *testing.T) {
		t.Setenv("MD2DOCX_CONFIG", "/path/to/config.yaml")
		t.Setenv("MD2DOCX_STYLE", "technical")
		t.Setenv("MD2DOCX_INPUT", "docs")
		t.Setenv("MD2DOCX_OUTPUT", "out")

		cfg := loadEnvConfig()

		if cfg.ConfigPath != "/path/to/config.yaml" {
			t.Errorf("ConfigPath = %q", cfg.ConfigPath)
		}
		if cfg.Style != "technical" {
			t.Errorf("Style = %q, want technical", cfg.Style)
		}
		if cfg.Input != "docs" || cfg.Output != "out" {
			t.Errorf("Input, Output = %q, %q", cfg.Input, cfg.Output)
		}
	})

	t.Run("Tier 2 - Identity and layout", func(t *testing.T) {
		t.Setenv("MD2DOCX_AUTHOR", "Jane Doe")
		t.Setenv("MD2DOCX_PAGE_SIZE", "a4")
		t.Setenv("MD2DOCX_ORIENTATION", "landscape")
		t.Setenv("MD2DOCX_MARGIN", "0.75")

		cfg := loadEnvConfig()

		if cfg.Author != "Jane Doe" {
			t.Errorf("Author = %q", cfg.Author)
		}
		if cfg.PageSize != "a4" || cfg.Orientation != "landscape" {
			t.Errorf("PageSize, Orientation = %q, %q", cfg.PageSize, cfg.Orientation)
		}
		if cfg.Margin != 0.75 {
			t.Errorf("Margin = %v, want 0.75", cfg.Margin)
		}
	})

	t.Run("Tier 3 - Extended", func(t *testing.T) {
		t.Setenv("MD2DOCX_ASSET_PATH", "/assets")
		t.Setenv("MD2DOCX_CODE_BLOCKS", "preformatted")
		t.Setenv("MD2DOCX_CODE_THEME", "monokai")
		t.Setenv("MD2DOCX_HEADING_OVERFLOW", "clamp")
		t.Setenv("MD2DOCX_FRONT_MATTER", "true")
		t.Setenv("MD2DOCX_WORKERS", "4")

		cfg := loadEnvConfig()

		if cfg.AssetPath != "/assets" {
			t.Errorf("AssetPath = %q", cfg.AssetPath)
		}
		if cfg.CodeBlocks != "preformatted" || cfg.CodeTheme != "monokai" {
			t.Errorf("CodeBlocks, CodeTheme = %q, %q", cfg.CodeBlocks, cfg.CodeTheme)
		}
		if cfg.HeadingOverflow != "clamp" {
			t.Errorf("HeadingOverflow = %q", cfg.HeadingOverflow)
		}
		if cfg.FrontMatter == nil || !*cfg.FrontMatter {
			t.Errorf("FrontMatter = %v, want true", cfg.FrontMatter)
		}
		if cfg.Workers != 4 {
			t.Errorf("Workers = %d, want 4", cfg.Workers)
		}
	})

	t.Run("invalid values are ignored", func(t *testing.T) {
		t.Setenv("MD2DOCX_MARGIN", "wide")
		t.Setenv("MD2DOCX_FRONT_MATTER", "maybe")
		t.Setenv("MD2DOCX_WORKERS", "-2")

		cfg := loadEnvConfig()

		if cfg.Margin != 0 {
			t.Errorf("Margin = %v, want 0", cfg.Margin)
		}
		if cfg.FrontMatter != nil {
			t.Errorf("FrontMatter = %v, want nil", *cfg.FrontMatter)
		}
		if cfg.Workers != 0 {
			t.Errorf("Workers = %d, want 0", cfg.Workers)
		}
	})

	t.Run("false front matter is kept", func(t *testing.T) {
		t.Setenv("MD2DOCX_FRONT_MATTER", "false")

		cfg := loadEnvConfig()

		if cfg.FrontMatter == nil || *cfg.FrontMatter {
			t.Errorf("FrontMatter = %v, want false", cfg.FrontMatter)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Run("unknown variable warns", func(t *testing.T) {
		t.Setenv("MD2DOCX_AUTOR", "Jane")
		var buf bytes.Buffer

		warnUnknownEnvVars(&buf)

		if !strings.Contains(buf.String(), "warning: unknown environment variable MD2DOCX_AUTOR (typo?)") {
			t.Errorf("output = %q", buf.String())
		}
	})

	t.Run("known variables are silent", func(t *testing.T) {
		for name := range knownEnvVars {
			t.Setenv(name, "x")
		}
		var buf bytes.Buffer

		warnUnknownEnvVars(&buf)

		for name := range knownEnvVars {
			if strings.Contains(buf.String(), name+" ") {
				t.Errorf("known variable %s reported: %q", name, buf.String())
			}
		}
	})

	t.Run("other prefixes are ignored", func(t *testing.T) {
		t.Setenv("OTHERTOOL_STYLE", "x")
		var buf bytes.Buffer

		warnUnknownEnvVars(&buf)

		if strings.Contains(buf.String(), "OTHERTOOL_STYLE") {
			t.Errorf("output = %q", buf.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env over config file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("env overrides config values", func(t *testing.T) {
		t.Parallel()
		fm := true
		env := &envConfig{
			Style:           "technical",
			Input:           "docs",
			Output:          "out",
			Author:          "Jane Doe",
			PageSize:        "a4",
			Orientation:     "landscape",
			Margin:          0.5,
			AssetPath:       "/assets",
			CodeBlocks:      "preformatted",
			CodeTheme:       "monokai",
			HeadingOverflow: "clamp",
			FrontMatter:     &fm,
		}
		cfg := config.DefaultConfig()
		cfg.Document.Author = "From File"

		applyEnvConfig(env, cfg)

		if cfg.Style != "technical" || cfg.Input.Path != "docs" || cfg.Output.Path != "out" {
			t.Errorf("style/io = %q %q %q", cfg.Style, cfg.Input.Path, cfg.Output.Path)
		}
		if cfg.Document.Author != "Jane Doe" {
			t.Errorf("Author = %q, want env value", cfg.Document.Author)
		}
		if cfg.Page != (config.PageConfig{Size: "a4", Orientation: "landscape", Margin: 0.5}) {
			t.Errorf("Page = %+v", cfg.Page)
		}
		if cfg.Assets.BasePath != "/assets" {
			t.Errorf("Assets.BasePath = %q", cfg.Assets.BasePath)
		}
		if cfg.Code != (config.CodeConfig{Blocks: "preformatted", Theme: "monokai"}) {
			t.Errorf("Code = %+v", cfg.Code)
		}
		if cfg.Headings.Overflow != "clamp" || !cfg.FrontMatter.Enabled {
			t.Errorf("Headings, FrontMatter = %+v, %+v", cfg.Headings, cfg.FrontMatter)
		}
	})

	t.Run("unset env leaves config untouched", func(t *testing.T) {
		t.Parallel()
		cfg := config.DefaultConfig()
		cfg.Style = "technical"
		cfg.FrontMatter.Enabled = true
		want := *cfg

		applyEnvConfig(&envConfig{}, cfg)

		if cfg.Style != want.Style || cfg.Page != want.Page || cfg.Code != want.Code ||
			cfg.FrontMatter != want.FrontMatter || cfg.Input != want.Input {
			t.Errorf("config changed: %+v, want %+v", cfg, want)
		}
	})
}
