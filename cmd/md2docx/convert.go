package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/hints"
)

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}

	setMaxProcs(flags.common.verbose, env)
	warnUnknownEnvVars(env.Stderr)

	envCfg := loadEnvConfig()
	if flags.workers == 0 {
		flags.workers = envCfg.Workers
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := resolveConfig(flags, envCfg)
	if err != nil {
		return err
	}

	inputPath := resolveInputPath(positional, cfg)
	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		if errors.Is(err, ErrInvalidExtension) || errors.Is(err, ErrOutputIsFile) {
			return err
		}
		return fmt.Errorf("%w: %w%s", ErrNoInput, err, hints.ForInputNotFound(inputPath, config.DefaultInputPath))
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files in %s", ErrNoInput, inputPath)
	}

	converter, err := md2docx.NewConverter(converterOptions(cfg, env)...)
	if err != nil {
		return err
	}

	workers := resolvePoolSize(flags.workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d\n", workers)
	}

	results := convertBatch(ctx, converter, files, inputSettings(cfg), workers)

	failed := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return &batchError{failed: failed, total: len(results), first: firstFailure(results)}
	}

	return nil
}

// resolveConfig builds the effective configuration.
// Precedence: CLI flags > env vars > config file > defaults.
func resolveConfig(flags *convertFlags, envCfg *envConfig) (*config.Config, error) {
	name := flags.common.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			hint := ""
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				hint = hints.ForConfigNotFound(config.SearchPaths(name))
			}
			return nil, fmt.Errorf("loading config: %w%s", err, hint)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.Path = flags.output
	}

	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.author != "" {
		cfg.Document.Author = flags.document.author
	}
	if flags.document.subject != "" {
		cfg.Document.Subject = flags.document.subject
	}
	if flags.document.description != "" {
		cfg.Document.Description = flags.document.description
	}
	if len(flags.document.keywords) > 0 {
		cfg.Document.Keywords = flags.document.keywords
	}

	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = flags.page.orientation
	}
	if flags.page.margin != 0 {
		cfg.Page.Margin = flags.page.margin
	}

	if flags.assets.style != "" {
		cfg.Style = flags.assets.style
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}

	if flags.structure.codeBlocks != "" {
		cfg.Code.Blocks = flags.structure.codeBlocks
	}
	if flags.structure.codeTheme != "" {
		cfg.Code.Theme = flags.structure.codeTheme
	}
	if flags.structure.headingOverflow != "" {
		cfg.Headings.Overflow = flags.structure.headingOverflow
	}
	if flags.structure.frontMatter {
		cfg.FrontMatter.Enabled = true
	}
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	if cfg.Input.Path != "" {
		return cfg.Input.Path
	}
	return config.DefaultInputPath
}

// resolveOutputDir determines the output file or directory.
// Empty means each output sits beside its input.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.Path
}

// converterOptions maps the configuration onto library options.
func converterOptions(cfg *config.Config, env *Environment) []md2docx.Option {
	opts := []md2docx.Option{
		md2docx.WithStyle(cfg.Style),
		md2docx.WithCodeBlocks(strings.ToLower(cfg.Code.Blocks)),
		md2docx.WithCodeTheme(cfg.Code.Theme),
		md2docx.WithHeadingOverflow(strings.ToLower(cfg.Headings.Overflow)),
		md2docx.WithFrontMatter(cfg.FrontMatter.Enabled),
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, md2docx.WithAssetPath(cfg.Assets.BasePath))
	}
	if env.Now != nil {
		opts = append(opts, md2docx.WithClock(env.Now))
	}
	return opts
}

// inputSettings builds the per-file page settings and metadata shared by
// every file of a batch.
func inputSettings(cfg *config.Config) md2docx.Input {
	return md2docx.Input{
		Page: &md2docx.PageSettings{
			Size:        strings.ToLower(cfg.Page.Size),
			Orientation: strings.ToLower(cfg.Page.Orientation),
			Margin:      cfg.Page.Margin,
		},
		Metadata: &md2docx.Metadata{
			Title:       cfg.Document.Title,
			Author:      cfg.Document.Author,
			Subject:     cfg.Document.Subject,
			Description: cfg.Document.Description,
			Keywords:    cfg.Document.Keywords,
		},
	}
}
