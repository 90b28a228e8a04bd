package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// runConfig prints the effective configuration as YAML: defaults, the
// config file, MD2DOCX_* variables and flags merged in that order.
// It accepts the convert flags so a command line can be previewed.
func runConfig(args []string, env *Environment) error {
	flags, positional, err := parseConfigFlags(args, env)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}

	cfg, err := resolveConfig(flags, loadEnvConfig())
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		cfg.Input.Path = positional[0]
	}

	data, err := yamlutil.MarshalIndent(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(data)
	return err
}

// parseConfigFlags parses config command flags, which are the convert flags.
func parseConfigFlags(args []string, env *Environment) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet("config", f)
	fs.SetOutput(env.Stderr)
	fs.Usage = func() { printConfigUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
