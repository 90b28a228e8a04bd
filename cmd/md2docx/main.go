package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-md2docx/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// commands lists the subcommand names. Anything else is handed to convert.
var commands = map[string]bool{
	"convert":    true,
	"config":     true,
	"completion": true,
	"version":    true,
	"help":       true,
}

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches the command line and returns the process exit code.
// args[0] is the program name, as in os.Args.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := run(ctx, args, env); err != nil {
		fmt.Fprintln(env.Stderr, formatError(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run selects the command. A bare invocation, a leading flag or an input
// path runs convert, so `md2docx` alone converts the default input.
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) > 0 {
		args = args[1:]
	}

	if len(args) == 0 || !isCommand(args[0]) {
		if len(args) > 0 && !isInputArg(args[0]) {
			return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
		}
		return runConvert(ctx, args, env)
	}

	switch args[0] {
	case "convert":
		return runConvert(ctx, args[1:], env)
	case "config":
		return runConfig(args[1:], env)
	case "completion":
		return runCompletion(args[1:], env)
	case "version":
		fmt.Fprintf(env.Stdout, "go-md2docx %s\n", Version)
		return nil
	default:
		runHelp(args[1:], env)
		return nil
	}
}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	return commands[arg]
}

// isInputArg reports whether a non-command first argument belongs to convert:
// a flag, a markdown file or an existing directory.
func isInputArg(arg string) bool {
	return strings.HasPrefix(arg, "-") || looksLikeMarkdown(arg) || fileutil.DirExists(arg)
}

// looksLikeMarkdown reports whether arg has a markdown file extension.
func looksLikeMarkdown(arg string) bool {
	return isMarkdownExt(filepath.Ext(arg))
}

// setMaxProcs matches GOMAXPROCS to the container CPU quota.
// Adjustments are reported only in verbose mode.
func setMaxProcs(verbose bool, env *Environment) {
	// maxprocs.Set only fails on an invalid GOMAXPROCS value, in which case
	// the runtime default applies.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}
