package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx [command] [flags] [input]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Convert markdown files to DOCX (default)")
	fmt.Fprintln(w, "  config      Print the effective configuration as YAML")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without a command, md2docx converts WhisperSOS_Technical_Writeup.md.")
	fmt.Fprintln(w, "Run 'md2docx help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx convert [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to DOCX.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (default: WhisperSOS_Technical_Writeup.md)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>          Output file (.docx) or directory")
	fmt.Fprintln(w, "  -c, --config <name>          Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>            Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	printDocumentUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                  Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2DOCX_CONFIG, MD2DOCX_STYLE, MD2DOCX_INPUT, MD2DOCX_OUTPUT,")
	fmt.Fprintln(w, "  MD2DOCX_AUTHOR, MD2DOCX_PAGE_SIZE, MD2DOCX_ORIENTATION, MD2DOCX_MARGIN,")
	fmt.Fprintln(w, "  MD2DOCX_ASSET_PATH, MD2DOCX_CODE_BLOCKS, MD2DOCX_CODE_THEME,")
	fmt.Fprintln(w, "  MD2DOCX_HEADING_OVERFLOW, MD2DOCX_FRONT_MATTER, MD2DOCX_WORKERS")
	fmt.Fprintln(w, "  Flags override environment, environment overrides the config file.")
}

// printDocumentUsage prints the flags that shape the generated document.
func printDocumentUsage(w io.Writer) {
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>              Title (\"\" = front matter, first H1, file name)")
	fmt.Fprintln(w, "      --author <s>             Author")
	fmt.Fprintln(w, "      --subject <s>            Subject")
	fmt.Fprintln(w, "      --description <s>        Description")
	fmt.Fprintln(w, "      --keywords <a,b>         Comma-separated keywords")
	fmt.Fprintln(w, "      --front-matter           Read properties from a leading front matter block")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>          Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>        Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>             Margin in inches (0.25-3.0, default 1.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Structure:")
	fmt.Fprintln(w, "      --code-blocks <s>        Fenced code: inline (default), preformatted")
	fmt.Fprintln(w, "      --code-theme <s>         Chroma style for preformatted code (default github)")
	fmt.Fprintln(w, "      --heading-overflow <s>   Headings below level 4: passthrough (default), clamp")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name|path>      Style name (default, technical) or styles.xml path")
	fmt.Fprintln(w, "      --asset-path <dir>       Custom asset directory ({dir}/styles/{name}.xml)")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx config [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective configuration as YAML.")
	fmt.Fprintln(w, "Accepts the convert flags; the output is a valid config file.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2docx version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2docx help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
