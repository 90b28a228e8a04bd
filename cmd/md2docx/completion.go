package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2docx/internal/pipeline"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// programName is the command completions are registered for.
const programName = "md2docx"

// markdownGlob matches the files convert accepts as input.
const markdownGlob = "*.md,*.markdown"

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagFloat
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	Args        []string // fixed argument values (shells, command names)
	TakesFiles  bool     // accepts file arguments
	FilePattern string   // glob for file arguments (e.g., "*.md")
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"page-size":        {Values: []string{"letter", "a4", "legal"}},
	"orientation":      {Values: []string{"portrait", "landscape"}},
	"code-blocks":      {Values: []string{"inline", "preformatted"}},
	"heading-overflow": {Values: []string{"passthrough", "clamp"}},
	"code-theme":       {Values: pipeline.Themes()},

	// File flags with glob patterns
	"config": {FileGlob: "*.yaml,*.yml"},
	"style":  {FileGlob: "*.xml"},

	// Directory flags
	"output":     {IsDir: true},
	"asset-path": {IsDir: true},
}

// shells lists the completion targets in help order.
var shells = []Shell{ShellBash, ShellZsh, ShellFish, ShellPowerShell}

// buildConvertFlagSet creates a FlagSet with all convert command flags.
func buildConvertFlagSet() *flag.FlagSet {
	return newConvertFlagSet("convert", &convertFlags{})
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		case "float32", "float64":
			fd.Type = flagFloat
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSet.
func getCommands() []commandDef {
	convertFlags := extractFlagsFromFlagSet(buildConvertFlagSet())

	shellNames := make([]string, len(shells))
	for i, s := range shells {
		shellNames[i] = string(s)
	}

	cmds := []commandDef{
		{
			Name:        "convert",
			Desc:        "Convert markdown files to DOCX",
			Flags:       convertFlags,
			TakesFiles:  true,
			FilePattern: markdownGlob,
		},
		{
			Name:        "config",
			Desc:        "Print the effective configuration",
			Flags:       convertFlags,
			TakesFiles:  true,
			FilePattern: markdownGlob,
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: shellNames,
		},
		{
			Name: "version",
			Desc: "Show version information",
		},
		{
			Name: "help",
			Desc: "Show help for a command",
		},
	}

	names := commandNames(cmds)
	for i := range cmds {
		if cmds[i].Name == "help" {
			cmds[i].Args = names
		}
	}
	return cmds
}

// commandNames returns the names of cmds in order.
func commandNames(cmds []commandDef) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

// findCommand returns the command named name.
func findCommand(cmds []commandDef, name string) commandDef {
	for _, c := range cmds {
		if c.Name == name {
			return c
		}
	}
	return commandDef{}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	case ShellPowerShell:
		return generatePowerShell(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

// generateBash writes a bash completion function. Commands without a
// subcommand name fall through to the convert flags, as on the command line.
func generateBash(w io.Writer) error {
	cmds := getCommands()
	convert := findCommand(cmds, "convert")
	fn := "_" + programName + "_completions"

	var b strings.Builder
	fmt.Fprintf(&b, "# bash completion for %s\n", programName)
	b.WriteString("shopt -s extglob\n\n")
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")

	b.WriteString("    case \"$prev\" in\n")
	for _, f := range convert.Flags {
		if f.Type == flagBool {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", bashFlagPattern(f))
		switch f.Type {
		case flagEnum:
			fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(f.Values, " "))
		case flagFile:
			fmt.Fprintf(&b, "            COMPREPLY=($(compgen -d -- \"$cur\") $(compgen -f -X '%s' -- \"$cur\"))\n", bashExcludeGlob(f.FileGlob))
		case flagDir:
			b.WriteString("            COMPREPLY=($(compgen -d -- \"$cur\"))\n")
		default:
			b.WriteString("            COMPREPLY=()\n")
		}
		b.WriteString("            return\n")
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n\n")

	markdownFiles := fmt.Sprintf("$(compgen -d -- \"$cur\") $(compgen -f -X '%s' -- \"$cur\")", bashExcludeGlob(convert.FilePattern))

	b.WriteString("    if [[ $COMP_CWORD -eq 1 && \"$cur\" != -* ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\") %s)\n", strings.Join(commandNames(cmds), " "), markdownFiles)
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"$cmd\" in\n")
	for _, c := range cmds {
		if len(c.Args) == 0 && c.Flags == nil && !c.TakesFiles {
			fmt.Fprintf(&b, "        %s)\n            COMPREPLY=()\n            ;;\n", c.Name)
			continue
		}
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "        %s)\n", c.Name)
			fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(c.Args, " "))
			b.WriteString("            ;;\n")
		}
	}
	b.WriteString("        *)\n")
	b.WriteString("            if [[ \"$cur\" == -* ]]; then\n")
	fmt.Fprintf(&b, "                COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(bashFlagWords(convert.Flags), " "))
	b.WriteString("            else\n")
	fmt.Fprintf(&b, "                COMPREPLY=(%s)\n", markdownFiles)
	b.WriteString("            fi\n")
	b.WriteString("            ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "complete -F %s %s\n", fn, programName)

	_, err := io.WriteString(w, b.String())
	return err
}

// bashFlagPattern returns the case pattern matching a flag's spellings.
func bashFlagPattern(f flagDef) string {
	if f.Short != "" {
		return "--" + f.Long + "|-" + f.Short
	}
	return "--" + f.Long
}

// bashFlagWords lists every flag spelling for compgen -W.
func bashFlagWords(flags []flagDef) []string {
	words := make([]string, 0, len(flags)*2)
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

// bashExcludeGlob turns "*.yaml,*.yml" into the extglob "!*.@(yaml|yml)"
// that compgen -X uses to drop non-matching files.
func bashExcludeGlob(glob string) string {
	return "!*.@(" + strings.Join(globExtensions(glob), "|") + ")"
}

// globExtensions extracts the extensions of a comma-separated "*.ext" list.
func globExtensions(glob string) []string {
	parts := strings.Split(glob, ",")
	exts := make([]string, 0, len(parts))
	for _, p := range parts {
		exts = append(exts, strings.TrimPrefix(strings.TrimSpace(p), "*."))
	}
	return exts
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

// generateZsh writes a zsh completion function for compinit or eval.
func generateZsh(w io.Writer) error {
	cmds := getCommands()
	convert := findCommand(cmds, "convert")
	fn := "_" + programName

	var b strings.Builder
	fmt.Fprintf(&b, "#compdef %s\n\n", programName)
	fmt.Fprintf(&b, "%s() {\n", fn)

	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")

	b.WriteString("    local -a convert_flags\n")
	b.WriteString("    convert_flags=(\n")
	for _, f := range convert.Flags {
		fmt.Fprintf(&b, "        %s\n", zshFlagSpec(f))
	}
	fmt.Fprintf(&b, "        '*:markdown file:_files -g \"%s\"'\n", zshGlob(convert.FilePattern))
	b.WriteString("    )\n\n")

	b.WriteString("    if (( CURRENT == 2 )) && [[ $words[CURRENT] != -* ]]; then\n")
	fmt.Fprintf(&b, "        _describe -t commands '%s command' commands\n", programName)
	fmt.Fprintf(&b, "        _files -g \"%s\"\n", zshGlob(convert.FilePattern))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case $words[2] in\n")
	for _, c := range cmds {
		switch {
		case c.Flags != nil:
			fmt.Fprintf(&b, "        %s)\n", c.Name)
			b.WriteString("            shift words\n")
			b.WriteString("            (( CURRENT-- ))\n")
			b.WriteString("            _arguments -s $convert_flags\n")
			b.WriteString("            ;;\n")
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "        %s)\n", c.Name)
			fmt.Fprintf(&b, "            _values '%s' %s\n", c.Name, strings.Join(c.Args, " "))
			b.WriteString("            ;;\n")
		default:
			fmt.Fprintf(&b, "        %s)\n            ;;\n", c.Name)
		}
	}
	b.WriteString("        *)\n")
	b.WriteString("            _arguments -s $convert_flags\n")
	b.WriteString("            ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "compdef %s %s\n", fn, programName)

	_, err := io.WriteString(w, b.String())
	return err
}

// zshFlagSpec returns the _arguments spec for one flag.
func zshFlagSpec(f flagDef) string {
	desc := "[" + zshEscape(f.Desc) + "]"

	var action string
	switch f.Type {
	case flagBool:
		action = ""
	case flagEnum:
		action = ":value:(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		action = ":file:_files -g \"" + zshGlob(f.FileGlob) + "\""
	case flagDir:
		action = ":directory:_files -/"
	default:
		action = ":value: "
	}

	if f.Short != "" {
		return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'%s%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
	}
	return fmt.Sprintf("'--%s%s%s'", f.Long, desc, action)
}

// zshGlob turns "*.yaml,*.yml" into the zsh pattern "*.(yaml|yml)".
func zshGlob(glob string) string {
	return "*.(" + strings.Join(globExtensions(glob), "|") + ")"
}

// zshEscape escapes text for a single-quoted _arguments description.
func zshEscape(s string) string {
	r := strings.NewReplacer(
		"'", `'\''`,
		"[", `\[`,
		"]", `\]`,
		":", `\:`,
	)
	return r.Replace(s)
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

// generateFish writes fish completions.
func generateFish(w io.Writer) error {
	cmds := getCommands()
	convert := findCommand(cmds, "convert")
	needsCommand := "__fish_" + programName + "_needs_command"
	usingCommand := "__fish_" + programName + "_using_command"
	acceptsFlags := "__fish_" + programName + "_accepts_flags"

	var noFlags []string
	for _, c := range cmds {
		if c.Flags == nil {
			noFlags = append(noFlags, c.Name)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# fish completion for %s\n\n", programName)

	fmt.Fprintf(&b, "function %s\n", needsCommand)
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")

	fmt.Fprintf(&b, "function %s\n", usingCommand)
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")

	fmt.Fprintf(&b, "function %s\n", acceptsFlags)
	fmt.Fprintf(&b, "    not __fish_seen_subcommand_from %s\n", strings.Join(noFlags, " "))
	b.WriteString("end\n\n")

	fmt.Fprintf(&b, "complete -c %s -f\n\n", programName)

	b.WriteString("# Commands\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c %s -n %s -a %s -d '%s'\n", programName, needsCommand, c.Name, fishEscape(c.Desc))
	}
	b.WriteString("\n")

	b.WriteString("# Command arguments\n")
	for _, c := range cmds {
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "complete -c %s -n '%s %s' -a '%s'\n", programName, usingCommand, c.Name, strings.Join(c.Args, " "))
		}
	}
	for _, ext := range globExtensions(convert.FilePattern) {
		fmt.Fprintf(&b, "complete -c %s -n %s -a '(__fish_complete_suffix .%s)'\n", programName, acceptsFlags, ext)
	}
	b.WriteString("\n")

	b.WriteString("# Convert flags\n")
	for _, f := range convert.Flags {
		fmt.Fprintf(&b, "complete -c %s -n %s%s\n", programName, acceptsFlags, fishFlagSpec(f))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// fishFlagSpec returns the complete options for one flag.
func fishFlagSpec(f flagDef) string {
	var b strings.Builder
	if f.Short != "" {
		fmt.Fprintf(&b, " -s %s", f.Short)
	}
	fmt.Fprintf(&b, " -l %s", f.Long)

	switch f.Type {
	case flagBool:
	case flagEnum:
		fmt.Fprintf(&b, " -x -a '%s'", strings.Join(f.Values, " "))
	case flagFile:
		b.WriteString(" -r -F")
	case flagDir:
		b.WriteString(" -x -a '(__fish_complete_directories)'")
	default:
		b.WriteString(" -x")
	}

	fmt.Fprintf(&b, " -d '%s'", fishEscape(f.Desc))
	return b.String()
}

// fishEscape escapes text for a single-quoted fish string.
func fishEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s)
}

// ---------------------------------------------------------------------------
// PowerShell
// ---------------------------------------------------------------------------

// generatePowerShell writes a native argument completer.
// Fixed command arguments are keyed by command name next to the flag enums.
func generatePowerShell(w io.Writer) error {
	cmds := getCommands()
	convert := findCommand(cmds, "convert")

	var b strings.Builder
	fmt.Fprintf(&b, "# PowerShell completion for %s\n", programName)
	fmt.Fprintf(&b, "Register-ArgumentCompleter -Native -CommandName %s -ScriptBlock {\n", programName)
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")

	b.WriteString("    $commands = [ordered]@{\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s' = '%s'\n", c.Name, psEscape(c.Desc))
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $flags = [ordered]@{\n")
	for _, f := range convert.Flags {
		fmt.Fprintf(&b, "        '--%s' = '%s'\n", f.Long, psEscape(f.Desc))
		if f.Short != "" {
			fmt.Fprintf(&b, "        '-%s' = '%s'\n", f.Short, psEscape(f.Desc))
		}
	}
	b.WriteString("    }\n\n")

	values := map[string][]string{}
	for _, f := range convert.Flags {
		if f.Type == flagEnum {
			values["--"+f.Long] = f.Values
			if f.Short != "" {
				values["-"+f.Short] = f.Values
			}
		}
	}
	for _, c := range cmds {
		if len(c.Args) > 0 {
			values[c.Name] = c.Args
		}
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteString("    $values = @{\n")
	for _, k := range keys {
		quoted := make([]string, len(values[k]))
		for i, v := range values[k] {
			quoted[i] = "'" + psEscape(v) + "'"
		}
		fmt.Fprintf(&b, "        '%s' = @(%s)\n", k, strings.Join(quoted, ", "))
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $words = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })\n")
	b.WriteString("    if ($wordToComplete) { $prev = $words[-2] } else { $prev = $words[-1] }\n\n")

	b.WriteString("    if ($values.ContainsKey($prev)) {\n")
	b.WriteString("        $values[$prev] | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")

	b.WriteString("    if ($wordToComplete -like '-*') {\n")
	b.WriteString("        $flags.GetEnumerator() | Where-Object { $_.Key -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_.Key, $_.Key, 'ParameterName', $_.Value)\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")

	b.WriteString("    if ($words.Count -le 2) {\n")
	b.WriteString("        $commands.GetEnumerator() | Where-Object { $_.Key -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_.Key, $_.Key, 'Command', $_.Value)\n")
	b.WriteString("        }\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// psEscape escapes text for a single-quoted PowerShell string.
func psEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(md2docx completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(md2docx completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    md2docx completion fish > ~/.config/fish/completions/md2docx.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    md2docx completion powershell | Out-String | Invoke-Expression")
}
