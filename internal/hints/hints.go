// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// appConfigDir is the path fragment identifying the per-user config directory.
var appConfigDir = "go-md2docx" + string(filepath.Separator)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, appConfigDir) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForInputNotFound returns hints for a missing input file.
// The default input gets its own hint since users often run the bare command.
func ForInputNotFound(path, defaultPath string) string {
	if path == defaultPath {
		return format("no input given and " + defaultPath + " not found; pass a file or directory")
	}
	return format("check the path; directories are scanned for .md and .markdown files")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; or pass a path to a styles.xml")
}

// ForInvalidStyles returns hints for a style sheet missing required styles.
func ForInvalidStyles(required []string) string {
	if len(required) == 0 {
		return ""
	}
	return format("custom styles.xml must define paragraph styles " + strings.Join(required, ", "))
}

// ForCodeTheme returns hints for an unknown code highlighting theme.
func ForCodeTheme() string {
	return format("themes are chroma style names, e.g. github, monokai, dracula")
}

// ForFrontMatter returns hints for front matter parse errors.
func ForFrontMatter() string {
	return format("front matter must be a YAML block between --- lines at the top of the file")
}

// ForUnknownCommand returns hints for a first argument that is neither a
// command nor an input.
func ForUnknownCommand() string {
	return format("run 'md2docx help' for commands; inputs must be .md or .markdown files or directories")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
