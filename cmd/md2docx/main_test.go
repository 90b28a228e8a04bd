package main

// Notes:
// - isCommand, looksLikeMarkdown, isInputArg: argument classification.
// - runMain: exit codes and the error line for each dispatch path. Actual
//   conversion is covered in convert_test.go.

import (
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Argument classification
// ---------------------------------------------------------------------------

func TestIsCommand(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"convert", "config", "completion", "version", "help"} {
		if !isCommand(name) {
			t.Errorf("isCommand(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"", "conver", "doc.md", "--help", "Convert"} {
		if isCommand(name) {
			t.Errorf("isCommand(%q) = true, want false", name)
		}
	}
}

func TestLooksLikeMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arg  string
		want bool
	}{
		{"doc.md", true},
		{"docs/Guide.MARKDOWN", true},
		{"doc.txt", false},
		{"md", false},
		{"docs", false},
	}
	for _, tt := range tests {
		if got := looksLikeMarkdown(tt.arg); got != tt.want {
			t.Errorf("looksLikeMarkdown(%q) = %v, want %v", tt.arg, got, tt.want)
		}
	}
}

func TestIsInputArg(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tests := []struct {
		arg  string
		want bool
	}{
		{"-v", true},
		{"--output", true},
		{"doc.md", true},
		{dir, true},
		{filepath.Join(dir, "missing"), false},
		{"conver", false},
	}
	for _, tt := range tests {
		if got := isInputArg(tt.arg); got != tt.want {
			t.Errorf("isInputArg(%q) = %v, want %v", tt.arg, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRunMain - Dispatch and exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "version",
			args:       []string{"md2docx", "version"},
			wantCode:   ExitSuccess,
			wantStdout: "go-md2docx " + Version,
		},
		{
			name:       "help",
			args:       []string{"md2docx", "help"},
			wantCode:   ExitSuccess,
			wantStdout: "Usage: md2docx [command]",
		},
		{
			name:       "help for convert",
			args:       []string{"md2docx", "help", "convert"},
			wantCode:   ExitSuccess,
			wantStdout: "--code-blocks",
		},
		{
			name:       "unknown command",
			args:       []string{"md2docx", "conver"},
			wantCode:   ExitUsage,
			wantStderr: "unknown command",
		},
		{
			name:       "unsupported shell",
			args:       []string{"md2docx", "completion", "tcsh"},
			wantCode:   ExitUsage,
			wantStderr: "unsupported shell",
		},
		{
			name:       "missing markdown file",
			args:       []string{"md2docx", filepath.Join(t.TempDir(), "missing.md")},
			wantCode:   ExitIO,
			wantStderr: "no input found",
		},
		{
			name:       "invalid flag",
			args:       []string{"md2docx", "convert", "--bogus"},
			wantCode:   ExitUsage,
			wantStderr: "invalid flag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env, stdout, stderr := testEnv()

			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d (stderr %q)", code, tt.wantCode, stderr.String())
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestRunMain_ConvertsMarkdownArgument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, filepath.Join(dir, "doc.md"), writeup)
	env, stdout, _ := testEnv()

	if code := runMain([]string{"md2docx", in}, env); code != ExitSuccess {
		t.Fatalf("runMain() = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout.String(), "doc.docx") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	if Version == "" {
		t.Error("Version should not be empty")
	}
}
