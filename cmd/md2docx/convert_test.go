package main

// Notes:
// - runConvert: end-to-end runs against temp directories with the real
//   converter; packages are read back with the internal docx reader.
// - The default-input test changes the working directory and so does not
//   run in parallel; the other tests use absolute paths.
// - A fixed clock makes outputs of identical runs byte-identical.

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/docx"
)

const writeup = "# WhisperSOS\n\n## Overview\nHello world.\n- item one\n1. first\n"

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func readDocx(t *testing.T, path string) *docx.Document {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	doc, err := docx.ReadBytes(data)
	if err != nil {
		t.Fatalf("ReadBytes() error = %v", err)
	}
	return doc
}

// ---------------------------------------------------------------------------
// TestRunConvert - End-to-end conversion
// ---------------------------------------------------------------------------

func TestRunConvert_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, filepath.Join(dir, "WhisperSOS_Technical_Writeup.md"), writeup)
	env, stdout, _ := testEnv()

	if err := runConvert(context.Background(), []string{in}, env); err != nil {
		t.Fatalf("runConvert() error = %v", err)
	}

	out := filepath.Join(dir, "WhisperSOS_Technical_Writeup.docx")
	if got := stdout.String(); got != "Converted "+in+" -> "+out+"\n" {
		t.Errorf("stdout = %q", got)
	}

	doc := readDocx(t, out)
	want := []struct {
		style string
		text  string
	}{
		{docx.StyleTitle, "WhisperSOS"},
		{docx.StyleNormal, ""},
		{"Heading1", "Overview"},
		{docx.StyleNormal, "Hello world."},
		{docx.StyleListBullet, "item one"},
		{docx.StyleListNumber, "first"},
	}
	if len(doc.Paragraphs) != len(want) {
		t.Fatalf("got %d paragraphs, want %d", len(doc.Paragraphs), len(want))
	}
	for i, w := range want {
		p := doc.Paragraphs[i]
		if p.Style != w.style || p.Text() != w.text {
			t.Errorf("paragraph %d = %s %q, want %s %q", i, p.Style, p.Text(), w.style, w.text)
		}
	}
	for _, s := range doc.Sections {
		if s.Margins != docx.UniformMargins(1) {
			t.Errorf("section margins = %+v, want one inch", s.Margins)
		}
	}
	if doc.Core.Title != "WhisperSOS" {
		t.Errorf("title = %q, want WhisperSOS", doc.Core.Title)
	}
}

func TestRunConvert_FlagsReachDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, filepath.Join(dir, "doc.md"), "```go\n\tx := 1\n```\n")
	out := filepath.Join(dir, "nested", "report.docx")
	env, _, _ := testEnv()

	args := []string{
		in, "-o", out, "-q",
		"--title", "Report", "--author", "Jane Doe", "--keywords", "a,b",
		"-p", "A4", "--orientation", "landscape", "--margin", "0.5",
		"--code-blocks", "preformatted",
	}
	if err := runConvert(context.Background(), args, env); err != nil {
		t.Fatalf("runConvert() error = %v", err)
	}

	doc := readDocx(t, out)
	if doc.Core.Title != "Report" || doc.Core.Creator != "Jane Doe" {
		t.Errorf("core = %+v", doc.Core)
	}
	if strings.Join(doc.Core.Keywords, ",") != "a,b" {
		t.Errorf("keywords = %v", doc.Core.Keywords)
	}
	s := doc.Sections[0]
	if s.Size != docx.PageA4 || !s.Landscape || s.Margins != docx.UniformMargins(0.5) {
		t.Errorf("section = %+v", s)
	}
	if len(doc.Paragraphs) != 1 || doc.Paragraphs[0].Style != docx.StyleCode {
		t.Fatalf("paragraphs = %+v, want one Code paragraph", doc.Paragraphs)
	}
	if got := doc.Paragraphs[0].Text(); got != "    x := 1" {
		t.Errorf("code text = %q, want tab expanded", got)
	}
}

func TestRunConvert_Directory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	src := filepath.Join(root, "docs")
	out := filepath.Join(root, "out")
	writeFile(t, filepath.Join(src, "a.md"), "# A\n")
	writeFile(t, filepath.Join(src, "sub", "b.markdown"), "# B\n")
	writeFile(t, filepath.Join(src, "skip.txt"), "# no\n")
	env, stdout, _ := testEnv()

	if err := runConvert(context.Background(), []string{src, "-o", out, "-w", "2"}, env); err != nil {
		t.Fatalf("runConvert() error = %v", err)
	}

	for _, p := range []string{filepath.Join(out, "a.docx"), filepath.Join(out, "sub", "b.docx")} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("missing output %s: %v", p, err)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "skip.docx")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("non-markdown file converted: %v", err)
	}
	if !strings.Contains(stdout.String(), "2 succeeded, 0 failed") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunConvert_Deterministic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, filepath.Join(dir, "doc.md"), writeup)
	a := filepath.Join(dir, "a.docx")
	b := filepath.Join(dir, "b.docx")

	for _, out := range []string{a, b} {
		env, _, _ := testEnv()
		if err := runConvert(context.Background(), []string{in, "-q", "-o", out}, env); err != nil {
			t.Fatalf("runConvert() error = %v", err)
		}
	}

	da, _ := os.ReadFile(a)
	db, _ := os.ReadFile(b)
	if !bytes.Equal(da, db) {
		t.Error("two runs with a fixed clock produced different packages")
	}
}

func TestRunConvert_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, filepath.Join(dir, "doc.md"), writeup)
	txt := writeFile(t, filepath.Join(dir, "doc.txt"), writeup)

	tests := []struct {
		name     string
		args     []string
		wantErr  error
		wantCode int
	}{
		{"missing input", []string{filepath.Join(dir, "missing.md")}, ErrNoInput, ExitIO},
		{"empty directory", []string{t.TempDir()}, ErrNoInput, ExitIO},
		{"wrong extension", []string{txt}, ErrInvalidExtension, ExitUsage},
		{"directory with docx output", []string{dir, "-o", filepath.Join(t.TempDir(), "one.docx")}, ErrOutputIsFile, ExitUsage},
		{"unknown flag", []string{in, "--bogus"}, ErrInvalidFlag, ExitUsage},
		{"negative workers", []string{in, "-w", "-1"}, ErrInvalidWorkerCount, ExitUsage},
		{"invalid page size", []string{in, "-p", "tabloid"}, config.ErrInvalidValue, ExitUsage},
		{"invalid margin", []string{in, "--margin", "9"}, config.ErrInvalidValue, ExitUsage},
		{"unknown style", []string{in, "--style", "fancy"}, md2docx.ErrStyleNotFound, ExitUsage},
		{"unknown code theme", []string{in, "--code-theme", "no-such-theme"}, md2docx.ErrInvalidCodeTheme, ExitUsage},
		{"missing config", []string{in, "-c", filepath.Join(dir, "none.yaml")}, config.ErrConfigNotFound, ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env, _, _ := testEnv()
			err := runConvert(context.Background(), tt.args, env)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if code := exitCodeFor(err); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
		})
	}
}

func TestRunConvert_FailedFileReported(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, filepath.Join(dir, "doc.md"), "---\ntitle: [unclosed\n---\n# Doc\n")
	env, stdout, stderr := testEnv()

	err := runConvert(context.Background(), []string{in, "--front-matter"}, env)

	if !errors.Is(err, ErrConversionFailed) || !errors.Is(err, md2docx.ErrFrontMatter) {
		t.Fatalf("error = %v, want ErrConversionFailed wrapping ErrFrontMatter", err)
	}
	if !strings.Contains(stderr.String(), "FAILED "+in) {
		t.Errorf("stderr = %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "doc.docx")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("failed conversion left an output file: %v", err)
	}
}

func TestRunConvert_HelpFlag(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv()
	if err := runConvert(context.Background(), []string{"--help"}, env); err != nil {
		t.Fatalf("runConvert() error = %v", err)
	}
	if !strings.Contains(stderr.String(), "Usage: md2docx convert") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunConvert_CanceledContext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, filepath.Join(dir, "doc.md"), writeup)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	env, _, _ := testEnv()

	err := runConvert(ctx, []string{in}, env)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// Default input and configuration sources (not parallel)
// ---------------------------------------------------------------------------

func TestRunConvert_DefaultInput(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	env, stdout, _ := testEnv()

	t.Run("missing default input hints", func(t *testing.T) {
		err := runConvert(context.Background(), nil, env)
		if !errors.Is(err, ErrNoInput) {
			t.Fatalf("error = %v, want ErrNoInput", err)
		}
		if !strings.Contains(err.Error(), config.DefaultInputPath) {
			t.Errorf("error should name the default input: %v", err)
		}
	})

	t.Run("converts default input to default output", func(t *testing.T) {
		writeFile(t, config.DefaultInputPath, writeup)

		if err := runConvert(context.Background(), nil, env); err != nil {
			t.Fatalf("runConvert() error = %v", err)
		}
		if _, err := os.Stat(config.DefaultOutputPath); err != nil {
			t.Errorf("default output missing: %v", err)
		}
		want := "Converted " + config.DefaultInputPath + " -> " + config.DefaultOutputPath + "\n"
		if stdout.String() != want {
			t.Errorf("stdout = %q, want %q", stdout.String(), want)
		}
	})
}

func TestRunConvert_Precedence(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, filepath.Join(dir, "doc.md"), writeup)
	cfgPath := writeFile(t, filepath.Join(dir, "work.yaml"), "document:\n  author: From File\n  subject: File Subject\npage:\n  size: legal\n")
	out := filepath.Join(dir, "doc.docx")

	t.Setenv("MD2DOCX_CONFIG", cfgPath)
	t.Setenv("MD2DOCX_AUTHOR", "From Env")
	t.Setenv("MD2DOCX_PAGE_SIZE", "a4")
	env, _, _ := testEnv()

	if err := runConvert(context.Background(), []string{in, "-q", "-p", "letter"}, env); err != nil {
		t.Fatalf("runConvert() error = %v", err)
	}

	doc := readDocx(t, out)
	if doc.Core.Subject != "File Subject" {
		t.Errorf("subject = %q, want config file value", doc.Core.Subject)
	}
	if doc.Core.Creator != "From Env" {
		t.Errorf("creator = %q, want env over config", doc.Core.Creator)
	}
	if doc.Sections[0].Size != docx.PageLetter {
		t.Errorf("page size = %v, want flag over env", doc.Sections[0].Size)
	}
}

func TestRunConvert_UnknownEnvVarWarns(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, filepath.Join(dir, "doc.md"), writeup)
	t.Setenv("MD2DOCX_STYEL", "technical")
	env, _, stderr := testEnv()

	if err := runConvert(context.Background(), []string{in, "-q"}, env); err != nil {
		t.Fatalf("runConvert() error = %v", err)
	}
	if !strings.Contains(stderr.String(), "MD2DOCX_STYEL") {
		t.Errorf("stderr = %q, want unknown variable warning", stderr.String())
	}
}
