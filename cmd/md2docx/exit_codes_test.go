package main

// Notes:
// - exitCodeFor: we test the sentinel errors from md2docx, config and this
//   package, plus wrapped errors and batch errors to verify the errors.Is()
//   chain.
// - Exit code constants: we verify Unix conventions (0=success, 1=general, 2=usage)
//   and custom codes are below 126.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read input", md2docx.ErrReadInput, ExitIO},
		{"write output", md2docx.ErrWriteOutput, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid config value", config.ErrInvalidValue, ExitUsage},
		{"invalid page size", md2docx.ErrInvalidPageSize, ExitUsage},
		{"invalid orientation", md2docx.ErrInvalidOrientation, ExitUsage},
		{"invalid margin", md2docx.ErrInvalidMargin, ExitUsage},
		{"invalid code mode", md2docx.ErrInvalidCodeMode, ExitUsage},
		{"invalid code theme", md2docx.ErrInvalidCodeTheme, ExitUsage},
		{"invalid heading overflow", md2docx.ErrInvalidHeadingOverflow, ExitUsage},
		{"style not found", md2docx.ErrStyleNotFound, ExitUsage},
		{"invalid styles", md2docx.ErrInvalidStyles, ExitUsage},
		{"invalid asset path", md2docx.ErrInvalidAssetPath, ExitUsage},
		{"front matter", md2docx.ErrFrontMatter, ExitUsage},
		{"invalid flag", ErrInvalidFlag, ExitUsage},
		{"invalid extension", ErrInvalidExtension, ExitUsage},
		{"docx output for directory", ErrOutputIsFile, ExitUsage},
		{"invalid worker count", ErrInvalidWorkerCount, ExitUsage},
		{"unknown command", ErrUnknownCommand, ExitUsage},
		{"unsupported shell", ErrUnsupportedShell, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"document write", md2docx.ErrDocumentWrite, ExitGeneral},
		{"conversion failed", ErrConversionFailed, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeFor_BatchErrorFollowsFirstFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		first error
		want  int
	}{
		{"read failure", fmt.Errorf("%w: missing", md2docx.ErrReadInput), ExitIO},
		{"front matter failure", md2docx.ErrFrontMatter, ExitUsage},
		{"canceled", errors.New("context canceled"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := &batchError{failed: 1, total: 3, first: tt.first}
			if got := exitCodeFor(err); got != tt.want {
				t.Errorf("exitCodeFor() = %d, want %d", got, tt.want)
			}
			if !errors.Is(err, ErrConversionFailed) {
				t.Error("batch error should match ErrConversionFailed")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}
	for _, code := range []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO} {
		if code >= 126 {
			t.Errorf("exit code %d collides with shell-reserved codes", code)
		}
	}
}
