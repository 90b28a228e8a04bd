package main

import (
	"errors"
	"fmt"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/docx"
	"github.com/alnah/go-md2docx/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input found")
	ErrInvalidFlag        = errors.New("invalid flag")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrOutputIsFile       = errors.New("directory input needs an output directory, not a .docx file")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrConversionFailed   = errors.New("conversion failed")
)

// batchError reports failed files of a batch. It unwraps to
// ErrConversionFailed and to the first failure, so the exit code follows
// the first failure's category.
type batchError struct {
	failed int
	total  int
	first  error
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d of %d conversion(s) failed", e.failed, e.total)
}

func (e *batchError) Unwrap() []error {
	return []error{ErrConversionFailed, e.first}
}

// formatError renders err with an actionable hint when one applies.
func formatError(err error) string {
	return err.Error() + hintFor(err)
}

// hintFor returns the hint for the first recognised error category.
func hintFor(err error) string {
	var be *batchError
	if errors.As(err, &be) {
		// Per-file failures already carry their hints.
		return ""
	}

	switch {
	case errors.Is(err, md2docx.ErrStyleNotFound):
		return hints.ForStyleNotFound(md2docx.StyleNames())
	case errors.Is(err, md2docx.ErrInvalidStyles):
		return hints.ForInvalidStyles(docx.RequiredStyles)
	case errors.Is(err, md2docx.ErrInvalidCodeTheme):
		return hints.ForCodeTheme()
	case errors.Is(err, md2docx.ErrFrontMatter):
		return hints.ForFrontMatter()
	case errors.Is(err, md2docx.ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, ErrUnknownCommand):
		return hints.ForUnknownCommand()
	}
	return ""
}
