package docx

import "errors"

// Sentinel errors for package operations.
var (
	ErrNoSections     = errors.New("docx: document has no sections")
	ErrMissingStyles  = errors.New("docx: styles part is empty")
	ErrInvalidStyles  = errors.New("docx: invalid styles part")
	ErrMissingStyle   = errors.New("docx: styles part missing required style")
	ErrNotDocx        = errors.New("docx: not a WordprocessingML package")
	ErrInvalidPackage = errors.New("docx: invalid package part")
)
