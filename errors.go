package md2docx

import "errors"

// Sentinel errors for library operations.
var (
	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Converter option errors.
	ErrInvalidCodeMode        = errors.New("invalid code block mode")
	ErrInvalidCodeTheme       = errors.New("invalid code theme")
	ErrInvalidHeadingOverflow = errors.New("invalid heading overflow policy")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidStyles    = errors.New("invalid styles")
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Conversion errors.
	ErrFrontMatter   = errors.New("invalid front matter")
	ErrDocumentWrite = errors.New("document generation failed")

	// File errors.
	ErrReadInput   = errors.New("failed to read input")
	ErrWriteOutput = errors.New("failed to write output")
)
