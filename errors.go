package toc2jekyll

import "errors"

// Sentinel errors for library operations.
var (
	// Fatal: returned from Generate before anything is written.
	ErrSourceNotFound = errors.New("source README not found")
	ErrEmptyTOC       = errors.New("no table of contents items found")
	ErrReadSource     = errors.New("failed to read source")

	// Write errors. Fatal for the main page, recorded per page otherwise.
	ErrWritePage = errors.New("failed to write page")

	// Link resolution errors.
	ErrInvalidLink     = errors.New("invalid link")
	ErrPathEscapesRoot = errors.New("link escapes source root")

	// Configuration errors.
	ErrInvalidValidationMode = errors.New("invalid link validation mode")
	ErrInvalidCardMode       = errors.New("invalid card mode")
	ErrInvalidDateKeys       = errors.New("invalid date keys")
	ErrInvalidConfig         = errors.New("invalid generator config")

	// Rendering errors.
	ErrTemplateRender = errors.New("template rendering failed")

	// Date lookup errors. Never fatal: the generator falls back to today.
	ErrDatesUnavailable = errors.New("dates unavailable")
)
