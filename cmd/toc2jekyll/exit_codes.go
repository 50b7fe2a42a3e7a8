package main

import (
	"errors"
	"os"

	toc2jekyll "github.com/alnah/go-toc2jekyll"
	"github.com/alnah/go-toc2jekyll/internal/assets"
	"github.com/alnah/go-toc2jekyll/internal/config"
	"github.com/alnah/go-toc2jekyll/internal/hints"
	"github.com/alnah/go-toc2jekyll/internal/pipeline"
)

// Exit codes for the toc2jekyll CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Pages generated
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or validation
	ExitIO       = 3 // README missing, unreadable source, unwritable output
	ExitEmptyTOC = 4 // README has no table of contents items
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, toc2jekyll.ErrEmptyTOC) {
		return ExitEmptyTOC
	}

	// I/O errors (exit 3)
	if errors.Is(err, toc2jekyll.ErrSourceNotFound) ||
		errors.Is(err, toc2jekyll.ErrReadSource) ||
		errors.Is(err, toc2jekyll.ErrWritePage) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigInvalid) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigExists) ||
		errors.Is(err, toc2jekyll.ErrInvalidConfig) ||
		errors.Is(err, toc2jekyll.ErrInvalidValidationMode) ||
		errors.Is(err, toc2jekyll.ErrInvalidCardMode) ||
		errors.Is(err, toc2jekyll.ErrInvalidDateKeys) ||
		errors.Is(err, toc2jekyll.ErrTemplateRender) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, pipeline.ErrInvalidSiteURL) ||
		errors.Is(err, pipeline.ErrFrontMatter) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidLogFormat) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNotMarkdown) ||
		errors.Is(err, ErrSameInOutPath) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns an actionable suggestion for well-known errors, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		var nf *config.NotFoundError
		if errors.As(err, &nf) {
			return hints.ForConfigNotFound(nf.Searched)
		}
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, toc2jekyll.ErrSourceNotFound):
		return hints.ForReadmeNotFound()
	case errors.Is(err, toc2jekyll.ErrEmptyTOC):
		return hints.ForEmptyTOC()
	case errors.Is(err, toc2jekyll.ErrWritePage):
		return hints.ForOutputDirectory()
	case errors.Is(err, toc2jekyll.ErrInvalidValidationMode),
		errors.Is(err, toc2jekyll.ErrInvalidCardMode),
		errors.Is(err, toc2jekyll.ErrInvalidDateKeys):
		return hints.ForLinkMode()
	}
	return ""
}
