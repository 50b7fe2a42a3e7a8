package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-toc2jekyll/internal/fileutil"
	"github.com/alnah/go-toc2jekyll/internal/pipeline"
)

// Sentinel errors for the preview command.
var (
	ErrNoInput       = errors.New("no input page specified")
	ErrReadInput     = errors.New("failed to read page")
	ErrWriteOutput   = errors.New("failed to write preview")
	ErrNotMarkdown   = errors.New("page must have .md or .markdown extension")
	ErrSameInOutPath = errors.New("output would overwrite the input page")
)

// runPreview renders a generated page to standalone HTML for a quick look
// in the browser: front matter is dropped, tables are fixed up, card HTML is
// kept as is and root-relative links optionally point at the live site.
func runPreview(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parsePreviewFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return fmt.Errorf("%w: %w", ErrUsage, ErrNoInput)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: preview takes one page, got %d", ErrUsage, len(positional))
	}

	input := positional[0]
	if !fileutil.HasExtension(input, ".md", ".markdown") {
		return fmt.Errorf("%w: %s", ErrNotMarkdown, input)
	}

	data, err := os.ReadFile(input) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrReadInput, input, err)
	}

	meta, body, err := pipeline.SplitFrontMatter(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	title := flags.title
	if title == "" {
		title = pipeline.MetaString(meta, "title")
	}

	conv := pipeline.NewGoldmarkConverter(pipeline.WithRawHTML())
	html, err := conv.ToHTML(ctx, title, pipeline.FixTables(body))
	if err != nil {
		return err
	}

	html, err = pipeline.RewriteSiteLinks(html, flags.siteURL)
	if err != nil {
		return err
	}

	output := resolvePreviewOutput(input, flags.output)
	if output == "-" {
		_, err := fmt.Fprint(env.Stdout, html)
		return err
	}
	if sameFile(input, output) {
		return fmt.Errorf("%w: %s", ErrSameInOutPath, output)
	}

	if err := fileutil.WriteFile(output, html); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, output, err)
	}
	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "Preview written to %s\n", output)
	}
	return nil
}

// resolvePreviewOutput returns the output path: the flag value, or the input
// path with an .html extension.
func resolvePreviewOutput(input, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".html"
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
