// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os/exec"
	"path/filepath"
	"strings"
)

// LookPath resolves executables; replaced in tests.
var LookPath = exec.LookPath

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config, a user config path, and the init command.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-toc2jekyll/") {
			hint += " or create " + p
			break
		}
	}

	return formatHints([]string{hint, "run 'toc2jekyll init' to write a starter config"})
}

// ForReadmeNotFound returns hints when the README cannot be found.
func ForReadmeNotFound() string {
	return format("check --source-root and --readme (README path is relative to the source root)")
}

// ForEmptyTOC returns hints when the README has no usable table of contents.
func ForEmptyTOC() string {
	return format(`the README needs a "## Table of Contents" heading followed by "- [Name](path.md)" lines`)
}

// ForGitDates returns hints when git cannot provide dates.
// Returns "" when git is installed, since failures then come from the file
// not being tracked and the run already fell back to today's date.
func ForGitDates(gitBinary string) string {
	if gitBinary == "" {
		gitBinary = "git"
	}
	if _, err := LookPath(gitBinary); err == nil {
		return ""
	}
	return formatHints([]string{gitBinary + " not found in PATH", "use --no-git to date pages with today's date"})
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForLinkMode returns hints for invalid link, card or date key modes.
func ForLinkMode() string {
	return format("link modes: exists, markdown; card modes: external, internal; date keys: created, legacy")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
