package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// A pipe table row: starts and ends with '|', surrounding spaces allowed.
	tableRow = regexp.MustCompile(`^\s*\|.*\|\s*$`)
)

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// IsTableRow reports whether line is a pipe table row.
func IsTableRow(line string) bool {
	return tableRow.MatchString(line)
}

// EnsureBlankLineAfterTables inserts one empty line after every table row
// that is followed by a non-row line or by the end of input, unless the
// next line is already blank. The input slice is not modified.
// Applying it twice yields the same result as applying it once.
func EnsureBlankLineAfterTables(lines []string) []string {
	out := make([]string, 0, len(lines)+2)
	for i, line := range lines {
		out = append(out, line)
		if !IsTableRow(line) {
			continue
		}
		if i+1 == len(lines) {
			out = append(out, "")
			continue
		}
		next := lines[i+1]
		if !IsTableRow(next) && strings.TrimSpace(next) != "" {
			out = append(out, "")
		}
	}
	return out
}

// FixTables applies EnsureBlankLineAfterTables to a whole document split on
// newlines. A document ending in "|\n" already has its blank line (the empty
// string after the final newline), so only a table on the very last line
// without a newline gains one.
func FixTables(content string) string {
	if content == "" {
		return content
	}
	lines := strings.Split(NormalizeLineEndings(content), "\n")
	return strings.Join(EnsureBlankLineAfterTables(lines), "\n")
}
