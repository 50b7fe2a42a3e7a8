// Package dateutil provides calendar date helpers for front matter fields.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate indicates a value that is not a YYYY-MM-DD calendar date.
var ErrInvalidDate = errors.New("invalid date")

// ErrNoDates indicates a history listing without any usable date.
var ErrNoDates = errors.New("no dates found")

// ISOLayout is the Go layout for YYYY-MM-DD.
const ISOLayout = "2006-01-02"

// Today formats t as a YYYY-MM-DD date in t's location.
func Today(t time.Time) string {
	return t.Format(ISOLayout)
}

// IsISODate reports whether s is a valid YYYY-MM-DD date.
func IsISODate(s string) bool {
	_, err := time.Parse(ISOLayout, s)
	return err == nil
}

// ParseHistory extracts the first and most recent dates from a newest-first
// listing with one date per line, as printed by
// `git log --format=%ad --date=short`.
// Blank lines are ignored. Any other malformed line is an error.
func ParseHistory(output string) (created, modified string, err error) {
	var dates []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !IsISODate(line) {
			return "", "", fmt.Errorf("%w: %q", ErrInvalidDate, line)
		}
		dates = append(dates, line)
	}
	if len(dates) == 0 {
		return "", "", ErrNoDates
	}
	return dates[len(dates)-1], dates[0], nil
}

// Span returns the earliest and latest of the given YYYY-MM-DD dates.
// Invalid entries are skipped; ok is false when nothing valid remains.
func Span(dates ...string) (earliest, latest string, ok bool) {
	for _, d := range dates {
		if !IsISODate(d) {
			continue
		}
		// YYYY-MM-DD sorts lexically in calendar order.
		if earliest == "" || d < earliest {
			earliest = d
		}
		if latest == "" || d > latest {
			latest = d
		}
	}
	return earliest, latest, earliest != ""
}
