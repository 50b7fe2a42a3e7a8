package toc2jekyll

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alnah/go-toc2jekyll/internal/pipeline"
)

var (
	tocHeading   = regexp.MustCompile(`(?i)^##[ \t]+table of contents[ \t]*#*[ \t]*$`)
	linkedItem   = regexp.MustCompile(`^-\s+\[([^\]]+)\]\(([^)]+)\)`)
	unlinkedItem = regexp.MustCompile(`^-\s+(.+)`)
)

// ParseTOC extracts the two-level item tree from the "Table of Contents"
// section of a README. The section runs from the first "## Table of Contents"
// heading to the next line starting with "##" or "---", or the end of input.
//
// Items are "- [Name](link)" or "- Name" lines. Lines indented by zero
// characters start a new top-level item; lines indented by two or more become
// children of the last top-level item. Everything else is ignored. Returns an
// empty slice when there is no such section.
func ParseTOC(content string) []TocItem {
	items := []TocItem{}
	lines := tocSection(pipeline.NormalizeLineEndings(content))

	current := -1
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		item, ok := parseItem(trimmed)
		if !ok {
			continue
		}

		indent := utf8.RuneCountInString(line) - utf8.RuneCountInString(strings.TrimLeftFunc(line, unicode.IsSpace))
		switch {
		case indent == 0:
			items = append(items, item)
			current = len(items) - 1
		case indent >= 2 && current >= 0:
			items[current].Children = append(items[current].Children, item)
		}
	}
	return items
}

// tocSection returns the lines between the TOC heading and the section end.
func tocSection(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if !tocHeading.MatchString(strings.TrimRight(line, " \t")) {
			continue
		}
		rest := lines[i+1:]
		for j, l := range rest {
			if strings.HasPrefix(l, "##") || strings.HasPrefix(l, "---") {
				return rest[:j]
			}
		}
		return rest
	}
	return nil
}

func parseItem(trimmed string) (TocItem, bool) {
	if m := linkedItem.FindStringSubmatch(trimmed); m != nil {
		return TocItem{Name: m[1], Link: m[2]}, true
	}
	if m := unlinkedItem.FindStringSubmatch(trimmed); m != nil {
		return TocItem{Name: strings.TrimSpace(m[1])}, true
	}
	return TocItem{}, false
}
