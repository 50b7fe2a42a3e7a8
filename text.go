package toc2jekyll

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	slugDrop     = regexp.MustCompile(`[^\p{L}\p{N}_\s-]+`)
	slugSeparate = regexp.MustCompile(`[\s_-]+`)
)

// Slugify lower-cases text, drops characters other than letters, digits,
// whitespace, '-' and '_', collapses separator runs into one '-' and trims
// leading and trailing '-'.
//
//	Slugify("My Item_Name!") == "my-item-name"
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = slugDrop.ReplaceAllString(s, "")
	s = slugSeparate.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// TitleCase upper-cases the first letter of every word and lower-cases the rest.
func TitleCase(text string) string {
	// cases.Caser is stateful; a fresh one per call keeps this goroutine-safe.
	return cases.Title(language.English).String(text)
}

// badgeLabel turns an item name into a path-escaped shields.io label.
func badgeLabel(name string) string {
	clean := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return url.PathEscape(TitleCase(clean))
}
