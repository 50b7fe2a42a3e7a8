package toc2jekyll

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-toc2jekyll/internal/yamlutil"
)

// FrontMatter is the YAML header of a generated page. Empty fields are
// omitted; keys are emitted in declaration order.
type FrontMatter struct {
	Layout          string
	Title           string
	Permalink       string
	Keywords        string
	Thumbnail       string
	ThumbnailAlt    string
	ThumbnailCredit string
	Languages       []string
	Created         string
	Modified        string
	DateKeys        DateKeys
	Hidden          bool
}

// Fields returns the ordered key/value pairs of the header.
func (fm FrontMatter) Fields() []yamlutil.Field {
	createdKey, modifiedKey := fm.DateKeys.Names()

	fields := make([]yamlutil.Field, 0, 12)
	add := func(key string, value any) {
		switch v := value.(type) {
		case string:
			if v == "" {
				return
			}
		case []string:
			if len(v) == 0 {
				return
			}
		case bool:
			if !v {
				return
			}
		}
		fields = append(fields, yamlutil.Field{Key: key, Value: value})
	}

	add("layout", fm.Layout)
	add("title", fm.Title)
	add("permalink", fm.Permalink)
	add("keywords", fm.Keywords)
	add("thumbnail", fm.Thumbnail)
	add("thumbnail_alt", fm.ThumbnailAlt)
	add("thumbnail_credit", fm.ThumbnailCredit)
	add("languages", fm.Languages)
	add(createdKey, fm.Created)
	add(modifiedKey, fm.Modified)
	add("hidden", fm.Hidden)
	return fields
}

// Render returns the header between "---" delimiter lines.
func (fm FrontMatter) Render() (string, error) {
	data, err := yamlutil.MarshalOrdered(fm.Fields())
	if err != nil {
		return "", fmt.Errorf("%w: front matter: %v", ErrTemplateRender, err)
	}
	var b strings.Builder
	b.WriteString("---\n")
	b.Write(data)
	if len(data) > 0 && data[len(data)-1] != '\n' {
		b.WriteByte('\n')
	}
	b.WriteString("---\n")
	return b.String(), nil
}

// volatileDateLine matches front matter lines that change on every run.
var volatileDateLine = regexp.MustCompile(`(?m)^(?:date|page_modified|date_created|last_modified):.*$`)

// StripVolatileDates removes date lines from a rendered page and trims
// surrounding whitespace, so two renders differing only in dates compare equal.
func StripVolatileDates(content string) string {
	return strings.TrimSpace(volatileDateLine.ReplaceAllString(content, ""))
}

// SameIgnoringDates reports whether a and b differ only in volatile date lines.
func SameIgnoringDates(a, b string) bool {
	return StripVolatileDates(a) == StripVolatileDates(b)
}
