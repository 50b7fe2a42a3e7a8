package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// ErrFrontMatter indicates a front matter block that could not be parsed.
var ErrFrontMatter = errors.New("invalid front matter")

// SplitFrontMatter separates a leading front matter block from the document
// body. Content without front matter is returned unchanged with an empty,
// non-nil metadata map.
func SplitFrontMatter(content string) (map[string]any, string, error) {
	meta := map[string]any{}
	body, err := frontmatter.Parse(strings.NewReader(content), &meta)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	return meta, string(body), nil
}

// StripFrontMatter returns the body of content without its front matter.
func StripFrontMatter(content string) (string, error) {
	_, body, err := SplitFrontMatter(content)
	return body, err
}

// MetaString returns meta[key] as a string, or "" if absent or not a string.
func MetaString(meta map[string]any, key string) string {
	s, _ := meta[key].(string)
	return s
}
