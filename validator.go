package toc2jekyll

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/alnah/go-toc2jekyll/internal/fileutil"
)

// LinkValidator resolves TOC links against the source repository.
type LinkValidator interface {
	// Resolve maps a link to an absolute path inside the source root.
	Resolve(link string) (string, error)
	// Valid reports whether the link resolves to an acceptable target.
	Valid(link string) bool
}

// FileValidator checks links against the local filesystem.
type FileValidator struct {
	root string
	mode ValidationMode
}

// NewLinkValidator returns a validator rooted at root.
func NewLinkValidator(root string, mode ValidationMode) *FileValidator {
	return &FileValidator{root: root, mode: mode}
}

// markdownExtensions are accepted in ModeMarkdown.
var markdownExtensions = []string{".md", ".markdown"}

// Resolve strips the fragment and query from link, decodes percent-escapes
// and joins the result onto the root. URLs, absolute paths and paths that
// leave the root (directly or through symlinks) are rejected.
func (v *FileValidator) Resolve(link string) (string, error) {
	rel, err := LinkPath(link)
	if err != nil {
		return "", err
	}

	resolved, err := fileutil.ResolveWithin(v.root, rel)
	switch {
	case errors.Is(err, fileutil.ErrOutsideRoot):
		return "", fmt.Errorf("%w: %s", ErrPathEscapesRoot, link)
	case err != nil:
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidLink, link, err)
	}
	return resolved, nil
}

// Valid reports whether link resolves inside the root to an existing target.
// In ModeMarkdown the target must also be a regular Markdown file.
func (v *FileValidator) Valid(link string) bool {
	path, err := v.Resolve(link)
	if err != nil {
		return false
	}
	if v.mode == ModeMarkdown {
		return fileutil.FileExists(path) && fileutil.HasExtension(path, markdownExtensions...)
	}
	return fileutil.PathExists(path)
}

// LinkPath returns the repository-relative file path a TOC link points to,
// in slash form, without fragment or query.
func LinkPath(link string) (string, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidLink)
	}
	if fileutil.IsURL(link) || strings.HasPrefix(link, "//") || hasScheme(link) {
		return "", fmt.Errorf("%w: not a repository path: %s", ErrInvalidLink, link)
	}

	p, _, _ := strings.Cut(link, "#")
	p, _, _ = strings.Cut(p, "?")
	if p == "" {
		return "", fmt.Errorf("%w: no path: %s", ErrInvalidLink, link)
	}

	decoded, err := url.PathUnescape(p)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidLink, link, err)
	}
	if strings.HasPrefix(decoded, "/") || filepath.IsAbs(decoded) {
		return "", fmt.Errorf("%w: absolute path: %s", ErrInvalidLink, link)
	}
	return strings.TrimPrefix(decoded, "./"), nil
}

// hasScheme reports whether link starts with a URL scheme such as "mailto:".
func hasScheme(link string) bool {
	u, err := url.Parse(link)
	return err == nil && u.Scheme != "" && len(u.Scheme) > 1
}

// Compile-time interface check.
var _ LinkValidator = (*FileValidator)(nil)
