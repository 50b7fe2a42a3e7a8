package toc2jekyll

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/alnah/go-toc2jekyll/internal/dateutil"
	"github.com/alnah/go-toc2jekyll/internal/process"
)

// FileDates holds the first and latest commit dates of a file as YYYY-MM-DD.
type FileDates struct {
	Created  string
	Modified string
}

// DateSource looks up page dates for a source file.
// path is relative to the source root, in slash form, or absolute.
type DateSource interface {
	FileDates(ctx context.Context, path string) (FileDates, error)
}

// DefaultGitTimeout bounds a single git invocation.
const DefaultGitTimeout = 10 * time.Second

// GitDateSource reads dates from `git log --follow`.
type GitDateSource struct {
	RepoDir string        // Working directory for git
	Binary  string        // Default: git
	Timeout time.Duration // Default: DefaultGitTimeout
}

// NewGitDateSource returns a GitDateSource for the repository at repoDir.
func NewGitDateSource(repoDir string) *GitDateSource {
	return &GitDateSource{RepoDir: repoDir, Binary: "git", Timeout: DefaultGitTimeout}
}

// FileDates runs git in RepoDir and returns the oldest and newest commit
// dates touching path, following renames.
func (g *GitDateSource) FileDates(ctx context.Context, path string) (FileDates, error) {
	bin := g.Binary
	if bin == "" {
		bin = "git"
	}
	timeout := g.Timeout
	if timeout <= 0 {
		timeout = DefaultGitTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// #nosec G204 -- binary comes from configuration, path is passed after "--"
	cmd := exec.CommandContext(ctx, bin, "log", "--follow", "--format=%ad", "--date=short", "--", filepath.FromSlash(path))
	cmd.Dir = g.RepoDir
	process.KillTreeOnCancel(cmd)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return FileDates{}, fmt.Errorf("%w: git log %s: %s", ErrDatesUnavailable, path, msg)
	}

	created, modified, err := dateutil.ParseHistory(string(out))
	if err != nil {
		return FileDates{}, fmt.Errorf("%w: git log %s: %v", ErrDatesUnavailable, path, err)
	}
	return FileDates{Created: created, Modified: modified}, nil
}

// StaticDateSource serves fixed dates. Paths missing from ByPath yield
// ErrDatesUnavailable, so an empty StaticDateSource dates everything today.
type StaticDateSource struct {
	ByPath map[string]FileDates
}

// FileDates returns the configured dates for path.
func (s StaticDateSource) FileDates(ctx context.Context, path string) (FileDates, error) {
	if d, ok := s.ByPath[path]; ok {
		return d, nil
	}
	return FileDates{}, fmt.Errorf("%w: %s", ErrDatesUnavailable, path)
}

// CachedDateSource memoizes successful lookups of another DateSource.
// Failures are not cached.
type CachedDateSource struct {
	inner DateSource
	cache *lru.Cache[string, FileDates]
}

// NewCachedDateSource wraps inner with an LRU cache holding size entries.
func NewCachedDateSource(inner DateSource, size int) (*CachedDateSource, error) {
	cache, err := lru.New[string, FileDates](size)
	if err != nil {
		return nil, fmt.Errorf("date cache: %w", err)
	}
	return &CachedDateSource{inner: inner, cache: cache}, nil
}

// FileDates returns cached dates for path or asks the wrapped source.
func (c *CachedDateSource) FileDates(ctx context.Context, path string) (FileDates, error) {
	if d, ok := c.cache.Get(path); ok {
		return d, nil
	}
	d, err := c.inner.FileDates(ctx, path)
	if err != nil {
		return FileDates{}, err
	}
	c.cache.Add(path, d)
	return d, nil
}

// Len returns the number of cached entries.
func (c *CachedDateSource) Len() int {
	return c.cache.Len()
}

// Compile-time interface checks.
var (
	_ DateSource = (*GitDateSource)(nil)
	_ DateSource = StaticDateSource{}
	_ DateSource = (*CachedDateSource)(nil)
)
