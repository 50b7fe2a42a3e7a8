package fileutil_test

// Notes:
// - TestResolveWithin_SymlinkEscape: skipped when the platform refuses to
//   create symlinks (e.g. unprivileged Windows).
// - WriteFile error branches for MkdirAll/WriteFile are exercised with a
//   file-as-directory collision, which is portable.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-toc2jekyll/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestExistence - FileExists, PathExists, DirExists
// ---------------------------------------------------------------------------

func TestExistence(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(file, []byte("# doc"), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.md")

	if !fileutil.FileExists(file) {
		t.Error("FileExists(file) = false, want true")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists(dir) = true, want false")
	}
	if fileutil.FileExists(missing) {
		t.Error("FileExists(missing) = true, want false")
	}

	if !fileutil.PathExists(file) || !fileutil.PathExists(dir) {
		t.Error("PathExists should be true for files and directories")
	}
	if fileutil.PathExists(missing) {
		t.Error("PathExists(missing) = true, want false")
	}

	if !fileutil.DirExists(dir) {
		t.Error("DirExists(dir) = false, want true")
	}
	if fileutil.DirExists(file) {
		t.Error("DirExists(file) = true, want false")
	}
}

// ---------------------------------------------------------------------------
// TestHasExtension - Case-insensitive extension matching
// ---------------------------------------------------------------------------

func TestHasExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"docs/git.md", true},
		{"docs/GIT.MD", true},
		{"notes.markdown", true},
		{"notes.Markdown", true},
		{"script.sh", false},
		{"README", false},
		{"archive.md.bak", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.HasExtension(tt.path, ".md", ".markdown"); got != tt.want {
				t.Errorf("HasExtension(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsURL - URL detection
// ---------------------------------------------------------------------------

func TestIsURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"https://github.com/x/y", true},
		{"http://example.com", true},
		{"docs/git.md", false},
		{"ftp://example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := fileutil.IsURL(tt.input); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestResolveWithin - Root containment
// ---------------------------------------------------------------------------

func TestResolveWithin(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "docs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "docs", "git.md"), []byte("# git"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		rel     string
		wantErr error
	}{
		{name: "existing file", rel: "docs/git.md"},
		{name: "missing file still contained", rel: "docs/nope.md"},
		{name: "dot segments that stay inside", rel: "docs/../docs/git.md"},
		{name: "empty", rel: "", wantErr: fileutil.ErrEmptyPath},
		{name: "absolute", rel: "/etc/passwd", wantErr: fileutil.ErrAbsolutePath},
		{name: "parent escape", rel: "../outside.md", wantErr: fileutil.ErrOutsideRoot},
		{name: "nested escape", rel: "docs/../../outside.md", wantErr: fileutil.ErrOutsideRoot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fileutil.ResolveWithin(root, tt.rel)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ResolveWithin(%q) error = %v, want %v", tt.rel, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveWithin(%q) unexpected error: %v", tt.rel, err)
			}
			if !filepath.IsAbs(got) {
				t.Errorf("ResolveWithin(%q) = %q, want absolute path", tt.rel, got)
			}
		})
	}
}

func TestResolveWithin_SymlinkEscape(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	outside := t.TempDir()
	secret := filepath.Join(outside, "secret.md")
	if err := os.WriteFile(secret, []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(secret, filepath.Join(root, "link.md")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	_, err := fileutil.ResolveWithin(root, "link.md")
	if !errors.Is(err, fileutil.ErrOutsideRoot) {
		t.Errorf("error = %v, want ErrOutsideRoot", err)
	}
}

// ---------------------------------------------------------------------------
// TestReadFileIfExists / TestWriteFile
// ---------------------------------------------------------------------------

func TestReadFileIfExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "page.md")

	content, ok, err := fileutil.ReadFileIfExists(path)
	if err != nil || ok || content != "" {
		t.Fatalf("missing file: got (%q, %v, %v)", content, ok, err)
	}

	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	content, ok, err = fileutil.ReadFileIfExists(path)
	if err != nil || !ok || content != "hello" {
		t.Fatalf("existing file: got (%q, %v, %v)", content, ok, err)
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("creates parents and is repeatable", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a", "b", "page.md")
		for i := 0; i < 2; i++ {
			if err := fileutil.WriteFile(path, "content"); err != nil {
				t.Fatalf("WriteFile() run %d unexpected error: %v", i, err)
			}
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "content" {
			t.Errorf("content = %q, want %q", data, "content")
		}
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		if err := fileutil.WriteFile("", "x"); !errors.Is(err, fileutil.ErrEmptyPath) {
			t.Errorf("error = %v, want ErrEmptyPath", err)
		}
	})

	t.Run("parent is a file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		if err := os.WriteFile(blocker, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		if err := fileutil.WriteFile(filepath.Join(blocker, "page.md"), "x"); err == nil {
			t.Error("expected error when parent is a regular file")
		}
	})
}
