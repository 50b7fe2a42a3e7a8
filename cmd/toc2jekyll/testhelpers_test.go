package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// testEnv returns an Environment writing to buffers with a fixed clock.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) },
		Stdout: &stdout,
		Stderr: &stderr,
	}
	return env, &stdout, &stderr
}

// writeFiles creates files under root, making parent directories.
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

const sampleReadme = `# Notes

## Table of Contents

- [Git](docs/git.md)
- Shell
  - [awk](docs/awk.md)
`

// setupProject writes a small repository and a config file pointing at it.
// Output goes under root/site. Returns the root and the config path.
func setupProject(t *testing.T, readme string) (string, string) {
	t.Helper()
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"repo/README.md":   readme,
		"repo/docs/git.md": "# Git\n",
		"repo/docs/awk.md": "# Awk\n",
	})

	site := filepath.Join(root, "site")
	cfg := "source:\n" +
		"  root: " + filepath.ToSlash(filepath.Join(root, "repo")) + "\n" +
		"  repoURL: https://github.com/user/notes\n" +
		"output:\n" +
		"  mainPage: " + filepath.ToSlash(filepath.Join(site, "notes.md")) + "\n" +
		"  subpagesDir: " + filepath.ToSlash(filepath.Join(site, "subpages")) + "\n" +
		"  pagesDir: " + filepath.ToSlash(filepath.Join(site, "pages")) + "\n" +
		"dates:\n" +
		"  source: today\n"
	configPath := filepath.Join(root, "toc2jekyll.yaml")
	writeFiles(t, root, map[string]string{"toc2jekyll.yaml": cfg})
	return root, configPath
}
