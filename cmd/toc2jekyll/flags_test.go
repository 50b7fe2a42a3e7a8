package main

// Notes:
// - parseGenerateFlags/parsePreviewFlags: we test flag values, positional
//   args, help handling and usage errors.

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseGenerateFlags - Generate flag parsing
// ---------------------------------------------------------------------------

func TestParseGenerateFlags(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	f, rest, err := parseGenerateFlags([]string{
		"-c", "site",
		"--source-root", "repo",
		"--readme", "docs/README.md",
		"--repo-url", "https://github.com/user/notes",
		"--branch", "develop",
		"--strip-front-matter",
		"--main-page", "out/main.md",
		"--subpages-dir", "out/sub",
		"--pages-dir", "out/pages",
		"--link-mode", "exists",
		"--card-mode", "external",
		"--date-keys", "legacy",
		"--no-git",
		"--templates", "tmpl",
		"--skip-unchanged-subpages",
		"--dry-run",
		"--log-format", "json",
		"extra",
	}, &stderr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checks := []struct {
		name string
		got  string
		want string
	}{
		{"config", f.common.config, "site"},
		{"root", f.source.root, "repo"},
		{"readme", f.source.readme, "docs/README.md"},
		{"repoURL", f.source.repoURL, "https://github.com/user/notes"},
		{"branch", f.source.branch, "develop"},
		{"mainPage", f.output.mainPage, "out/main.md"},
		{"subpagesDir", f.output.subpagesDir, "out/sub"},
		{"pagesDir", f.output.pagesDir, "out/pages"},
		{"linkMode", f.modes.linkMode, "exists"},
		{"cardMode", f.modes.cardMode, "external"},
		{"dateKeys", f.modes.dateKeys, "legacy"},
		{"templates", f.templates, "tmpl"},
		{"logFormat", f.common.logFormat, "json"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.name, c.got, c.want)
		}
	}
	if !f.source.stripFrontMatter || !f.modes.noGit || !f.skipUnchangedSubpages || !f.dryRun {
		t.Errorf("bool flags not set: %+v", f)
	}
	if len(rest) != 1 || rest[0] != "extra" {
		t.Errorf("positional = %v, want [extra]", rest)
	}
}

func TestParseGenerateFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantErr    error
		wantStderr string
	}{
		{"unknown flag", []string{"--nope"}, ErrUsage, ""},
		{"quiet and verbose", []string{"-q", "-v"}, ErrUsage, ""},
		{"missing value", []string{"--link-mode"}, ErrUsage, ""},
		{"help", []string{"--help"}, errHelpRequested, "Usage: toc2jekyll generate"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stderr bytes.Buffer
			_, _, err := parseGenerateFlags(tt.args, &stderr)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr missing %q:\n%s", tt.wantStderr, stderr.String())
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParsePreviewFlags - Preview flag parsing
// ---------------------------------------------------------------------------

func TestParsePreviewFlags(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	f, rest, err := parsePreviewFlags([]string{"page.md", "-o", "-", "--site-url", "https://example.com", "--title", "T", "-q"}, &stderr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.output != "-" || f.siteURL != "https://example.com" || f.title != "T" || !f.quiet {
		t.Errorf("flags = %+v", f)
	}
	if len(rest) != 1 || rest[0] != "page.md" {
		t.Errorf("positional = %v, want [page.md]", rest)
	}

	_, _, err = parsePreviewFlags([]string{"-h"}, &stderr)
	if !errors.Is(err, errHelpRequested) {
		t.Errorf("-h error = %v, want ErrHelp", err)
	}
	if !strings.Contains(stderr.String(), "Usage: toc2jekyll preview") {
		t.Errorf("stderr missing preview usage:\n%s", stderr.String())
	}
}
