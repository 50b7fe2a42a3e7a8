package pipeline

// Notes:
// - Tests RewriteSiteLinks through its public API only
// - Error branches in parseHTML/renderHTML are not covered: the html package
//   rarely fails on valid input

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRewriteSiteLinks - Main Function Tests
// ---------------------------------------------------------------------------

func TestRewriteSiteLinks(t *testing.T) {
	t.Parallel()

	const site = "https://example.github.io"

	tests := []struct {
		name         string
		html         string
		siteURL      string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "root-relative link rewritten",
			html:         `<a href="/portfolio/everyday-essentials/">Back</a>`,
			siteURL:      site,
			wantContains: []string{`href="https://example.github.io/portfolio/everyday-essentials/"`},
		},
		{
			name:         "root-relative image rewritten",
			html:         `<img src="/assets/logo.png">`,
			siteURL:      site,
			wantContains: []string{`src="https://example.github.io/assets/logo.png"`},
		},
		{
			name:         "trailing slash on site URL is not doubled",
			html:         `<a href="/x/">x</a>`,
			siteURL:      site + "/",
			wantContains: []string{`href="https://example.github.io/x/"`},
		},
		{
			name:         "relative link unchanged",
			html:         `<a href="docs/git.md">git</a>`,
			siteURL:      site,
			wantContains: []string{`href="docs/git.md"`},
		},
		{
			name:         "anchor unchanged",
			html:         `<a href="#contents">top</a>`,
			siteURL:      site,
			wantContains: []string{`href="#contents"`},
		},
		{
			name:         "badge URL unchanged",
			html:         `<img src="https://img.shields.io/badge/Git-4B32C3">`,
			siteURL:      site,
			wantContains: []string{`src="https://img.shields.io/badge/Git-4B32C3"`},
		},
		{
			name:         "protocol-relative unchanged",
			html:         `<img src="//cdn.example.com/a.png">`,
			siteURL:      site,
			wantContains: []string{`src="//cdn.example.com/a.png"`},
		},
		{
			name:         "script src not rewritten",
			html:         `<script src="/app.js"></script>`,
			siteURL:      site,
			wantContains: []string{`src="/app.js"`},
		},
		{
			name:         "empty site URL returns input",
			html:         `<a href="/x/">x</a>`,
			siteURL:      "",
			wantContains: []string{`href="/x/"`},
		},
		{
			name:         "nested card markup",
			html:         `<div class="essentials-grid"><div class="essential-card"><a href="/everyday-essentials/git/"><h3>Git</h3></a></div></div>`,
			siteURL:      site,
			wantContains: []string{`href="https://example.github.io/everyday-essentials/git/"`},
			wantExcludes: []string{"<html>", "<body>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteSiteLinks(tt.html, tt.siteURL)
			if err != nil {
				t.Fatalf("RewriteSiteLinks() error = %v", err)
			}

			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("RewriteSiteLinks() = %q, want to contain %q", got, want)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(got, exclude) {
					t.Errorf("RewriteSiteLinks() = %q, should not contain %q", got, exclude)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRewriteSiteLinks_DocumentTypes - Full Document vs Fragment
// ---------------------------------------------------------------------------

func TestRewriteSiteLinks_DocumentTypes(t *testing.T) {
	t.Parallel()

	doc := "<!DOCTYPE html><html><head><title>t</title></head><body><a href=\"/x/\">x</a></body></html>"
	got, err := RewriteSiteLinks(doc, "https://example.org")
	if err != nil {
		t.Fatalf("RewriteSiteLinks() error = %v", err)
	}
	if !strings.Contains(got, "<html>") || !strings.Contains(got, `href="https://example.org/x/"`) {
		t.Errorf("full document not preserved or not rewritten: %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestRewriteSiteLinks_InvalidSiteURL - Validation
// ---------------------------------------------------------------------------

func TestRewriteSiteLinks_InvalidSiteURL(t *testing.T) {
	t.Parallel()

	for _, siteURL := range []string{"example.org", "ftp://example.org", "https://", "::"} {
		_, err := RewriteSiteLinks(`<a href="/x/">x</a>`, siteURL)
		if !errors.Is(err, ErrInvalidSiteURL) {
			t.Errorf("RewriteSiteLinks(%q) error = %v, want ErrInvalidSiteURL", siteURL, err)
		}
	}
}
