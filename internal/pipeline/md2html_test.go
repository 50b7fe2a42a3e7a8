package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGoldmarkConverter_ToHTML
// ---------------------------------------------------------------------------

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		opts         []ConverterOption
		title        string
		input        string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "heading and title",
			title:        "Git <Basics>",
			input:        "# Hello",
			wantContains: []string{"<!DOCTYPE html>", "<title>Git &lt;Basics&gt;</title>", `<h1 id="hello">Hello</h1>`},
		},
		{
			name:         "default title",
			input:        "text",
			wantContains: []string{"<title>Preview</title>"},
		},
		{
			name:         "table after fix-up",
			input:        FixTables("| a | b |\n|---|---|\n| 1 | 2 |\nAfter"),
			wantContains: []string{"<table>", "<td>1</td>", "<p>After</p>"},
		},
		{
			name:         "raw html dropped by default",
			input:        `<div class="essentials-grid">x</div>`,
			wantExcludes: []string{`<div class="essentials-grid">`},
		},
		{
			name:         "raw html kept with option",
			opts:         []ConverterOption{WithRawHTML()},
			input:        `<div class="essentials-grid">x</div>`,
			wantContains: []string{`<div class="essentials-grid">`},
		},
		{
			name:         "code block highlighted with classes",
			input:        "```go\nfunc main() {}\n```",
			wantContains: []string{`class="chroma"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewGoldmarkConverter(tt.opts...).ToHTML(context.Background(), tt.title, tt.input)
			if err != nil {
				t.Fatalf("ToHTML() unexpected error: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML() missing %q in:\n%s", want, got)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(got, exclude) {
					t.Errorf("ToHTML() should not contain %q in:\n%s", exclude, got)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ToHTML_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkConverter().ToHTML(ctx, "", "# Hello")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
