package toc2jekyll

import (
	"reflect"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseTOC - Table of contents extraction
// ---------------------------------------------------------------------------

func TestParseTOC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []TocItem
	}{
		{
			name:    "no section",
			content: "# Title\n\nSome text\n",
			want:    []TocItem{},
		},
		{
			name:    "empty section",
			content: "## Table of Contents\n\n## Next\n",
			want:    []TocItem{},
		},
		{
			name: "linked and unlinked items with children",
			content: "# Repo\n\n## Table of Contents\n\n" +
				"- [Git](docs/git.md)\n" +
				"- Shell Tools\n" +
				"  - [awk](docs/awk.md)\n" +
				"  - [sed](docs/sed.md)\n" +
				"- [Tmux](docs/tmux.md)\n\n" +
				"## Installation\n\n- [Ignored](x.md)\n",
			want: []TocItem{
				{Name: "Git", Link: "docs/git.md"},
				{Name: "Shell Tools", Children: []TocItem{
					{Name: "awk", Link: "docs/awk.md"},
					{Name: "sed", Link: "docs/sed.md"},
				}},
				{Name: "Tmux", Link: "docs/tmux.md"},
			},
		},
		{
			name:    "case-insensitive heading",
			content: "## TABLE OF CONTENTS\n- [A](a.md)\n",
			want:    []TocItem{{Name: "A", Link: "a.md"}},
		},
		{
			name:    "horizontal rule ends section",
			content: "## Table of Contents\n- [A](a.md)\n---\n- [B](b.md)\n",
			want:    []TocItem{{Name: "A", Link: "a.md"}},
		},
		{
			name:    "child before any parent is dropped",
			content: "## Table of Contents\n  - [Orphan](o.md)\n- [A](a.md)\n",
			want:    []TocItem{{Name: "A", Link: "a.md"}},
		},
		{
			name:    "single-space indent is ignored",
			content: "## Table of Contents\n- [A](a.md)\n - [B](b.md)\n",
			want:    []TocItem{{Name: "A", Link: "a.md"}},
		},
		{
			name:    "tab indent makes a child",
			content: "## Table of Contents\n- Group\n\t\t- [B](b.md)\n",
			want:    []TocItem{{Name: "Group", Children: []TocItem{{Name: "B", Link: "b.md"}}}},
		},
		{
			name:    "deeper nesting flattens to the top-level parent",
			content: "## Table of Contents\n- Group\n  - [B](b.md)\n    - [C](c.md)\n",
			want: []TocItem{{Name: "Group", Children: []TocItem{
				{Name: "B", Link: "b.md"},
				{Name: "C", Link: "c.md"},
			}}},
		},
		{
			name:    "CRLF line endings",
			content: "## Table of Contents\r\n- [A](a.md)\r\n- B\r\n",
			want:    []TocItem{{Name: "A", Link: "a.md"}, {Name: "B"}},
		},
		{
			name:    "non-list lines are ignored",
			content: "## Table of Contents\nIntro text\n* [Star](s.md)\n- [A](a.md)\n",
			want:    []TocItem{{Name: "A", Link: "a.md"}},
		},
		{
			name:    "trailing text after link is ignored",
			content: "## Table of Contents\n- [A](a.md) - the A tool\n",
			want:    []TocItem{{Name: "A", Link: "a.md"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ParseTOC(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTOC() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseTOC_NeverNil(t *testing.T) {
	t.Parallel()

	if got := ParseTOC(""); got == nil {
		t.Error("ParseTOC(\"\") = nil, want empty slice")
	}
}

// ---------------------------------------------------------------------------
// TestTocItem_HasLink
// ---------------------------------------------------------------------------

func TestTocItem_HasLink(t *testing.T) {
	t.Parallel()

	if (TocItem{Name: "A"}).HasLink() {
		t.Error("HasLink() = true for item without link")
	}
	if !(TocItem{Name: "A", Link: "a.md"}).HasLink() {
		t.Error("HasLink() = false for linked item")
	}
}
