package toc2jekyll

import (
	"fmt"
	"strings"
)

// LogoRule maps a name substring to a shields.io logo id.
type LogoRule struct {
	Match string
	Logo  string
}

// BadgeBuilder builds shields.io badge URLs for card images.
type BadgeBuilder struct {
	Host    string
	Style   string
	Palette []string   // Hex colors without '#'
	Logos   []LogoRule // First match wins
}

// DefaultPalette is the badge color cycle.
var DefaultPalette = []string{"4B32C3", "F05032", "1BB91F", "0078D4", "FF6B6B", "4ECDC4", "45B7D1", "FFA07A"}

// DefaultLogos is the logo lookup table, in match order.
var DefaultLogos = []LogoRule{
	{"git", "git"},
	{"tmux", "tmux"},
	{"awk", "gnu"},
	{"grep", "gnu"},
	{"find", "gnu"},
	{"sed", "gnu"},
	{"bash", "gnubash"},
	{"python", "python"},
	{"javascript", "javascript"},
	{"docker", "docker"},
	{"kubernetes", "kubernetes"},
	{"vasp", "moleculer"},
	{"lammps", "moleculer"},
}

// DefaultBadgeBuilder returns a builder for img.shields.io for-the-badge badges.
func DefaultBadgeBuilder() *BadgeBuilder {
	return &BadgeBuilder{
		Host:    "img.shields.io",
		Style:   "for-the-badge",
		Palette: append([]string(nil), DefaultPalette...),
		Logos:   append([]LogoRule(nil), DefaultLogos...),
	}
}

// URL returns the badge URL for name. index picks the palette color, cycling
// through the palette; negative indices wrap as well.
func (b *BadgeBuilder) URL(name string, index int) string {
	host := b.Host
	if host == "" {
		host = "img.shields.io"
	}
	style := b.Style
	if style == "" {
		style = "for-the-badge"
	}

	var u strings.Builder
	fmt.Fprintf(&u, "https://%s/badge/%s-%s?style=%s", host, badgeLabel(name), b.Color(index), style)
	if logo := b.Logo(name); logo != "" {
		u.WriteString("&logo=" + logo)
	}
	u.WriteString("&logoColor=white")
	return u.String()
}

// Color returns the palette entry for index.
func (b *BadgeBuilder) Color(index int) string {
	palette := b.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	n := len(palette)
	return palette[((index%n)+n)%n]
}

// Logo returns the logo id of the first rule whose Match occurs in the
// lower-cased name, or "".
func (b *BadgeBuilder) Logo(name string) string {
	rules := b.Logos
	if rules == nil {
		rules = DefaultLogos
	}
	lower := strings.ToLower(name)
	for _, r := range rules {
		if r.Match != "" && strings.Contains(lower, strings.ToLower(r.Match)) {
			return r.Logo
		}
	}
	return ""
}
