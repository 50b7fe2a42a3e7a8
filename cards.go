package toc2jekyll

import (
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/alnah/go-toc2jekyll/internal/assets"
)

// Card is one tile of a card grid.
type Card struct {
	Name     string // Item name, used as image alt text
	Title    string // Title-cased name, shown as heading
	Href     string
	Badge    string
	External bool // Opens in a new tab
}

// Templates holds the parsed page templates.
// Page bodies are text/template; cards are html/template so names and
// links are escaped.
type Templates struct {
	main     *texttemplate.Template
	subpage  *texttemplate.Template
	internal *texttemplate.Template
	card     *htmltemplate.Template
}

// ParseTemplates parses a template set.
func ParseTemplates(ts *assets.TemplateSet) (*Templates, error) {
	if ts == nil {
		return nil, fmt.Errorf("%w: nil template set", ErrTemplateRender)
	}

	var t Templates
	var err error
	if t.main, err = texttemplate.New(assets.TemplateMain).Parse(ts.Main); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	if t.subpage, err = texttemplate.New(assets.TemplateSubpage).Parse(ts.Subpage); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	if t.internal, err = texttemplate.New(assets.TemplateInternal).Parse(ts.Internal); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	if t.card, err = htmltemplate.New(assets.TemplateCard).Parse(ts.Card); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return &t, nil
}

// LoadTemplates loads and parses templates from basePath, falling back to
// the embedded templates for any file basePath does not provide.
// An empty basePath uses only embedded templates.
func LoadTemplates(basePath string) (*Templates, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, err
	}
	ts, err := assets.LoadTemplateSet(resolver)
	if err != nil {
		return nil, err
	}
	return ParseTemplates(ts)
}

// DefaultTemplates returns the embedded templates.
func DefaultTemplates() (*Templates, error) {
	return LoadTemplates("")
}

// RenderCard renders one card.
func (t *Templates) RenderCard(c Card) (string, error) {
	var b strings.Builder
	if err := t.card.Execute(&b, c); err != nil {
		return "", fmt.Errorf("%w: card %q: %v", ErrTemplateRender, c.Name, err)
	}
	return b.String(), nil
}

// NewCard builds the card for name at badge index.
func NewCard(b *BadgeBuilder, name, href string, index int, external bool) Card {
	return Card{
		Name:     name,
		Title:    TitleCase(name),
		Href:     href,
		Badge:    b.URL(name, index),
		External: external,
	}
}

type mainData struct {
	Intro   string
	Details string
	Cards   []string
}

type subpageData struct {
	Title     string
	Cards     []string
	BackTitle string
	BackLink  string
}

type internalData struct {
	Title string
	Body  string
}

func execText(tmpl *texttemplate.Template, data any) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplateRender, tmpl.Name(), err)
	}
	return b.String(), nil
}
