package toc2jekyll

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Page is a generated Jekyll page.
type Page struct {
	Path        string
	FrontMatter FrontMatter
	Body        string
}

// Render returns the page file content: front matter followed by the body.
func (p Page) Render() (string, error) {
	fm, err := p.FrontMatter.Render()
	if err != nil {
		return "", err
	}
	return fm + p.Body, nil
}

// permalink returns "/<parentSlug>/<slug>/".
func (g *Generator) permalink(slug string) string {
	return "/" + g.cfg.ParentSlug + "/" + slug + "/"
}

var repoLinkPattern = regexp.MustCompile(`\[([^\]]*)\]\(\{repoURL\}\)`)

// expandDetails substitutes repoURL into details. Without a repository URL,
// Markdown links to "{repoURL}" are reduced to their text.
func expandDetails(details, repoURL string) string {
	if repoURL == "" {
		details = repoLinkPattern.ReplaceAllString(details, "$1")
	}
	return strings.ReplaceAll(details, "{repoURL}", repoURL)
}

func (g *Generator) buildMainPage(cards []string, dates FileDates) (Page, error) {
	details := expandDetails(g.cfg.Page.Details, g.cfg.RepoURL)
	body, err := execText(g.templates.main, mainData{
		Intro:   g.cfg.Page.Intro,
		Details: details,
		Cards:   cards,
	})
	if err != nil {
		return Page{}, err
	}

	return Page{
		Path: g.cfg.MainPage,
		FrontMatter: FrontMatter{
			Layout:          g.cfg.Layout,
			Title:           g.cfg.Page.Title,
			Permalink:       g.cfg.Permalink,
			Keywords:        g.cfg.Page.Keywords,
			Thumbnail:       g.cfg.Page.Thumbnail,
			ThumbnailAlt:    g.cfg.Page.ThumbnailAlt,
			ThumbnailCredit: g.cfg.Page.ThumbnailCredit,
			Languages:       g.cfg.Page.Languages,
			Created:         dates.Created,
			Modified:        dates.Modified,
			DateKeys:        g.cfg.DateKeys,
		},
		Body: body,
	}, nil
}

func (g *Generator) buildSubpage(name, slug string, cards []string, dates FileDates) (Page, error) {
	title := TitleCase(name)
	body, err := execText(g.templates.subpage, subpageData{
		Title:     title,
		Cards:     cards,
		BackTitle: g.cfg.Page.Title,
		BackLink:  g.cfg.Permalink,
	})
	if err != nil {
		return Page{}, err
	}

	return Page{
		Path:        filepath.Join(g.cfg.SubpagesDir, fmt.Sprintf("%s-%s.md", g.cfg.ParentSlug, slug)),
		FrontMatter: g.hiddenFrontMatter(title, g.permalink(slug), dates),
		Body:        body,
	}, nil
}

func (g *Generator) buildInternalPage(name, slug, source string, dates FileDates) (Page, error) {
	title := TitleCase(name)
	body, err := execText(g.templates.internal, internalData{
		Title: title,
		Body:  source,
	})
	if err != nil {
		return Page{}, err
	}

	return Page{
		Path:        filepath.Join(g.cfg.PagesDir, slug+".md"),
		FrontMatter: g.hiddenFrontMatter(title, g.permalink(slug), dates),
		Body:        body,
	}, nil
}

func (g *Generator) hiddenFrontMatter(title, permalink string, dates FileDates) FrontMatter {
	return FrontMatter{
		Layout:    g.cfg.Layout,
		Title:     title,
		Permalink: permalink,
		Created:   dates.Created,
		Modified:  dates.Modified,
		DateKeys:  g.cfg.DateKeys,
		Hidden:    true,
	}
}
