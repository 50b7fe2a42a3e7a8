// Package toc2jekyll turns the table of contents of a repository README into
// Jekyll portfolio pages.
//
// # Quick Start
//
// Build a Config, create a Generator and run it:
//
//	gen, err := toc2jekyll.NewGenerator(toc2jekyll.Config{
//	    SourceRoot:  ".",
//	    Readme:      "README.md",
//	    RepoURL:     "https://github.com/user/dotfiles",
//	    MainPage:    "site/_portfolio/everyday-essentials.md",
//	    SubpagesDir: "site/_portfolio",
//	    PagesDir:    "site/_portfolio/essentials",
//	    ParentSlug:  "everyday-essentials",
//	    Permalink:   "/portfolio/everyday-essentials/",
//	    Layout:      "portfolio_item",
//	    LinkMode:    toc2jekyll.ModeMarkdown,
//	    CardMode:    toc2jekyll.CardsInternal,
//	    DateKeys:    toc2jekyll.DateKeysCreated,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := gen.Generate(ctx)
//
// # Generation
//
// The README section headed "## Table of Contents" is parsed into a two-level
// tree of items (ParseTOC). Each top-level item becomes one card on the main
// page:
//
//  1. A linked item whose link resolves to a valid file gets a card pointing
//     either to the file on the repository host (CardsExternal) or to an
//     internal page holding a copy of the document (CardsInternal).
//  2. An item with children gets a hidden sub-page listing one card per valid
//     child, and a card pointing to that sub-page.
//  3. Anything else is skipped with a warning.
//
// The main page is rewritten only when something other than its date lines
// changed, so repeated runs do not churn the site history. Set
// Config.SkipUnchangedSubpages to apply the same rule to every page.
//
// # Dates
//
// Pages carry a creation and a modification date. A DateSource supplies them:
// GitDateSource reads the commit history of the source file, StaticDateSource
// serves fixed values, and CachedDateSource memoizes another source. Without
// a source, or when a lookup fails, today's date is used.
//
// # Links
//
// Links are resolved inside Config.SourceRoot. URLs, absolute paths and
// paths escaping the root (including through symlinks) never validate.
//
// # Custom Templates
//
// Page bodies and cards are Go templates. LoadTemplates reads main.tmpl,
// subpage.tmpl, internal.tmpl and card.tmpl from a directory, falling back to
// the embedded version of each missing file:
//
//	tmpl, err := toc2jekyll.LoadTemplates("/path/to/templates")
//	gen, err := toc2jekyll.NewGenerator(cfg, toc2jekyll.WithTemplates(tmpl))
package toc2jekyll
