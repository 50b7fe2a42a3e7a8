package toc2jekyll

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-toc2jekyll/internal/dateutil"
	"github.com/alnah/go-toc2jekyll/internal/fileutil"
	"github.com/alnah/go-toc2jekyll/internal/pipeline"
)

// Generator turns a README table of contents into Jekyll pages.
// A Generator is not safe for concurrent use.
type Generator struct {
	cfg       Config
	badges    *BadgeBuilder
	validator LinkValidator
	dates     DateSource
	logger    Logger
	now       func() time.Time
	templates *Templates
	dryRun    bool

	report *Report
}

// NewGenerator validates cfg and returns a Generator.
// Without options it validates links on disk, dates pages today, logs
// nothing and renders with the embedded templates.
func NewGenerator(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Branch == "" {
		cfg.Branch = "main"
	}

	g := &Generator{
		cfg:    cfg,
		badges: cfg.Badge,
		logger: nopLogger{},
		now:    time.Now,
	}
	if g.badges == nil {
		g.badges = DefaultBadgeBuilder()
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.validator == nil {
		g.validator = NewLinkValidator(cfg.SourceRoot, cfg.LinkMode)
	}
	if g.templates == nil {
		t, err := DefaultTemplates()
		if err != nil {
			return nil, err
		}
		g.templates = t
	}

	return g, nil
}

// Generate reads the README, writes the sub-pages and internal pages, and
// writes the main page unless only its dates would change.
//
// ErrSourceNotFound, ErrReadSource and ErrEmptyTOC are returned before any
// file is written. A failed main page write is returned as ErrWritePage;
// failures on other pages are logged and recorded in the report.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	g.report = &Report{}

	readme := g.readmePath()
	if !fileutil.FileExists(readme) {
		return g.report, fmt.Errorf("%w: %s", ErrSourceNotFound, readme)
	}

	g.logger.Info("Parsing README structure...", "path", readme)
	data, err := os.ReadFile(readme) // #nosec G304 -- path from configuration
	if err != nil {
		return g.report, fmt.Errorf("%w: %s: %v", ErrReadSource, readme, err)
	}

	items := ParseTOC(string(data))
	if len(items) == 0 {
		return g.report, fmt.Errorf("%w: %s", ErrEmptyTOC, readme)
	}
	g.logger.Info(fmt.Sprintf("Found %d top-level items", len(items)))

	cards := make([]string, 0, len(items))
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return g.report, err
		}
		card, ok, err := g.processItem(ctx, item, i)
		if err != nil {
			return g.report, err
		}
		if ok {
			cards = append(cards, card)
		}
	}
	if err := ctx.Err(); err != nil {
		return g.report, err
	}

	mainPage, err := g.buildMainPage(cards, g.lookupDates(ctx, g.sourceKey(readme)))
	if err != nil {
		return g.report, err
	}
	res := g.writePage(mainPage, PageMain, g.cfg.Permalink, true)
	if res.Status == PageFailed {
		return g.report, res.Err
	}

	g.logger.Info("Done", "cards", g.report.Cards(), "written", g.report.Count(PageWritten),
		"unchanged", g.report.Count(PageUnchanged), "failed", g.report.Count(PageFailed))
	return g.report, nil
}

// processItem handles one top-level item and returns its rendered card.
// ok is false when the item is skipped.
func (g *Generator) processItem(ctx context.Context, item TocItem, index int) (string, bool, error) {
	switch {
	case item.HasLink() && g.validator.Valid(item.Link):
		href, reason := g.linkTarget(ctx, item)
		if href == "" {
			g.skip(item, reason)
			return "", false, nil
		}
		return g.addCard(item, href, index, g.cfg.CardMode == CardsExternal)

	case len(item.Children) > 0:
		href, reason := g.generateSubpage(ctx, item)
		if href == "" {
			g.skip(item, reason)
			return "", false, nil
		}
		return g.addCard(item, href, index, false)

	default:
		g.skip(item, "no link or children")
		return "", false, nil
	}
}

func (g *Generator) addCard(item TocItem, href string, index int, external bool) (string, bool, error) {
	card, err := g.templates.RenderCard(NewCard(g.badges, item.Name, href, index, external))
	if err != nil {
		return "", false, err
	}
	g.report.Items = append(g.report.Items, ItemResult{Name: item.Name, Status: ItemCard, Href: href})
	return card, true, nil
}

func (g *Generator) skip(item TocItem, reason string) {
	g.logger.Warn("Skipping "+item.Name+": "+reason, "item", item.Name)
	g.report.Items = append(g.report.Items, ItemResult{Name: item.Name, Status: ItemSkipped, Reason: reason})
}

// linkTarget returns the card href of a linked item: the repository URL in
// external mode, the permalink of a freshly written internal page otherwise.
func (g *Generator) linkTarget(ctx context.Context, item TocItem) (string, string) {
	if g.cfg.CardMode == CardsExternal {
		return g.externalURL(item.Link), ""
	}
	return g.createInternalPage(ctx, item)
}

func (g *Generator) externalURL(link string) string {
	base := strings.TrimSuffix(g.cfg.RepoURL, "/")
	return base + "/blob/" + g.cfg.Branch + "/" + strings.TrimPrefix(strings.TrimSpace(link), "./")
}

// generateSubpage writes the grouping page of an unlinked item with children.
// Returns the permalink, or "" and a reason when the page is skipped.
func (g *Generator) generateSubpage(ctx context.Context, item TocItem) (string, string) {
	slug := Slugify(item.Name)
	if slug == "" {
		return "", "name has no usable characters for a slug"
	}

	valid := make([]TocItem, 0, len(item.Children))
	for _, child := range item.Children {
		if child.HasLink() && g.validator.Valid(child.Link) {
			valid = append(valid, child)
		}
	}
	if len(valid) == 0 {
		return "", "no valid child links found"
	}

	cards := make([]string, 0, len(valid))
	var created, modified []string
	for idx, child := range valid {
		if ctx.Err() != nil {
			return "", "run canceled"
		}

		var href string
		external := g.cfg.CardMode == CardsExternal
		if external {
			href = g.externalURL(child.Link)
		} else {
			var reason string
			if href, reason = g.createInternalPage(ctx, child); href == "" {
				g.logger.Warn("Skipping "+child.Name+": "+reason, "item", child.Name)
				continue
			}
		}

		card, err := g.templates.RenderCard(NewCard(g.badges, child.Name, href, idx, external))
		if err != nil {
			g.logger.Error("Rendering card failed", "item", child.Name, "error", err)
			continue
		}
		cards = append(cards, card)

		if d, ok := g.childDates(ctx, child); ok {
			created = append(created, d.Created)
			modified = append(modified, d.Modified)
		}
	}
	if len(cards) == 0 {
		return "", "no child page could be created"
	}

	page, err := g.buildSubpage(item.Name, slug, cards, g.spanDates(created, modified))
	if err != nil {
		g.logger.Error("Rendering sub-page failed", "item", item.Name, "error", err)
		return "", "sub-page could not be rendered"
	}

	permalink := g.permalink(slug)
	res := g.writePage(page, PageSubpage, permalink, g.cfg.SkipUnchangedSubpages)
	if res.Status == PageFailed {
		return "", "sub-page could not be written"
	}
	return permalink, ""
}

// createInternalPage copies a linked document into PagesDir.
// Returns the page permalink, or "" and a reason when the page is skipped.
// An unreadable source is a skip, not a failed page.
func (g *Generator) createInternalPage(ctx context.Context, item TocItem) (string, string) {
	slug := Slugify(item.Name)
	if slug == "" {
		return "", "name has no usable characters for a slug"
	}

	path, err := g.validator.Resolve(item.Link)
	if err != nil {
		g.logger.Debug("Failed to resolve source", "item", item.Name, "link", item.Link, "error", err)
		return "", "source could not be resolved"
	}
	data, err := os.ReadFile(path) // #nosec G304 -- path resolved inside the source root
	if err != nil {
		g.logger.Debug("Failed to read source", "item", item.Name, "path", path, "error", err)
		return "", "source could not be read"
	}

	source := string(data)
	if g.cfg.StripFrontMatter {
		if body, err := pipeline.StripFrontMatter(source); err == nil {
			source = body
		} else {
			g.logger.Warn("Keeping source front matter", "path", path, "error", err)
		}
	}

	page, err := g.buildInternalPage(item.Name, slug, pipeline.FixTables(source), g.lookupDates(ctx, g.sourceKey(path)))
	if err != nil {
		g.logger.Error("Rendering internal page failed", "item", item.Name, "error", err)
		return "", "page could not be rendered"
	}

	permalink := g.permalink(slug)
	res := g.writePage(page, PageInternal, permalink, g.cfg.SkipUnchangedSubpages)
	if res.Status == PageFailed {
		return "", "page could not be written"
	}
	return permalink, ""
}

// childDates returns the source dates of a sub-page child.
func (g *Generator) childDates(ctx context.Context, child TocItem) (FileDates, bool) {
	if g.dates == nil {
		return FileDates{}, false
	}
	path, err := g.validator.Resolve(child.Link)
	if err != nil {
		return FileDates{}, false
	}
	d, err := g.dates.FileDates(ctx, g.sourceKey(path))
	if err != nil {
		return FileDates{}, false
	}
	return d, true
}

// spanDates returns the earliest creation and latest modification date,
// or today when no date is known.
func (g *Generator) spanDates(created, modified []string) FileDates {
	first, _, okC := dateutil.Span(created...)
	_, last, okM := dateutil.Span(modified...)
	if !okC || !okM {
		return g.today()
	}
	return FileDates{Created: first, Modified: last}
}

// lookupDates asks the date source, falling back to today on any failure.
func (g *Generator) lookupDates(ctx context.Context, key string) FileDates {
	if g.dates == nil {
		return g.today()
	}
	d, err := g.dates.FileDates(ctx, key)
	if err != nil {
		g.logger.Debug("Using today's date", "path", key, "error", err)
		return g.today()
	}
	return d
}

func (g *Generator) today() FileDates {
	t := dateutil.Today(g.now())
	return FileDates{Created: t, Modified: t}
}

// writePage renders page and writes it. With skipUnchanged, an existing file
// that differs only in date lines is left alone.
func (g *Generator) writePage(page Page, kind PageKind, permalink string, skipUnchanged bool) PageResult {
	res := PageResult{Kind: kind, Path: page.Path, Permalink: permalink}
	defer func() { g.report.Pages = append(g.report.Pages, res) }()

	content, err := page.Render()
	if err != nil {
		res.Status, res.Err = PageFailed, err
		g.logger.Error("Rendering page failed", "path", page.Path, "error", err)
		return res
	}

	if skipUnchanged {
		existing, found, err := fileutil.ReadFileIfExists(page.Path)
		if err != nil {
			g.logger.Debug("Cannot read existing page", "path", page.Path, "error", err)
		}
		if found && SameIgnoringDates(existing, content) {
			res.Status = PageUnchanged
			g.logger.Info(fmt.Sprintf("No changes to %s; not updating date.", page.Path))
			return res
		}
	}

	if g.dryRun {
		res.Status = PageDryRun
		g.logger.Info("Would write "+string(kind)+" page", "path", page.Path)
		return res
	}

	if err := fileutil.WriteFile(page.Path, content); err != nil {
		res.Status, res.Err = PageFailed, fmt.Errorf("%w: %s: %v", ErrWritePage, page.Path, err)
		g.logger.Error("Writing page failed", "path", page.Path, "error", err)
		return res
	}

	res.Status = PageWritten
	g.logger.Info("✓ Created "+string(kind)+" page", "path", page.Path)
	return res
}

// readmePath returns the README path, joined onto SourceRoot when relative.
func (g *Generator) readmePath() string {
	if filepath.IsAbs(g.cfg.Readme) {
		return g.cfg.Readme
	}
	return filepath.Join(g.cfg.SourceRoot, g.cfg.Readme)
}

// sourceKey returns path relative to the source root in slash form, or the
// cleaned path itself when it lies outside the root.
func (g *Generator) sourceKey(path string) string {
	root, err := filepath.Abs(g.cfg.SourceRoot)
	if err != nil {
		return filepath.ToSlash(path)
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(abs)
	}
	return filepath.ToSlash(rel)
}

// IsFatal reports whether err stops a run before any page is written.
func IsFatal(err error) bool {
	return errors.Is(err, ErrSourceNotFound) || errors.Is(err, ErrEmptyTOC) || errors.Is(err, ErrReadSource)
}
