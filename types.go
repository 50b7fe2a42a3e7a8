package toc2jekyll

import (
	"fmt"
	"strings"
	"time"
)

// TocItem is one entry of the README table of contents.
// Link is empty for entries without a link. Only top-level items have
// children.
type TocItem struct {
	Name     string
	Link     string
	Children []TocItem
}

// HasLink reports whether the item carries a link.
func (i TocItem) HasLink() bool {
	return i.Link != ""
}

// ValidationMode selects how linked files are checked.
type ValidationMode string

// Validation modes.
const (
	ModeExists   ValidationMode = "exists"   // any existing file or directory
	ModeMarkdown ValidationMode = "markdown" // existing .md or .markdown file
)

// ParseValidationMode parses a mode name, case-insensitively.
func ParseValidationMode(s string) (ValidationMode, error) {
	switch ValidationMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeExists:
		return ModeExists, nil
	case ModeMarkdown:
		return ModeMarkdown, nil
	}
	return "", fmt.Errorf("%w: %q (must be exists or markdown)", ErrInvalidValidationMode, s)
}

// CardMode selects where cards for linked items point.
type CardMode string

// Card modes.
const (
	// CardsExternal links cards to the file on the repository host.
	CardsExternal CardMode = "external"
	// CardsInternal copies linked documents into site pages and links to those.
	CardsInternal CardMode = "internal"
)

// ParseCardMode parses a card mode name, case-insensitively.
func ParseCardMode(s string) (CardMode, error) {
	switch CardMode(strings.ToLower(strings.TrimSpace(s))) {
	case CardsExternal:
		return CardsExternal, nil
	case CardsInternal:
		return CardsInternal, nil
	}
	return "", fmt.Errorf("%w: %q (must be external or internal)", ErrInvalidCardMode, s)
}

// DateKeys selects the front matter keys used for page dates.
type DateKeys string

// Date key sets.
const (
	DateKeysCreated DateKeys = "created" // date_created / last_modified
	DateKeysLegacy  DateKeys = "legacy"  // date / page_modified
)

// ParseDateKeys parses a date key set name, case-insensitively.
func ParseDateKeys(s string) (DateKeys, error) {
	switch DateKeys(strings.ToLower(strings.TrimSpace(s))) {
	case DateKeysCreated:
		return DateKeysCreated, nil
	case DateKeysLegacy:
		return DateKeysLegacy, nil
	}
	return "", fmt.Errorf("%w: %q (must be created or legacy)", ErrInvalidDateKeys, s)
}

// Names returns the created and modified key names.
func (k DateKeys) Names() (created, modified string) {
	if k == DateKeysLegacy {
		return "date", "page_modified"
	}
	return "date_created", "last_modified"
}

// MainPage holds the metadata and text of the main portfolio page.
type MainPage struct {
	Title           string
	Keywords        string
	Thumbnail       string
	ThumbnailAlt    string
	ThumbnailCredit string
	Languages       []string
	Intro           string
	Details         string // "{repoURL}" is replaced by Config.RepoURL
}

// Config describes one generation run.
type Config struct {
	SourceRoot       string // Repository root; links resolve against it
	Readme           string // README path, relative to SourceRoot unless absolute
	RepoURL          string // Repository URL for external cards and the details text
	Branch           string // Branch for external cards (default: main)
	StripFrontMatter bool   // Drop a linked document's own front matter

	MainPage    string // Output path of the main page
	SubpagesDir string // Output directory of grouping sub-pages
	PagesDir    string // Output directory of internal pages

	ParentSlug string // First permalink segment of generated pages
	Permalink  string // Main page permalink
	Layout     string // Jekyll layout of every page

	Page MainPage

	LinkMode ValidationMode
	CardMode CardMode
	DateKeys DateKeys

	// SkipUnchangedSubpages applies the main page's "skip if only dates
	// changed" rule to sub-pages and internal pages as well.
	SkipUnchangedSubpages bool

	Badge *BadgeBuilder // nil = DefaultBadgeBuilder()
}

// Validate checks that c is complete enough to run.
func (c Config) Validate() error {
	required := []struct {
		name, value string
	}{
		{"SourceRoot", c.SourceRoot},
		{"Readme", c.Readme},
		{"MainPage", c.MainPage},
		{"SubpagesDir", c.SubpagesDir},
		{"ParentSlug", c.ParentSlug},
		{"Permalink", c.Permalink},
		{"Layout", c.Layout},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidConfig, r.name)
		}
	}

	if _, err := ParseValidationMode(string(c.LinkMode)); err != nil {
		return err
	}
	if _, err := ParseCardMode(string(c.CardMode)); err != nil {
		return err
	}
	if _, err := ParseDateKeys(string(c.DateKeys)); err != nil {
		return err
	}
	if c.CardMode == CardsInternal && strings.TrimSpace(c.PagesDir) == "" {
		return fmt.Errorf("%w: PagesDir is required for internal cards", ErrInvalidConfig)
	}
	if c.CardMode == CardsExternal && strings.TrimSpace(c.RepoURL) == "" {
		return fmt.Errorf("%w: RepoURL is required for external cards", ErrInvalidConfig)
	}
	return nil
}

// Option configures a Generator.
type Option func(*Generator)

// WithDateSource sets where page dates come from.
// A nil source dates every page with today's date.
func WithDateSource(ds DateSource) Option {
	return func(g *Generator) {
		g.dates = ds
	}
}

// WithLogger sets the progress logger. nil discards output.
func WithLogger(l Logger) Option {
	return func(g *Generator) {
		if l == nil {
			l = nopLogger{}
		}
		g.logger = l
	}
}

// WithNow sets the clock used for "today" fallbacks.
func WithNow(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithValidator replaces the file-based link validator.
func WithValidator(v LinkValidator) Option {
	return func(g *Generator) {
		if v != nil {
			g.validator = v
		}
	}
}

// WithTemplates replaces the embedded page templates.
func WithTemplates(t *Templates) Option {
	return func(g *Generator) {
		if t != nil {
			g.templates = t
		}
	}
}

// WithDryRun renders and compares pages without writing them.
func WithDryRun(dryRun bool) Option {
	return func(g *Generator) {
		g.dryRun = dryRun
	}
}
