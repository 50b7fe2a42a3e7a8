package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-toc2jekyll/internal/fileutil"
	"github.com/alnah/go-toc2jekyll/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config")
	ErrConfigExists    = errors.New("config file already exists")
)

// NotFoundError lists the paths searched for a missing config file.
// It matches ErrConfigNotFound with errors.Is.
type NotFoundError struct {
	Searched []string
}

func (e *NotFoundError) Error() string {
	if len(e.Searched) == 1 {
		return fmt.Sprintf("%v: %s", ErrConfigNotFound, e.Searched[0])
	}
	return fmt.Sprintf("%v: tried %s", ErrConfigNotFound, strings.Join(e.Searched, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrConfigNotFound }

// AppName names the per-user config directory (~/.config/<AppName>/).
const AppName = "go-toc2jekyll"

// Field length limits.
const (
	MaxPathLength  = 4096
	MaxURLLength   = 2048
	MaxSlugLength  = 100
	MaxTitleLength = 200
	MaxTextLength  = 2000
	MaxListLength  = 50
)

// Accepted enum values.
const (
	LinkModeExists   = "exists"
	LinkModeMarkdown = "markdown"

	CardModeExternal = "external"
	CardModeInternal = "internal"

	DateSourceGit   = "git"
	DateSourceToday = "today"

	DateKeysCreated = "created"
	DateKeysLegacy  = "legacy"
)

var (
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	colorPattern = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)
)

// Config holds all configuration for page generation.
type Config struct {
	Source SourceConfig `yaml:"source"`
	Output OutputConfig `yaml:"output"`
	Site   SiteConfig   `yaml:"site"`
	Page   PageConfig   `yaml:"page"`
	Links  LinksConfig  `yaml:"links"`
	Cards  CardsConfig  `yaml:"cards"`
	Dates  DatesConfig  `yaml:"dates"`
	Write  WriteConfig  `yaml:"write"`
	Badge  BadgeConfig  `yaml:"badge"`
	Assets AssetsConfig `yaml:"assets"`
}

// SourceConfig locates the repository holding the README.
type SourceConfig struct {
	Root             string `yaml:"root"`             // Repository root, links resolve against it
	Readme           string `yaml:"readme"`           // README path, relative to root unless absolute
	RepoURL          string `yaml:"repoURL"`          // Public URL used in the main page and external cards
	Branch           string `yaml:"branch"`           // Branch for external card links (default: main)
	StripFrontMatter bool   `yaml:"stripFrontMatter"` // Drop a linked document's own front matter
}

// OutputConfig defines where pages are written.
type OutputConfig struct {
	MainPage    string `yaml:"mainPage"`
	SubpagesDir string `yaml:"subpagesDir"`
	PagesDir    string `yaml:"pagesDir"`
}

// SiteConfig defines Jekyll routing.
type SiteConfig struct {
	ParentSlug string `yaml:"parentSlug"` // First permalink segment of generated pages
	Permalink  string `yaml:"permalink"`  // Main page permalink
	Layout     string `yaml:"layout"`
}

// PageConfig holds main page metadata and text.
type PageConfig struct {
	Title           string   `yaml:"title"`
	Keywords        string   `yaml:"keywords"`
	Thumbnail       string   `yaml:"thumbnail"`
	ThumbnailAlt    string   `yaml:"thumbnailAlt"`
	ThumbnailCredit string   `yaml:"thumbnailCredit"`
	Languages       []string `yaml:"languages"`
	Intro           string   `yaml:"intro"`
	Details         string   `yaml:"details"` // Markdown; "{repoURL}" is replaced by source.repoURL
}

// LinksConfig selects link validation.
type LinksConfig struct {
	Mode string `yaml:"mode"` // "exists" or "markdown"
}

// CardsConfig selects card targets.
type CardsConfig struct {
	Mode string `yaml:"mode"` // "external" or "internal"
}

// DatesConfig selects where front matter dates come from.
type DatesConfig struct {
	Source    string `yaml:"source"`    // "git" or "today"
	Keys      string `yaml:"keys"`      // "created" or "legacy"
	GitBinary string `yaml:"gitBinary"` // Default: git
	Timeout   string `yaml:"timeout"`   // Go duration, per git call (default: 10s)
	CacheSize int    `yaml:"cacheSize"` // Memoized lookups (0 = no cache)
}

// WriteConfig tunes write behavior.
type WriteConfig struct {
	SkipUnchangedSubpages bool `yaml:"skipUnchangedSubpages"`
}

// BadgeConfig overrides badge generation.
type BadgeConfig struct {
	Host    string     `yaml:"host,omitempty"`    // Default: img.shields.io
	Style   string     `yaml:"style,omitempty"`   // Default: for-the-badge
	Palette []string   `yaml:"palette,omitempty"` // Hex colors without '#'
	Logos   []LogoRule `yaml:"logos,omitempty"`   // Replaces the built-in table when set
}

// LogoRule maps a name substring to a shields.io logo id.
type LogoRule struct {
	Match string `yaml:"match"`
	Logo  string `yaml:"logo"`
}

// AssetsConfig defines template loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded templates
}

// TimeoutDuration returns the parsed git timeout, or fallback when unset.
func (d DatesConfig) TimeoutDuration(fallback time.Duration) time.Duration {
	if d.Timeout == "" {
		return fallback
	}
	v, err := time.ParseDuration(d.Timeout)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// Validate checks required fields, enum values and field lengths.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Source),
		validation.Field(&c.Output),
		validation.Field(&c.Site),
		validation.Field(&c.Page),
		validation.Field(&c.Links),
		validation.Field(&c.Cards),
		validation.Field(&c.Dates),
		validation.Field(&c.Badge),
		validation.Field(&c.Assets),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	if c.Cards.Mode == CardModeInternal && c.Output.PagesDir == "" {
		return fmt.Errorf("%w: output.pagesDir is required when cards.mode is internal", ErrConfigInvalid)
	}
	if c.Cards.Mode == CardModeExternal && c.Source.RepoURL == "" {
		return fmt.Errorf("%w: source.repoURL is required when cards.mode is external", ErrConfigInvalid)
	}
	return nil
}

// Validate implements validation.Validatable.
func (s SourceConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Root, validation.Required, validation.Length(1, MaxPathLength)),
		validation.Field(&s.Readme, validation.Required, validation.Length(1, MaxPathLength)),
		validation.Field(&s.RepoURL, validation.Length(0, MaxURLLength), validation.By(httpURL)),
		validation.Field(&s.Branch, validation.Length(0, MaxSlugLength)),
	)
}

// Validate implements validation.Validatable.
func (o OutputConfig) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.MainPage, validation.Required, validation.Length(1, MaxPathLength)),
		validation.Field(&o.SubpagesDir, validation.Required, validation.Length(1, MaxPathLength)),
		validation.Field(&o.PagesDir, validation.Length(0, MaxPathLength)),
	)
}

// Validate implements validation.Validatable.
func (s SiteConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ParentSlug, validation.Required, validation.Length(1, MaxSlugLength),
			validation.Match(slugPattern).Error("must be a lower-case slug such as everyday-essentials")),
		validation.Field(&s.Permalink, validation.Required, validation.Length(1, MaxURLLength), validation.By(sitePath)),
		validation.Field(&s.Layout, validation.Required, validation.Length(1, MaxSlugLength)),
	)
}

// Validate implements validation.Validatable.
func (p PageConfig) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, MaxTitleLength)),
		validation.Field(&p.Keywords, validation.Length(0, MaxTextLength)),
		validation.Field(&p.Thumbnail, validation.Length(0, MaxURLLength)),
		validation.Field(&p.ThumbnailAlt, validation.Length(0, MaxTitleLength)),
		validation.Field(&p.ThumbnailCredit, validation.Length(0, MaxTitleLength)),
		validation.Field(&p.Languages, validation.Length(0, MaxListLength)),
		validation.Field(&p.Intro, validation.Length(0, MaxTextLength)),
		validation.Field(&p.Details, validation.Length(0, MaxTextLength)),
	)
}

// Validate implements validation.Validatable.
func (l LinksConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Mode, validation.Required, validation.In(LinkModeExists, LinkModeMarkdown)),
	)
}

// Validate implements validation.Validatable.
func (c CardsConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Mode, validation.Required, validation.In(CardModeExternal, CardModeInternal)),
	)
}

// Validate implements validation.Validatable.
func (d DatesConfig) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Source, validation.Required, validation.In(DateSourceGit, DateSourceToday)),
		validation.Field(&d.Keys, validation.Required, validation.In(DateKeysCreated, DateKeysLegacy)),
		validation.Field(&d.GitBinary, validation.Length(0, MaxPathLength)),
		validation.Field(&d.Timeout, validation.By(positiveDuration)),
		validation.Field(&d.CacheSize, validation.Min(0), validation.Max(100000)),
	)
}

// Validate implements validation.Validatable.
func (b BadgeConfig) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Host, validation.Length(0, MaxURLLength)),
		validation.Field(&b.Style, validation.Length(0, MaxSlugLength)),
		validation.Field(&b.Palette, validation.Length(0, MaxListLength),
			validation.Each(validation.Match(colorPattern).Error("must be a 6-digit hex color"))),
		validation.Field(&b.Logos, validation.Length(0, MaxListLength)),
	)
}

// Validate implements validation.Validatable.
func (r LogoRule) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Match, validation.Required, validation.Length(1, MaxSlugLength)),
		validation.Field(&r.Logo, validation.Required, validation.Length(1, MaxSlugLength)),
	)
}

// Validate implements validation.Validatable.
func (a AssetsConfig) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.BasePath, validation.Length(0, MaxPathLength)),
	)
}

func httpURL(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !fileutil.IsURL(s) {
		return validation.NewError("validation_http_url", "must start with http:// or https://")
	}
	return nil
}

func sitePath(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !strings.HasPrefix(s, "/") || !strings.HasSuffix(s, "/") {
		return validation.NewError("validation_site_path", "must start and end with /")
	}
	return nil
}

func positiveDuration(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return validation.NewError("validation_duration", "must be a positive duration such as 10s")
	}
	return nil
}

// DefaultConfig returns the configuration for the current page layout:
// markdown-only links, internal pages, git dates under date_created and
// last_modified. Paths are relative to the working directory.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Root:    ".",
			Readme:  "README.md",
			RepoURL: "",
			Branch:  "main",
		},
		Output: OutputConfig{
			MainPage:    "_portfolio/everyday-essentials.md",
			SubpagesDir: "_portfolio/everyday-essentials/subpages",
			PagesDir:    "_portfolio/everyday-essentials",
		},
		Site: SiteConfig{
			ParentSlug: "everyday-essentials",
			Permalink:  "/portfolio/everyday-essentials/",
			Layout:     "portfolio_item",
		},
		Page: PageConfig{
			Title:           "Everyday Essentials",
			Keywords:        "command-line, terminal, productivity, cheatsheet, reference",
			Thumbnail:       "/assets/images/everyday-essentials-thumbnail.png",
			ThumbnailAlt:    "Everyday Essentials Thumbnail",
			ThumbnailCredit: "Generated by AI",
			Languages:       []string{"Shell", "Git", "Terminal"},
			Intro:           "A curated collection of useful information I refer to daily, from basic English grammar to terminal commands and keyboard shortcuts. This serves as a quick reference guide for common tasks and tools.",
			Details:         "This page aggregates content from my [everyday-essentials repository]({repoURL}), providing quick access to various command-line tools, shortcuts, and reference materials.",
		},
		Links: LinksConfig{Mode: LinkModeMarkdown},
		Cards: CardsConfig{Mode: CardModeInternal},
		Dates: DatesConfig{
			Source:    DateSourceGit,
			Keys:      DateKeysCreated,
			GitBinary: "git",
			Timeout:   "10s",
			CacheSize: 256,
		},
		Write:  WriteConfig{SkipUnchangedSubpages: false},
		Assets: AssetsConfig{BasePath: ""},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Values missing from the file keep their DefaultConfig value.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Searched: []string{configPath}}
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WriteDefault writes DefaultConfig as YAML to path. An existing file is
// never overwritten.
func WriteDefault(path string) error {
	if fileutil.PathExists(path) {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}
	data, err := yamlutil.Marshal(DefaultConfig())
	if err != nil {
		return err
	}
	return fileutil.WriteFile(path, string(data))
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-toc2jekyll/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, AppName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", &NotFoundError{Searched: triedPaths}
}
