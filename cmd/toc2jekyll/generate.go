package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	toc2jekyll "github.com/alnah/go-toc2jekyll"
	"github.com/alnah/go-toc2jekyll/internal/config"
	"github.com/alnah/go-toc2jekyll/internal/hints"
	"github.com/alnah/go-toc2jekyll/internal/logging"
)

// ErrInvalidLogFormat is returned for an unknown --log-format value.
var ErrInvalidLogFormat = errors.New("invalid log format")

// defaultConfigName is looked up when neither --config nor
// TOC2JEKYLL_CONFIG is given. Its absence is not an error.
const defaultConfigName = "toc2jekyll"

// logFormatText selects the plain console logger.
const logFormatText = "text"

// runGenerate builds the site pages from the README table of contents.
func runGenerate(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseGenerateFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, positional[0])
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(flags.common, envCfg.LogFormat, env.Stdout)
	if err != nil {
		return err
	}

	genCfg, err := toGeneratorConfig(cfg)
	if err != nil {
		return err
	}

	dates, err := newDateSource(cfg, genCfg.SourceRoot, logger)
	if err != nil {
		return err
	}

	templates, err := toc2jekyll.LoadTemplates(cfg.Assets.BasePath)
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}

	gen, err := toc2jekyll.NewGenerator(genCfg,
		toc2jekyll.WithDateSource(dates),
		toc2jekyll.WithLogger(logger),
		toc2jekyll.WithNow(env.Now),
		toc2jekyll.WithTemplates(templates),
		toc2jekyll.WithDryRun(flags.dryRun),
	)
	if err != nil {
		return err
	}

	report, err := gen.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generating pages: %w", err)
	}
	if failed := report.Count(toc2jekyll.PageFailed); failed > 0 {
		return fmt.Errorf("%w: %d page(s) failed", toc2jekyll.ErrWritePage, failed)
	}
	return nil
}

// loadConfig loads the named config, or the default config name when both
// the flag and the environment are empty. Explicit names must exist.
func loadConfig(flagValue, envValue string) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = envValue
	}
	if name != "" {
		return config.LoadConfig(name)
	}

	cfg, err := config.LoadConfig(defaultConfigName)
	if errors.Is(err, config.ErrConfigNotFound) {
		return config.DefaultConfig(), nil
	}
	return cfg, err
}

// mergeFlags applies set CLI flags to cfg (CLI wins).
func mergeFlags(flags *generateFlags, cfg *config.Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	set(&cfg.Source.Root, flags.source.root)
	set(&cfg.Source.Readme, flags.source.readme)
	set(&cfg.Source.RepoURL, flags.source.repoURL)
	set(&cfg.Source.Branch, flags.source.branch)
	if flags.source.stripFrontMatter {
		cfg.Source.StripFrontMatter = true
	}

	set(&cfg.Output.MainPage, flags.output.mainPage)
	set(&cfg.Output.SubpagesDir, flags.output.subpagesDir)
	set(&cfg.Output.PagesDir, flags.output.pagesDir)

	set(&cfg.Links.Mode, flags.modes.linkMode)
	set(&cfg.Cards.Mode, flags.modes.cardMode)
	set(&cfg.Dates.Keys, flags.modes.dateKeys)
	if flags.modes.noGit {
		cfg.Dates.Source = config.DateSourceToday
	}

	set(&cfg.Assets.BasePath, flags.templates)
	if flags.skipUnchangedSubpages {
		cfg.Write.SkipUnchangedSubpages = true
	}
}

// toGeneratorConfig maps the file configuration onto the library Config.
func toGeneratorConfig(cfg *config.Config) (toc2jekyll.Config, error) {
	linkMode, err := toc2jekyll.ParseValidationMode(cfg.Links.Mode)
	if err != nil {
		return toc2jekyll.Config{}, err
	}
	cardMode, err := toc2jekyll.ParseCardMode(cfg.Cards.Mode)
	if err != nil {
		return toc2jekyll.Config{}, err
	}
	dateKeys, err := toc2jekyll.ParseDateKeys(cfg.Dates.Keys)
	if err != nil {
		return toc2jekyll.Config{}, err
	}

	return toc2jekyll.Config{
		SourceRoot:       cfg.Source.Root,
		Readme:           cfg.Source.Readme,
		RepoURL:          cfg.Source.RepoURL,
		Branch:           cfg.Source.Branch,
		StripFrontMatter: cfg.Source.StripFrontMatter,

		MainPage:    cfg.Output.MainPage,
		SubpagesDir: cfg.Output.SubpagesDir,
		PagesDir:    cfg.Output.PagesDir,

		ParentSlug: cfg.Site.ParentSlug,
		Permalink:  cfg.Site.Permalink,
		Layout:     cfg.Site.Layout,

		Page: toc2jekyll.MainPage{
			Title:           cfg.Page.Title,
			Keywords:        cfg.Page.Keywords,
			Thumbnail:       cfg.Page.Thumbnail,
			ThumbnailAlt:    cfg.Page.ThumbnailAlt,
			ThumbnailCredit: cfg.Page.ThumbnailCredit,
			Languages:       cfg.Page.Languages,
			Intro:           cfg.Page.Intro,
			Details:         cfg.Page.Details,
		},

		LinkMode: linkMode,
		CardMode: cardMode,
		DateKeys: dateKeys,

		SkipUnchangedSubpages: cfg.Write.SkipUnchangedSubpages,
		Badge:                 toBadgeBuilder(cfg.Badge),
	}, nil
}

// toBadgeBuilder returns nil when the badge section is empty, so the
// generator uses its defaults. An explicit empty logo list disables logos.
func toBadgeBuilder(b config.BadgeConfig) *toc2jekyll.BadgeBuilder {
	if b.Host == "" && b.Style == "" && len(b.Palette) == 0 && b.Logos == nil {
		return nil
	}

	builder := toc2jekyll.DefaultBadgeBuilder()
	if b.Host != "" {
		builder.Host = b.Host
	}
	if b.Style != "" {
		builder.Style = b.Style
	}
	if len(b.Palette) > 0 {
		builder.Palette = append([]string(nil), b.Palette...)
	}
	if b.Logos != nil {
		builder.Logos = make([]toc2jekyll.LogoRule, 0, len(b.Logos))
		for _, r := range b.Logos {
			builder.Logos = append(builder.Logos, toc2jekyll.LogoRule{Match: r.Match, Logo: r.Logo})
		}
	}
	return builder
}

// newDateSource returns the configured date source: git history behind an
// LRU cache, or nil (today's date) for the "today" source.
func newDateSource(cfg *config.Config, repoDir string, logger toc2jekyll.Logger) (toc2jekyll.DateSource, error) {
	if cfg.Dates.Source == config.DateSourceToday {
		logger.Debug("Dating pages with today's date")
		return nil, nil
	}

	git := toc2jekyll.NewGitDateSource(repoDir)
	if cfg.Dates.GitBinary != "" {
		git.Binary = cfg.Dates.GitBinary
	}
	git.Timeout = cfg.Dates.TimeoutDuration(toc2jekyll.DefaultGitTimeout)

	if hint := hints.ForGitDates(git.Binary); hint != "" {
		logger.Warn("git is unavailable, pages will be dated today" + strings.ReplaceAll(hint, "\n", " "))
	}

	if cfg.Dates.CacheSize <= 0 {
		return git, nil
	}
	return toc2jekyll.NewCachedDateSource(git, cfg.Dates.CacheSize)
}

// newLogger picks the console logger or a structured go-logger.
// The flag wins over TOC2JEKYLL_LOG_FORMAT.
func newLogger(flags commonFlags, envFormat string, out io.Writer) (toc2jekyll.Logger, error) {
	format := flags.logFormat
	if format == "" {
		format = envFormat
	}
	format = strings.ToLower(strings.TrimSpace(format))

	level := "info"
	switch {
	case flags.quiet:
		level = "error"
	case flags.verbose:
		level = "debug"
	}

	switch {
	case format == "" || format == logFormatText:
		opts := logging.ConsoleOptions{Quiet: flags.quiet, Verbose: flags.verbose}
		if flags.verbose {
			detail, err := logging.NewGoLogger(logging.FormatConsole, level)
			if err != nil {
				return nil, err
			}
			opts.Detail = detail
		}
		return logging.NewConsole(out, opts), nil
	case logging.IsStructuredFormat(format):
		return logging.NewGoLogger(format, level)
	default:
		return nil, fmt.Errorf("%w: %q (must be text, json, console or pretty)", ErrInvalidLogFormat, format)
	}
}
