package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alnah/go-toc2jekyll/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath  string // TOC2JEKYLL_CONFIG: config file name or path
	SourceRoot  string // TOC2JEKYLL_SOURCE_ROOT: repository root
	Readme      string // TOC2JEKYLL_README: README path
	RepoURL     string // TOC2JEKYLL_REPO_URL: repository URL
	MainPage    string // TOC2JEKYLL_MAIN_PAGE: main page output path
	SubpagesDir string // TOC2JEKYLL_SUBPAGES_DIR: sub-pages directory
	PagesDir    string // TOC2JEKYLL_PAGES_DIR: internal pages directory
	LinkMode    string // TOC2JEKYLL_LINK_MODE: exists, markdown
	CardMode    string // TOC2JEKYLL_CARD_MODE: external, internal
	LogFormat   string // TOC2JEKYLL_LOG_FORMAT: text, json, console, pretty
}

// envPrefix starts every recognized variable name.
const envPrefix = "TOC2JEKYLL_"

// knownEnvVars lists valid TOC2JEKYLL_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"TOC2JEKYLL_CONFIG":       true,
	"TOC2JEKYLL_SOURCE_ROOT":  true,
	"TOC2JEKYLL_README":       true,
	"TOC2JEKYLL_REPO_URL":     true,
	"TOC2JEKYLL_MAIN_PAGE":    true,
	"TOC2JEKYLL_SUBPAGES_DIR": true,
	"TOC2JEKYLL_PAGES_DIR":    true,
	"TOC2JEKYLL_LINK_MODE":    true,
	"TOC2JEKYLL_CARD_MODE":    true,
	"TOC2JEKYLL_LOG_FORMAT":   true,
}

// loadDotEnv loads variables from a .env file into the process environment.
// Variables already set are not overridden. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath:  os.Getenv("TOC2JEKYLL_CONFIG"),
		SourceRoot:  os.Getenv("TOC2JEKYLL_SOURCE_ROOT"),
		Readme:      os.Getenv("TOC2JEKYLL_README"),
		RepoURL:     os.Getenv("TOC2JEKYLL_REPO_URL"),
		MainPage:    os.Getenv("TOC2JEKYLL_MAIN_PAGE"),
		SubpagesDir: os.Getenv("TOC2JEKYLL_SUBPAGES_DIR"),
		PagesDir:    os.Getenv("TOC2JEKYLL_PAGES_DIR"),
		LinkMode:    os.Getenv("TOC2JEKYLL_LINK_MODE"),
		CardMode:    os.Getenv("TOC2JEKYLL_CARD_MODE"),
		LogFormat:   os.Getenv("TOC2JEKYLL_LOG_FORMAT"),
	}
}

// warnUnknownEnvVars writes a warning for each unrecognized TOC2JEKYLL_*
// variable, e.g. TOC2JEKYLL_READ_ME instead of TOC2JEKYLL_README.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides config file values with set environment variables.
// Priority: CLI flags > env vars > config file > defaults
// (CLI flags are applied afterwards by mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	set(&cfg.Source.Root, env.SourceRoot)
	set(&cfg.Source.Readme, env.Readme)
	set(&cfg.Source.RepoURL, env.RepoURL)
	set(&cfg.Output.MainPage, env.MainPage)
	set(&cfg.Output.SubpagesDir, env.SubpagesDir)
	set(&cfg.Output.PagesDir, env.PagesDir)
	set(&cfg.Links.Mode, env.LinkMode)
	set(&cfg.Cards.Mode, env.CardMode)
}
