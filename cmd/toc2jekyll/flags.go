package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage wraps flag parsing and argument errors.
var ErrUsage = errors.New("invalid usage")

// errHelpRequested is returned by flag parsing for -h/--help.
var errHelpRequested = flag.ErrHelp

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	quiet     bool
	verbose   bool
	logFormat string
}

// sourceFlags locate the README and linked documents.
type sourceFlags struct {
	root             string
	readme           string
	repoURL          string
	branch           string
	stripFrontMatter bool
}

// outputFlags locate generated pages.
type outputFlags struct {
	mainPage    string
	subpagesDir string
	pagesDir    string
}

// modeFlags select link validation, card targets and dates.
type modeFlags struct {
	linkMode string
	cardMode string
	dateKeys string
	noGit    bool
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common                commonFlags
	source                sourceFlags
	output                outputFlags
	modes                 modeFlags
	templates             string
	skipUnchangedSubpages bool
	dryRun                bool
}

// previewFlags holds flags for the preview command.
type previewFlags struct {
	output  string
	siteURL string
	title   string
	quiet   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
	fs.StringVar(&f.logFormat, "log-format", "", "log output: text, json, console, pretty")
}

// addSourceFlags adds source repository flags to a FlagSet.
func addSourceFlags(fs *flag.FlagSet, f *sourceFlags) {
	fs.StringVar(&f.root, "source-root", "", "repository root that links resolve against")
	fs.StringVar(&f.readme, "readme", "", "README path relative to the source root")
	fs.StringVar(&f.repoURL, "repo-url", "", "repository URL for external cards")
	fs.StringVar(&f.branch, "branch", "", "branch for external card links")
	fs.BoolVar(&f.stripFrontMatter, "strip-front-matter", false, "drop front matter of copied documents")
}

// addOutputFlags adds output location flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVar(&f.mainPage, "main-page", "", "output path of the main page")
	fs.StringVar(&f.subpagesDir, "subpages-dir", "", "output directory of sub-pages")
	fs.StringVar(&f.pagesDir, "pages-dir", "", "output directory of internal pages")
}

// addModeFlags adds mode selection flags to a FlagSet.
func addModeFlags(fs *flag.FlagSet, f *modeFlags) {
	fs.StringVar(&f.linkMode, "link-mode", "", "link validation: exists, markdown")
	fs.StringVar(&f.cardMode, "card-mode", "", "card targets: external, internal")
	fs.StringVar(&f.dateKeys, "date-keys", "", "front matter date keys: created, legacy")
	fs.BoolVar(&f.noGit, "no-git", false, "date pages with today's date instead of git history")
}

// buildGenerateFlagSet registers the generate flags into f.
func buildGenerateFlagSet(f *generateFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)

	addCommonFlags(fs, &f.common)
	addSourceFlags(fs, &f.source)
	addOutputFlags(fs, &f.output)
	addModeFlags(fs, &f.modes)
	fs.StringVar(&f.templates, "templates", "", "directory with custom page templates")
	fs.BoolVar(&f.skipUnchangedSubpages, "skip-unchanged-subpages", false, "keep sub-pages whose content did not change")
	fs.BoolVar(&f.dryRun, "dry-run", false, "report what would be written without writing")

	return fs
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string, stderr io.Writer) (*generateFlags, []string, error) {
	f := &generateFlags{}
	fs := buildGenerateFlagSet(f)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { printGenerateUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printGenerateUsage(stderr)
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if f.common.quiet && f.common.verbose {
		return nil, nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}
	return f, fs.Args(), nil
}

// buildPreviewFlagSet registers the preview flags into f.
func buildPreviewFlagSet(f *previewFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	fs.StringVarP(&f.output, "output", "o", "", "output HTML file (\"-\" = stdout)")
	fs.StringVar(&f.siteURL, "site-url", "", "absolute site URL for root-relative links")
	fs.StringVar(&f.title, "title", "", "HTML title (default: front matter title)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	return fs
}

// parsePreviewFlags parses preview command flags and returns positional args.
func parsePreviewFlags(args []string, stderr io.Writer) (*previewFlags, []string, error) {
	f := &previewFlags{}
	fs := buildPreviewFlagSet(f)
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printPreviewUsage(stderr)
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return f, fs.Args(), nil
}
