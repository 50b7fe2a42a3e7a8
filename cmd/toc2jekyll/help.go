package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: toc2jekyll [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate    Build portfolio pages from the README table of contents (default)")
	fmt.Fprintln(w, "  preview     Render a generated page to standalone HTML")
	fmt.Fprintln(w, "  doctor      Check git, config, README and output directory")
	fmt.Fprintln(w, "  init        Write a starter config file")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'toc2jekyll help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: toc2jekyll generate [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build the main page, sub-pages and internal pages from the")
	fmt.Fprintln(w, "\"## Table of Contents\" section of a README.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Source:")
	fmt.Fprintln(w, "      --source-root <dir>       Repository root that links resolve against")
	fmt.Fprintln(w, "      --readme <path>           README path relative to the source root")
	fmt.Fprintln(w, "      --repo-url <url>          Repository URL for external cards")
	fmt.Fprintln(w, "      --branch <name>           Branch for external card links (default: main)")
	fmt.Fprintln(w, "      --strip-front-matter      Drop front matter of copied documents")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --main-page <path>        Output path of the main page")
	fmt.Fprintln(w, "      --subpages-dir <dir>      Output directory of sub-pages")
	fmt.Fprintln(w, "      --pages-dir <dir>         Output directory of internal pages")
	fmt.Fprintln(w, "      --templates <dir>         Directory with custom page templates")
	fmt.Fprintln(w, "      --skip-unchanged-subpages Keep sub-pages whose content did not change")
	fmt.Fprintln(w, "      --dry-run                 Report what would be written without writing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Modes:")
	fmt.Fprintln(w, "      --link-mode <s>           Link validation: exists, markdown")
	fmt.Fprintln(w, "      --card-mode <s>           Card targets: external, internal")
	fmt.Fprintln(w, "      --date-keys <s>           Front matter date keys: created, legacy")
	fmt.Fprintln(w, "      --no-git                  Date pages with today's date")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>           Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet                   Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                 Show debug output")
	fmt.Fprintln(w, "      --log-format <s>          Log output: text, json, console, pretty")
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: toc2jekyll preview <page.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a generated page to standalone HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>    Output HTML file (\"-\" = stdout, default: <page>.html)")
	fmt.Fprintln(w, "      --site-url <url>   Absolute site URL for root-relative links")
	fmt.Fprintln(w, "      --title <s>        HTML title (default: front matter title)")
	fmt.Fprintln(w, "  -q, --quiet            Only show errors")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "preview":
		printPreviewUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: toc2jekyll doctor [--json] [-c <name>]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check that pages can be generated. Exits 1 when errors are found.")
	case "init":
		fmt.Fprintln(env.Stdout, "Usage: toc2jekyll init [path]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintf(env.Stdout, "Write a starter config file (default: %s).\n", defaultInitPath)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: toc2jekyll version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: toc2jekyll help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
