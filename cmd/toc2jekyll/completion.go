package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --link-mode
	Short    string   // -c (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	TakesFiles  bool   // accepts file arguments
	FilePattern string // glob for file arguments (e.g., "*.md")
}

// completionMeta holds completion hints that the FlagSet cannot express.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"link-mode":  {Values: []string{"exists", "markdown"}},
	"card-mode":  {Values: []string{"external", "internal"}},
	"date-keys":  {Values: []string{"created", "legacy"}},
	"log-format": {Values: []string{"text", "json", "console", "pretty"}},

	"config":    {FileGlob: "*.yaml,*.yml"},
	"readme":    {FileGlob: "*.md"},
	"main-page": {FileGlob: "*.md"},
	"output":    {FileGlob: "*.html"},

	"source-root":  {IsDir: true},
	"subpages-dir": {IsDir: true},
	"pages-dir":    {IsDir: true},
	"templates":    {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}
		if f.Value.Type() == "bool" {
			fd.Type = flagBool
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:  "generate",
			Desc:  "Build portfolio pages from the README table of contents",
			Flags: extractFlagsFromFlagSet(buildGenerateFlagSet(&generateFlags{})),
		},
		{
			Name:        "preview",
			Desc:        "Render a generated page to standalone HTML",
			Flags:       extractFlagsFromFlagSet(buildPreviewFlagSet(&previewFlags{})),
			TakesFiles:  true,
			FilePattern: "*.md,*.markdown",
		},
		{
			Name: "doctor",
			Desc: "Check git, config, README and output directory",
			Flags: []flagDef{
				{Long: "json", Type: flagBool, Desc: "output as JSON"},
				{Long: "config", Short: "c", Type: flagFile, Desc: "config file name or path", FileGlob: "*.yaml,*.yml"},
			},
		},
		{
			Name:        "init",
			Desc:        "Write a starter config file",
			TakesFiles:  true,
			FilePattern: "*.yaml,*.yml",
		},
		{Name: "completion", Desc: "Generate shell completion script"},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	case ShellPowerShell:
		return generatePowerShell(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
}

// commandNames returns the names of all commands.
func commandNames(cmds []commandDef) []string {
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	return names
}

// flagWords returns "--long" and "-s" spellings of flags.
func flagWords(flags []flagDef) []string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

// bashGlobFilter turns "*.yaml,*.yml" into an extglob "!(*.yaml|*.yml)"
// exclusion pattern for compgen -X.
func bashGlobFilter(globs string) string {
	return "!(" + strings.ReplaceAll(globs, ",", "|") + ")"
}

func generateBash(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# bash completion for toc2jekyll\n")
	b.WriteString("_toc2jekyll_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 && ${cur} != -* ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W %q -- \"${cur}\") )\n", strings.Join(commandNames(cmds), " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n")
	b.WriteString("    [[ ${cmd} == -* ]] && cmd=generate\n\n")
	b.WriteString("    case \"${cmd}\" in\n")

	for _, c := range cmds {
		if len(c.Flags) == 0 && !c.TakesFiles && c.Name != "completion" && c.Name != "help" {
			continue
		}
		fmt.Fprintf(&b, "    %s)\n", c.Name)
		switch c.Name {
		case "completion":
			b.WriteString("        COMPREPLY=( $(compgen -W \"bash zsh fish powershell\" -- \"${cur}\") )\n")
			b.WriteString("        return\n")
			b.WriteString("        ;;\n")
			continue
		case "help":
			fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W %q -- \"${cur}\") )\n", strings.Join(commandNames(cmds), " "))
			b.WriteString("        return\n")
			b.WriteString("        ;;\n")
			continue
		}

		if len(c.Flags) > 0 {
			b.WriteString("        case \"${prev}\" in\n")
			for _, f := range c.Flags {
				pattern := "--" + f.Long
				if f.Short != "" {
					pattern += "|-" + f.Short
				}
				switch f.Type {
				case flagEnum:
					fmt.Fprintf(&b, "        %s)\n            COMPREPLY=( $(compgen -W %q -- \"${cur}\") )\n            return\n            ;;\n",
						pattern, strings.Join(f.Values, " "))
				case flagFile:
					fmt.Fprintf(&b, "        %s)\n            COMPREPLY=( $(compgen -f -X '%s' -- \"${cur}\") )\n            return\n            ;;\n",
						pattern, bashGlobFilter(f.FileGlob))
				case flagDir:
					fmt.Fprintf(&b, "        %s)\n            COMPREPLY=( $(compgen -d -- \"${cur}\") )\n            return\n            ;;\n", pattern)
				case flagString:
					fmt.Fprintf(&b, "        %s)\n            return\n            ;;\n", pattern)
				}
			}
			b.WriteString("        esac\n")
			b.WriteString("        if [[ ${cur} == -* ]]; then\n")
			fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W %q -- \"${cur}\") )\n", strings.Join(flagWords(c.Flags), " "))
			b.WriteString("            return\n")
			b.WriteString("        fi\n")
		}
		if c.TakesFiles {
			fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -f -X '%s' -- \"${cur}\") )\n", bashGlobFilter(c.FilePattern))
		}
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n")
	b.WriteString("shopt -s extglob\n")
	b.WriteString("complete -o filenames -o bashdefault -F _toc2jekyll_completions toc2jekyll\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// zshEscape escapes text for use inside a single-quoted zsh spec.
func zshEscape(s string) string {
	s = strings.ReplaceAll(s, "'", `'\''`)
	s = strings.ReplaceAll(s, "[", `\[`)
	s = strings.ReplaceAll(s, "]", `\]`)
	s = strings.ReplaceAll(s, ":", `\:`)
	return s
}

// zshAction returns the _arguments action for a flag.
func zshAction(f flagDef) string {
	switch f.Type {
	case flagEnum:
		return ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		globs := strings.Split(f.FileGlob, ",")
		return ":" + f.Long + `:_files -g "` + strings.Join(globs, " ") + `"`
	case flagDir:
		return ":" + f.Long + ":_files -/"
	case flagString:
		return ":" + f.Long + ": "
	}
	return ""
}

func generateZsh(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("#compdef toc2jekyll\n\n")
	b.WriteString("_toc2jekyll() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )) && [[ ${words[2]} != -* ]]; then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    local cmd=${words[2]}\n")
	b.WriteString("    [[ ${cmd} == -* ]] && cmd=generate\n\n")
	b.WriteString("    case ${cmd} in\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "    %s)\n", c.Name)
		switch c.Name {
		case "completion":
			b.WriteString("        _arguments '1:shell:(bash zsh fish powershell)'\n")
			b.WriteString("        ;;\n")
			continue
		case "help":
			b.WriteString("        _describe 'command' commands\n")
			b.WriteString("        ;;\n")
			continue
		}
		b.WriteString("        _arguments \\\n")
		for _, f := range c.Flags {
			spec := "--" + f.Long + "[" + zshEscape(f.Desc) + "]" + zshAction(f)
			if f.Short != "" {
				fmt.Fprintf(&b, "            '(-%s --%s)'{-%s,--%s}'[%s]%s' \\\n",
					f.Short, f.Long, f.Short, f.Long, zshEscape(f.Desc), zshAction(f))
				continue
			}
			fmt.Fprintf(&b, "            '%s' \\\n", spec)
		}
		if c.TakesFiles {
			globs := strings.Split(c.FilePattern, ",")
			fmt.Fprintf(&b, "            '*:file:_files -g \"%s\"'\n", strings.Join(globs, " "))
		} else {
			b.WriteString("            '*: :'\n")
		}
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _toc2jekyll toc2jekyll\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// fishEscape escapes text for use inside a single-quoted fish string.
func fishEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "'", `\'`)
}

func generateFish(w io.Writer) error {
	cmds := getCommands()
	names := strings.Join(commandNames(cmds), " ")
	var b strings.Builder

	b.WriteString("# fish completion for toc2jekyll\n\n")
	b.WriteString("function __fish_toc2jekyll_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_toc2jekyll_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    if test (count $cmd) -gt 1\n")
	b.WriteString("        if test $argv[1] = $cmd[2]\n")
	b.WriteString("            return 0\n")
	b.WriteString("        end\n")
	b.WriteString("        if test $argv[1] = generate; and string match -q -- '-*' $cmd[2]\n")
	b.WriteString("            return 0\n")
	b.WriteString("        end\n")
	b.WriteString("    end\n")
	b.WriteString("    return 1\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c toc2jekyll -f\n\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c toc2jekyll -n '__fish_toc2jekyll_needs_command' -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}
	b.WriteString("\n")

	for _, c := range cmds {
		cond := fmt.Sprintf("-n '__fish_toc2jekyll_using_command %s'", c.Name)
		switch c.Name {
		case "completion":
			fmt.Fprintf(&b, "complete -c toc2jekyll %s -a 'bash zsh fish powershell'\n", cond)
			continue
		case "help":
			fmt.Fprintf(&b, "complete -c toc2jekyll %s -a '%s'\n", cond, names)
			continue
		}
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c toc2jekyll %s -l %s", cond, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			switch f.Type {
			case flagEnum:
				line += fmt.Sprintf(" -x -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				line += " -r -F"
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			case flagString:
				line += " -x"
			}
			b.WriteString(line + fmt.Sprintf(" -d '%s'\n", fishEscape(f.Desc)))
		}
		if c.TakesFiles {
			fmt.Fprintf(&b, "complete -c toc2jekyll %s -F\n", cond)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func generatePowerShell(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# PowerShell completion for toc2jekyll\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName toc2jekyll -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	b.WriteString("    $commands = @{\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s' = '%s'\n", c.Name, strings.ReplaceAll(c.Desc, "'", "''"))
	}
	b.WriteString("    }\n")
	b.WriteString("    $flags = @{\n")
	for _, c := range cmds {
		words := flagWords(c.Flags)
		quoted := make([]string, 0, len(words))
		for _, word := range words {
			quoted = append(quoted, "'"+word+"'")
		}
		fmt.Fprintf(&b, "        '%s' = @(%s)\n", c.Name, strings.Join(quoted, ", "))
	}
	b.WriteString("    }\n\n")
	b.WriteString("    $elements = $commandAst.CommandElements | ForEach-Object { $_.ToString() }\n")
	b.WriteString("    if ($elements.Count -le 2 -and -not $wordToComplete.StartsWith('-')) {\n")
	b.WriteString("        $commands.Keys | Where-Object { $_ -like \"$wordToComplete*\" } | Sort-Object | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $commands[$_])\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")
	b.WriteString("    $cmd = if ($elements.Count -gt 1 -and -not $elements[1].StartsWith('-')) { $elements[1] } else { 'generate' }\n")
	b.WriteString("    if ($flags.ContainsKey($cmd)) {\n")
	b.WriteString("        $flags[$cmd] | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterName', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: toc2jekyll completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(toc2jekyll completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(toc2jekyll completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    toc2jekyll completion fish > ~/.config/fish/completions/toc2jekyll.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    toc2jekyll completion powershell | Out-String | Invoke-Expression")
}
