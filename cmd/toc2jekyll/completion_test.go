package main

// Notes:
// - GenerateCompletion: we test that shell scripts are generated with expected
//   content markers. We do not test that the scripts actually work in the
//   target shell (that would require integration tests with actual shells).
// - getCommands: we test the command definitions are complete and that flag
//   metadata is attached.
// These are acceptable gaps: we test observable behavior, not runtime shell behavior.

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGenerateCompletion_SupportedShells - Shell completion script generation
// ---------------------------------------------------------------------------

func TestGenerateCompletion_SupportedShells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		shell        Shell
		wantContains []string
	}{
		{
			name:  "bash",
			shell: ShellBash,
			wantContains: []string{
				"_toc2jekyll_completions",
				"complete -o filenames -o bashdefault -F",
				"compgen",
				"generate",
				"--link-mode)",
				"exists markdown",
				"compgen -d",
			},
		},
		{
			name:  "zsh",
			shell: ShellZsh,
			wantContains: []string{
				"#compdef toc2jekyll",
				"_arguments",
				"_describe",
				"--card-mode",
				"(external internal)",
				"_files -/",
			},
		},
		{
			name:  "fish",
			shell: ShellFish,
			wantContains: []string{
				"complete -c toc2jekyll",
				"__fish_toc2jekyll_needs_command",
				"__fish_toc2jekyll_using_command generate",
				"-l date-keys",
				"-s c",
			},
		},
		{
			name:  "powershell",
			shell: ShellPowerShell,
			wantContains: []string{
				"Register-ArgumentCompleter",
				"-CommandName toc2jekyll",
				"CompletionResult",
				"'--dry-run'",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q) returned error: %v", tt.shell, err)
			}

			output := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(output, want) {
					t.Errorf("output missing expected content %q", want)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGenerateCompletion_UnsupportedShell - Error handling for unknown shells
// ---------------------------------------------------------------------------

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	for _, shell := range []Shell{"", "sh", "tcsh"} {
		var buf bytes.Buffer
		err := GenerateCompletion(&buf, shell)
		if !errors.Is(err, ErrUnsupportedShell) {
			t.Errorf("GenerateCompletion(%q) error = %v, want ErrUnsupportedShell", shell, err)
		}
		if buf.Len() != 0 {
			t.Errorf("GenerateCompletion(%q) wrote output on error", shell)
		}
	}
}

// ---------------------------------------------------------------------------
// TestGetCommands - Command registry
// ---------------------------------------------------------------------------

func TestGetCommands(t *testing.T) {
	t.Parallel()

	cmds := getCommands()
	byName := map[string]commandDef{}
	for _, c := range cmds {
		byName[c.Name] = c
	}

	for _, name := range []string{"generate", "preview", "doctor", "init", "completion", "version", "help"} {
		if _, ok := byName[name]; !ok {
			t.Errorf("command %q missing", name)
		}
	}

	flags := map[string]flagDef{}
	for _, f := range byName["generate"].Flags {
		flags[f.Long] = f
	}

	tests := []struct {
		flag     string
		wantType flagType
	}{
		{"link-mode", flagEnum},
		{"config", flagFile},
		{"templates", flagDir},
		{"dry-run", flagBool},
		{"repo-url", flagString},
	}
	for _, tt := range tests {
		f, ok := flags[tt.flag]
		if !ok {
			t.Errorf("generate flag %q missing", tt.flag)
			continue
		}
		if f.Type != tt.wantType {
			t.Errorf("flag %q type = %v, want %v", tt.flag, f.Type, tt.wantType)
		}
	}
	if flags["config"].Short != "c" {
		t.Errorf("config shorthand = %q, want c", flags["config"].Short)
	}
	if !byName["preview"].TakesFiles {
		t.Error("preview should take files")
	}
}
