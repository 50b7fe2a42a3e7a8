package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	toc2jekyll "github.com/alnah/go-toc2jekyll"
	"github.com/alnah/go-toc2jekyll/internal/config"
	"github.com/alnah/go-toc2jekyll/internal/fileutil"
	"github.com/alnah/go-toc2jekyll/internal/hints"
)

// Doctor statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Git      gitInfo    `json:"git"`
	Config   configInfo `json:"config"`
	Source   sourceInfo `json:"source"`
	Output   outputInfo `json:"output"`
	Env      envInfo    `json:"environment"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// gitInfo holds git detection results.
type gitInfo struct {
	Required bool   `json:"required"` // false when dates.source is "today"
	Found    bool   `json:"found"`
	Path     string `json:"path,omitempty"`
	Version  string `json:"version,omitempty"`
}

// configInfo holds config resolution results.
type configInfo struct {
	Name   string `json:"name,omitempty"`
	Loaded bool   `json:"loaded"`
	Error  string `json:"error,omitempty"`
}

// sourceInfo holds README checks.
type sourceInfo struct {
	Readme string `json:"readme"`
	Found  bool   `json:"found"`
	Items  int    `json:"items"`
}

// outputInfo holds output directory checks.
type outputInfo struct {
	Dir      string `json:"dir"`
	Exists   bool   `json:"exists"`
	Writable bool   `json:"writable"`
}

// envInfo holds platform detection results.
type envInfo struct {
	OS   string `json:"os"`
	Arch string `json:"arch"`
	CI   bool   `json:"ci"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	configName := ""
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; {
		case arg == "--json":
			jsonOutput = true
		case (arg == "-c" || arg == "--config") && i+1 < len(args):
			configName = args[i+1]
			i++
		case strings.HasPrefix(arg, "--config="):
			configName = strings.TrimPrefix(arg, "--config=")
		}
	}

	result := runDoctor(configName)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(configName string) *doctorResult {
	result := &doctorResult{
		Status: statusReady,
		Env: envInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}

	envCfg := loadEnvConfig()
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	cfg := checkConfig(result, configName)
	applyEnvConfig(envCfg, cfg)

	checkGit(result, cfg)
	checkSource(result, cfg)
	checkOutput(result, cfg)
	checkEnvironment(result)

	if len(result.Errors) > 0 {
		result.Status = statusErrors
	} else if len(result.Warnings) > 0 {
		result.Status = statusWarnings
	}
	return result
}

// checkConfig loads the configuration the way generate does. Failures are
// reported and the defaults are used for the remaining checks.
func checkConfig(result *doctorResult, name string) *config.Config {
	result.Config.Name = name
	if name == "" {
		result.Config.Name = defaultConfigName
	}

	cfg, err := loadConfig(name, "")
	if err != nil {
		result.Config.Error = err.Error()
		result.Errors = append(result.Errors, "Config: "+err.Error())
		return config.DefaultConfig()
	}
	result.Config.Loaded = name != "" || fileutil.FileExists(defaultInitPath) || fileutil.FileExists(defaultConfigName+".yml")
	return cfg
}

// checkGit detects git when dates come from git history.
func checkGit(result *doctorResult, cfg *config.Config) {
	result.Git.Required = cfg.Dates.Source != config.DateSourceToday

	bin := cfg.Dates.GitBinary
	if bin == "" {
		bin = "git"
	}
	path, err := hints.LookPath(bin)
	if err != nil {
		if result.Git.Required {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s not found: pages will be dated today (use --no-git to silence)", bin))
		}
		return
	}
	result.Git.Found = true
	result.Git.Path = path

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	out, err := exec.CommandContext(ctx, path, "--version").Output() // #nosec G204 -- resolved from config
	if err == nil {
		result.Git.Version = strings.TrimSpace(string(out))
	} else {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Could not get git version: %v", err))
	}
}

// checkSource verifies the README exists and has a table of contents.
func checkSource(result *doctorResult, cfg *config.Config) {
	readme := cfg.Source.Readme
	if !filepath.IsAbs(readme) {
		readme = filepath.Join(cfg.Source.Root, readme)
	}
	result.Source.Readme = readme

	data, err := os.ReadFile(readme) // #nosec G304 -- path from configuration
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			result.Errors = append(result.Errors, "README not found: "+readme)
		} else {
			result.Errors = append(result.Errors, fmt.Sprintf("README not readable: %v", err))
		}
		return
	}
	result.Source.Found = true
	result.Source.Items = len(toc2jekyll.ParseTOC(string(data)))
	if result.Source.Items == 0 {
		result.Errors = append(result.Errors, `README has no "## Table of Contents" items`)
	}
}

// checkOutput verifies the main page directory can be written.
// A missing directory is fine as long as its nearest existing parent is
// writable.
func checkOutput(result *doctorResult, cfg *config.Config) {
	dir := filepath.Dir(cfg.Output.MainPage)
	result.Output.Dir = dir
	result.Output.Exists = fileutil.DirExists(dir)

	probeDir := dir
	for !fileutil.DirExists(probeDir) {
		parent := filepath.Dir(probeDir)
		if parent == probeDir {
			break
		}
		probeDir = parent
	}

	f, err := os.CreateTemp(probeDir, ".toc2jekyll-doctor-*")
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Output directory not writable: %s", probeDir))
		return
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	result.Output.Writable = true

	if !result.Output.Exists {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Output directory %s will be created", dir))
	}
}

// checkEnvironment detects CI environments.
func checkEnvironment(result *doctorResult) {
	for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"} {
		if os.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "toc2jekyll doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Config")
	switch {
	case r.Config.Error != "":
		fmt.Fprintf(w, "  [ERROR] %s\n", r.Config.Error)
	case r.Config.Loaded:
		fmt.Fprintf(w, "  [OK] Loaded %s\n", r.Config.Name)
	default:
		fmt.Fprintln(w, "  [OK] Using defaults")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Git")
	switch {
	case r.Git.Found:
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Git.Path)
		if r.Git.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Git.Version)
		}
	case r.Git.Required:
		fmt.Fprintln(w, "  [WARN] Not found")
	default:
		fmt.Fprintln(w, "  [OK] Not required (dates.source: today)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Source")
	if r.Source.Found {
		fmt.Fprintf(w, "  [OK] README: %s\n", r.Source.Readme)
		fmt.Fprintf(w, "  [OK] Table of contents: %d top-level items\n", r.Source.Items)
	} else {
		fmt.Fprintf(w, "  [ERROR] README: %s\n", r.Source.Readme)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Output")
	if r.Output.Writable {
		fmt.Fprintf(w, "  [OK] %s: writable\n", r.Output.Dir)
	} else {
		fmt.Fprintf(w, "  [ERROR] %s: not writable\n", r.Output.Dir)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to generate")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
