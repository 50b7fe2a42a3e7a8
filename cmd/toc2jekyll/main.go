package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand is returned for an unrecognized command name.
var ErrUnknownCommand = errors.New("unknown command")

func main() {
	// Error ignored: maxprocs.Set only fails on an invalid GOMAXPROCS value,
	// in which case runtime defaults apply.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	env := DefaultEnv()
	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintf(env.Stderr, "warning: %v\n", err)
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, env)
	stop()
	os.Exit(code)
}

// runMain dispatches to a command and returns the process exit code.
// Without a command name, or when the first argument is a flag, it runs
// generate.
func runMain(ctx context.Context, args []string, env *Environment) int {
	rest := args[1:]

	cmd := "generate"
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
		cmd, rest = rest[0], rest[1:]
	} else if len(rest) == 1 && (rest[0] == "-h" || rest[0] == "--help") {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	var err error
	switch cmd {
	case "generate":
		err = runGenerate(ctx, rest, env)
	case "preview":
		err = runPreview(ctx, rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "init":
		err = runInit(rest, env)
	case "completion":
		err = runCompletion(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "go-toc2jekyll %s\n", Version)
	case "help":
		runHelp(rest, env)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		printUsage(env.Stderr)
		return exitCodeFor(err)
	}

	if err != nil {
		if errors.Is(err, errHelpRequested) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// hasVerboseFlag reports whether -v or --verbose appears in args.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}
