package main

import (
	"fmt"

	"github.com/alnah/go-toc2jekyll/internal/config"
)

// defaultInitPath is where init writes when no path is given. generate
// picks it up without --config.
const defaultInitPath = defaultConfigName + ".yaml"

// runInit writes a starter configuration file.
func runInit(args []string, env *Environment) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: init takes at most one path", ErrUsage)
	}

	path := defaultInitPath
	if len(args) == 1 {
		path = args[0]
	}

	if err := config.WriteDefault(path); err != nil {
		return err
	}
	fmt.Fprintf(env.Stdout, "Wrote %s\n", path)
	fmt.Fprintln(env.Stdout, "Set source.repoURL, then run 'toc2jekyll generate'.")
	return nil
}
