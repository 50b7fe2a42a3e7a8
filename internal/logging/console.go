// Package logging provides the loggers behind the CLI: a console writer for
// human progress lines and an adapter over go-logger for structured logs.
package logging

import (
	"io"
	"sync"
)

// Console prints one plain line per message to an io.Writer, the way the
// CLI reports progress. Key/value fields are not printed; with a detail
// logger attached they are forwarded to it as structured records.
type Console struct {
	mu      sync.Mutex
	out     io.Writer
	quiet   bool
	verbose bool
	detail  *GoLogger
}

// ConsoleOptions configures NewConsole.
type ConsoleOptions struct {
	Quiet   bool      // only errors are printed
	Verbose bool      // debug messages reach the detail logger
	Detail  *GoLogger // receives debug messages and key/value fields; may be nil
}

// NewConsole returns a Console writing to out.
func NewConsole(out io.Writer, opts ConsoleOptions) *Console {
	return &Console{out: out, quiet: opts.Quiet, verbose: opts.Verbose, detail: opts.Detail}
}

// Debug sends diagnostic detail to the detail logger in verbose mode.
func (c *Console) Debug(msg string, args ...any) {
	if c == nil || !c.verbose || c.detail == nil {
		return
	}
	c.detail.Debug(msg, args...)
}

// Info prints progress unless quiet.
func (c *Console) Info(msg string, args ...any) {
	if c == nil || c.quiet {
		return
	}
	c.println("", msg)
	c.forward(c.detailInfo, msg, args)
}

// Warn prints a skipped item or other recoverable condition unless quiet.
func (c *Console) Warn(msg string, args ...any) {
	if c == nil || c.quiet {
		return
	}
	c.println("  ⚠ ", msg)
	c.forward(c.detailWarn, msg, args)
}

// Error prints a failure.
func (c *Console) Error(msg string, args ...any) {
	if c == nil {
		return
	}
	c.println("error: ", msg)
	c.forward(c.detailError, msg, args)
}

func (c *Console) println(prefix, msg string) {
	if c.out == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(c.out, prefix+msg+"\n")
}

func (c *Console) forward(log func(string, ...any), msg string, args []any) {
	if c.detail == nil || len(args) == 0 {
		return
	}
	log(msg, args...)
}

func (c *Console) detailInfo(msg string, args ...any)  { c.detail.Info(msg, args...) }
func (c *Console) detailWarn(msg string, args ...any)  { c.detail.Warn(msg, args...) }
func (c *Console) detailError(msg string, args ...any) { c.detail.Error(msg, args...) }
