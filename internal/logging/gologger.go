package logging

import (
	"fmt"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

// Formats accepted by NewGoLogger.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
	FormatPretty  = "pretty"
)

// GoLogger adapts a go-logger child logger to the Debug/Info/Warn/Error
// method set used by the generator.
type GoLogger struct {
	inner glog.Logger
}

// NewGoLogger builds a go-logger backed logger named "toc2jekyll".
// format is json, console or pretty; level is trace, debug, info, warn or error.
func NewGoLogger(format, level string) (*GoLogger, error) {
	options := []glog.Option{}

	if lvl := normalizeLevel(level); lvl != "" {
		options = append(options, glog.WithLevel(lvl))
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON:
		options = append(options, glog.WithLoggerTypeJSON())
	case FormatConsole:
		options = append(options, glog.WithLoggerTypeConsole())
	case FormatPretty:
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("logging: unsupported format %q", format)
	}

	root := glog.NewLogger(options...)
	return &GoLogger{inner: root.GetLogger("toc2jekyll")}, nil
}

// Debug logs diagnostic detail.
func (l *GoLogger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }

// Info logs progress.
func (l *GoLogger) Info(msg string, args ...any) { l.inner.Info(msg, args...) }

// Warn logs a recoverable condition.
func (l *GoLogger) Warn(msg string, args ...any) { l.inner.Warn(msg, args...) }

// Error logs a failure.
func (l *GoLogger) Error(msg string, args ...any) { l.inner.Error(msg, args...) }

// IsStructuredFormat reports whether format selects go-logger output
// rather than the plain console.
func IsStructuredFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON, FormatConsole, FormatPretty:
		return true
	}
	return false
}

func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	default:
		return ""
	}
}
