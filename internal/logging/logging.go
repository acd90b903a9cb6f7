// Package logging configures the charmbracelet/log logger used by the CLI.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Options holds logger configuration.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns info-level text logging without timestamps.
func DefaultOptions() Options {
	return Options{
		Level:     log.InfoLevel,
		Formatter: log.TextFormatter,
		Prefix:    "roadmap",
	}
}

// New creates a logger writing to w from string configuration values.
func New(w io.Writer, level, format string) *log.Logger {
	opts := DefaultOptions()
	opts.Level = ParseLevel(level)
	opts.Formatter = ParseFormatter(format)
	return NewWithOptions(w, opts)
}

// NewWithOptions creates a logger writing to w.
func NewWithOptions(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

// ParseLevel parses a level name. Unknown names yield info.
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormatter parses a formatter name. Unknown names yield text.
func ParseFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// Install makes logger the package-level default used by library code.
func Install(logger *log.Logger) {
	log.SetDefault(logger)
}
