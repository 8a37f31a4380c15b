package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Options holds configuration for the application logger.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns the default logger configuration.
func DefaultOptions() Options {
	return Options{
		Level:           log.InfoLevel,
		Formatter:       log.TextFormatter,
		ReportTimestamp: true,
		Prefix:          "tm",
	}
}

// New creates a logger writing to w with the given options.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

// NewFromConfig creates a logger on stderr from string configuration values.
// Diagnostics go to stderr so stdout stays clean for command output.
// TM_DEBUG trumps the configured level.
func NewFromConfig(level, format string) *log.Logger {
	opts := DefaultOptions()
	opts.Level = ParseLevel(level)
	opts.Formatter = ParseFormat(format)
	if DebugEnabled() {
		opts.Level = log.DebugLevel
	}
	return New(os.Stderr, opts)
}

// Nop returns a logger that discards everything. Intended for tests.
func Nop() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// ParseLevel parses a string log level to a charmbracelet/log Level.
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
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormat parses a string formatter name to a charmbracelet/log Formatter.
func ParseFormat(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// KnownLevel reports whether level names a supported log level.
func KnownLevel(level string) bool {
	switch level {
	case "", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	}
	return false
}

// KnownFormat reports whether format names a supported log formatter.
func KnownFormat(format string) bool {
	switch format {
	case "", "text", "json", "logfmt":
		return true
	}
	return false
}
