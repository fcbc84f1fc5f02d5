// Package logging builds the leveled console logger shared by the CLI and
// the TUI.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Prefix tags every log line.
const Prefix = "flowdo"

const logFileMode = 0o600

// Options configures a logger.
type Options struct {
	Level           log.Level
	ReportTimestamp bool
	Formatter       log.Formatter
}

// DefaultOptions logs warnings and errors as plain text.
func DefaultOptions() Options {
	return Options{
		Level:     log.WarnLevel,
		Formatter: log.TextFormatter,
	}
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          Prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// OpenFile appends logfmt lines with timestamps to path. Used while the TUI
// owns the terminal. The returned closer must be called on exit.
func OpenFile(path string, level log.Level) (*log.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFileMode) //nolint:gosec // path from data dir
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	l := New(f, Options{Level: level, ReportTimestamp: true, Formatter: log.LogfmtFormatter})
	return l, f, nil
}

// ParseLevel maps a level name to a log.Level. Unknown names map to warn.
func ParseLevel(s string) log.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}
