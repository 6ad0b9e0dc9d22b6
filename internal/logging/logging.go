// Package logging builds charmbracelet loggers from configuration.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-equity/internal/config"
)

const (
	prefix     = "equity"
	timeFormat = "15:04:05"
)

// New returns a logger writing to w at the configured level and format.
func New(cfg config.LogConfig, w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	formatter, err := parseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
		Formatter:       formatter,
	}), nil
}

// Discard returns a logger that drops everything below error level and
// writes the rest nowhere.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func parseFormat(format string) (log.Formatter, error) {
	switch format {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("unknown log format %q", format)
	}
}
