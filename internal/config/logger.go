package config

import (
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// NewLogger builds the structured logger described by the logging section
func (c *AppConfig) NewLogger(w io.Writer, debug bool) *pterm.Logger {
	logger := pterm.DefaultLogger.WithWriter(w).WithLevel(ParseLevel(c.Logging.Level))
	if debug {
		logger = logger.WithLevel(pterm.LogLevelDebug).WithCaller()
	}
	if strings.EqualFold(c.Logging.Format, "json") {
		logger = logger.WithFormatter(pterm.LogFormatterJSON)
	}
	return logger
}

// ParseLevel maps a level name to a pterm log level, defaulting to warn
func ParseLevel(level string) pterm.LogLevel {
	switch strings.ToLower(level) {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "info":
		return pterm.LogLevelInfo
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelWarn
	}
}
