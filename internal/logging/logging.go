// ABOUTME: File-backed debug logger for the CLI and TUI
// ABOUTME: Writes structured zerolog output without touching the terminal

package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Setup opens the debug log in configDir and returns a logger writing to it.
// When disabled (or when no config dir resolves) the logger discards
// everything, so callers never need to branch on logging being available.
// The returned closer is nil when nothing was opened.
func Setup(configDir, level string, enabled bool) (zerolog.Logger, io.Closer) {
	if !enabled || configDir == "" {
		return zerolog.New(io.Discard), nil
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return zerolog.New(io.Discard), nil
	}

	logPath := filepath.Join(configDir, "debug.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return zerolog.New(io.Discard), nil
	}

	logger := zerolog.New(f).Level(parseLevel(level)).With().Timestamp().Logger()
	return logger, f
}

// parseLevel converts a string log level to a zerolog.Level.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
