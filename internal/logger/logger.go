// Package logger configures the process-wide slog logger from a level name.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// New creates a text logger writing to w at the supplied level.  An unknown
// level falls back to INFO; the returned error describes the fallback and the
// logger is still usable.
func New(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler), err
}

// Init creates a logger and installs it as the slog default.
func Init(w io.Writer, level string) *slog.Logger {
	l, err := New(w, level)
	slog.SetDefault(l)
	if err != nil {
		l.Warn(err.Error())
	}
	return l
}

// ParseLevel converts DEBUG/INFO/WARN/ERROR (case-insensitive) to slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO", "":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q, using INFO", level)
	}
}
