// Package log is the process-wide diagnostic logger. It writes to stderr so
// that stdout carries only the session's user-facing output.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevel represents the logging level.
type LogLevel string

const (
	LevelError LogLevel = "error"
	LevelWarn  LogLevel = "warn"
	LevelInfo  LogLevel = "info"
	LevelDebug LogLevel = "debug"
)

var (
	logger *slog.Logger
	level  = new(slog.LevelVar)
)

func init() {
	level.Set(slog.LevelWarn)
	SetOutput(os.Stderr)
}

// ParseLevel converts a string to LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	l := LogLevel(strings.ToLower(strings.TrimSpace(s)))
	switch l {
	case LevelError, LevelWarn, LevelInfo, LevelDebug:
		return l, nil
	default:
		return "", fmt.Errorf("invalid log level: %q", s)
	}
}

// SetLevel configures the logging level.
func SetLevel(l LogLevel) error {
	switch l {
	case LevelError:
		level.Set(slog.LevelError)
	case LevelWarn:
		level.Set(slog.LevelWarn)
	case LevelInfo:
		level.Set(slog.LevelInfo)
	case LevelDebug:
		level.Set(slog.LevelDebug)
	default:
		return fmt.Errorf("invalid log level: %q", l)
	}
	return nil
}

// SetOutput redirects log output, keeping the current level.
func SetOutput(w io.Writer) {
	logger = slog.New(NewHandler(w, level))
}

// Logger returns the underlying slog logger.
func Logger() *slog.Logger { return logger }

// Error logs an error message.
func Error(msg string, args ...any) { logger.Error(msg, args...) }

// Warn logs a warning message.
func Warn(msg string, args ...any) { logger.Warn(msg, args...) }

// Info logs an info message.
func Info(msg string, args ...any) { logger.Info(msg, args...) }

// Debug logs a debug message.
func Debug(msg string, args ...any) { logger.Debug(msg, args...) }
