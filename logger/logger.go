package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

var globalLogger = slog.Default()

// Config holds logger configuration.
type Config struct {
	Level  string // "debug" | "info" | "warn" | "error"
	Format string // "json" or "text"
}

// Init initializes the structured logger and installs it as the slog
// default. Output always goes to stdout; the process runs in a
// container and log collection is the platform's job.
func Init(config Config) {
	var level slog.Level
	switch strings.ToLower(config.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(config.Format) == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

// WithFields returns a logger with additional fields.
func WithFields(fields ...any) *slog.Logger {
	return globalLogger.With(fields...)
}

func Debug(msg string, args ...any) {
	globalLogger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	globalLogger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	globalLogger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	globalLogger.Error(msg, args...)
}

func Infof(format string, args ...any) {
	globalLogger.Info(fmt.Sprintf(format, args...))
}

func Errorf(format string, args ...any) {
	globalLogger.Error(fmt.Sprintf(format, args...))
}

// Fatalf logs an error message and exits.
func Fatalf(format string, args ...any) {
	globalLogger.Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}
