package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger = slog.Default()

// Init configures the process-wide logger. Development gets human-readable
// text at debug level, everything else JSON at info level.
func Init(environment string) {
	var handler slog.Handler
	if environment == "development" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

func Debug(msg string, args ...any) {
	log.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	log.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	log.Error(msg, args...)
}

// Fatal logs at error level and exits.
func Fatal(msg string, args ...any) {
	log.Error(msg, args...)
	os.Exit(1)
}
