package util

import (
	"log/slog"
	"os"
)

var Logger *slog.Logger

func InitLogger() {
	InitLoggerWithLevel("info")
}

// InitLoggerWithLevel installs a JSON logger on stdout as the slog default.
func InitLoggerWithLevel(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: lvl,
	})
	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

func GetLogger() *slog.Logger {
	if Logger == nil {
		InitLogger()
	}
	return Logger
}
