package logging

import (
	"log/slog"
	"os"
)

// Setup installs a JSON logger writing to stdout and returns its handler
// so the caller can fan it out together with the database sink once the
// database connection exists.
func Setup() slog.Handler {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(h))
	return h
}
