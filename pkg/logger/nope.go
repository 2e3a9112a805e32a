package logger

import (
	"io"
	"log/slog"
)

// NewNope returns a logger that discards everything.
// App and the server runtime fall back to it when no logger is configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
