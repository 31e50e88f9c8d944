package logging

import (
	"io"
	"log/slog"
	"os"
)

// NewJSONHandler returns the JSON handler used for process output.
func NewJSONHandler(w io.Writer) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
}

// Setup initializes the global slog logger with JSON output to stdout.
func Setup() {
	slog.SetDefault(slog.New(NewJSONHandler(os.Stdout)))
}

// Attach keeps stdout output and also sends records to extra.
func Attach(extra ...slog.Handler) {
	handlers := append([]slog.Handler{NewJSONHandler(os.Stdout)}, extra...)
	slog.SetDefault(slog.New(NewMultiHandler(handlers...)))
}
