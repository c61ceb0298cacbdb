package logging

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w at the given level, tagged with the
// process name.
func New(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler).With("process", "gobounds")
}

// Setup installs New(w, level) as the default logger and returns it
func Setup(w io.Writer, level slog.Level) *slog.Logger {
	logger := New(w, level)
	slog.SetDefault(logger)
	return logger
}
