// Package logging builds the application logger. The TUI owns stdout, so all
// diagnostics go to stderr (or a file when configured).
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns a text logger writing to stderr at the given level.
func New(level slog.Level) *slog.Logger {
	return NewWriter(os.Stderr, level)
}

// NewWriter returns a text logger writing to w at the given level.
func NewWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
