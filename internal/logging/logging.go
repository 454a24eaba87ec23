// ABOUTME: Structured logger construction
// ABOUTME: Builds the slog logger the importer reports through
package logging

import (
	"io"
	"log/slog"
)

// New returns a text-handler slog logger writing to w. Verbose enables
// run progress and per-file debug records; the default keeps successful
// runs quiet.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
