// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"log/slog"
)

// NewLogger returns the diagnostics logger written to dst (normally stderr).
// quiet keeps errors only; verbose enables debug records such as progress.
func NewLogger(dst io.Writer, quiet, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(dst, &slog.HandlerOptions{Level: level}))
}

// Warnf logs a formatted warning.
func Warnf(log *slog.Logger, format string, a ...any) {
	log.Warn(fmt.Sprintf(format, a...))
}
