package cmdutil

import (
	"context"
	"log/slog"

	"localign/internal/engine"
)

// ProgressLogger adapts the engine's matrix-fill observer to debug records.
// It returns nil when debug logging is off so the engine skips reporting.
func ProgressLogger(log *slog.Logger, pair string) engine.ProgressFunc {
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		return nil
	}
	return func(done float64) {
		log.Debug("matrix fill", slog.String("pair", pair), slog.Int("percent", int(done*100)))
	}
}
