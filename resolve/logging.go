package resolve

import (
	"context"
	"log/slog"
)

// debug emits a debug-level record through logger if one was configured.
// logger is always allowed to be nil — per SPEC_FULL.md's ambient-stack
// section, this library never forces a logging dependency on a caller —
// mirroring the nil-checked *slog.Logger fields in jroosing-HydraDNS's
// internal/server package.
func debug(ctx context.Context, logger *slog.Logger, msg string, args ...any) {
	if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	logger.DebugContext(ctx, msg, args...)
}
