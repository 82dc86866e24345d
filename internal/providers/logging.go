package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/wowp-data-service/internal/logging"
)

// logUpstream tags an upstream log entry with the provider, the operation and,
// for provider errors, the failure kind. A nil logger drops the entry.
func logUpstream(ctx context.Context, logger *slog.Logger, level slog.Level, provider, op string, err error, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args,
		slog.String(logging.FieldProvider, provider),
		slog.String(logging.FieldOperation, op),
	)
	if err != nil {
		args = append(args, "error", err)
		if kind := KindOf(err); kind != "" {
			args = append(args, slog.String(logging.FieldErrorKind, string(kind)))
		}
	}
	logger.Log(ctx, level, msg, args...)
}
