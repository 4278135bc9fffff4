package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type contextKey string

const (
	loggerKey      contextKey = "logger"
	operationIDKey contextKey = "operation_id"
)

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger attached to the context, falling
// back to slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithOperationID stamps the context with a fresh operation ID and
// returns the ID. Every log record written through FromContext after
// this call carries the ID, so multi-file session loads and reloads
// can be correlated.
func WithOperationID(ctx context.Context) (context.Context, string) {
	id := uuid.New().String()
	ctx = context.WithValue(ctx, operationIDKey, id)
	return WithLogger(ctx, FromContext(ctx).With("operation_id", id)), id
}

// OperationID retrieves the operation ID from the context, or "".
func OperationID(ctx context.Context) string {
	if id, ok := ctx.Value(operationIDKey).(string); ok {
		return id
	}
	return ""
}
