package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey struct{}

var requestIDKey ctxKey

// WithRequestID stores the request id for downstream log correlation.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFrom returns the stored request id, empty if none.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// FromCtx returns the global logger annotated with the request id, when one
// is present.
func FromCtx(ctx context.Context) *zap.Logger {
	if id := RequestIDFrom(ctx); id != "" {
		return L().With(zap.String("request_id", id))
	}
	return L()
}

// WithLayer returns a request-scoped logger tagged with the owning layer
// (cart, checkout, backend, payment).
func WithLayer(ctx context.Context, layer string) *zap.Logger {
	return FromCtx(ctx).With(zap.String("layer", layer))
}
