// Package context carries request-scoped values from the HTTP layer down to
// the marketplace use cases. The request-id middleware stores an id and a
// logger tagged with it; services pick the logger up so a failed order,
// upload or decision can be traced back from the X-Request-Id a client quotes.
package context

import (
	"context"
	"log/slog"
)

// ctxKey keys the values this package stores on a context.
type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// HeaderXRequestID is read from the request and echoed on every response.
const HeaderXRequestID = "X-Request-Id"

// WithRequestID returns a context carrying the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID returns the request id set by the middleware, or "" outside a
// request (tests, startup).
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithLogger returns a context carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// Logger returns the request-scoped logger when one is present, so service
// log lines line up with the request id. Otherwise it returns the fallback.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
