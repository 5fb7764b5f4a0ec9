// Package context carries per-request values between the echo middlewares, the handlers
// and the usecases they call.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	keyRequestID   contextKey = "request_id"
	keyLogger      contextKey = "logger"
	keySession     contextKey = "session"
	keyAccessToken contextKey = "access_token"
)

// HeaderRequestID is read from the caller and echoed back on every response.
const HeaderRequestID = echo.HeaderXRequestID

// SetRequestID stores the request id for the response envelope.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

// RequestID returns the id assigned by the request middleware, or "" outside of it.
func RequestID(c echo.Context) string {
	id, _ := c.Get(string(keyRequestID)).(string)

	return id
}

// WithRequest attaches the request id and the logger tagged with it to ctx so usecases
// log under the same id.
func WithRequest(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, keyRequestID, requestID)

	return context.WithValue(ctx, keyLogger, logger)
}

// Logger returns the request logger attached by WithRequest, or fallback.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
