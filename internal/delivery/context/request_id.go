// Package context carries the request id and request-scoped logger from the HTTP edge
// down to the route services and the pedestrian routing client.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

const (
	// HeaderXRequestID is echoed on every response and forwarded to the routing upstream.
	HeaderXRequestID = echo.HeaderXRequestID

	echoRequestIDKey = "request_id"
)

// GetRequestID returns the id stored by the request-id middleware, or a fresh one
// for handlers reached without it, such as handler tests.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// Bind stores the request id and logger on both the echo context and the request's
// context.Context, so the envelope and the services see the same id.
func Bind(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(echoRequestIDKey, requestID)

	ctx := context.WithValue(c.Request().Context(), requestIDKey, requestID)
	ctx = context.WithValue(ctx, loggerKey, logger)
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetRequestIDFromContext returns the request id bound to ctx, or "" outside a request.
// context.WithoutCancel keeps it, so detached enrichment still reports it.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// GetLoggerOrDefault returns the request-scoped logger bound to ctx, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
