// Package context carries per-request values from the echo middleware down to
// the usecases: the request id, the caller and a logger already tagged with both.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is echoed back on every response and forwarded on published events.
const HeaderXRequestID = "X-Request-Id"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	userIDKey
	loggerKey
)

// echo.Context key mirrored for handlers that only hold the echo context.
const echoRequestIDKey = "request_id"

// RequestID returns the id the request-id middleware assigned, or "" outside a request.
func RequestID(c echo.Context) string {
	id, _ := c.Get(echoRequestIDKey).(string)

	return id
}

// SetRequestID stores id on the echo context and on the request's context.Context.
func SetRequestID(c echo.Context, id string) {
	c.Set(echoRequestIDKey, id)
	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), id)))
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated caller, if any.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// Logger returns the request-scoped logger, or fallback when the context has none.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// BindCaller records the authenticated user on the request and tags the request logger with it.
func BindCaller(c echo.Context, userID uuid.UUID) {
	ctx := WithUserID(c.Request().Context(), userID)
	if logger := Logger(ctx, nil); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", userID.String())))
	}
	c.SetRequest(c.Request().WithContext(ctx))
}
