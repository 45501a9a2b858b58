// Package context carries the request ID and the request-scoped logger
// through echo and standard contexts.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"

	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request ID stored on c, or a fresh UUID when the
// RequestID middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no request ID.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns nil when ctx carries no logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithRequestScope stores requestID on ctx together with a child of base that
// logs it. HTTP requests and queued mail jobs both enter through here.
func WithRequestScope(ctx context.Context, base *slog.Logger, requestID string) (context.Context, *slog.Logger) {
	logger := base.With(slog.String("request_id", requestID))

	return WithLogger(WithRequestID(ctx, requestID), logger), logger
}

// WithLogAttrs adds attrs to the request-scoped logger. ctx is returned
// unchanged when it has no logger.
func WithLogAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	logger := GetLogger(ctx)
	if logger == nil || len(attrs) == 0 {
		return ctx
	}

	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}

	return WithLogger(ctx, logger.With(args...))
}
