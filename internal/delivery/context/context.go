// Package context carries request-scoped values between the transport and
// the usecases: the request id, the request logger and the card being synced.
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
	KeyCardID    ContextKey = "card_id"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request id stored by the request id middleware,
// falling back to the request context and then to a fresh UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request id, or "" when none was set.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithCard scopes ctx to one card: the id is stored and the logger, the
// request logger or fallback, gains a card_id attribute.
func WithCard(ctx context.Context, cardID uuid.UUID, fallback *slog.Logger) context.Context {
	if current, ok := ctx.Value(KeyCardID).(uuid.UUID); ok && current == cardID {
		return ctx
	}

	logger := GetLoggerOrDefault(ctx, fallback).With(slog.String("card_id", cardID.String()))
	ctx = context.WithValue(ctx, KeyCardID, cardID)

	return WithLogger(ctx, logger)
}

// GetCardID returns the card ctx is scoped to, or uuid.Nil.
func GetCardID(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(KeyCardID).(uuid.UUID); ok {
		return id
	}

	return uuid.Nil
}
