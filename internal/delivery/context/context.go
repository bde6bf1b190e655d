// Package context carries request-scoped values between the delivery layer and the services.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID holds the request ID in both echo.Context and context.Context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger holds the request-scoped logger in context.Context.
	KeyLogger ContextKey = "logger"

	// KeySubject holds the authenticated token subject in echo.Context.
	KeySubject ContextKey = "subject"

	// KeyRoles holds the authenticated token roles in echo.Context.
	KeyRoles ContextKey = "roles"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request ID stored on c, or "" before the request-id middleware ran.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(KeyRequestID)).(string)

	return id
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when none was attached.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetPrincipal records the authenticated caller on c.
func SetPrincipal(c echo.Context, subject string, roles []string) {
	c.Set(string(KeySubject), subject)
	c.Set(string(KeyRoles), roles)
}

// GetSubject returns the authenticated token subject.
func GetSubject(c echo.Context) (string, bool) {
	subject, ok := c.Get(string(KeySubject)).(string)

	return subject, ok
}

// GetRoles returns the authenticated token roles.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(string(KeyRoles)).([]string)

	return roles, ok
}
