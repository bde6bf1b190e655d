package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"addressbook/internal/delivery/api/response"
	deliverycontext "addressbook/internal/delivery/context"
	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware guards catalog write routes with access tokens.
// Without a token service every request passes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware. tokenSvc may be nil.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	if tokenSvc == nil {
		logger.Warn("No access secret configured, catalog write routes are unauthenticated")
	}

	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Enabled reports whether requests are checked at all.
func (m *AuthMiddleware) Enabled() bool {
	return m.tokenSvc != nil
}

// Authenticate validates the bearer access token and records the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.Enabled() {
			return next(c)
		}

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "AUTH_HEADER_MISSING", "Authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || tokenString == "" {
			return response.Unauthorized(c, "AUTH_HEADER_INVALID", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		deliverycontext.SetPrincipal(c, claims.Subject, claims.Roles)

		return next(c)
	}
}

// RequireRole checks that the authenticated caller holds role.
// It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !m.Enabled() {
				return next(c)
			}

			roles, ok := deliverycontext.GetRoles(c)
			if !ok || !slices.Contains(roles, role.String()) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+role.String()+"' role")
			}

			return next(c)
		}
	}
}
