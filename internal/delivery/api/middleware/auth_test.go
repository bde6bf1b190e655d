package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "addressbook/internal/delivery/context"
	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/service"
	mockservice "addressbook/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serveGuarded(m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/addresses", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.Authenticate(m.RequireRole(entity.RoleCatalogAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}))
	_ = handler(c)

	return rec, c
}

func TestAuthMiddleware_Disabled(t *testing.T) {
	m := NewAuthMiddleware(nil, newDiscardLogger())

	rec, _ := serveGuarded(m, "")

	assert.False(t, m.Enabled())
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(tokens *mockservice.MockTokenService)
		wantStatus int
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer broken",
			setup: func(tokens *mockservice.MockTokenService) {
				tokens.EXPECT().ValidateToken("broken").Return(nil, assert.AnError).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "reader role is forbidden",
			header: "Bearer reader",
			setup: func(tokens *mockservice.MockTokenService) {
				tokens.EXPECT().ValidateToken("reader").Return(&service.Claims{
					Roles:            []string{entity.RoleCatalogReader.String()},
					RegisteredClaims: jwt.RegisteredClaims{Subject: "ops"},
				}, nil).Once()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "admin passes",
			header: "Bearer admin",
			setup: func(tokens *mockservice.MockTokenService) {
				tokens.EXPECT().ValidateToken("admin").Return(&service.Claims{
					Roles:            []string{entity.RoleCatalogAdmin.String()},
					RegisteredClaims: jwt.RegisteredClaims{Subject: "ops"},
				}, nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockservice.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}
			m := NewAuthMiddleware(tokens, newDiscardLogger())

			rec, c := serveGuarded(m, tt.header)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNoContent {
				subject, ok := deliverycontext.GetSubject(c)
				require.True(t, ok)
				assert.Equal(t, "ops", subject)
			}
		})
	}
}
