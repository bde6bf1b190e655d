package auth

import (
	"testing"
	"time"

	"addressbook/config"
	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T, secret string) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t, testSecret)

	token, err := svc.GenerateAccessToken("ops@example.com", entity.Roles{entity.RoleCatalogAdmin})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", claims.Subject)
	assert.Equal(t, []string{"catalog_admin"}, claims.Roles)
	assert.Equal(t, "access", claims.Type)
	assert.WithinDuration(t, time.Now().Add(svc.AccessTokenDuration()), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_RejectsMalformedToken(t *testing.T) {
	svc := newTestJWTService(t, testSecret)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	require.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer := newTestJWTService(t, "another_secret_key_that_is_long_enough")
	verifier := newTestJWTService(t, testSecret)

	token, err := issuer.GenerateAccessToken("ops@example.com", entity.Roles{entity.RoleCatalogAdmin})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, testSecret)

	claims := &service.Claims{
		Type: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    accessTokenIssuer,
			Subject:   "ops@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsOtherTokenTypes(t *testing.T) {
	svc := newTestJWTService(t, testSecret)

	claims := &service.Claims{
		Type: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    accessTokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	svc := newTestJWTService(t, testSecret)

	claims := &service.Claims{
		Type: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    accessTokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
