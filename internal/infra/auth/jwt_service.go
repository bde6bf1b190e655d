// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"addressbook/config"
	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	tokenTypeAccess   = "access"
	defaultAccessTTL  = 12 * time.Hour
	accessTokenIssuer = "addressbook"
)

// ErrInvalidToken is returned for tokens that fail parsing, signature or claim checks.
var ErrInvalidToken = errors.New("invalid token")

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	accessSecret []byte
	accessTTL    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    defaultAccessTTL,
	}, nil
}

// GenerateAccessToken issues an access token carrying the subject's roles.
func (s *jwtService) GenerateAccessToken(subject string, roles entity.Roles) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Roles: roles.ToStrings(),
		Type:  tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    accessTokenIssuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateToken verifies the signature, expiry and type of an access token.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.accessSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(accessTokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	if claims.Type != tokenTypeAccess {
		return nil, errors.Wrapf(ErrInvalidToken, "unexpected token type %q", claims.Type)
	}

	return claims, nil
}

// AccessTokenDuration returns the lifetime of issued access tokens.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}
