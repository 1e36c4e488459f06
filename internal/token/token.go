// Package token issues and verifies the signed bearer tokens that gate
// mutating routes. Verification is a pure function of the token, the signing
// secret, and the clock; there is no revocation list.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"casetrack/pkg/domainerrors"
)

// DefaultTTL matches the login token lifetime: 24 hours from issuance.
const DefaultTTL = 24 * time.Hour

// Claims carried by an issued token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Service signs and verifies tokens with a process-wide secret.
type Service struct {
	signingKey []byte
	ttl        time.Duration
}

// NewService fails on an empty signing key; that is a configuration error and
// fatal at startup, never per-request.
func NewService(signingKey string, ttl time.Duration) (*Service, error) {
	if signingKey == "" {
		return nil, errors.New("token: signing key must not be empty")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{signingKey: []byte(signingKey), ttl: ttl}, nil
}

// Issue signs a token carrying the role claim, expiring after the service TTL.
func (s *Service) Issue(role string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	return t.SignedString(s.signingKey)
}

// Verify parses and validates a token string. Expired, tampered, and malformed
// tokens all collapse into one "invalid token" error so callers cannot probe
// verification internals.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domainerrors.New(domainerrors.CodeForbidden, "invalid token")
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, domainerrors.New(domainerrors.CodeForbidden, "invalid token")
	}
	return claims, nil
}
