package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNotJWT = errors.New("token is not a JWT")

// TokenClaims is what the client can read from a bearer token without the
// signing key. It is informational only; the backend remains the authority.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time // zero when the token carries no exp
}

// Expired reports whether the token's exp is at or before now.
func (c *TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// ParseTokenClaims decodes token without verifying its signature.
func ParseTokenClaims(token string) (*TokenClaims, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotJWT, err)
	}

	out := &TokenClaims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
