// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtInspector reads claims of the bearer tokens issued by the remote API.
// The signing key stays on the server, so signatures are not verified here.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.TokenInspector {
	return &jwtInspector{parser: jwt.NewParser()}
}

// ExpiresAt returns the exp claim of the token.
func (i *jwtInspector) ExpiresAt(tokenString string) (time.Time, bool, error) {
	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, false, errors.Wrap(err, "failed to parse token")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, false, errors.Wrap(err, "invalid exp claim")
	}
	if exp == nil {
		return time.Time{}, false, nil
	}

	return exp.Time, true, nil
}
