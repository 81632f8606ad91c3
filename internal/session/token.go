package session

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenExpired reports whether a stored JWT is already past its exp claim.
// The signature is not verified here; only the server can do that. This is a
// startup shortcut so an obviously dead token is cleared without a request.
// Tokens that do not parse or carry no exp claim are left for the server to
// judge.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && claims.ExpiresAt.Before(now)
}
