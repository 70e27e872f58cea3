// Package token decodes access tokens issued by the InternHub backend.
//
// The client never verifies signatures: it holds no signing key, and the
// backend re-validates every token anyway. Decoded claims are used only
// for local expiry checks and for display (who am I, role hint).
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed indicates the token could not be decoded at all.
var ErrMalformed = errors.New("malformed token")

// Claims is the subset of access-token claims the client cares about.
// Role is a hint only; the backend profile is the authority on roles.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"user_id"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
}

var parser = jwt.NewParser()

// Decode extracts claims from tokenString without signature
// verification. Malformed input yields ErrMalformed, never a panic.
func Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return claims, nil
}

// IsExpired reports whether the token's expiry is in the past.
// Fail-closed: malformed tokens and tokens without an exp claim count
// as expired.
func IsExpired(tokenString string) bool {
	claims, err := Decode(tokenString)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return claims.ExpiresAt.Before(time.Now())
}
