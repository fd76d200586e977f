package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what the client can read out of its own bearer token. The
// signature is NOT verified: the client has no signing secret and never
// trusts these values for authorization; they feed display (token expiry on
// the profile screen) and an early "session expired" log line only.
type TokenInfo struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

type bearerClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// PeekToken decodes the token's claims without verifying the signature.
func PeekToken(tokenString string) (*TokenInfo, error) {
	claims := &bearerClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}

	info := &TokenInfo{Role: claims.Role}
	if claims.Subject != "" {
		info.Subject = claims.Subject
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}

// TokenExpired reports whether the token carries an expiry in the past.
// Tokens without a readable expiry are treated as live; the server's 401
// remains the source of truth either way.
func TokenExpired(tokenString string) bool {
	info, err := PeekToken(tokenString)
	if err != nil || info.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().After(info.ExpiresAt)
}
