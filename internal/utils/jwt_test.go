package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signTestToken builds a token the way the server would; the secret is
// irrelevant because the client never verifies it.
func signTestToken(t *testing.T, role string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  "u1",
		"role": role,
		"exp":  time.Now().Add(expiresIn).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("server-side-secret"))
	require.NoError(t, err)
	return signed
}

func TestPeekToken_ReadsClaimsWithoutSecret(t *testing.T) {
	tokenString := signTestToken(t, "zonal_admin", time.Hour)

	info, err := PeekToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "u1", info.Subject)
	assert.Equal(t, "zonal_admin", info.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), info.ExpiresAt, 5*time.Second)
}

func TestPeekToken_Malformed(t *testing.T) {
	_, err := PeekToken("not.a.token")
	assert.Error(t, err)

	_, err = PeekToken("")
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	assert.False(t, TokenExpired(signTestToken(t, "soul_winner", time.Hour)))
	assert.True(t, TokenExpired(signTestToken(t, "soul_winner", -time.Hour)))
}

func TestTokenExpired_UnreadableTokenTreatedAsLive(t *testing.T) {
	// The server's 401 handling is the source of truth for garbage tokens.
	assert.False(t, TokenExpired("garbage"))
}
