package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestGenerateAndParseToken(t *testing.T) {
	identity := Identity{UserID: 42, Name: "Alice", Email: "alice@example.com"}

	token, expiresAt, err := GenerateToken(testSecret, 7*24*time.Hour, identity)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), expiresAt, time.Minute)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, identity, claims.Identity())
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, "42", claims.Subject)
}

func TestParseToken_Rejects(t *testing.T) {
	identity := Identity{UserID: 42, Name: "Alice", Email: "alice@example.com"}

	valid, _, err := GenerateToken(testSecret, time.Hour, identity)
	require.NoError(t, err)

	expired, _, err := GenerateToken(testSecret, -time.Hour, identity)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &TokenClaims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret string
		token  string
	}{
		{"wrong secret", "other-secret", valid},
		{"expired", testSecret, expired},
		{"alg none", testSecret, unsigned},
		{"garbage", testSecret, "not-a-token"},
		{"empty", testSecret, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.secret, tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestGenerateToken_MissingSecret(t *testing.T) {
	_, _, err := GenerateToken("", time.Hour, Identity{UserID: 1})
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}
