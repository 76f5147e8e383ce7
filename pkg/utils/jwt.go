package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "hotel-booking"

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenClaims binds a token to the account it was issued for.
type TokenClaims struct {
	UserID int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for identity that expires after ttl.
func GenerateToken(secret string, ttl time.Duration, identity Identity) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, ErrMissingJWTSecret
	}

	now := time.Now().UTC()
	expiresAt := now.Add(ttl)

	claims := &TokenClaims{
		UserID: identity.UserID,
		Name:   identity.Name,
		Email:  identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(identity.UserID, 10),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// ParseToken verifies signature, algorithm and expiry and returns the claims.
func ParseToken(secret, tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || claims.UserID < 1 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (c *TokenClaims) Identity() Identity {
	return Identity{
		UserID: c.UserID,
		Name:   c.Name,
		Email:  c.Email,
	}
}
