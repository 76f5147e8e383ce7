package utils

import (
	"context"
)

type contextKey string

const IdentityKey contextKey = "identity"

// Identity is the verified caller, taken from a signed token.
type Identity struct {
	UserID int64
	Name   string
	Email  string
}

func SetIdentityContext(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	val := ctx.Value(IdentityKey)
	if val == nil {
		return Identity{}, false
	}

	identity, ok := val.(Identity)
	if !ok || identity.UserID < 1 {
		return Identity{}, false
	}

	return identity, true
}
