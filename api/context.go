package api

import (
	"context"

	"github.com/jaipongz/site-backend/auth"
)

type keyType string

const adminKey keyType = "admin"

// ctxWithAdmin attaches the authenticated admin's claims to the context
func ctxWithAdmin(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, adminKey, claims)
}

// AdminFromContext retrieves the authenticated admin's claims, if any
func AdminFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(adminKey).(*auth.Claims)
	return claims, ok
}
