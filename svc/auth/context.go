package auth

import (
	"context"

	authstore "github.com/dmitrymomot/onboarding/pkg/auth"
)

type userContextKey struct{}

// WithUser stores the identified user for handlers behind RequireAuth.
func WithUser(ctx context.Context, user *authstore.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext returns nil when no user was stored.
func UserFromContext(ctx context.Context) *authstore.User {
	user, _ := ctx.Value(userContextKey{}).(*authstore.User)
	return user
}
