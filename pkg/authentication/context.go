// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/chapter-service/internal/authorization"
)

// Define private custom types to avoid collisions
type userContextKey struct{}
type emailContextKey struct{}
type authContextKey struct{}

// Identity is what the identity provider vouches for.
type Identity struct {
	ID    string
	Email string
}

// WithUserID returns a new context with the given user ID derived from the parent context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userContextKey{}, userID)
}

// GetUserID retrieves the user ID from the context.
// Returns an empty string and false if the user ID is not present.
func GetUserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userContextKey{}).(string)
	return id, ok
}

func WithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailContextKey{}, email)
}

// GetUserEmail returns the caller's email, empty when the provider did not supply one.
func GetUserEmail(ctx context.Context) string {
	email, _ := ctx.Value(emailContextKey{}).(string)
	return email
}

func WithAuthContext(ctx context.Context, ac *authorization.AuthContext) context.Context {
	return context.WithValue(ctx, authContextKey{}, ac)
}

// GetAuthContext returns the context resolved by the middleware for this request.
func GetAuthContext(ctx context.Context) (*authorization.AuthContext, bool) {
	ac, ok := ctx.Value(authContextKey{}).(*authorization.AuthContext)
	return ac, ok && ac != nil
}

// PrincipalFromContext is the principal services should be called with.
func PrincipalFromContext(ctx context.Context) (authorization.Principal, bool) {
	ac, ok := GetAuthContext(ctx)
	if !ok {
		return authorization.Principal{}, false
	}
	return authorization.ForContext(ac), true
}
