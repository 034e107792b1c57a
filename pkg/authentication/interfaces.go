// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/chapter-service/internal/authorization"
	"github.com/canonical/chapter-service/internal/kratos"
)

type ProviderInterface interface {
	// Verifier returns the token verifier associated with the specified OIDC issuer
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

type TokenVerifierInterface interface {
	// VerifyToken checks a raw bearer token with the identity provider
	// and returns the identity it was issued to.
	VerifyToken(ctx context.Context, rawToken string) (*Identity, error)
}

type AuthContextResolverInterface interface {
	GetAuthContext(ctx context.Context, userID string) (*authorization.AuthContext, error)
}

type SessionClientInterface interface {
	WhoAmI(ctx context.Context, sessionToken string) (*kratos.Session, error)
}
