// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/monitoring"
	"github.com/canonical/chapter-service/internal/tracing"
)

// Claims are the claims of an HS256 access token as issued by Supabase GoTrue.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// SharedSecretVerifier validates HS256 tokens signed with a shared secret.
type SharedSecretVerifier struct {
	secret []byte
	opts   []jwt.ParserOption

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *SharedSecretVerifier) VerifyToken(ctx context.Context, rawToken string) (*Identity, error) {
	_, span := v.tracer.Start(ctx, "authentication.SharedSecretVerifier.VerifyToken")
	defer span.End()

	claims := new(Claims)
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, v.opts...)
	if err != nil {
		return nil, rejected(fmt.Errorf("token validation failed: %w", err))
	}

	if !token.Valid {
		return nil, rejected(errors.New("invalid token"))
	}

	if claims.Subject == "" {
		return nil, rejected(errors.New("token has no subject"))
	}

	return &Identity{ID: claims.Subject, Email: claims.Email}, nil
}

func NewSharedSecretVerifier(
	secret, issuer, audience string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*SharedSecretVerifier, error) {
	if secret == "" {
		return nil, errors.New("JWT secret is required")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}

	return &SharedSecretVerifier{
		secret:  []byte(secret),
		opts:    opts,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}, nil
}

// MintToken signs an HS256 token for subject, used for local development and tests.
func MintToken(secret string, claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
