// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/canonical/chapter-service/internal/kratos"
	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/monitoring"
	"github.com/canonical/chapter-service/internal/tracing"
)

const (
	ModeOIDC   = "oidc"
	ModeJWT    = "jwt"
	ModeKratos = "kratos"
	ModeNoop   = "noop"
)

type Config struct {
	Mode string

	OIDCIssuer        string
	OIDCJwksURL       string
	OIDCRequiredScope string

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	KratosPublicURL string
}

// NewAuthenticator builds the token verifier for the configured identity provider.
func NewAuthenticator(
	ctx context.Context,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	switch cfg.Mode {
	case ModeOIDC:
		return newOIDCAuthenticator(ctx, cfg, tracer, monitor, logger)
	case ModeJWT:
		v, err := NewSharedSecretVerifier(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, tracer, monitor, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Shared secret JWT authentication is enabled")
		return v, nil
	case ModeKratos:
		if cfg.KratosPublicURL == "" {
			return nil, fmt.Errorf("kratos public URL is required for kratos authentication")
		}
		logger.Infof("Kratos session authentication is enabled against %s", cfg.KratosPublicURL)
		client := kratos.NewClient(cfg.KratosPublicURL, tracer, monitor, logger)
		return NewSessionVerifier(client, tracer, monitor, logger), nil
	case ModeNoop:
		logger.Warn("Authentication is disabled, bearer tokens are trusted as user IDs")
		return NewNoopVerifier(), nil
	}

	return nil, fmt.Errorf("unknown authentication mode %q", cfg.Mode)
}

func newOIDCAuthenticator(
	ctx context.Context,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	if cfg.OIDCIssuer == "" {
		return nil, fmt.Errorf("issuer is required for OIDC authentication")
	}

	if cfg.OIDCJwksURL != "" {
		logger.Infof("Using manual JWKS URL: %s", cfg.OIDCJwksURL)
		idTokenVerifier, err := NewVerifierWithJWKS(ctx, cfg.OIDCIssuer, cfg.OIDCJwksURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create JWKS verifier: %w", err)
		}
		return NewOIDCVerifierDirect(idTokenVerifier, cfg.OIDCRequiredScope, tracer, monitor, logger), nil
	}

	logger.Infof("Using OIDC discovery for issuer: %s", cfg.OIDCIssuer)
	provider, err := NewProvider(ctx, cfg.OIDCIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	return NewOIDCVerifier(provider, cfg.OIDCRequiredScope, tracer, monitor, logger), nil
}
