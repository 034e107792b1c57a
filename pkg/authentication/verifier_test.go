// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/chapter-service/internal/kratos"
	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/monitoring"
	"github.com/canonical/chapter-service/internal/tracing"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func TestSharedSecretVerifier(t *testing.T) {
	now := time.Now()

	valid := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "8f14e45f-ceea-467f-a9c2-5f1f1a0a0001",
			Issuer:    "https://project.supabase.co/auth/v1",
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: "somchai@example.com",
		Role:  "authenticated",
	}

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))

	wrongAudience := valid
	wrongAudience.Audience = jwt.ClaimStrings{"anon"}

	noExpiry := valid
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name      string
		secret    string
		claims    Claims
		expectErr bool
	}{
		{name: "valid", secret: testSecret, claims: valid},
		{name: "expired", secret: testSecret, claims: expired, expectErr: true},
		{name: "wrong audience", secret: testSecret, claims: wrongAudience, expectErr: true},
		{name: "no expiry", secret: testSecret, claims: noExpiry, expectErr: true},
		{name: "wrong secret", secret: "another-secret-another-secret-another", claims: valid, expectErr: true},
	}

	v, err := NewSharedSecretVerifier(testSecret, "https://project.supabase.co/auth/v1", "authenticated",
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := MintToken(tt.secret, tt.claims)
			if err != nil {
				t.Fatalf("failed to mint token: %v", err)
			}

			identity, err := v.VerifyToken(context.Background(), token)
			if tt.expectErr {
				if !errors.Is(err, ErrTokenRejected) {
					t.Errorf("expected a rejected token, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if identity.ID != valid.Subject || identity.Email != valid.Email {
				t.Errorf("unexpected identity %+v", identity)
			}
		})
	}
}

func TestSharedSecretVerifierRejectsOtherAlgorithms(t *testing.T) {
	v, err := NewSharedSecretVerifier(testSecret, "", "", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := jwt.RegisteredClaims{Subject: "u1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := v.VerifyToken(context.Background(), token); err == nil {
		t.Error("expected HS512 token to be rejected")
	}
}

func TestNewSharedSecretVerifierRequiresSecret(t *testing.T) {
	if _, err := NewSharedSecretVerifier("", "", "", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()); err == nil {
		t.Error("expected missing secret to be rejected")
	}
}

func TestSessionVerifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := NewMockSessionClientInterface(ctrl)
	v := NewSessionVerifier(mockSessions, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	mockSessions.EXPECT().WhoAmI(gomock.Any(), "ory_st_good").Return(&kratos.Session{IdentityID: "id-1", Email: "a@example.com"}, nil)
	mockSessions.EXPECT().WhoAmI(gomock.Any(), "ory_st_bad").Return(nil, kratos.ErrInvalidSession)
	mockSessions.EXPECT().WhoAmI(gomock.Any(), "ory_st_down").Return(nil, errors.New("failed to resolve session: connection refused"))

	identity, err := v.VerifyToken(context.Background(), "ory_st_good")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.ID != "id-1" || identity.Email != "a@example.com" {
		t.Errorf("unexpected identity %+v", identity)
	}

	if _, err := v.VerifyToken(context.Background(), "ory_st_bad"); !errors.Is(err, kratos.ErrInvalidSession) || !errors.Is(err, ErrTokenRejected) {
		t.Errorf("expected invalid session, got %v", err)
	}

	_, err = v.VerifyToken(context.Background(), "ory_st_down")
	if err == nil || errors.Is(err, ErrTokenRejected) {
		t.Errorf("expected an outage to stay distinct from a rejected token, got %v", err)
	}
}

func TestNewAuthenticator(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		expectErr bool
	}{
		{name: "noop", cfg: Config{Mode: ModeNoop}},
		{name: "jwt", cfg: Config{Mode: ModeJWT, JWTSecret: testSecret}},
		{name: "jwt without secret", cfg: Config{Mode: ModeJWT}, expectErr: true},
		{name: "kratos", cfg: Config{Mode: ModeKratos, KratosPublicURL: "http://kratos:4433"}},
		{name: "kratos without url", cfg: Config{Mode: ModeKratos}, expectErr: true},
		{name: "oidc without issuer", cfg: Config{Mode: ModeOIDC}, expectErr: true},
		{name: "oidc with jwks", cfg: Config{Mode: ModeOIDC, OIDCIssuer: "https://issuer.example.com", OIDCJwksURL: "https://issuer.example.com/jwks"}},
		{name: "unknown", cfg: Config{Mode: "saml"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewAuthenticator(context.Background(), tt.cfg, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
			if tt.expectErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil || v == nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNoopVerifier(t *testing.T) {
	v := NewNoopVerifier()

	identity, err := v.VerifyToken(context.Background(), "dev-user")
	if err != nil || identity.ID != "dev-user" {
		t.Errorf("unexpected result %+v %v", identity, err)
	}

	if _, err := v.VerifyToken(context.Background(), ""); !errors.Is(err, ErrTokenRejected) {
		t.Error("expected empty token to be rejected")
	}
}

func TestKeysUnavailable(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name     string
		ctx      context.Context
		err      error
		expected bool
	}{
		{name: "jwks fetch failed", ctx: context.Background(), err: errors.New("failed to verify signature: fetching keys oidc: get keys failed: 503 Service Unavailable"), expected: true},
		{name: "bad signature", ctx: context.Background(), err: errors.New("failed to verify signature: failed to verify id token signature")},
		{name: "expired", ctx: context.Background(), err: errors.New("oidc: token is expired")},
		{name: "request cancelled", ctx: cancelled, err: errors.New("failed to verify signature"), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keysUnavailable(tt.ctx, tt.err); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
