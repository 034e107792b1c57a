// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/monitoring"
	"github.com/canonical/chapter-service/internal/tracing"
	"github.com/canonical/chapter-service/pkg/authentication"
)

func TestMigrateArgs(t *testing.T) {
	tests := []struct {
		args    []string
		wantErr bool
	}{
		{args: nil},
		{args: []string{"up"}},
		{args: []string{"status"}},
		{args: []string{"check"}},
		{args: []string{"down", "3"}},
		{args: []string{"sideways"}, wantErr: true},
		{args: []string{"up", "3"}, wantErr: true},
		{args: []string{"down", "-1"}, wantErr: true},
		{args: []string{"down", "1", "2"}, wantErr: true},
	}

	for _, tt := range tests {
		err := customValidArgs()(&cobra.Command{}, tt.args)
		if tt.wantErr {
			assert.Error(t, err, "%v", tt.args)
		} else {
			assert.NoError(t, err, "%v", tt.args)
		}
	}
}

func TestValidateGrant(t *testing.T) {
	tests := []struct {
		role     string
		tenantID string
		wantErr  bool
	}{
		{role: "super_admin"},
		{role: "super_admin", tenantID: "t1", wantErr: true},
		{role: "chapter_admin", tenantID: "t1"},
		{role: "member", tenantID: "t1"},
		{role: "organizer", wantErr: true},
		{role: "owner", tenantID: "t1", wantErr: true},
	}

	for _, tt := range tests {
		err := validateGrant(tt.role, tt.tenantID)
		if tt.wantErr {
			assert.Error(t, err, tt.role)
		} else {
			assert.NoError(t, err, tt.role)
		}
	}
}

func TestMintTokenVerifies(t *testing.T) {
	mintSecret, mintSubject, mintEmail, mintIssuer, mintAudience, mintTTL = "s3cret", "u2", "u2@example.com", "", "authenticated", time.Hour
	t.Cleanup(func() { mintSecret, mintSubject, mintEmail = "", "", "" })

	token, err := mintToken(time.Now())
	require.NoError(t, err)

	v, err := authentication.NewSharedSecretVerifier("s3cret", "", "authenticated", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	require.NoError(t, err)

	identity, err := v.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "u2", identity.ID)
	assert.Equal(t, "u2@example.com", identity.Email)
}

func TestMintTokenRequiresSecret(t *testing.T) {
	mintSecret, mintSubject = "", "u2"
	t.Cleanup(func() { mintSubject = "" })

	_, err := mintToken(time.Now())
	assert.Error(t, err)
}
