// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/chapter-service/internal/types"
)

type RoleStorageInterface interface {
	ListRoleAssignments(ctx context.Context, userID string) ([]*types.RoleAssignment, error)
	CountTenantAccess(ctx context.Context, userID, tenantID string) (int, error)
	CountSuperAdmin(ctx context.Context, userID string) (int, error)
	CountTenantRoles(ctx context.Context, userID, tenantID string, roles []string) (int, error)
	CreateRoleAssignment(ctx context.Context, ra *types.RoleAssignment) (*types.RoleAssignment, error)
	DeleteRoleAssignment(ctx context.Context, id string, tenantID *string) error
	ListTenantRoleAssignments(ctx context.Context, tenantID string) ([]*types.RoleAssignment, error)
}

type TenantStorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	CreateTenantSettings(ctx context.Context, s *types.TenantSettings) (*types.TenantSettings, error)
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantBySubdomain(ctx context.Context, subdomain string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, id string, fields map[string]any) (*types.Tenant, error)
	DeleteTenant(ctx context.Context, id string) error
	GetTenantSettings(ctx context.Context, tenantID string) (*types.TenantSettings, error)
	UpdateTenantSettings(ctx context.Context, tenantID string, fields map[string]any) (*types.TenantSettings, error)
}

type ParticipantStorageInterface interface {
	ListParticipants(ctx context.Context, tenantID string, filter types.ParticipantFilter) ([]*types.Participant, error)
	GetParticipant(ctx context.Context, tenantID, id string) (*types.Participant, error)
	GetParticipantByLineUserID(ctx context.Context, tenantID, lineUserID string) (*types.Participant, error)
	CreateParticipant(ctx context.Context, p *types.Participant) (*types.Participant, error)
	UpdateParticipant(ctx context.Context, tenantID, id string, fields map[string]any) (*types.Participant, error)
	DeleteParticipant(ctx context.Context, tenantID, id string) error
	CreateCheckIn(ctx context.Context, c *types.CheckIn) (*types.CheckIn, error)
	ListCheckIns(ctx context.Context, tenantID string, meetingDate *time.Time) ([]*types.CheckIn, error)
}

type StorageInterface interface {
	RoleStorageInterface
	TenantStorageInterface
	ParticipantStorageInterface
}
