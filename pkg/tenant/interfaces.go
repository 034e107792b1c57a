// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/canonical/chapter-service/internal/authorization"
	"github.com/canonical/chapter-service/internal/types"
)

type ServiceInterface interface {
	CreateTenant(ctx context.Context, p authorization.Principal, in CreateTenantInput) (*types.Tenant, error)
	ListTenants(ctx context.Context, p authorization.Principal) ([]*types.Tenant, error)
	GetTenant(ctx context.Context, p authorization.Principal, tenantID string) (*types.Tenant, error)
	UpdateTenant(ctx context.Context, p authorization.Principal, tenantID string, in UpdateTenantInput) (*types.Tenant, error)
	DeleteTenant(ctx context.Context, p authorization.Principal, tenantID string) error
	GetSettings(ctx context.Context, p authorization.Principal, tenantID string) (*types.TenantSettings, error)
	UpdateSettings(ctx context.Context, p authorization.Principal, tenantID string, in SettingsInput) (*types.TenantSettings, error)
	ListMembers(ctx context.Context, p authorization.Principal, tenantID string) ([]*types.RoleAssignment, error)
	AssignRole(ctx context.Context, p authorization.Principal, tenantID string, in AssignRoleInput) (*types.RoleAssignment, error)
	RevokeRole(ctx context.Context, p authorization.Principal, tenantID, assignmentID string) error
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	CreateTenantSettings(ctx context.Context, s *types.TenantSettings) (*types.TenantSettings, error)
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, id string, fields map[string]any) (*types.Tenant, error)
	DeleteTenant(ctx context.Context, id string) error
	GetTenantSettings(ctx context.Context, tenantID string) (*types.TenantSettings, error)
	UpdateTenantSettings(ctx context.Context, tenantID string, fields map[string]any) (*types.TenantSettings, error)
	CreateRoleAssignment(ctx context.Context, ra *types.RoleAssignment) (*types.RoleAssignment, error)
	DeleteRoleAssignment(ctx context.Context, id string, tenantID *string) error
	ListTenantRoleAssignments(ctx context.Context, tenantID string) ([]*types.RoleAssignment, error)
}

type AuthzInterface interface {
	EnforceTenantAccess(ctx context.Context, p authorization.Principal, tenantID string) error
	EnforceSuperAdmin(ctx context.Context, p authorization.Principal) error
	EnforceTenantRole(ctx context.Context, p authorization.Principal, tenantID string, roles []string) error
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
