// Copyright 2026 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/chapter-service/internal/types"
)

type AuthorizerInterface interface {
	GetAuthContext(ctx context.Context, userID string) (*AuthContext, error)
	CanAccessTenant(ctx context.Context, p Principal, tenantID string) (bool, error)
	EnforceTenantAccess(ctx context.Context, p Principal, tenantID string) error
	IsSuperAdmin(ctx context.Context, p Principal) (bool, error)
	EnforceSuperAdmin(ctx context.Context, p Principal) error
	EnforceTenantRole(ctx context.Context, p Principal, tenantID string, roles []string) error
}

// RoleStoreInterface is the read side of user_roles the authorizer needs.
type RoleStoreInterface interface {
	ListRoleAssignments(ctx context.Context, userID string) ([]*types.RoleAssignment, error)
	CountTenantAccess(ctx context.Context, userID, tenantID string) (int, error)
	CountSuperAdmin(ctx context.Context, userID string) (int, error)
	CountTenantRoles(ctx context.Context, userID, tenantID string, roles []string) (int, error)
}
