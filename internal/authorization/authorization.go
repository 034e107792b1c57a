// Copyright 2026 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"

	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/monitoring"
	"github.com/canonical/chapter-service/internal/tracing"
	"github.com/canonical/chapter-service/internal/types"
)

const roleSuperAdmin = "super_admin"

var _ AuthorizerInterface = (*Authorizer)(nil)

// Authorizer enforces tenant isolation in application code, user_roles being the only source of truth.
type Authorizer struct {
	roles RoleStoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// GetAuthContext builds the caller's context from one read of user_roles.
// Rows are taken in the order the store returns them: the first row gives Role,
// the first tenant-bound row gives TenantID.
func (a *Authorizer) GetAuthContext(ctx context.Context, userID string) (*AuthContext, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.GetAuthContext")
	defer span.End()

	rows, err := a.roles.ListRoleAssignments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}

	if len(rows) == 0 {
		return nil, types.NewUnauthorizedError("User has no assigned roles")
	}

	ac := &AuthContext{
		UserID: userID,
		Role:   rows[0].Role,
	}

	for _, r := range rows {
		if r.Role == roleSuperAdmin && r.TenantID == nil {
			ac.IsSuperAdmin = true
		}
		if ac.TenantID == nil && r.TenantID != nil {
			tenantID := *r.TenantID
			ac.TenantID = &tenantID
		}
	}

	return ac, nil
}

func (a *Authorizer) CanAccessTenant(ctx context.Context, p Principal, tenantID string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CanAccessTenant")
	defer span.End()

	if ac, ok := p.AuthContext(); ok {
		return ac.canAccessTenant(tenantID), nil
	}

	n, err := a.roles.CountTenantAccess(ctx, p.UserID(), tenantID)
	if err != nil {
		return false, fmt.Errorf("failed to check tenant access: %w", err)
	}

	return n > 0, nil
}

func (a *Authorizer) EnforceTenantAccess(ctx context.Context, p Principal, tenantID string) error {
	ok, err := a.CanAccessTenant(ctx, p, tenantID)
	if err != nil {
		return err
	}

	if !ok {
		a.logger.Security().AuthzFailure(p.UserID(), "tenant:"+tenantID)
		return types.NewUnauthorizedError("User %s does not have access to tenant %s", p.UserID(), tenantID)
	}

	return nil
}

// IsSuperAdmin only honours super_admin rows without a tenant.
func (a *Authorizer) IsSuperAdmin(ctx context.Context, p Principal) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.IsSuperAdmin")
	defer span.End()

	if ac, ok := p.AuthContext(); ok {
		return ac.IsSuperAdmin, nil
	}

	n, err := a.roles.CountSuperAdmin(ctx, p.UserID())
	if err != nil {
		return false, fmt.Errorf("failed to check super admin: %w", err)
	}

	return n > 0, nil
}

func (a *Authorizer) EnforceSuperAdmin(ctx context.Context, p Principal) error {
	ok, err := a.IsSuperAdmin(ctx, p)
	if err != nil {
		return err
	}

	if !ok {
		a.logger.Security().AuthzFailure(p.UserID(), "global")
		return types.NewUnauthorizedError("User %s is not a super admin", p.UserID())
	}

	return nil
}

// EnforceTenantRole requires one of roles within tenantID, super admins always pass.
func (a *Authorizer) EnforceTenantRole(ctx context.Context, p Principal, tenantID string, roles []string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.EnforceTenantRole")
	defer span.End()

	var allowed bool
	if ac, ok := p.AuthContext(); ok {
		allowed = ac.hasTenantRole(tenantID, roles)
	} else {
		n, err := a.roles.CountTenantRoles(ctx, p.UserID(), tenantID, roles)
		if err != nil {
			return fmt.Errorf("failed to check tenant role: %w", err)
		}
		allowed = n > 0
	}

	if !allowed {
		a.logger.Security().AuthzFailure(p.UserID(), "tenant:"+tenantID)
		return types.NewUnauthorizedError("User %s does not have the required role in tenant %s", p.UserID(), tenantID)
	}

	return nil
}

func NewAuthorizer(roles RoleStoreInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	a := new(Authorizer)

	a.roles = roles

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
