// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"

	"github.com/canonical/chapter-service/internal/authorization"
	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/monitoring"
	"github.com/canonical/chapter-service/internal/storage"
	"github.com/canonical/chapter-service/internal/tracing"
	"github.com/canonical/chapter-service/internal/types"
	"github.com/canonical/chapter-service/internal/validation"
)

var adminRoles = []string{types.RoleChapterAdmin}

type Service struct {
	storage   StorageInterface
	authz     AuthzInterface
	tx        TxRunnerInterface
	validator *validation.Validator

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func notFound(err error, what string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return types.NewNotFoundError("%s not found", what)
	}
	return err
}

// CreateTenant inserts the tenant and its settings row in one transaction.
// The guard runs before input validation, and both before any write.
func (s *Service) CreateTenant(ctx context.Context, p authorization.Principal, in CreateTenantInput) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateTenant")
	defer span.End()

	if err := s.authz.EnforceSuperAdmin(ctx, p); err != nil {
		return nil, err
	}

	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	settings := &types.TenantSettings{
		BrandingColor:         DefaultBrandingColor,
		Language:              DefaultLanguage,
		Currency:              DefaultCurrency,
		DefaultVisitorFee:     DefaultVisitorFee,
		RequireVisitorPayment: DefaultRequireVisitorPayment,
	}
	if in.Settings != nil {
		applySettings(settings, *in.Settings)
	}

	var created *types.Tenant
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		t, err := s.storage.CreateTenant(ctx, &types.Tenant{Name: in.Name, Subdomain: in.Subdomain, LogoURL: in.LogoURL})
		if err != nil {
			return err
		}

		settings.TenantID = t.ID
		t.Settings, err = s.storage.CreateTenantSettings(ctx, settings)
		if err != nil {
			return err
		}

		created = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Security().AdminAction(p.UserID(), "create_tenant", "tenant:"+created.ID)

	return created, nil
}

func applySettings(ts *types.TenantSettings, in SettingsInput) {
	if in.BrandingColor != nil {
		ts.BrandingColor = *in.BrandingColor
	}
	if in.Language != nil {
		ts.Language = *in.Language
	}
	if in.Currency != nil {
		ts.Currency = *in.Currency
	}
	if in.DefaultVisitorFee != nil {
		ts.DefaultVisitorFee = *in.DefaultVisitorFee
	}
	if in.RequireVisitorPayment != nil {
		ts.RequireVisitorPayment = *in.RequireVisitorPayment
	}
}

func (s *Service) ListTenants(ctx context.Context, p authorization.Principal) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	if err := s.authz.EnforceSuperAdmin(ctx, p); err != nil {
		return nil, err
	}

	return s.storage.ListTenants(ctx)
}

func (s *Service) GetTenant(ctx context.Context, p authorization.Principal, tenantID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenant")
	defer span.End()

	if err := s.authz.EnforceTenantAccess(ctx, p, tenantID); err != nil {
		return nil, err
	}

	if err := s.validator.ID("tenant_id", tenantID); err != nil {
		return nil, err
	}

	t, err := s.storage.GetTenant(ctx, tenantID)
	if err != nil {
		return nil, notFound(err, "Tenant")
	}

	return t, nil
}

func (s *Service) UpdateTenant(ctx context.Context, p authorization.Principal, tenantID string, in UpdateTenantInput) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateTenant")
	defer span.End()

	if err := s.authz.EnforceTenantAccess(ctx, p, tenantID); err != nil {
		return nil, err
	}

	if err := s.validator.ID("tenant_id", tenantID); err != nil {
		return nil, err
	}

	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	fields := in.fields()
	if len(fields) == 0 {
		return nil, types.NewValidationError("No fields to update", nil)
	}

	t, err := s.storage.UpdateTenant(ctx, tenantID, fields)
	if err != nil {
		return nil, notFound(err, "Tenant")
	}

	return t, nil
}

func (s *Service) DeleteTenant(ctx context.Context, p authorization.Principal, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.DeleteTenant")
	defer span.End()

	if err := s.authz.EnforceSuperAdmin(ctx, p); err != nil {
		return err
	}

	if err := s.validator.ID("tenant_id", tenantID); err != nil {
		return err
	}

	if err := s.storage.DeleteTenant(ctx, tenantID); err != nil {
		return notFound(err, "Tenant")
	}

	s.logger.Security().AdminAction(p.UserID(), "delete_tenant", "tenant:"+tenantID)

	return nil
}

func (s *Service) GetSettings(ctx context.Context, p authorization.Principal, tenantID string) (*types.TenantSettings, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetSettings")
	defer span.End()

	if err := s.authz.EnforceTenantAccess(ctx, p, tenantID); err != nil {
		return nil, err
	}

	if err := s.validator.ID("tenant_id", tenantID); err != nil {
		return nil, err
	}

	ts, err := s.storage.GetTenantSettings(ctx, tenantID)
	if err != nil {
		return nil, notFound(err, "Tenant settings")
	}

	return ts, nil
}

func (s *Service) UpdateSettings(ctx context.Context, p authorization.Principal, tenantID string, in SettingsInput) (*types.TenantSettings, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateSettings")
	defer span.End()

	if err := s.authz.EnforceTenantAccess(ctx, p, tenantID); err != nil {
		return nil, err
	}

	if err := s.validator.ID("tenant_id", tenantID); err != nil {
		return nil, err
	}

	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	fields := in.fields()
	if len(fields) == 0 {
		return nil, types.NewValidationError("No fields to update", nil)
	}

	ts, err := s.storage.UpdateTenantSettings(ctx, tenantID, fields)
	if err != nil {
		return nil, notFound(err, "Tenant settings")
	}

	return ts, nil
}

func (s *Service) ListMembers(ctx context.Context, p authorization.Principal, tenantID string) ([]*types.RoleAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListMembers")
	defer span.End()

	if err := s.authz.EnforceTenantAccess(ctx, p, tenantID); err != nil {
		return nil, err
	}

	if err := s.validator.ID("tenant_id", tenantID); err != nil {
		return nil, err
	}

	return s.storage.ListTenantRoleAssignments(ctx, tenantID)
}

// AssignRole grants a tenant-scoped role. super_admin is never assignable through a tenant.
func (s *Service) AssignRole(ctx context.Context, p authorization.Principal, tenantID string, in AssignRoleInput) (*types.RoleAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.AssignRole")
	defer span.End()

	if err := s.authz.EnforceTenantRole(ctx, p, tenantID, adminRoles); err != nil {
		return nil, err
	}

	if err := s.validator.ID("tenant_id", tenantID); err != nil {
		return nil, err
	}

	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	ra, err := s.storage.CreateRoleAssignment(ctx, &types.RoleAssignment{UserID: in.UserID, Role: in.Role, TenantID: &tenantID})
	if err != nil {
		return nil, err
	}

	s.logger.Security().AdminAction(p.UserID(), "assign_role:"+in.Role+":"+in.UserID, "tenant:"+tenantID)

	return ra, nil
}

func (s *Service) RevokeRole(ctx context.Context, p authorization.Principal, tenantID, assignmentID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.RevokeRole")
	defer span.End()

	if err := s.authz.EnforceTenantRole(ctx, p, tenantID, adminRoles); err != nil {
		return err
	}

	if err := s.validator.ID("tenant_id", tenantID); err != nil {
		return err
	}

	if err := s.validator.ID("assignment_id", assignmentID); err != nil {
		return err
	}

	if err := s.storage.DeleteRoleAssignment(ctx, assignmentID, &tenantID); err != nil {
		return notFound(err, "Role assignment")
	}

	s.logger.Security().AdminAction(p.UserID(), "revoke_role:"+assignmentID, "tenant:"+tenantID)

	return nil
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	tx TxRunnerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:   storage,
		authz:     authz,
		tx:        tx,
		validator: validation.NewValidator(),
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
