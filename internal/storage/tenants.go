// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/chapter-service/internal/types"
)

var (
	tenantColumns   = []string{"tenant_id", "tenant_name", "subdomain", "logo_url", "created_at", "updated_at"}
	settingsColumns = []string{
		"tenant_id", "branding_color", "language", "currency",
		"default_visitor_fee", "require_visitor_payment", "created_at", "updated_at",
	}
)

type scanner interface {
	Scan(...any) error
}

func scanTenant(row scanner) (*types.Tenant, error) {
	var t types.Tenant
	if err := row.Scan(&t.ID, &t.Name, &t.Subdomain, &t.LogoURL, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func scanSettings(row scanner) (*types.TenantSettings, error) {
	var ts types.TenantSettings
	err := row.Scan(
		&ts.TenantID, &ts.BrandingColor, &ts.Language, &ts.Currency,
		&ts.DefaultVisitorFee, &ts.RequireVisitorPayment, &ts.CreatedAt, &ts.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	created, err := scanTenant(
		s.db.Statement(ctx).
			Insert("tenants").
			Columns("tenant_id", "tenant_name", "subdomain", "logo_url").
			Values(id.String(), t.Name, t.Subdomain, t.LogoURL).
			Suffix(returning(tenantColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrap(err, "insert tenant")
	}

	return created, nil
}

func (s *Storage) CreateTenantSettings(ctx context.Context, ts *types.TenantSettings) (*types.TenantSettings, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenantSettings")
	defer span.End()

	created, err := scanSettings(
		s.db.Statement(ctx).
			Insert("tenant_settings").
			Columns("tenant_id", "branding_color", "language", "currency", "default_visitor_fee", "require_visitor_payment").
			Values(ts.TenantID, ts.BrandingColor, ts.Language, ts.Currency, ts.DefaultVisitorFee, ts.RequireVisitorPayment).
			Suffix(returning(settingsColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrap(err, "insert tenant settings")
	}

	return created, nil
}

func (s *Storage) GetTenant(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenant")
	defer span.End()

	t, err := scanTenant(
		s.db.Statement(ctx).
			Select(tenantColumns...).
			From("tenants").
			Where(sq.Eq{"tenant_id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrap(err, "get tenant")
	}

	return t, nil
}

func (s *Storage) GetTenantBySubdomain(ctx context.Context, subdomain string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantBySubdomain")
	defer span.End()

	t, err := scanTenant(
		s.db.Statement(ctx).
			Select(tenantColumns...).
			From("tenants").
			Where(sq.Eq{"subdomain": subdomain}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrap(err, "get tenant by subdomain")
	}

	return t, nil
}

func (s *Storage) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		OrderBy("tenant_name").
		QueryContext(ctx)
	if err != nil {
		return nil, wrap(err, "list tenants")
	}
	defer rows.Close()

	tenants := make([]*types.Tenant, 0)
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	return tenants, nil
}

// UpdateTenant applies fields (column to value) and bumps updated_at.
func (s *Storage) UpdateTenant(ctx context.Context, id string, fields map[string]any) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenant")
	defer span.End()

	t, err := scanTenant(
		s.db.Statement(ctx).
			Update("tenants").
			SetMap(fields).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"tenant_id": id}).
			Suffix(returning(tenantColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrap(err, "update tenant")
	}

	return t, nil
}

func (s *Storage) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTenant")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("tenants").
		Where(sq.Eq{"tenant_id": id}).
		ExecContext(ctx)
	if err != nil {
		return wrap(err, "delete tenant")
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) GetTenantSettings(ctx context.Context, tenantID string) (*types.TenantSettings, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantSettings")
	defer span.End()

	ts, err := scanSettings(
		s.db.Statement(ctx).
			Select(settingsColumns...).
			From("tenant_settings").
			Where(sq.Eq{"tenant_id": tenantID}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrap(err, "get tenant settings")
	}

	return ts, nil
}

func (s *Storage) UpdateTenantSettings(ctx context.Context, tenantID string, fields map[string]any) (*types.TenantSettings, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenantSettings")
	defer span.End()

	ts, err := scanSettings(
		s.db.Statement(ctx).
			Update("tenant_settings").
			SetMap(fields).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"tenant_id": tenantID}).
			Suffix(returning(settingsColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrap(err, "update tenant settings")
	}

	return ts, nil
}
