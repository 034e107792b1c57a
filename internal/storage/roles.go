// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/chapter-service/internal/types"
)

const roleSuperAdmin = "super_admin"

// globalSuperAdmin matches only unscoped super_admin rows; a tenant-bound one grants nothing global.
var globalSuperAdmin = sq.And{sq.Eq{"role": roleSuperAdmin}, sq.Eq{"tenant_id": nil}}

// ListRoleAssignments returns every row for userID in the order the database yields them.
func (s *Storage) ListRoleAssignments(ctx context.Context, userID string) ([]*types.RoleAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRoleAssignments")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "role", "tenant_id").
		From("user_roles").
		Where(sq.Eq{"user_id": userID}).
		QueryContext(ctx)
	if err != nil {
		return nil, wrap(err, "list role assignments")
	}
	defer rows.Close()

	assignments := make([]*types.RoleAssignment, 0)
	for rows.Next() {
		ra := types.RoleAssignment{UserID: userID}
		if err := rows.Scan(&ra.ID, &ra.Role, &ra.TenantID); err != nil {
			return nil, fmt.Errorf("failed to scan role assignment: %w", err)
		}
		assignments = append(assignments, &ra)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return assignments, nil
}

func (s *Storage) count(ctx context.Context, op string, where sq.Sqlizer) (int, error) {
	var n int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("user_roles").
		Where(where).
		QueryRowContext(ctx).
		Scan(&n)
	if err != nil {
		return 0, wrap(err, op)
	}
	return n, nil
}

func (s *Storage) CountTenantAccess(ctx context.Context, userID, tenantID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountTenantAccess")
	defer span.End()

	return s.count(ctx, "count tenant access", sq.And{
		sq.Eq{"user_id": userID},
		sq.Or{sq.Eq{"tenant_id": tenantID}, globalSuperAdmin},
	})
}

func (s *Storage) CountSuperAdmin(ctx context.Context, userID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountSuperAdmin")
	defer span.End()

	return s.count(ctx, "count super admin", sq.And{sq.Eq{"user_id": userID}, globalSuperAdmin})
}

func (s *Storage) CountTenantRoles(ctx context.Context, userID, tenantID string, roles []string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountTenantRoles")
	defer span.End()

	return s.count(ctx, "count tenant roles", sq.And{
		sq.Eq{"user_id": userID},
		sq.Or{
			sq.And{sq.Eq{"tenant_id": tenantID}, sq.Eq{"role": roles}},
			globalSuperAdmin,
		},
	})
}

func (s *Storage) CreateRoleAssignment(ctx context.Context, ra *types.RoleAssignment) (*types.RoleAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateRoleAssignment")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate role assignment ID: %w", err)
	}

	var created types.RoleAssignment
	err = s.db.Statement(ctx).
		Insert("user_roles").
		Columns("id", "user_id", "role", "tenant_id").
		Values(id.String(), ra.UserID, ra.Role, ra.TenantID).
		Suffix("RETURNING id, user_id, role, tenant_id, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.UserID, &created.Role, &created.TenantID, &created.CreatedAt)
	if err != nil {
		return nil, wrap(err, "insert role assignment")
	}

	return &created, nil
}

// DeleteRoleAssignment removes one row; a non-nil tenantID confines the delete to that tenant.
func (s *Storage) DeleteRoleAssignment(ctx context.Context, id string, tenantID *string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteRoleAssignment")
	defer span.End()

	where := sq.And{sq.Eq{"id": id}}
	if tenantID != nil {
		where = append(where, sq.Eq{"tenant_id": *tenantID})
	}

	res, err := s.db.Statement(ctx).
		Delete("user_roles").
		Where(where).
		ExecContext(ctx)
	if err != nil {
		return wrap(err, "delete role assignment")
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) ListTenantRoleAssignments(ctx context.Context, tenantID string) ([]*types.RoleAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenantRoleAssignments")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "user_id", "role", "tenant_id", "created_at").
		From("user_roles").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, wrap(err, "list members")
	}
	defer rows.Close()

	members := make([]*types.RoleAssignment, 0)
	for rows.Next() {
		var ra types.RoleAssignment
		if err := rows.Scan(&ra.ID, &ra.UserID, &ra.Role, &ra.TenantID, &ra.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &ra)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}
