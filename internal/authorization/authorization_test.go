// Copyright 2026 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/monitoring"
	"github.com/canonical/chapter-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../tracing/interfaces.go

func strPtr(s string) *string {
	return &s
}

func setupAuthorizer(ctrl *gomock.Controller, span string) (*Authorizer, *MockRoleStoreInterface) {
	mockStore := NewMockRoleStoreInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), span).
		DoAndReturn(func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).AnyTimes()

	return NewAuthorizer(mockStore, mockTracer, monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()), mockStore
}

func TestAuthorizer_GetAuthContext(t *testing.T) {
	testCases := []struct {
		name        string
		userID      string
		rows        []*types.RoleAssignment
		storeErr    error
		expected    *AuthContext
		expectedErr error
	}{
		{
			name:        "no roles",
			userID:      "u0",
			rows:        []*types.RoleAssignment{},
			expectedErr: types.ErrUnauthorized,
		},
		{
			name:   "chapter admin",
			userID: "u1",
			rows:   []*types.RoleAssignment{{Role: "chapter_admin", TenantID: strPtr("t1")}},
			expected: &AuthContext{
				UserID: "u1", TenantID: strPtr("t1"), Role: "chapter_admin", IsSuperAdmin: false,
			},
		},
		{
			name:   "global super admin",
			userID: "u2",
			rows:   []*types.RoleAssignment{{Role: "super_admin"}},
			expected: &AuthContext{
				UserID: "u2", TenantID: nil, Role: "super_admin", IsSuperAdmin: true,
			},
		},
		{
			name:   "tenant bound super admin row is not global",
			userID: "u3",
			rows:   []*types.RoleAssignment{{Role: "super_admin", TenantID: strPtr("t1")}},
			expected: &AuthContext{
				UserID: "u3", TenantID: strPtr("t1"), Role: "super_admin", IsSuperAdmin: false,
			},
		},
		{
			name:   "role from first row, tenant from first scoped row",
			userID: "u4",
			rows: []*types.RoleAssignment{
				{Role: "super_admin"},
				{Role: "organizer", TenantID: strPtr("t7")},
				{Role: "member", TenantID: strPtr("t8")},
			},
			expected: &AuthContext{
				UserID: "u4", TenantID: strPtr("t7"), Role: "super_admin", IsSuperAdmin: true,
			},
		},
		{
			name:   "store order decides between two tenants",
			userID: "u5",
			rows: []*types.RoleAssignment{
				{Role: "member", TenantID: strPtr("t8")},
				{Role: "chapter_admin", TenantID: strPtr("t7")},
			},
			expected: &AuthContext{
				UserID: "u5", TenantID: strPtr("t8"), Role: "member", IsSuperAdmin: false,
			},
		},
		{
			name:     "store failure",
			userID:   "u6",
			storeErr: errors.New("connection refused"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			a, mockStore := setupAuthorizer(ctrl, "authorization.Authorizer.GetAuthContext")
			mockStore.EXPECT().ListRoleAssignments(gomock.Any(), tc.userID).Return(tc.rows, tc.storeErr)

			ac, err := a.GetAuthContext(context.Background(), tc.userID)

			switch {
			case tc.storeErr != nil:
				if !errors.Is(err, tc.storeErr) {
					t.Fatalf("expected store error, got %v", err)
				}
				if errors.Is(err, types.ErrUnauthorized) {
					t.Fatal("store failures must not look like authorization failures")
				}
			case tc.expectedErr != nil:
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				if err.Error() != "User has no assigned roles" {
					t.Errorf("unexpected message %q", err.Error())
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !reflect.DeepEqual(ac, tc.expected) {
					t.Errorf("expected %+v, got %+v", tc.expected, ac)
				}
			}
		})
	}
}

func TestAuthorizer_GetAuthContextIsStable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, mockStore := setupAuthorizer(ctrl, "authorization.Authorizer.GetAuthContext")
	rows := []*types.RoleAssignment{
		{Role: "organizer", TenantID: strPtr("t1")},
		{Role: "super_admin"},
	}
	mockStore.EXPECT().ListRoleAssignments(gomock.Any(), "u1").Return(rows, nil).Times(2)

	first, err := a.GetAuthContext(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := a.GetAuthContext(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected equal contexts, got %+v and %+v", first, second)
	}

	if first == second {
		t.Error("expected a fresh context per resolution")
	}
}

func TestAuthorizer_CanAccessTenant(t *testing.T) {
	scoped := &AuthContext{UserID: "u1", TenantID: strPtr("tA"), Role: "member"}
	admin := &AuthContext{UserID: "u2", Role: "super_admin", IsSuperAdmin: true}

	testCases := []struct {
		name       string
		principal  Principal
		tenantID   string
		setupMocks func(*MockRoleStoreInterface)
		expected   bool
		expectErr  bool
	}{
		{
			name:      "context fast path, own tenant",
			principal: ForContext(scoped),
			tenantID:  "tA",
			expected:  true,
		},
		{
			name:      "context fast path, other tenant",
			principal: ForContext(scoped),
			tenantID:  "tB",
			expected:  false,
		},
		{
			name:      "context fast path, super admin",
			principal: ForContext(admin),
			tenantID:  "tZ",
			expected:  true,
		},
		{
			name:      "user id, count hit",
			principal: ForUser("u1"),
			tenantID:  "tA",
			setupMocks: func(m *MockRoleStoreInterface) {
				m.EXPECT().CountTenantAccess(gomock.Any(), "u1", "tA").Return(1, nil)
			},
			expected: true,
		},
		{
			name:      "user id, count miss",
			principal: ForUser("u1"),
			tenantID:  "tB",
			setupMocks: func(m *MockRoleStoreInterface) {
				m.EXPECT().CountTenantAccess(gomock.Any(), "u1", "tB").Return(0, nil)
			},
			expected: false,
		},
		{
			name:      "user id, store error",
			principal: ForUser("u1"),
			tenantID:  "tB",
			setupMocks: func(m *MockRoleStoreInterface) {
				m.EXPECT().CountTenantAccess(gomock.Any(), "u1", "tB").Return(0, errors.New("timeout"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			a, mockStore := setupAuthorizer(ctrl, "authorization.Authorizer.CanAccessTenant")
			if tc.setupMocks != nil {
				tc.setupMocks(mockStore)
			}

			ok, err := a.CanAccessTenant(context.Background(), tc.principal, tc.tenantID)

			if tc.expectErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if ok != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, ok)
			}
		})
	}
}

func TestAuthorizer_EnforceTenantAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, mockStore := setupAuthorizer(ctrl, "authorization.Authorizer.CanAccessTenant")
	mockStore.EXPECT().CountTenantAccess(gomock.Any(), "u1", "t2").Return(0, nil)

	err := a.EnforceTenantAccess(context.Background(), ForUser("u1"), "t2")
	if !errors.Is(err, types.ErrUnauthorized) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}

	if err.Error() != "User u1 does not have access to tenant t2" {
		t.Errorf("unexpected message %q", err.Error())
	}

	if err := a.EnforceTenantAccess(context.Background(), ForContext(&AuthContext{UserID: "u2", IsSuperAdmin: true}), "t9"); err != nil {
		t.Errorf("expected super admin to pass, got %v", err)
	}
}

func TestAuthorizer_SuperAdmin(t *testing.T) {
	testCases := []struct {
		name       string
		principal  Principal
		setupMocks func(*MockRoleStoreInterface)
		expected   bool
	}{
		{
			name:      "context with flag",
			principal: ForContext(&AuthContext{UserID: "u2", Role: "super_admin", IsSuperAdmin: true}),
			expected:  true,
		},
		{
			name:      "context with tenant bound super_admin role",
			principal: ForContext(&AuthContext{UserID: "u3", Role: "super_admin", TenantID: strPtr("t1")}),
			expected:  false,
		},
		{
			name:      "user id with global row",
			principal: ForUser("u2"),
			setupMocks: func(m *MockRoleStoreInterface) {
				m.EXPECT().CountSuperAdmin(gomock.Any(), "u2").Return(1, nil)
			},
			expected: true,
		},
		{
			name:      "user id without global row",
			principal: ForUser("u1"),
			setupMocks: func(m *MockRoleStoreInterface) {
				m.EXPECT().CountSuperAdmin(gomock.Any(), "u1").Return(0, nil)
			},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			a, mockStore := setupAuthorizer(ctrl, "authorization.Authorizer.IsSuperAdmin")
			if tc.setupMocks != nil {
				tc.setupMocks(mockStore)
			}

			ok, err := a.IsSuperAdmin(context.Background(), tc.principal)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, ok)
			}

			if tc.setupMocks != nil {
				tc.setupMocks(mockStore)
			}

			err = a.EnforceSuperAdmin(context.Background(), tc.principal)
			if tc.expected && err != nil {
				t.Errorf("expected enforce to pass, got %v", err)
			}
			if !tc.expected && !errors.Is(err, types.ErrUnauthorized) {
				t.Errorf("expected unauthorized error, got %v", err)
			}
		})
	}
}

func TestAuthorizer_EnforceTenantRole(t *testing.T) {
	admins := []string{"chapter_admin"}

	testCases := []struct {
		name       string
		principal  Principal
		tenantID   string
		setupMocks func(*MockRoleStoreInterface)
		allowed    bool
	}{
		{
			name:      "chapter admin of tenant",
			principal: ForContext(&AuthContext{UserID: "u1", TenantID: strPtr("t1"), Role: "chapter_admin"}),
			tenantID:  "t1",
			allowed:   true,
		},
		{
			name:      "chapter admin of another tenant",
			principal: ForContext(&AuthContext{UserID: "u1", TenantID: strPtr("t1"), Role: "chapter_admin"}),
			tenantID:  "t2",
			allowed:   false,
		},
		{
			name:      "member of tenant",
			principal: ForContext(&AuthContext{UserID: "u5", TenantID: strPtr("t1"), Role: "member"}),
			tenantID:  "t1",
			allowed:   false,
		},
		{
			name:      "super admin",
			principal: ForContext(&AuthContext{UserID: "u2", Role: "super_admin", IsSuperAdmin: true}),
			tenantID:  "t2",
			allowed:   true,
		},
		{
			name:      "user id path",
			principal: ForUser("u1"),
			tenantID:  "t1",
			setupMocks: func(m *MockRoleStoreInterface) {
				m.EXPECT().CountTenantRoles(gomock.Any(), "u1", "t1", admins).Return(1, nil)
			},
			allowed: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			a, mockStore := setupAuthorizer(ctrl, "authorization.Authorizer.EnforceTenantRole")
			if tc.setupMocks != nil {
				tc.setupMocks(mockStore)
			}

			err := a.EnforceTenantRole(context.Background(), tc.principal, tc.tenantID, admins)
			if tc.allowed && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.allowed && !errors.Is(err, types.ErrUnauthorized) {
				t.Errorf("expected unauthorized error, got %v", err)
			}
		})
	}
}

func TestPrincipal(t *testing.T) {
	if _, ok := ForUser("u1").AuthContext(); ok {
		t.Error("user principal must not carry a context")
	}

	ac := &AuthContext{UserID: "u1"}
	p := ForContext(ac)
	got, ok := p.AuthContext()
	if !ok || got != ac {
		t.Error("context principal must expose its context")
	}
	if p.UserID() != "u1" {
		t.Errorf("expected u1, got %s", p.UserID())
	}

	if _, ok := ForContext(nil).AuthContext(); ok {
		t.Error("nil context must fall back to an empty principal")
	}
}
