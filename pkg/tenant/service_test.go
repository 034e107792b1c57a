// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/chapter-service/internal/authorization"
	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/monitoring"
	"github.com/canonical/chapter-service/internal/storage"
	"github.com/canonical/chapter-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	tenantA = "9b2f6c1e-3a4d-4e5f-8a9b-0c1d2e3f4a5b"
	tenantB = "1c2d3e4f-5a6b-4c7d-8e9f-a0b1c2d3e4f5"
	roleID  = "7e8f9a0b-1c2d-4e3f-8a5b-6c7d8e9f0a1b"
)

type mocks struct {
	storage *MockStorageInterface
	authz   *MockAuthzInterface
	tx      *MockTxRunnerInterface
}

func setupService(ctrl *gomock.Controller) (*Service, mocks) {
	m := mocks{
		storage: NewMockStorageInterface(ctrl),
		authz:   NewMockAuthzInterface(ctrl),
		tx:      NewMockTxRunnerInterface(ctrl),
	}

	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).AnyTimes()

	return NewService(m.storage, m.authz, m.tx, mockTracer, monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()), m
}

// setupGuardedService wires the real authorizer without a role store, so only
// context principals can pass a guard and any role query would panic.
func setupGuardedService(ctrl *gomock.Controller) (*Service, *MockStorageInterface) {
	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).AnyTimes()

	authz := authorization.NewAuthorizer(nil, mockTracer, monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	mockStorage := NewMockStorageInterface(ctrl)

	return NewService(mockStorage, authz, NewMockTxRunnerInterface(ctrl), mockTracer, monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()), mockStorage
}

func passthroughTx(m *MockTxRunnerInterface) {
	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func strPtr(s string) *string {
	return &s
}

func superAdmin() authorization.Principal {
	return authorization.ForContext(&authorization.AuthContext{UserID: "u2", Role: types.RoleSuperAdmin, IsSuperAdmin: true})
}

func TestService_CreateTenant_RejectsInputBeforeAnyQuery(t *testing.T) {
	testCases := []struct {
		name  string
		input CreateTenantInput
		field string
	}{
		{name: "uppercase and punctuation in subdomain", input: CreateTenantInput{Name: "My Tenant", Subdomain: "My_Tenant!"}, field: "subdomain"},
		{name: "missing name", input: CreateTenantInput{Subdomain: "bkk"}, field: "tenant_name"},
		{name: "bad branding color", input: CreateTenantInput{Name: "Bangkok", Subdomain: "bkk", Settings: &SettingsInput{BrandingColor: strPtr("blue")}}, field: "branding_color"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// no expectations: any storage or transaction call fails the test
			svc, _ := setupGuardedService(ctrl)

			_, err := svc.CreateTenant(context.Background(), superAdmin(), tc.input)

			require.ErrorIs(t, err, types.ErrValidation)
			e, ok := types.AsError(err)
			require.True(t, ok)
			assert.Contains(t, e.Message, tc.field)
		})
	}
}

func TestService_CreateTenant_GuardRunsBeforeValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := setupGuardedService(ctrl)
	admin := authorization.ForContext(&authorization.AuthContext{UserID: "u1", TenantID: strPtr(tenantA), Role: types.RoleChapterAdmin})

	_, err := svc.CreateTenant(context.Background(), admin, CreateTenantInput{Name: "My Tenant", Subdomain: "My_Tenant!"})

	assert.ErrorIs(t, err, types.ErrUnauthorized)
	assert.NotErrorIs(t, err, types.ErrValidation)
}

func TestService_CreateTenant_RequiresSuperAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := setupService(ctrl)
	p := authorization.ForUser("u1")

	m.authz.EXPECT().EnforceSuperAdmin(gomock.Any(), p).Return(types.NewUnauthorizedError("User u1 is not a super admin"))

	_, err := svc.CreateTenant(context.Background(), p, CreateTenantInput{Name: "Bangkok", Subdomain: "bkk"})

	assert.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestService_CreateTenant_AppliesDefaultSettings(t *testing.T) {
	testCases := []struct {
		name     string
		settings *SettingsInput
		expected types.TenantSettings
	}{
		{
			name: "defaults",
			expected: types.TenantSettings{
				TenantID: tenantA, BrandingColor: "#1e40af", Language: "th", Currency: "THB",
				DefaultVisitorFee: 650, RequireVisitorPayment: true,
			},
		},
		{
			name:     "overrides",
			settings: &SettingsInput{Language: strPtr("en"), RequireVisitorPayment: new(bool)},
			expected: types.TenantSettings{
				TenantID: tenantA, BrandingColor: "#1e40af", Language: "en", Currency: "THB",
				DefaultVisitorFee: 650, RequireVisitorPayment: false,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := setupService(ctrl)
			p := superAdmin()

			m.authz.EXPECT().EnforceSuperAdmin(gomock.Any(), p).Return(nil)
			passthroughTx(m.tx)
			m.storage.EXPECT().CreateTenant(gomock.Any(), &types.Tenant{Name: "Bangkok", Subdomain: "bkk"}).
				Return(&types.Tenant{ID: tenantA, Name: "Bangkok", Subdomain: "bkk"}, nil)
			m.storage.EXPECT().CreateTenantSettings(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, s *types.TenantSettings) (*types.TenantSettings, error) {
					assert.Equal(t, tc.expected, *s)
					return s, nil
				})

			created, err := svc.CreateTenant(context.Background(), p, CreateTenantInput{Name: "Bangkok", Subdomain: "bkk", Settings: tc.settings})

			require.NoError(t, err)
			assert.Equal(t, tenantA, created.ID)
			require.NotNil(t, created.Settings)
			assert.Equal(t, tc.expected.Language, created.Settings.Language)
		})
	}
}

func TestService_CreateTenant_SettingsFailureAbortsTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := setupService(ctrl)
	p := superAdmin()

	m.authz.EXPECT().EnforceSuperAdmin(gomock.Any(), p).Return(nil)
	passthroughTx(m.tx)
	m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(&types.Tenant{ID: tenantA}, nil)
	m.storage.EXPECT().CreateTenantSettings(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)

	created, err := svc.CreateTenant(context.Background(), p, CreateTenantInput{Name: "Bangkok", Subdomain: "bkk"})

	assert.Nil(t, created)
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestService_GetTenant(t *testing.T) {
	testCases := []struct {
		name       string
		tenantID   string
		guardErr   error
		storageErr error
		expected   error
	}{
		{name: "invalid id", tenantID: "not-a-uuid", expected: types.ErrValidation},
		{name: "guard denies", tenantID: tenantB, guardErr: types.NewUnauthorizedError("denied"), expected: types.ErrUnauthorized},
		{name: "missing tenant", tenantID: tenantA, storageErr: storage.ErrNotFound, expected: types.ErrNotFound},
		{name: "storage failure", tenantID: tenantA, storageErr: errors.New("boom")},
		{name: "found", tenantID: tenantA},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := setupService(ctrl)
			p := authorization.ForUser("u1")

			m.authz.EXPECT().EnforceTenantAccess(gomock.Any(), p, tc.tenantID).Return(tc.guardErr)
			if tc.guardErr == nil && tc.tenantID != "not-a-uuid" {
				m.storage.EXPECT().GetTenant(gomock.Any(), tc.tenantID).Return(&types.Tenant{ID: tc.tenantID}, tc.storageErr)
			}

			got, err := svc.GetTenant(context.Background(), p, tc.tenantID)

			switch {
			case tc.expected != nil:
				assert.ErrorIs(t, err, tc.expected)
			case tc.storageErr != nil:
				assert.ErrorIs(t, err, tc.storageErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.tenantID, got.ID)
			}
		})
	}
}

func TestService_TenantIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStorage := setupGuardedService(ctrl)

	admin := authorization.ForContext(&authorization.AuthContext{UserID: "u1", TenantID: strPtr(tenantA), Role: types.RoleChapterAdmin})

	_, err := svc.GetTenant(context.Background(), admin, tenantB)
	assert.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = svc.UpdateSettings(context.Background(), admin, tenantB, SettingsInput{Language: strPtr("en")})
	assert.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = svc.AssignRole(context.Background(), admin, tenantB, AssignRoleInput{UserID: "u9", Role: types.RoleMember})
	assert.ErrorIs(t, err, types.ErrUnauthorized)

	mockStorage.EXPECT().GetTenant(gomock.Any(), tenantA).Return(&types.Tenant{ID: tenantA}, nil)

	got, err := svc.GetTenant(context.Background(), admin, tenantA)
	require.NoError(t, err)
	assert.Equal(t, tenantA, got.ID)
}

func TestService_UpdateTenant_NoFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := setupService(ctrl)
	p := superAdmin()

	m.authz.EXPECT().EnforceTenantAccess(gomock.Any(), p, tenantA).Return(nil)

	_, err := svc.UpdateTenant(context.Background(), p, tenantA, UpdateTenantInput{})

	require.ErrorIs(t, err, types.ErrValidation)
	assert.EqualError(t, err, "No fields to update")
}

func TestService_UpdateSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := setupService(ctrl)
	p := superAdmin()
	fee := 500.0

	m.authz.EXPECT().EnforceTenantAccess(gomock.Any(), p, tenantA).Return(nil)
	m.storage.EXPECT().UpdateTenantSettings(gomock.Any(), tenantA, map[string]any{"default_visitor_fee": 500.0, "currency": "USD"}).
		Return(&types.TenantSettings{TenantID: tenantA, Currency: "USD", DefaultVisitorFee: 500}, nil)

	ts, err := svc.UpdateSettings(context.Background(), p, tenantA, SettingsInput{Currency: strPtr("USD"), DefaultVisitorFee: &fee})

	require.NoError(t, err)
	assert.Equal(t, "USD", ts.Currency)
}

func TestService_AssignRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := setupService(ctrl)
	p := authorization.ForUser("u1")

	m.authz.EXPECT().EnforceTenantRole(gomock.Any(), p, tenantA, []string{types.RoleChapterAdmin}).Return(nil)
	m.storage.EXPECT().CreateRoleAssignment(gomock.Any(), &types.RoleAssignment{UserID: "u9", Role: types.RoleOrganizer, TenantID: strPtr(tenantA)}).
		Return(&types.RoleAssignment{ID: roleID, UserID: "u9", Role: types.RoleOrganizer, TenantID: strPtr(tenantA)}, nil)

	ra, err := svc.AssignRole(context.Background(), p, tenantA, AssignRoleInput{UserID: "u9", Role: types.RoleOrganizer})

	require.NoError(t, err)
	assert.Equal(t, roleID, ra.ID)
}

func TestService_AssignRole_SuperAdminIsNotAssignable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := setupGuardedService(ctrl)

	_, err := svc.AssignRole(context.Background(), superAdmin(), tenantA, AssignRoleInput{UserID: "u9", Role: types.RoleSuperAdmin})

	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestService_RevokeRole(t *testing.T) {
	testCases := []struct {
		name       string
		storageErr error
		expected   error
	}{
		{name: "revoked"},
		{name: "unknown assignment", storageErr: storage.ErrNotFound, expected: types.ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := setupService(ctrl)
			p := superAdmin()

			m.authz.EXPECT().EnforceTenantRole(gomock.Any(), p, tenantA, []string{types.RoleChapterAdmin}).Return(nil)
			m.storage.EXPECT().DeleteRoleAssignment(gomock.Any(), roleID, strPtr(tenantA)).Return(tc.storageErr)

			err := svc.RevokeRole(context.Background(), p, tenantA, roleID)

			if tc.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestService_DeleteTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := setupService(ctrl)
	p := superAdmin()

	m.authz.EXPECT().EnforceSuperAdmin(gomock.Any(), p).Return(nil)
	m.storage.EXPECT().DeleteTenant(gomock.Any(), tenantA).Return(storage.ErrNotFound)

	err := svc.DeleteTenant(context.Background(), p, tenantA)

	require.ErrorIs(t, err, types.ErrNotFound)
	assert.EqualError(t, err, "Tenant not found")
}
