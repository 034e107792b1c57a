// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/canonical/chapter-service/internal/authorization"
	httptypes "github.com/canonical/chapter-service/internal/http/types"
	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/monitoring"
	"github.com/canonical/chapter-service/internal/tracing"
	"github.com/canonical/chapter-service/internal/types"
	"github.com/canonical/chapter-service/pkg/authentication"
)

func setupAPI(ctrl *gomock.Controller) (http.Handler, *MockServiceInterface) {
	mockService := NewMockServiceInterface(ctrl)

	r := chi.NewRouter()
	NewAPI(mockService, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()).RegisterEndpoints(r)

	return r, mockService
}

func authenticated(req *http.Request, ac *authorization.AuthContext) *http.Request {
	return req.WithContext(authentication.WithAuthContext(req.Context(), ac))
}

func TestAPI_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := setupAPI(ctrl)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tenants", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPI_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{name: "forbidden", err: types.NewUnauthorizedError("User u1 does not have access to tenant %s", tenantB), expectedCode: http.StatusForbidden, expectedBody: "Forbidden"},
		{name: "not found", err: types.NewNotFoundError("Tenant not found"), expectedCode: http.StatusNotFound, expectedBody: "Not found"},
		{name: "internal", err: errors.New("connection reset"), expectedCode: http.StatusInternalServerError, expectedBody: "Internal server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router, mockService := setupAPI(ctrl)
			ac := &authorization.AuthContext{UserID: "u1", TenantID: strPtr(tenantA), Role: types.RoleChapterAdmin}

			mockService.EXPECT().GetTenant(gomock.Any(), authorization.ForContext(ac), tenantB).Return(nil, tc.err)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, authenticated(httptest.NewRequest(http.MethodGet, "/tenants/"+tenantB, nil), ac))

			require.Equal(t, tc.expectedCode, w.Code)

			var body httptypes.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tc.expectedBody, body.Error)
			assert.NotContains(t, body.Message, "connection reset")
		})
	}
}

func TestAPI_CreateTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mockService := setupAPI(ctrl)
	ac := &authorization.AuthContext{UserID: "u2", Role: types.RoleSuperAdmin, IsSuperAdmin: true}

	mockService.EXPECT().CreateTenant(gomock.Any(), authorization.ForContext(ac), CreateTenantInput{Name: "Bangkok", Subdomain: "bkk"}).
		Return(&types.Tenant{ID: tenantA, Name: "Bangkok", Subdomain: "bkk"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/tenants", strings.NewReader(`{"tenant_name":"Bangkok","subdomain":"bkk"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authenticated(req, ac))

	require.Equal(t, http.StatusCreated, w.Code)

	var got types.Tenant
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, tenantA, got.ID)
}

func TestAPI_CreateTenant_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := setupAPI(ctrl)
	ac := &authorization.AuthContext{UserID: "u2", Role: types.RoleSuperAdmin, IsSuperAdmin: true}

	req := httptest.NewRequest(http.MethodPost, "/tenants", strings.NewReader(`{"tenant_name":"Bangkok","owner":"x"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authenticated(req, ac))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPI_RevokeRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mockService := setupAPI(ctrl)
	ac := &authorization.AuthContext{UserID: "u1", TenantID: strPtr(tenantA), Role: types.RoleChapterAdmin}

	mockService.EXPECT().RevokeRole(gomock.Any(), authorization.ForContext(ac), tenantA, roleID).Return(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authenticated(httptest.NewRequest(http.MethodDelete, "/tenants/"+tenantA+"/members/"+roleID, nil), ac))

	assert.Equal(t, http.StatusNoContent, w.Code)
}
