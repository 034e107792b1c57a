// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package participant

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/canonical/chapter-service/internal/authorization"
	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/monitoring"
	"github.com/canonical/chapter-service/internal/storage"
	"github.com/canonical/chapter-service/internal/tracing"
	"github.com/canonical/chapter-service/internal/types"
	"github.com/canonical/chapter-service/pkg/authentication"
)

func TestAPI_Routes(t *testing.T) {
	ac := &authorization.AuthContext{UserID: "u1", TenantID: strPtr(tenantA), Role: types.RoleOrganizer}
	p := authorization.ForContext(ac)
	base := "/tenants/" + tenantA

	testCases := []struct {
		name         string
		method       string
		path         string
		body         string
		setup        func(*MockServiceInterface)
		expectedCode int
	}{
		{
			name: "list with filter", method: http.MethodGet, path: base + "/participants?status=visitor&q=som&page=2&size=10",
			setup: func(m *MockServiceInterface) {
				m.EXPECT().ListParticipants(gomock.Any(), p, tenantA, ListFilter{Status: "visitor", Search: "som", Page: 2, Size: 10}).Return([]*types.Participant{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "list with bad page", method: http.MethodGet, path: base + "/participants?page=two",
			setup:        func(*MockServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "create", method: http.MethodPost, path: base + "/participants", body: `{"full_name":"Somchai"}`,
			setup: func(m *MockServiceInterface) {
				m.EXPECT().CreateParticipant(gomock.Any(), p, tenantA, CreateInput{FullName: "Somchai"}).Return(&types.Participant{ID: participantID}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "status", method: http.MethodPut, path: base + "/participants/" + participantID + "/status", body: `{"status":"member"}`,
			setup: func(m *MockServiceInterface) {
				m.EXPECT().UpdateStatus(gomock.Any(), p, tenantA, participantID, StatusInput{Status: "member"}).Return(&types.Participant{ID: participantID}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "delete forbidden", method: http.MethodDelete, path: base + "/participants/" + participantID,
			setup: func(m *MockServiceInterface) {
				m.EXPECT().DeleteParticipant(gomock.Any(), p, tenantA, participantID).Return(types.NewUnauthorizedError("denied"))
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "duplicate check-in", method: http.MethodPost, path: base + "/participants/" + participantID + "/checkins", body: `{"meeting_date":"2026-10-14"}`,
			setup: func(m *MockServiceInterface) {
				m.EXPECT().CheckIn(gomock.Any(), p, tenantA, participantID, CheckInInput{MeetingDate: "2026-10-14"}).Return(nil, storage.ErrDuplicateKey)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "list check-ins", method: http.MethodGet, path: base + "/checkins?date=2026-10-14",
			setup: func(m *MockServiceInterface) {
				m.EXPECT().ListCheckIns(gomock.Any(), p, tenantA, "2026-10-14").Return([]*types.CheckIn{}, nil)
			},
			expectedCode: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tc.setup(mockService)

			router := chi.NewRouter()
			NewAPI(mockService, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()).RegisterEndpoints(router)

			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req = req.WithContext(authentication.WithAuthContext(req.Context(), ac))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedCode, w.Code)
		})
	}
}
