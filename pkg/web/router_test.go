// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/chapter-service/internal/authorization"
	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/monitoring"
	"github.com/canonical/chapter-service/internal/tracing"
	"github.com/canonical/chapter-service/pkg/authentication"
	"github.com/canonical/chapter-service/pkg/status"
)

func TestRouter(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		token          string
		expectedStatus int
	}{
		{name: "status is public", method: http.MethodGet, path: "/api/v0/status", expectedStatus: http.StatusOK},
		{name: "readiness is public", method: http.MethodGet, path: "/api/v0/status/ready", expectedStatus: http.StatusOK},
		{name: "metrics are public", method: http.MethodGet, path: "/api/v0/metrics", expectedStatus: http.StatusOK},
		{name: "webhook checks its own secret", method: http.MethodPost, path: "/api/v0/webhooks/registration", expectedStatus: http.StatusUnauthorized},
		{name: "tenants need a token", method: http.MethodGet, path: "/api/v0/tenants", expectedStatus: http.StatusUnauthorized},
		{name: "me with token", method: http.MethodGet, path: "/api/v0/me", token: "u1", expectedStatus: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, path: "/api/v1/tenants", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockResolver := authentication.NewMockAuthContextResolverInterface(ctrl)
			mockResolver.EXPECT().GetAuthContext(gomock.Any(), "u1").
				Return(&authorization.AuthContext{UserID: "u1", Role: "super_admin", IsSuperAdmin: true}, nil).AnyTimes()

			mockDB := status.NewMockPingerInterface(ctrl)
			mockDB.EXPECT().Ping(gomock.Any()).Return(nil).AnyTimes()

			logger := logging.NewNoopLogger()
			tracer := tracing.NewNoopTracer()
			monitor := monitoring.NewNoopMonitor("test")

			auth := authentication.NewMiddleware(authentication.NewNoopVerifier(), mockResolver, tracer, monitor, logger)
			router := NewRouter(
				Config{CORSAllowedOrigins: []string{"*"}, WebhookSecret: "s3cret"},
				Services{DB: mockDB},
				auth, tracer, monitor, logger,
			)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}
