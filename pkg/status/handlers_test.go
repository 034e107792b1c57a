// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go

func TestStatus(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		pingErr        error
		availability   float64
		expectedStatus int
		expectedBody   string
	}{
		{name: "alive", path: "/status", expectedStatus: http.StatusOK, expectedBody: "ok"},
		{name: "ready", path: "/status/ready", availability: 1, expectedStatus: http.StatusOK, expectedBody: "ready"},
		{name: "database down", path: "/status/ready", pingErr: errors.New("dial tcp: connection refused"), availability: 0, expectedStatus: http.StatusServiceUnavailable, expectedBody: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := NewMockPingerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			if tt.path == "/status/ready" {
				mockDB.EXPECT().Ping(gomock.Any()).Return(tt.pingErr)
				mockMonitor.EXPECT().SetDependencyAvailability(map[string]string{"component": "database"}, tt.availability).Return(nil)
			}

			router := chi.NewRouter()
			NewAPI(mockDB, tracing.NewNoopTracer(), mockMonitor, logging.NewNoopLogger()).RegisterEndpoints(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var s Status
			if err := json.NewDecoder(w.Body).Decode(&s); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if s.Status != tt.expectedBody {
				t.Errorf("expected %q, got %q", tt.expectedBody, s.Status)
			}
		})
	}
}
