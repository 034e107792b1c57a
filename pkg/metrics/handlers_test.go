// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/monitoring/prometheus"
)

func TestMetricsEndpoint(t *testing.T) {
	monitor := prometheus.NewMonitor("chapter-service-test", logging.NewNoopLogger())
	require.NoError(t, monitor.SetDependencyAvailability(map[string]string{"component": "database"}, 1))

	router := chi.NewRouter()
	NewAPI(logging.NewNoopLogger()).RegisterEndpoints(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)

	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `dependency_available{component="database",service="chapter-service-test"} 1`)
}
