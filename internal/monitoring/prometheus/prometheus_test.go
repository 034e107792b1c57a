// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/canonical/chapter-service/internal/logging"
)

func TestMonitor_SetResponseTimeMetric(t *testing.T) {
	m := NewMonitor("chapter-service-test", logging.NewNoopLogger())

	if err := m.SetResponseTimeMetric(map[string]string{"route": "GET /api/v0/me", "status": "200"}, 0.12); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := m.SetResponseTimeMetric(map[string]string{"path": "/"}, 0.12); err == nil {
		t.Fatal("expected an error for unknown labels")
	}
}

func TestMonitor_RegisterTwice(t *testing.T) {
	first := NewMonitor("chapter-service-twice", logging.NewNoopLogger())
	second := NewMonitor("chapter-service-twice", logging.NewNoopLogger())

	if first.responseTime != second.responseTime {
		t.Fatal("expected the already registered collector to be reused")
	}

	if err := second.SetDependencyAvailability(map[string]string{"component": "database"}, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
