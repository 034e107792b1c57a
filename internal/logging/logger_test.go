// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestNoopLoggerSecurityEvents(t *testing.T) {
	l := NewNoopLogger()

	l.Security().AuthnFailure("expired")
	l.Security().AuthzFailure("u1", "tenant:t2")
	l.Security().AdminAction("u2", "create_tenant", "tenant:acme")
	l.Security().SystemStartup()
	l.Security().SystemShutdown()

	if err := l.Sync(); err != nil {
		t.Errorf("unexpected sync error on noop logger: %v", err)
	}
}
