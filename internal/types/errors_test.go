// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIs(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		target   error
		expected bool
	}{
		{
			name:     "unauthorized matches sentinel",
			err:      NewUnauthorizedError("User %s does not have access to tenant %s", "u1", "t2"),
			target:   ErrUnauthorized,
			expected: true,
		},
		{
			name:     "wrapped validation matches sentinel",
			err:      fmt.Errorf("create tenant: %w", NewValidationError("Invalid subdomain", nil)),
			target:   ErrValidation,
			expected: true,
		},
		{
			name:     "not found does not match unauthorized",
			err:      NewNotFoundError("Tenant not found"),
			target:   ErrUnauthorized,
			expected: false,
		},
		{
			name:     "plain error does not match",
			err:      errors.New("boom"),
			target:   ErrNotFound,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := errors.Is(tc.err, tc.target); got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestAsError(t *testing.T) {
	details := []string{"subdomain"}
	err := fmt.Errorf("wrapped: %w", NewValidationError("Invalid input", details))

	e, ok := AsError(err)
	if !ok {
		t.Fatal("expected a domain error")
	}

	if e.Code != CodeValidation || e.Message != "Invalid input" {
		t.Errorf("unexpected error %+v", e)
	}

	if _, ok := AsError(errors.New("boom")); ok {
		t.Error("expected plain errors not to be domain errors")
	}
}

func TestParticipantStatusValid(t *testing.T) {
	for _, s := range []ParticipantStatus{StatusProspect, StatusVisitor, StatusMember, StatusAlumni, StatusDeclined} {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}

	if ParticipantStatus("guest").Valid() {
		t.Error("expected unknown status to be invalid")
	}
}
