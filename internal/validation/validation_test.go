// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"errors"
	"testing"

	"github.com/canonical/chapter-service/internal/types"
)

type tenantInput struct {
	Name      string  `json:"tenant_name" validate:"required,max=10"`
	Subdomain string  `json:"subdomain" validate:"required,subdomain"`
	Color     *string `json:"branding_color" validate:"omitempty,hexcolor6"`
	Status    string  `json:"status" validate:"omitempty,participant_status"`
}

func TestValidator_Struct(t *testing.T) {
	bad := "blue"

	tests := []struct {
		name          string
		input         tenantInput
		expectedField string
	}{
		{name: "valid", input: tenantInput{Name: "Acme", Subdomain: "acme-01"}},
		{name: "bad subdomain", input: tenantInput{Name: "Acme", Subdomain: "My_Tenant!"}, expectedField: "subdomain"},
		{name: "uppercase subdomain", input: tenantInput{Name: "Acme", Subdomain: "Acme"}, expectedField: "subdomain"},
		{name: "missing name", input: tenantInput{Subdomain: "acme"}, expectedField: "tenant_name"},
		{name: "bad color", input: tenantInput{Name: "Acme", Subdomain: "acme", Color: &bad}, expectedField: "branding_color"},
		{name: "bad status", input: tenantInput{Name: "Acme", Subdomain: "acme", Status: "guest"}, expectedField: "status"},
	}

	v := NewValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)

			if tt.expectedField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			e, ok := types.AsError(err)
			if !ok || e.Code != types.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}

			details, ok := e.Details.([]FieldError)
			if !ok || len(details) == 0 || details[0].Field != tt.expectedField {
				t.Errorf("expected error on %s, got %+v", tt.expectedField, e.Details)
			}
		})
	}
}

func TestValidator_ID(t *testing.T) {
	v := NewValidator()

	if err := v.ID("tenant_id", "0190f0b6-7a4e-7c3a-9a51-6f1c1f4b9d10"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := v.ID("tenant_id", "t1"); !errors.Is(err, types.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}
