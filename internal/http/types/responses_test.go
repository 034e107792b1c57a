// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/storage"
	domain "github.com/canonical/chapter-service/internal/types"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody ErrorResponse
	}{
		{
			name:         "unauthorized",
			err:          domain.NewUnauthorizedError("User u1 does not have access to tenant t2"),
			expectedCode: http.StatusForbidden,
			expectedBody: ErrorResponse{Error: "Forbidden", Message: "User u1 does not have access to tenant t2"},
		},
		{
			name:         "validation with details",
			err:          fmt.Errorf("create: %w", domain.NewValidationError("Invalid subdomain", "subdomain")),
			expectedCode: http.StatusBadRequest,
			expectedBody: ErrorResponse{Error: "Validation error", Message: "Invalid subdomain", Details: "subdomain"},
		},
		{
			name:         "not found",
			err:          domain.NewNotFoundError("Tenant not found"),
			expectedCode: http.StatusNotFound,
			expectedBody: ErrorResponse{Error: "Not found", Message: "Tenant not found"},
		},
		{
			name:         "duplicate key",
			err:          fmt.Errorf("insert tenant: %w", storage.ErrDuplicateKey),
			expectedCode: http.StatusConflict,
			expectedBody: ErrorResponse{Error: "Conflict", Message: "Resource already exists"},
		},
		{
			name:         "unexpected",
			err:          errors.New("pq: connection reset by peer"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: ErrorResponse{Error: "Internal server error", Message: "An unexpected error occurred"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteError(rr, tt.err, logging.NewNoopLogger())

			if rr.Code != tt.expectedCode {
				t.Errorf("expected status %d, got %d", tt.expectedCode, rr.Code)
			}

			var body ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if body.Error != tt.expectedBody.Error || body.Message != tt.expectedBody.Message {
				t.Errorf("expected %+v, got %+v", tt.expectedBody, body)
			}

			if tt.expectedBody.Details != nil && body.Details != tt.expectedBody.Details {
				t.Errorf("expected details %v, got %v", tt.expectedBody.Details, body.Details)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Acme"}`))
	if err := DecodeJSON(httptest.NewRecorder(), req, &v); err != nil || v.Name != "Acme" {
		t.Fatalf("unexpected result %+v %v", v, err)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Acme","owner":"x"}`))
	if err := DecodeJSON(httptest.NewRecorder(), req, &v); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error for unknown field, got %v", err)
	}
}
