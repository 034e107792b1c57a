// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/storage"
	domain "github.com/canonical/chapter-service/internal/types"
)

const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, code int, body any, logger logging.LoggerInterface) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Errorf("failed to encode response: %v", err)
	}
}

// WriteError maps err onto the API error contract. Server-side failures are logged
// and answered with a generic message.
func WriteError(w http.ResponseWriter, err error, logger logging.LoggerInterface) {
	code, body := errorResponse(err)
	if code >= http.StatusInternalServerError {
		logger.Errorf("request failed: %v", err)
	}

	WriteJSON(w, code, body, logger)
}

func errorResponse(err error) (int, ErrorResponse) {
	if e, ok := domain.AsError(err); ok {
		switch e.Code {
		case domain.CodeUnauthorized:
			return http.StatusForbidden, ErrorResponse{Error: "Forbidden", Message: e.Message}
		case domain.CodeValidation:
			return http.StatusBadRequest, ErrorResponse{Error: "Validation error", Message: e.Message, Details: e.Details}
		case domain.CodeNotFound:
			return http.StatusNotFound, ErrorResponse{Error: "Not found", Message: e.Message}
		}
	}

	switch {
	case errors.Is(err, storage.ErrDuplicateKey):
		return http.StatusConflict, ErrorResponse{Error: "Conflict", Message: "Resource already exists"}
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Error: "Not found", Message: "Resource not found"}
	case errors.Is(err, storage.ErrInvalidValue):
		return http.StatusBadRequest, ErrorResponse{Error: "Validation error", Message: "Invalid value"}
	case errors.Is(err, storage.ErrForeignKeyViolation):
		return http.StatusBadRequest, ErrorResponse{Error: "Validation error", Message: "Referenced resource does not exist"}
	}

	return http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Message: "An unexpected error occurred"}
}

// DecodeJSON reads a bounded JSON body into v, rejecting unknown fields.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return domain.NewValidationError("Request body must be valid JSON", err.Error())
	}

	return nil
}
