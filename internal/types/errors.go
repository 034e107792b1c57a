// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"
)

// Error is the base of the domain error taxonomy.
type Error struct {
	Code    ErrorCode
	Message string
	Details any
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches a bare sentinel (no message) by code, so errors.Is(err, ErrUnauthorized)
// holds for every unauthorized error regardless of its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Message == "" {
		return t.Code == e.Code
	}
	return t.Code == e.Code && t.Message == e.Message
}

var (
	ErrUnauthorized = &Error{Code: CodeUnauthorized}
	ErrNotFound     = &Error{Code: CodeNotFound}
	ErrValidation   = &Error{Code: CodeValidation}
)

func NewUnauthorizedError(format string, args ...any) *Error {
	return &Error{Code: CodeUnauthorized, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewValidationError(message string, details any) *Error {
	return &Error{Code: CodeValidation, Message: message, Details: details}
}

// AsError extracts the domain error from a wrapped chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
