// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/chapter-service/internal/types"
)

var (
	subdomainPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
	colorPattern     = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator checks struct tags, including the domain tags "subdomain", "hexcolor6" and "participant_status".
type Validator struct {
	v *validator.Validate
}

// Struct validates s and returns a *types.Error with FieldError details on failure.
func (v *Validator) Struct(s interface{}) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return types.NewValidationError("Invalid input", nil)
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{Field: fe.Field(), Message: message(fe)})
	}

	return types.NewValidationError(details[0].Message, details)
}

// ID rejects identifiers that are not UUIDs before they reach a query.
func (v *Validator) ID(field, value string) error {
	if err := v.v.Var(value, "required,uuid"); err != nil {
		return types.NewValidationError(fmt.Sprintf("%s must be a valid UUID", field), []FieldError{{Field: field, Message: "must be a valid UUID"}})
	}
	return nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "subdomain":
		return fmt.Sprintf("%s may only contain lowercase letters, digits and hyphens", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "participant_status":
		return fmt.Sprintf("%s must be one of: prospect visitor member alumni declined", fe.Field())
	case "hexcolor6":
		return fmt.Sprintf("%s must be a #rrggbb color", fe.Field())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("subdomain", func(fl validator.FieldLevel) bool {
		return subdomainPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
		return colorPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("participant_status", func(fl validator.FieldLevel) bool {
		return types.ParticipantStatus(fl.Field().String()).Valid()
	})

	return &Validator{v: v}
}
