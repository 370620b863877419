// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively in the service layer — never in handlers or
// storage. It ensures that business logic only operates on semantically valid data.
package validate

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/taibuivan/folio/internal/platform/apperr"
)

// dateLayout is the ISO date format all start/end dates are stored in.
const dateLayout = "2006-01-02"

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// Range fails if the value is outside the [min, max] range (inclusive).
func (v *Validator) Range(field string, value, min, max int) *Validator {
	if value < min || value > max {
		v.add(field, fmt.Sprintf("Must be between %d and %d", min, max))
	}
	return v
}

// Email fails if the value is not a valid RFC 5322 email address.
func (v *Validator) Email(field, value string) *Validator {
	if _, err := mail.ParseAddress(value); err != nil {
		v.add(field, "Must be a valid email address")
	}
	return v
}

// Date fails if the value is not an ISO date (YYYY-MM-DD).
func (v *Validator) Date(field, value string) *Validator {
	if _, err := time.Parse(dateLayout, value); err != nil {
		v.add(field, "Must be a date in YYYY-MM-DD format")
	}
	return v
}

// OptionalDate accepts an empty value, otherwise applies [Validator.Date].
// An absent end date means "ongoing/present".
func (v *Validator) OptionalDate(field, value string) *Validator {
	if value == "" {
		return v
	}
	return v.Date(field, value)
}

// Language fails unless the value is one of the supported content languages.
func (v *Validator) Language(field, value string, supported []string) *Validator {
	for _, code := range supported {
		if code == value {
			return v
		}
	}
	v.add(field, fmt.Sprintf("Must be one of: %s", strings.Join(supported, ", ")))
	return v
}

// add appends a field error to the collection.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// HasErrors reports whether any rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// Err returns a single [apperr.AppError] carrying every collected field
// error, or nil if all rules passed.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}
