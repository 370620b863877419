// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Folio", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "tai@example.com", true},
		{"missing_at", "tai.example.com", false},
		{"missing_domain", "tai@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Date enforces the ISO storage format for start dates,
while OptionalDate lets an end date be absent entirely.
*/
func TestValidator_Date(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		optional bool
		isValid  bool
	}{
		{"iso_date", "2024-03-01", false, true},
		{"german_format", "01.03.2024", false, false},
		{"missing_day", "2024-03", false, false},
		{"empty_required", "", false, false},
		{"empty_optional", "", true, true},
		{"bad_optional", "yesterday", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			if tt.optional {
				v.OptionalDate("end_date", tt.value)
			} else {
				v.Date("start_date", tt.value)
			}

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Language accepts only the supported content languages.
*/
func TestValidator_Language(t *testing.T) {
	supported := []string{"en", "de"}

	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"english", "en", true},
		{"german", "de", true},
		{"french", "fr", false},
		{"empty", "", false},
		{"uppercase", "EN", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Language("lang", tt.value, supported)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Range checks inclusive integer bounds.
*/
func TestValidator_Range(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		isValid bool
	}{
		{"lower_bound", 1900, true},
		{"upper_bound", 2100, true},
		{"inside", 2024, true},
		{"below", 1899, false},
		{"zero", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Range("year", tt.value, 1900, 2100)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Chaining collects every failure instead of stopping at
the first one.
*/
func TestValidator_Chaining(t *testing.T) {
	v := &validate.Validator{}
	v.Required("job_title", "").
		Required("company_name", "").
		Date("start_date", "not-a-date")

	require.True(t, v.HasErrors())

	ae := apperr.As(v.Err())
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 3)
}
