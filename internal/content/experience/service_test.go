// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package experience_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/content/experience"
	"github.com/taibuivan/folio/internal/platform/apperr"
)

func newService(t *testing.T) *experience.Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return experience.NewService(newRepo(t), logger)
}

/*
TestExperienceService_Save persists one form submission and checks
that both language variants land atomically.
*/
func TestExperienceService_Save(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	id, err := service.Save(ctx, experience.SaveInput{
		StartDate:     "2019-09-01",
		EndDate:       "2023-03-31",
		JobTitle:      "Backend Engineer",
		CompanyName:   "Acme",
		DescriptionEN: "APIs and databases",
		DescriptionDE: "APIs und Datenbanken",
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	en, err := service.List(ctx, "en")
	require.NoError(t, err)
	require.Len(t, en, 1)
	assert.Equal(t, "APIs and databases", en[0].Description)
	require.NotNil(t, en[0].EndDate)

	de, err := service.List(ctx, "de")
	require.NoError(t, err)
	require.Len(t, de, 1)
	assert.Equal(t, "APIs und Datenbanken", de[0].Description)
	// Shared, untranslated fields appear identically in both languages.
	assert.Equal(t, "Backend Engineer", de[0].JobTitle)
}

/*
TestExperienceService_SaveValidation rejects bad dates and missing
required fields before touching storage.
*/
func TestExperienceService_SaveValidation(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	tests := []struct {
		name  string
		input experience.SaveInput
	}{
		{"missing_job_title", experience.SaveInput{StartDate: "2020-01-01", CompanyName: "Acme"}},
		{"missing_company", experience.SaveInput{StartDate: "2020-01-01", JobTitle: "Engineer"}},
		{"bad_start_date", experience.SaveInput{StartDate: "01.02.2020", JobTitle: "Engineer", CompanyName: "Acme"}},
		{"bad_end_date", experience.SaveInput{StartDate: "2020-01-01", EndDate: "soon", JobTitle: "Engineer", CompanyName: "Acme"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Save(ctx, tt.input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		})
	}

	// Nothing may have been written by the rejected submissions.
	entries, err := service.List(ctx, "en")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

/*
TestExperienceService_EmptyEndDateMeansOngoing: an omitted end date is
stored as NULL, not as an empty string.
*/
func TestExperienceService_EmptyEndDateMeansOngoing(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	_, err := service.Save(ctx, experience.SaveInput{
		StartDate:   "2024-01-01",
		JobTitle:    "Engineer",
		CompanyName: "Acme",
	})
	require.NoError(t, err)

	entries, err := service.List(ctx, "en")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].EndDate)
	assert.True(t, entries[0].Current())
}
