// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package publication_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/content/publication"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/storage"
)

func newService(t *testing.T) *publication.Service {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := storage.NewSQLite(":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, storage.Migrate(context.Background(), db, logger))

	return publication.NewService(publication.NewSQLRepository(db), logger)
}

func save(t *testing.T, service *publication.Service, year, sortOrder int, title string) {
	t.Helper()

	_, err := service.Save(context.Background(), publication.SaveInput{
		Year:      year,
		Venue:     "ICML",
		Authors:   "Bui Van, T.",
		SortOrder: sortOrder,
		TitleEN:   title,
		TitleDE:   title + " (de)",
	})
	require.NoError(t, err)
}

/*
TestPublicationService_Ordering: newest year first, manual order inside
a year.
*/
func TestPublicationService_Ordering(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	save(t, service, 2020, 0, "Oldest")
	save(t, service, 2024, 2, "Second")
	save(t, service, 2024, 1, "First")

	entries, err := service.List(ctx, "en")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "First", entries[0].Title)
	assert.Equal(t, "Second", entries[1].Title)
	assert.Equal(t, "Oldest", entries[2].Title)
}

/*
TestPublicationService_TranslatedTitles: each language sees its own
title while the bibliographic fields stay shared.
*/
func TestPublicationService_TranslatedTitles(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	save(t, service, 2023, 0, "Attention Everywhere")

	de, err := service.List(ctx, "de")
	require.NoError(t, err)
	require.Len(t, de, 1)
	assert.Equal(t, "Attention Everywhere (de)", de[0].Title)
	assert.Equal(t, "ICML", de[0].Venue)
	assert.Equal(t, 2023, de[0].Year)
}

/*
TestPublicationService_SaveValidation rejects implausible years and
missing bibliographic fields.
*/
func TestPublicationService_SaveValidation(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	_, err := service.Save(ctx, publication.SaveInput{
		Year:    0,
		Venue:   "ICML",
		Authors: "Bui Van, T.",
		TitleEN: "Paper",
		TitleDE: "Papier",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	require.Len(t, ae.Details, 1)
	assert.Equal(t, "year", ae.Details[0].Field)
}
