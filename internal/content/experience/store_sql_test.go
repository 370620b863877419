// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package experience_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/content/experience"
	"github.com/taibuivan/folio/internal/platform/database/schema"
	"github.com/taibuivan/folio/internal/platform/storage"
	"github.com/taibuivan/folio/pkg/pointer"
)

func newRepo(t *testing.T) *experience.SQLRepository {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := storage.NewSQLite(":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, storage.Migrate(context.Background(), db, logger))

	return experience.NewSQLRepository(db)
}

func seedEntry(t *testing.T, repo *experience.SQLRepository, exp *experience.Experience, translations ...*experience.Translation) int64 {
	t.Helper()

	id, err := repo.CreateWithTranslations(context.Background(), exp, translations)
	require.NoError(t, err)
	return id
}

/*
TestExperienceRepository_Roundtrip creates an entry with both languages
and reads it back in each.
*/
func TestExperienceRepository_Roundtrip(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	id := seedEntry(t, repo,
		&experience.Experience{StartDate: "2020-04-01", CompanyURL: "https://example.com"},
		&experience.Translation{LanguageCode: "en", JobTitle: "Engineer", CompanyName: "Acme", Description: "Built things"},
		&experience.Translation{LanguageCode: "de", JobTitle: "Ingenieur", CompanyName: "Acme", Description: "Dinge gebaut"},
	)
	assert.Positive(t, id)

	en, err := repo.List(ctx, "en")
	require.NoError(t, err)
	require.Len(t, en, 1)
	assert.Equal(t, "Engineer", en[0].JobTitle)
	assert.Equal(t, "https://example.com", en[0].CompanyURL)
	assert.Nil(t, en[0].EndDate)
	assert.True(t, en[0].Current())

	de, err := repo.List(ctx, "de")
	require.NoError(t, err)
	require.Len(t, de, 1)
	assert.Equal(t, "Ingenieur", de[0].JobTitle)
}

/*
TestExperienceRepository_MissingLanguageOmitted: an entry with only an
English translation must not appear in the German listing at all.
*/
func TestExperienceRepository_MissingLanguageOmitted(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	seedEntry(t, repo,
		&experience.Experience{StartDate: "2021-01-01"},
		&experience.Translation{LanguageCode: "en", JobTitle: "Engineer", CompanyName: "Acme"},
	)

	de, err := repo.List(ctx, "de")
	require.NoError(t, err)
	assert.Empty(t, de)
}

/*
TestExperienceRepository_Ordering: manual sort order wins, then newer
start dates come first.
*/
func TestExperienceRepository_Ordering(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	seedEntry(t, repo,
		&experience.Experience{StartDate: "2018-01-01", SortOrder: 2},
		&experience.Translation{LanguageCode: "en", JobTitle: "Oldest", CompanyName: "A"},
	)
	seedEntry(t, repo,
		&experience.Experience{StartDate: "2020-01-01", SortOrder: 1},
		&experience.Translation{LanguageCode: "en", JobTitle: "Older", CompanyName: "B"},
	)
	seedEntry(t, repo,
		&experience.Experience{StartDate: "2023-01-01", SortOrder: 1},
		&experience.Translation{LanguageCode: "en", JobTitle: "Newest", CompanyName: "C"},
	)

	entries, err := repo.List(ctx, "en")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Newest", entries[0].JobTitle)
	assert.Equal(t, "Older", entries[1].JobTitle)
	assert.Equal(t, "Oldest", entries[2].JobTitle)
}

/*
TestExperienceRepository_UpsertTranslation: writing the same language
twice updates in place instead of duplicating.
*/
func TestExperienceRepository_UpsertTranslation(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	id := seedEntry(t, repo,
		&experience.Experience{StartDate: "2020-01-01", EndDate: pointer.To("2022-06-30")},
		&experience.Translation{LanguageCode: "en", JobTitle: "Engineer", CompanyName: "Acme"},
	)

	require.NoError(t, repo.UpsertTranslation(ctx, &experience.Translation{
		ExperienceID: id,
		LanguageCode: "en",
		JobTitle:     "Senior Engineer",
		CompanyName:  "Acme",
	}))

	entries, err := repo.List(ctx, "en")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Senior Engineer", entries[0].JobTitle)
	require.NotNil(t, entries[0].EndDate)
	assert.Equal(t, "2022-06-30", *entries[0].EndDate)
}

// brokenWrites delegates to a real adapter but fails every Exec, also
// inside transactions. The base insert goes through QueryRow and
// succeeds; the first translation write does not.
type brokenWrites struct {
	storage.Adapter
}

func (db brokenWrites) InTx(ctx context.Context, fn func(tx storage.Adapter) error) error {
	return db.Adapter.InTx(ctx, func(tx storage.Adapter) error {
		return fn(brokenWrites{tx})
	})
}

func (brokenWrites) Exec(context.Context, string, ...any) error {
	return errors.New("write failed")
}

/*
TestExperienceRepository_CreateRollsBackOnTranslationFailure: when a
translation write fails mid-create, the already-inserted base row must
be rolled back with it. No entry may exist without its text.
*/
func TestExperienceRepository_CreateRollsBackOnTranslationFailure(t *testing.T) {
	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := storage.NewSQLite(":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, storage.Migrate(ctx, db, logger))

	repo := experience.NewSQLRepository(brokenWrites{db})
	_, err = repo.CreateWithTranslations(ctx,
		&experience.Experience{StartDate: "2020-01-01"},
		[]*experience.Translation{
			{LanguageCode: "en", JobTitle: "Engineer", CompanyName: "Acme"},
		},
	)
	require.Error(t, err)

	var count int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", schema.Experience.Table)
	require.NoError(t, db.QueryRow(ctx, countQuery).Scan(&count))
	assert.Zero(t, count)
}

/*
TestExperienceRepository_Delete removes the entry from every language
listing in one call.
*/
func TestExperienceRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	id := seedEntry(t, repo,
		&experience.Experience{StartDate: "2020-01-01"},
		&experience.Translation{LanguageCode: "en", JobTitle: "Engineer", CompanyName: "Acme"},
		&experience.Translation{LanguageCode: "de", JobTitle: "Ingenieur", CompanyName: "Acme"},
	)

	require.NoError(t, repo.Delete(ctx, id))

	for _, lang := range []string{"en", "de"} {
		entries, err := repo.List(ctx, lang)
		require.NoError(t, err)
		assert.Empty(t, entries, lang)
	}
}
