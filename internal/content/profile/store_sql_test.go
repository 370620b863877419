// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/content/profile"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/storage"
)

func newRepo(t *testing.T) *profile.SQLRepository {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := storage.NewSQLite(":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, storage.Migrate(context.Background(), db, logger))

	return profile.NewSQLRepository(db)
}

/*
TestProfileRepository_GetMissing: an unconfigured profile is reported
as absent, not as an error.
*/
func TestProfileRepository_GetMissing(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	view, err := repo.Get(ctx, "en")
	require.NoError(t, err)
	assert.Nil(t, view)
}

/*
TestProfileRepository_Singleton: repeated saves always converge on the
same fixed row instead of accumulating profiles.
*/
func TestProfileRepository_Singleton(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	first, err := repo.Upsert(ctx, &profile.Profile{Email: "a@example.com"})
	require.NoError(t, err)
	assert.EqualValues(t, constants.ProfileID, first)

	second, err := repo.Upsert(ctx, &profile.Profile{Email: "b@example.com"})
	require.NoError(t, err)
	assert.EqualValues(t, constants.ProfileID, second)

	require.NoError(t, repo.UpsertTranslation(ctx, &profile.Translation{
		ProfileID:    second,
		LanguageCode: "en",
		Name:         "Tai",
	}))

	view, err := repo.Get(ctx, "en")
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, "b@example.com", view.Email, "second save must overwrite, not duplicate")
}

/*
TestProfileRepository_PerLanguageSave: saving one language leaves the
other language's text untouched while contact fields are shared.
*/
func TestProfileRepository_PerLanguageSave(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	require.NoError(t, repo.Save(ctx,
		&profile.Profile{Email: "tai@example.com", GithubURL: "https://github.com/tai"},
		&profile.Translation{LanguageCode: "en", Name: "Tai", Title: "Engineer", AboutMe: "Hello"},
	))

	// German is not written yet.
	de, err := repo.Get(ctx, "de")
	require.NoError(t, err)
	assert.Nil(t, de)

	require.NoError(t, repo.Save(ctx,
		&profile.Profile{Email: "tai@example.com", GithubURL: "https://github.com/tai"},
		&profile.Translation{LanguageCode: "de", Name: "Tai", Title: "Ingenieur", AboutMe: "Hallo"},
	))

	en, err := repo.Get(ctx, "en")
	require.NoError(t, err)
	require.NotNil(t, en)
	assert.Equal(t, "Engineer", en.Title)

	de, err = repo.Get(ctx, "de")
	require.NoError(t, err)
	require.NotNil(t, de)
	assert.Equal(t, "Ingenieur", de.Title)
	assert.Equal(t, "tai@example.com", de.Email)
}

/*
TestProfileRepository_TranslationUpdate overwrites existing text for a
language in place.
*/
func TestProfileRepository_TranslationUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	require.NoError(t, repo.Save(ctx,
		&profile.Profile{},
		&profile.Translation{LanguageCode: "en", Name: "Tai", AboutMe: "v1"},
	))
	require.NoError(t, repo.Save(ctx,
		&profile.Profile{},
		&profile.Translation{LanguageCode: "en", Name: "Tai", AboutMe: "v2"},
	))

	view, err := repo.Get(ctx, "en")
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, "v2", view.AboutMe)
}
