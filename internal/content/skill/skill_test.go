// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package skill_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/content/skill"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/storage"
)

func newService(t *testing.T) *skill.Service {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := storage.NewSQLite(":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, storage.Migrate(context.Background(), db, logger))

	return skill.NewService(skill.NewSQLRepository(db), logger)
}

/*
TestSkillService_SaveAndList: skills come back ordered by category and
carry the name of the requested language.
*/
func TestSkillService_SaveAndList(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	_, err := service.Save(ctx, skill.SaveInput{Category: "Languages", NameEN: "German", NameDE: "Deutsch"})
	require.NoError(t, err)
	_, err = service.Save(ctx, skill.SaveInput{Category: "Backend", NameEN: "Go", NameDE: "Go"})
	require.NoError(t, err)

	en, err := service.List(ctx, "en")
	require.NoError(t, err)
	require.Len(t, en, 2)
	assert.Equal(t, "Backend", en[0].Category, "categories sort alphabetically")
	assert.Equal(t, "Go", en[0].Name)

	de, err := service.List(ctx, "de")
	require.NoError(t, err)
	require.Len(t, de, 2)
	assert.Equal(t, "Deutsch", de[1].Name)
}

/*
TestSkillService_SaveValidation: both names and the category are
mandatory for the inline form.
*/
func TestSkillService_SaveValidation(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	_, err := service.Save(ctx, skill.SaveInput{Category: "Backend", NameEN: "Go"})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	require.Len(t, ae.Details, 1)
	assert.Equal(t, "name_de", ae.Details[0].Field)
}

/*
TestSkillService_Delete removes the skill for both languages at once.
*/
func TestSkillService_Delete(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	id, err := service.Save(ctx, skill.SaveInput{Category: "Backend", NameEN: "Go", NameDE: "Go"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, id))

	for _, lang := range []string{"en", "de"} {
		entries, err := service.List(ctx, lang)
		require.NoError(t, err)
		assert.Empty(t, entries, lang)
	}
}

/*
TestGroupByCategory folds an ordered list into per-category groups.
*/
func TestGroupByCategory(t *testing.T) {
	entries := []*skill.Entry{
		{Skill: skill.Skill{ID: 1, Category: "Backend"}, Name: "Go"},
		{Skill: skill.Skill{ID: 2, Category: "Backend"}, Name: "PostgreSQL"},
		{Skill: skill.Skill{ID: 3, Category: "Frontend"}, Name: "HTML"},
	}

	groups := skill.GroupByCategory(entries)
	require.Len(t, groups, 2)
	assert.Equal(t, "Backend", groups[0].Category)
	assert.Len(t, groups[0].Entries, 2)
	assert.Equal(t, "Frontend", groups[1].Category)
	assert.Len(t, groups[1].Entries, 1)

	assert.Empty(t, skill.GroupByCategory(nil))
}
