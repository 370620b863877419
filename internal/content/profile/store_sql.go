// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/database/schema"
	"github.com/taibuivan/folio/internal/platform/dberr"
	"github.com/taibuivan/folio/internal/platform/storage"
)

type SQLRepository struct {
	db storage.Adapter
}

func NewSQLRepository(db storage.Adapter) *SQLRepository {
	return &SQLRepository{db: db}
}

/*
Get returns the profile translated into the given language.

A missing base row and a missing translation are both reported as
(nil, nil): the public page treats either as "nothing to show yet",
not as a failure.
*/
func (repository *SQLRepository) Get(context context.Context, languageCode string) (*View, error) {
	query := fmt.Sprintf(`
		SELECT p.%s, p.%s, p.%s, p.%s, p.%s, t.%s, t.%s, t.%s, t.%s, t.%s
		FROM %s p
		INNER JOIN %s t ON t.%s = p.%s
		WHERE p.%s = ? AND t.%s = ?;
	`,
		schema.Profile.ID,
		schema.Profile.Email,
		schema.Profile.Phone,
		schema.Profile.GithubURL,
		schema.Profile.LinkedinURL,
		schema.ProfileTranslation.LanguageCode,
		schema.ProfileTranslation.Name,
		schema.ProfileTranslation.Title,
		schema.ProfileTranslation.AboutMe,
		schema.ProfileTranslation.Location,
		schema.Profile.Table,
		schema.ProfileTranslation.Table,
		schema.ProfileTranslation.ProfileID,
		schema.Profile.ID,
		schema.Profile.ID,
		schema.ProfileTranslation.LanguageCode,
	)

	view := &View{}
	err := repository.db.QueryRow(context, query, constants.ProfileID, languageCode).Scan(
		&view.ID,
		&view.Email,
		&view.Phone,
		&view.GithubURL,
		&view.LinkedinURL,
		&view.LanguageCode,
		&view.Name,
		&view.Title,
		&view.AboutMe,
		&view.Location,
	)
	if errors.Is(err, storage.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_profile")
	}

	return view, nil
}

// Upsert writes the base row, creating it with the fixed singleton id
// on first save and updating it in place afterwards.
func (repository *SQLRepository) Upsert(context context.Context, profile *Profile) (int64, error) {
	selectQuery := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = ?;
	`,
		schema.Profile.ID,
		schema.Profile.Table,
		schema.Profile.ID,
	)

	var existingID int64
	err := repository.db.QueryRow(context, selectQuery, constants.ProfileID).Scan(&existingID)

	switch {
	case errors.Is(err, storage.ErrNoRows):
		insertQuery := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s, %s)
			VALUES (?, ?, ?, ?, ?);
		`,
			schema.Profile.Table,
			schema.Profile.ID,
			schema.Profile.Email,
			schema.Profile.Phone,
			schema.Profile.GithubURL,
			schema.Profile.LinkedinURL,
		)
		if err := repository.db.Exec(context, insertQuery,
			constants.ProfileID,
			profile.Email,
			profile.Phone,
			profile.GithubURL,
			profile.LinkedinURL,
		); err != nil {
			return 0, dberr.Wrap(err, "insert_profile")
		}

	case err != nil:
		return 0, dberr.Wrap(err, "find_profile")

	default:
		updateQuery := fmt.Sprintf(`
			UPDATE %s SET %s = ?, %s = ?, %s = ?, %s = ? WHERE %s = ?;
		`,
			schema.Profile.Table,
			schema.Profile.Email,
			schema.Profile.Phone,
			schema.Profile.GithubURL,
			schema.Profile.LinkedinURL,
			schema.Profile.ID,
		)
		if err := repository.db.Exec(context, updateQuery,
			profile.Email,
			profile.Phone,
			profile.GithubURL,
			profile.LinkedinURL,
			constants.ProfileID,
		); err != nil {
			return 0, dberr.Wrap(err, "update_profile")
		}
	}

	profile.ID = constants.ProfileID
	return constants.ProfileID, nil
}

func (repository *SQLRepository) UpsertTranslation(context context.Context, translation *Translation) error {
	selectQuery := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = ? AND %s = ?;
	`,
		schema.ProfileTranslation.ID,
		schema.ProfileTranslation.Table,
		schema.ProfileTranslation.ProfileID,
		schema.ProfileTranslation.LanguageCode,
	)

	var existingID int64
	err := repository.db.QueryRow(context, selectQuery, translation.ProfileID, translation.LanguageCode).Scan(&existingID)

	switch {
	case errors.Is(err, storage.ErrNoRows):
		insertQuery := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s, %s, %s)
			VALUES (?, ?, ?, ?, ?, ?);
		`,
			schema.ProfileTranslation.Table,
			schema.ProfileTranslation.ProfileID,
			schema.ProfileTranslation.LanguageCode,
			schema.ProfileTranslation.Name,
			schema.ProfileTranslation.Title,
			schema.ProfileTranslation.AboutMe,
			schema.ProfileTranslation.Location,
		)
		return dberr.Wrap(repository.db.Exec(context, insertQuery,
			translation.ProfileID,
			translation.LanguageCode,
			translation.Name,
			translation.Title,
			translation.AboutMe,
			translation.Location,
		), "insert_profile_translation")

	case err != nil:
		return dberr.Wrap(err, "find_profile_translation")

	default:
		updateQuery := fmt.Sprintf(`
			UPDATE %s SET %s = ?, %s = ?, %s = ?, %s = ? WHERE %s = ?;
		`,
			schema.ProfileTranslation.Table,
			schema.ProfileTranslation.Name,
			schema.ProfileTranslation.Title,
			schema.ProfileTranslation.AboutMe,
			schema.ProfileTranslation.Location,
			schema.ProfileTranslation.ID,
		)
		return dberr.Wrap(repository.db.Exec(context, updateQuery,
			translation.Name,
			translation.Title,
			translation.AboutMe,
			translation.Location,
			existingID,
		), "update_profile_translation")
	}
}

// Save writes the base row and the given translation in one
// transaction, so a half-updated profile is never observable.
func (repository *SQLRepository) Save(context context.Context, profile *Profile, translation *Translation) error {
	return repository.db.InTx(context, func(tx storage.Adapter) error {
		scoped := NewSQLRepository(tx)

		id, err := scoped.Upsert(context, profile)
		if err != nil {
			return err
		}

		translation.ProfileID = id
		return scoped.UpsertTranslation(context, translation)
	})
}
