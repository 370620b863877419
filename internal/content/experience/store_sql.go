// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package experience

import (
	"context"
	"errors"
	"fmt"

	"github.com/taibuivan/folio/internal/platform/database/schema"
	"github.com/taibuivan/folio/internal/platform/dberr"
	"github.com/taibuivan/folio/internal/platform/storage"
)

// SQLRepository implements Repository on top of the storage adapter,
// so the same queries serve SQLite and PostgreSQL.
type SQLRepository struct {
	db storage.Adapter
}

func NewSQLRepository(db storage.Adapter) *SQLRepository {
	return &SQLRepository{db: db}
}

/*
List returns all experience entries carrying a translation in the given
language, newest position first within manual ordering.

Entries without a translation in that language are omitted entirely;
there is no fallback to another language.
*/
func (repository *SQLRepository) List(context context.Context, languageCode string) ([]*Entry, error) {
	query := fmt.Sprintf(`
		SELECT e.%s, e.%s, e.%s, e.%s, e.%s, t.%s, t.%s, t.%s
		FROM %s e
		INNER JOIN %s t ON t.%s = e.%s
		WHERE t.%s = ?
		ORDER BY e.%s ASC, e.%s DESC;
	`,
		schema.Experience.ID,
		schema.Experience.StartDate,
		schema.Experience.EndDate,
		schema.Experience.CompanyURL,
		schema.Experience.SortOrder,
		schema.ExperienceTranslation.JobTitle,
		schema.ExperienceTranslation.CompanyName,
		schema.ExperienceTranslation.Description,
		schema.Experience.Table,
		schema.ExperienceTranslation.Table,
		schema.ExperienceTranslation.ExperienceID,
		schema.Experience.ID,
		schema.ExperienceTranslation.LanguageCode,
		schema.Experience.SortOrder,
		schema.Experience.StartDate,
	)

	rows, err := repository.db.Query(context, query, languageCode)
	if err != nil {
		return nil, dberr.Wrap(err, "list_experience")
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry := &Entry{}
		if err := rows.Scan(
			&entry.ID,
			&entry.StartDate,
			&entry.EndDate,
			&entry.CompanyURL,
			&entry.SortOrder,
			&entry.JobTitle,
			&entry.CompanyName,
			&entry.Description,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_experience")
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Create inserts the base row and returns its generated id.
func (repository *SQLRepository) Create(context context.Context, experience *Experience) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES (?, ?, ?, ?)
		RETURNING %s;
	`,
		schema.Experience.Table,
		schema.Experience.StartDate,
		schema.Experience.EndDate,
		schema.Experience.CompanyURL,
		schema.Experience.SortOrder,
		schema.Experience.ID,
	)

	var id int64
	err := repository.db.QueryRow(context, query,
		experience.StartDate,
		experience.EndDate,
		experience.CompanyURL,
		experience.SortOrder,
	).Scan(&id)
	if err != nil {
		return 0, dberr.Wrap(err, "create_experience")
	}

	experience.ID = id
	return id, nil
}

/*
UpsertTranslation writes the translation for one (experience, language)
pair: an existing row is updated in place, otherwise a new row is
inserted. The UNIQUE constraint on the pair never trips because the
lookup and the write run on the same connection.
*/
func (repository *SQLRepository) UpsertTranslation(context context.Context, translation *Translation) error {
	selectQuery := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = ? AND %s = ?;
	`,
		schema.ExperienceTranslation.ID,
		schema.ExperienceTranslation.Table,
		schema.ExperienceTranslation.ExperienceID,
		schema.ExperienceTranslation.LanguageCode,
	)

	var existingID int64
	err := repository.db.QueryRow(context, selectQuery, translation.ExperienceID, translation.LanguageCode).Scan(&existingID)

	switch {
	case errors.Is(err, storage.ErrNoRows):
		insertQuery := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s, %s)
			VALUES (?, ?, ?, ?, ?);
		`,
			schema.ExperienceTranslation.Table,
			schema.ExperienceTranslation.ExperienceID,
			schema.ExperienceTranslation.LanguageCode,
			schema.ExperienceTranslation.JobTitle,
			schema.ExperienceTranslation.CompanyName,
			schema.ExperienceTranslation.Description,
		)
		return dberr.Wrap(repository.db.Exec(context, insertQuery,
			translation.ExperienceID,
			translation.LanguageCode,
			translation.JobTitle,
			translation.CompanyName,
			translation.Description,
		), "insert_experience_translation")

	case err != nil:
		return dberr.Wrap(err, "find_experience_translation")

	default:
		updateQuery := fmt.Sprintf(`
			UPDATE %s SET %s = ?, %s = ?, %s = ? WHERE %s = ?;
		`,
			schema.ExperienceTranslation.Table,
			schema.ExperienceTranslation.JobTitle,
			schema.ExperienceTranslation.CompanyName,
			schema.ExperienceTranslation.Description,
			schema.ExperienceTranslation.ID,
		)
		return dberr.Wrap(repository.db.Exec(context, updateQuery,
			translation.JobTitle,
			translation.CompanyName,
			translation.Description,
			existingID,
		), "update_experience_translation")
	}
}

/*
CreateWithTranslations inserts the base row and all given translations
in a single transaction, so an entry can never become visible without
its text.
*/
func (repository *SQLRepository) CreateWithTranslations(context context.Context, experience *Experience, translations []*Translation) (int64, error) {
	var id int64
	err := repository.db.InTx(context, func(tx storage.Adapter) error {
		scoped := NewSQLRepository(tx)

		var err error
		if id, err = scoped.Create(context, experience); err != nil {
			return err
		}

		for _, translation := range translations {
			translation.ExperienceID = id
			if err := scoped.UpsertTranslation(context, translation); err != nil {
				return err
			}
		}
		return nil
	})
	return id, err
}

// Delete removes the base row; translations follow via ON DELETE CASCADE.
func (repository *SQLRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`
		DELETE FROM %s WHERE %s = ?;
	`,
		schema.Experience.Table,
		schema.Experience.ID,
	)
	return dberr.Wrap(repository.db.Exec(context, query, id), "delete_experience")
}
