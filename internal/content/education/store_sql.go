// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package education

import (
	"context"
	"errors"
	"fmt"

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

// List returns all education entries translated into the given
// language. Untranslated entries are omitted, not substituted.
func (repository *SQLRepository) List(context context.Context, languageCode string) ([]*Entry, error) {
	query := fmt.Sprintf(`
		SELECT e.%s, e.%s, e.%s, e.%s, t.%s, t.%s, t.%s
		FROM %s e
		INNER JOIN %s t ON t.%s = e.%s
		WHERE t.%s = ?
		ORDER BY e.%s ASC, e.%s DESC;
	`,
		schema.Education.ID,
		schema.Education.StartDate,
		schema.Education.EndDate,
		schema.Education.SortOrder,
		schema.EducationTranslation.Degree,
		schema.EducationTranslation.Institution,
		schema.EducationTranslation.Description,
		schema.Education.Table,
		schema.EducationTranslation.Table,
		schema.EducationTranslation.EducationID,
		schema.Education.ID,
		schema.EducationTranslation.LanguageCode,
		schema.Education.SortOrder,
		schema.Education.StartDate,
	)

	rows, err := repository.db.Query(context, query, languageCode)
	if err != nil {
		return nil, dberr.Wrap(err, "list_education")
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry := &Entry{}
		if err := rows.Scan(
			&entry.ID,
			&entry.StartDate,
			&entry.EndDate,
			&entry.SortOrder,
			&entry.Degree,
			&entry.Institution,
			&entry.Description,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_education")
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (repository *SQLRepository) Create(context context.Context, education *Education) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES (?, ?, ?)
		RETURNING %s;
	`,
		schema.Education.Table,
		schema.Education.StartDate,
		schema.Education.EndDate,
		schema.Education.SortOrder,
		schema.Education.ID,
	)

	var id int64
	err := repository.db.QueryRow(context, query,
		education.StartDate,
		education.EndDate,
		education.SortOrder,
	).Scan(&id)
	if err != nil {
		return 0, dberr.Wrap(err, "create_education")
	}

	education.ID = id
	return id, nil
}

func (repository *SQLRepository) UpsertTranslation(context context.Context, translation *Translation) error {
	selectQuery := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = ? AND %s = ?;
	`,
		schema.EducationTranslation.ID,
		schema.EducationTranslation.Table,
		schema.EducationTranslation.EducationID,
		schema.EducationTranslation.LanguageCode,
	)

	var existingID int64
	err := repository.db.QueryRow(context, selectQuery, translation.EducationID, translation.LanguageCode).Scan(&existingID)

	switch {
	case errors.Is(err, storage.ErrNoRows):
		insertQuery := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s, %s)
			VALUES (?, ?, ?, ?, ?);
		`,
			schema.EducationTranslation.Table,
			schema.EducationTranslation.EducationID,
			schema.EducationTranslation.LanguageCode,
			schema.EducationTranslation.Degree,
			schema.EducationTranslation.Institution,
			schema.EducationTranslation.Description,
		)
		return dberr.Wrap(repository.db.Exec(context, insertQuery,
			translation.EducationID,
			translation.LanguageCode,
			translation.Degree,
			translation.Institution,
			translation.Description,
		), "insert_education_translation")

	case err != nil:
		return dberr.Wrap(err, "find_education_translation")

	default:
		updateQuery := fmt.Sprintf(`
			UPDATE %s SET %s = ?, %s = ?, %s = ? WHERE %s = ?;
		`,
			schema.EducationTranslation.Table,
			schema.EducationTranslation.Degree,
			schema.EducationTranslation.Institution,
			schema.EducationTranslation.Description,
			schema.EducationTranslation.ID,
		)
		return dberr.Wrap(repository.db.Exec(context, updateQuery,
			translation.Degree,
			translation.Institution,
			translation.Description,
			existingID,
		), "update_education_translation")
	}
}

func (repository *SQLRepository) CreateWithTranslations(context context.Context, education *Education, translations []*Translation) (int64, error) {
	var id int64
	err := repository.db.InTx(context, func(tx storage.Adapter) error {
		scoped := NewSQLRepository(tx)

		var err error
		if id, err = scoped.Create(context, education); err != nil {
			return err
		}

		for _, translation := range translations {
			translation.EducationID = id
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
		schema.Education.Table,
		schema.Education.ID,
	)
	return dberr.Wrap(repository.db.Exec(context, query, id), "delete_education")
}
