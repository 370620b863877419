// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package project

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

// List returns all projects translated into the given language, in
// manual display order. Untranslated projects are omitted.
func (repository *SQLRepository) List(context context.Context, languageCode string) ([]*Entry, error) {
	query := fmt.Sprintf(`
		SELECT p.%s, p.%s, p.%s, p.%s, p.%s, t.%s, t.%s
		FROM %s p
		INNER JOIN %s t ON t.%s = p.%s
		WHERE t.%s = ?
		ORDER BY p.%s ASC;
	`,
		schema.Project.ID,
		schema.Project.ImageURL,
		schema.Project.GithubURL,
		schema.Project.LiveURL,
		schema.Project.SortOrder,
		schema.ProjectTranslation.Title,
		schema.ProjectTranslation.Description,
		schema.Project.Table,
		schema.ProjectTranslation.Table,
		schema.ProjectTranslation.ProjectID,
		schema.Project.ID,
		schema.ProjectTranslation.LanguageCode,
		schema.Project.SortOrder,
	)

	rows, err := repository.db.Query(context, query, languageCode)
	if err != nil {
		return nil, dberr.Wrap(err, "list_projects")
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry := &Entry{}
		if err := rows.Scan(
			&entry.ID,
			&entry.ImageURL,
			&entry.GithubURL,
			&entry.LiveURL,
			&entry.SortOrder,
			&entry.Title,
			&entry.Description,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_project")
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (repository *SQLRepository) Create(context context.Context, project *Project) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES (?, ?, ?, ?)
		RETURNING %s;
	`,
		schema.Project.Table,
		schema.Project.ImageURL,
		schema.Project.GithubURL,
		schema.Project.LiveURL,
		schema.Project.SortOrder,
		schema.Project.ID,
	)

	var id int64
	err := repository.db.QueryRow(context, query,
		project.ImageURL,
		project.GithubURL,
		project.LiveURL,
		project.SortOrder,
	).Scan(&id)
	if err != nil {
		return 0, dberr.Wrap(err, "create_project")
	}

	project.ID = id
	return id, nil
}

func (repository *SQLRepository) UpsertTranslation(context context.Context, translation *Translation) error {
	selectQuery := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = ? AND %s = ?;
	`,
		schema.ProjectTranslation.ID,
		schema.ProjectTranslation.Table,
		schema.ProjectTranslation.ProjectID,
		schema.ProjectTranslation.LanguageCode,
	)

	var existingID int64
	err := repository.db.QueryRow(context, selectQuery, translation.ProjectID, translation.LanguageCode).Scan(&existingID)

	switch {
	case errors.Is(err, storage.ErrNoRows):
		insertQuery := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s)
			VALUES (?, ?, ?, ?);
		`,
			schema.ProjectTranslation.Table,
			schema.ProjectTranslation.ProjectID,
			schema.ProjectTranslation.LanguageCode,
			schema.ProjectTranslation.Title,
			schema.ProjectTranslation.Description,
		)
		return dberr.Wrap(repository.db.Exec(context, insertQuery,
			translation.ProjectID,
			translation.LanguageCode,
			translation.Title,
			translation.Description,
		), "insert_project_translation")

	case err != nil:
		return dberr.Wrap(err, "find_project_translation")

	default:
		updateQuery := fmt.Sprintf(`
			UPDATE %s SET %s = ?, %s = ? WHERE %s = ?;
		`,
			schema.ProjectTranslation.Table,
			schema.ProjectTranslation.Title,
			schema.ProjectTranslation.Description,
			schema.ProjectTranslation.ID,
		)
		return dberr.Wrap(repository.db.Exec(context, updateQuery,
			translation.Title,
			translation.Description,
			existingID,
		), "update_project_translation")
	}
}

func (repository *SQLRepository) CreateWithTranslations(context context.Context, project *Project, translations []*Translation) (int64, error) {
	var id int64
	err := repository.db.InTx(context, func(tx storage.Adapter) error {
		scoped := NewSQLRepository(tx)

		var err error
		if id, err = scoped.Create(context, project); err != nil {
			return err
		}

		for _, translation := range translations {
			translation.ProjectID = id
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
		schema.Project.Table,
		schema.Project.ID,
	)
	return dberr.Wrap(repository.db.Exec(context, query, id), "delete_project")
}
