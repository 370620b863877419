// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package publication

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

// List returns all publications translated into the given language,
// newest year first. Untranslated publications are omitted.
func (repository *SQLRepository) List(context context.Context, languageCode string) ([]*Entry, error) {
	query := fmt.Sprintf(`
		SELECT p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, t.%s, t.%s
		FROM %s p
		INNER JOIN %s t ON t.%s = p.%s
		WHERE t.%s = ?
		ORDER BY p.%s DESC, p.%s ASC;
	`,
		schema.Publication.ID,
		schema.Publication.Year,
		schema.Publication.Venue,
		schema.Publication.Authors,
		schema.Publication.Link,
		schema.Publication.SortOrder,
		schema.PublicationTranslation.Title,
		schema.PublicationTranslation.Description,
		schema.Publication.Table,
		schema.PublicationTranslation.Table,
		schema.PublicationTranslation.PublicationID,
		schema.Publication.ID,
		schema.PublicationTranslation.LanguageCode,
		schema.Publication.Year,
		schema.Publication.SortOrder,
	)

	rows, err := repository.db.Query(context, query, languageCode)
	if err != nil {
		return nil, dberr.Wrap(err, "list_publications")
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry := &Entry{}
		if err := rows.Scan(
			&entry.ID,
			&entry.Year,
			&entry.Venue,
			&entry.Authors,
			&entry.Link,
			&entry.SortOrder,
			&entry.Title,
			&entry.Description,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_publication")
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (repository *SQLRepository) Create(context context.Context, publication *Publication) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES (?, ?, ?, ?, ?)
		RETURNING %s;
	`,
		schema.Publication.Table,
		schema.Publication.Year,
		schema.Publication.Venue,
		schema.Publication.Authors,
		schema.Publication.Link,
		schema.Publication.SortOrder,
		schema.Publication.ID,
	)

	var id int64
	err := repository.db.QueryRow(context, query,
		publication.Year,
		publication.Venue,
		publication.Authors,
		publication.Link,
		publication.SortOrder,
	).Scan(&id)
	if err != nil {
		return 0, dberr.Wrap(err, "create_publication")
	}

	publication.ID = id
	return id, nil
}

func (repository *SQLRepository) UpsertTranslation(context context.Context, translation *Translation) error {
	selectQuery := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = ? AND %s = ?;
	`,
		schema.PublicationTranslation.ID,
		schema.PublicationTranslation.Table,
		schema.PublicationTranslation.PublicationID,
		schema.PublicationTranslation.LanguageCode,
	)

	var existingID int64
	err := repository.db.QueryRow(context, selectQuery, translation.PublicationID, translation.LanguageCode).Scan(&existingID)

	switch {
	case errors.Is(err, storage.ErrNoRows):
		insertQuery := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s)
			VALUES (?, ?, ?, ?);
		`,
			schema.PublicationTranslation.Table,
			schema.PublicationTranslation.PublicationID,
			schema.PublicationTranslation.LanguageCode,
			schema.PublicationTranslation.Title,
			schema.PublicationTranslation.Description,
		)
		return dberr.Wrap(repository.db.Exec(context, insertQuery,
			translation.PublicationID,
			translation.LanguageCode,
			translation.Title,
			translation.Description,
		), "insert_publication_translation")

	case err != nil:
		return dberr.Wrap(err, "find_publication_translation")

	default:
		updateQuery := fmt.Sprintf(`
			UPDATE %s SET %s = ?, %s = ? WHERE %s = ?;
		`,
			schema.PublicationTranslation.Table,
			schema.PublicationTranslation.Title,
			schema.PublicationTranslation.Description,
			schema.PublicationTranslation.ID,
		)
		return dberr.Wrap(repository.db.Exec(context, updateQuery,
			translation.Title,
			translation.Description,
			existingID,
		), "update_publication_translation")
	}
}

func (repository *SQLRepository) CreateWithTranslations(context context.Context, publication *Publication, translations []*Translation) (int64, error) {
	var id int64
	err := repository.db.InTx(context, func(tx storage.Adapter) error {
		scoped := NewSQLRepository(tx)

		var err error
		if id, err = scoped.Create(context, publication); err != nil {
			return err
		}

		for _, translation := range translations {
			translation.PublicationID = id
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
		schema.Publication.Table,
		schema.Publication.ID,
	)
	return dberr.Wrap(repository.db.Exec(context, query, id), "delete_publication")
}
