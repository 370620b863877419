// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package skill

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

// List returns all skills translated into the given language, grouped
// by category through ordering. Untranslated skills are omitted.
func (repository *SQLRepository) List(context context.Context, languageCode string) ([]*Entry, error) {
	query := fmt.Sprintf(`
		SELECT s.%s, s.%s, s.%s, t.%s
		FROM %s s
		INNER JOIN %s t ON t.%s = s.%s
		WHERE t.%s = ?
		ORDER BY s.%s ASC, s.%s ASC;
	`,
		schema.Skill.ID,
		schema.Skill.Category,
		schema.Skill.SortOrder,
		schema.SkillTranslation.Name,
		schema.Skill.Table,
		schema.SkillTranslation.Table,
		schema.SkillTranslation.SkillID,
		schema.Skill.ID,
		schema.SkillTranslation.LanguageCode,
		schema.Skill.Category,
		schema.Skill.SortOrder,
	)

	rows, err := repository.db.Query(context, query, languageCode)
	if err != nil {
		return nil, dberr.Wrap(err, "list_skills")
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry := &Entry{}
		if err := rows.Scan(
			&entry.ID,
			&entry.Category,
			&entry.SortOrder,
			&entry.Name,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_skill")
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (repository *SQLRepository) Create(context context.Context, skill *Skill) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES (?, ?)
		RETURNING %s;
	`,
		schema.Skill.Table,
		schema.Skill.Category,
		schema.Skill.SortOrder,
		schema.Skill.ID,
	)

	var id int64
	err := repository.db.QueryRow(context, query, skill.Category, skill.SortOrder).Scan(&id)
	if err != nil {
		return 0, dberr.Wrap(err, "create_skill")
	}

	skill.ID = id
	return id, nil
}

func (repository *SQLRepository) UpsertTranslation(context context.Context, translation *Translation) error {
	selectQuery := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = ? AND %s = ?;
	`,
		schema.SkillTranslation.ID,
		schema.SkillTranslation.Table,
		schema.SkillTranslation.SkillID,
		schema.SkillTranslation.LanguageCode,
	)

	var existingID int64
	err := repository.db.QueryRow(context, selectQuery, translation.SkillID, translation.LanguageCode).Scan(&existingID)

	switch {
	case errors.Is(err, storage.ErrNoRows):
		insertQuery := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s)
			VALUES (?, ?, ?);
		`,
			schema.SkillTranslation.Table,
			schema.SkillTranslation.SkillID,
			schema.SkillTranslation.LanguageCode,
			schema.SkillTranslation.Name,
		)
		return dberr.Wrap(repository.db.Exec(context, insertQuery,
			translation.SkillID,
			translation.LanguageCode,
			translation.Name,
		), "insert_skill_translation")

	case err != nil:
		return dberr.Wrap(err, "find_skill_translation")

	default:
		updateQuery := fmt.Sprintf(`
			UPDATE %s SET %s = ? WHERE %s = ?;
		`,
			schema.SkillTranslation.Table,
			schema.SkillTranslation.Name,
			schema.SkillTranslation.ID,
		)
		return dberr.Wrap(repository.db.Exec(context, updateQuery,
			translation.Name,
			existingID,
		), "update_skill_translation")
	}
}

func (repository *SQLRepository) CreateWithTranslations(context context.Context, skill *Skill, translations []*Translation) (int64, error) {
	var id int64
	err := repository.db.InTx(context, func(tx storage.Adapter) error {
		scoped := NewSQLRepository(tx)

		var err error
		if id, err = scoped.Create(context, skill); err != nil {
			return err
		}

		for _, translation := range translations {
			translation.SkillID = id
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
		schema.Skill.Table,
		schema.Skill.ID,
	)
	return dberr.Wrap(repository.db.Exec(context, query, id), "delete_skill")
}
