// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/platform/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAdapter(t *testing.T) storage.Adapter {
	t.Helper()

	db, err := storage.NewSQLite(":memory:", testLogger())
	require.NoError(t, err)
	t.Cleanup(db.Close)

	return db
}

/*
TestSQLite_CRUD exercises the adapter surface end to end against an
in-memory database.
*/
func TestSQLite_CRUD(t *testing.T) {
	ctx := context.Background()
	db := newAdapter(t)

	require.NoError(t, db.Exec(ctx, `CREATE TABLE notes (id INTEGER PRIMARY KEY AUTOINCREMENT, body TEXT NOT NULL)`))
	require.NoError(t, db.Exec(ctx, `INSERT INTO notes (body) VALUES (?)`, "first"))
	require.NoError(t, db.Exec(ctx, `INSERT INTO notes (body) VALUES (?)`, "second"))

	var id int64
	require.NoError(t, db.QueryRow(ctx, `INSERT INTO notes (body) VALUES (?) RETURNING id`, "third").Scan(&id))
	assert.Equal(t, int64(3), id)

	rows, err := db.Query(ctx, `SELECT body FROM notes ORDER BY id`)
	require.NoError(t, err)
	defer rows.Close()

	var bodies []string
	for rows.Next() {
		var body string
		require.NoError(t, rows.Scan(&body))
		bodies = append(bodies, body)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"first", "second", "third"}, bodies)
}

/*
TestSQLite_ErrNoRows checks that a miss surfaces the adapter's own
sentinel, not the driver's.
*/
func TestSQLite_ErrNoRows(t *testing.T) {
	ctx := context.Background()
	db := newAdapter(t)

	require.NoError(t, db.Exec(ctx, `CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT)`))

	var body string
	err := db.QueryRow(ctx, `SELECT body FROM notes WHERE id = ?`, 99).Scan(&body)
	assert.ErrorIs(t, err, storage.ErrNoRows)
}

/*
TestSQLite_InTx verifies both transaction outcomes: a callback error
rolls everything back, a nil return commits.
*/
func TestSQLite_InTx(t *testing.T) {
	ctx := context.Background()
	db := newAdapter(t)

	require.NoError(t, db.Exec(ctx, `CREATE TABLE notes (id INTEGER PRIMARY KEY AUTOINCREMENT, body TEXT NOT NULL)`))

	boom := errors.New("boom")
	err := db.InTx(ctx, func(tx storage.Adapter) error {
		if err := tx.Exec(ctx, `INSERT INTO notes (body) VALUES (?)`, "doomed"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, db.QueryRow(ctx, `SELECT COUNT(*) FROM notes`).Scan(&count))
	assert.Equal(t, 0, count, "rolled-back insert must not be visible")

	require.NoError(t, db.InTx(ctx, func(tx storage.Adapter) error {
		return tx.Exec(ctx, `INSERT INTO notes (body) VALUES (?)`, "kept")
	}))

	require.NoError(t, db.QueryRow(ctx, `SELECT COUNT(*) FROM notes`).Scan(&count))
	assert.Equal(t, 1, count)
}

/*
TestMigrate_Idempotent runs the migration set twice and expects the
second pass to be a no-op instead of a duplicate-table failure.
*/
func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := newAdapter(t)

	require.NoError(t, storage.Migrate(ctx, db, testLogger()))
	require.NoError(t, storage.Migrate(ctx, db, testLogger()))

	// Spot-check that the content tables exist and are empty.
	for _, table := range []string{"profile", "experience", "education", "skills", "projects", "publications"} {
		var count int
		require.NoError(t, db.QueryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&count))
		assert.Equal(t, 0, count, table)
	}
}

/*
TestSQLite_ForeignKeysEnforced guards the pragma wiring: translation
rows must cascade when their base row is deleted.
*/
func TestSQLite_ForeignKeysEnforced(t *testing.T) {
	ctx := context.Background()
	db := newAdapter(t)
	require.NoError(t, storage.Migrate(ctx, db, testLogger()))

	var id int64
	require.NoError(t, db.QueryRow(ctx,
		`INSERT INTO skills (category, sort_order) VALUES (?, ?) RETURNING id`, "Languages", 0).Scan(&id))
	require.NoError(t, db.Exec(ctx,
		`INSERT INTO skill_translations (skill_id, language_code, name) VALUES (?, ?, ?)`, id, "en", "Go"))

	require.NoError(t, db.Exec(ctx, `DELETE FROM skills WHERE id = ?`, id))

	var count int
	require.NoError(t, db.QueryRow(ctx, `SELECT COUNT(*) FROM skill_translations WHERE skill_id = ?`, id).Scan(&count))
	assert.Equal(t, 0, count, "cascade delete must remove translations")
}
