// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	"github.com/taibuivan/folio/internal/platform/database/schema"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// createMigrationsTable is written in the SQLite dialect; applyDialect
// rewrites it for PostgreSQL.
const createMigrationsTable = `
	CREATE TABLE IF NOT EXISTS migrations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT UNIQUE,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`

// Migrate applies every embedded migration file exactly once, in filename
// order, tracking applied files by name in the migrations table.
//
// # Failure Semantics
//
// Each file runs inside a single transaction together with its tracking row.
// Any failure aborts startup; a partially applied file is rolled back.
func Migrate(ctx context.Context, db Adapter, logger *slog.Logger) error {
	if err := db.Exec(ctx, applyDialect(createMigrationsTable, db.Dialect())); err != nil {
		return fmt.Errorf("migrate: failed to create tracking table: %w", err)
	}

	names, err := migrationNames()
	if err != nil {
		return err
	}

	applied := 0
	for _, name := range names {
		done, err := isApplied(ctx, db, name)
		if err != nil {
			return err
		}
		if done {
			continue
		}

		logger.Info("applying migration", slog.String("name", name))
		if err := applyFile(ctx, db, name); err != nil {
			return fmt.Errorf("migrate: %s failed: %w", name, err)
		}
		applied++
	}

	logger.Info("migrations complete",
		slog.Int("applied", applied),
		slog.Int("total", len(names)),
	)
	return nil
}

// migrationNames lists the embedded .sql files in lexical order.
func migrationNames() ([]string, error) {
	entries, err := fs.ReadDir(migrationFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("migrate: failed to read embedded migrations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func isApplied(ctx context.Context, db Adapter, name string) (bool, error) {
	query := fmt.Sprintf(`SELECT 1 FROM %s WHERE %s = ?`,
		schema.Migrations.Table, schema.Migrations.Name)

	var one int
	err := db.QueryRow(ctx, query, name).Scan(&one)
	if errors.Is(err, ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("migrate: failed to check %s: %w", name, err)
	}
	return true, nil
}

func applyFile(ctx context.Context, db Adapter, name string) error {
	raw, err := migrationFS.ReadFile("migrations/" + name)
	if err != nil {
		return err
	}

	script := applyDialect(string(raw), db.Dialect())

	return db.InTx(ctx, func(tx Adapter) error {
		// Migration files never contain a literal ';' inside a statement,
		// so a plain split is sufficient.
		for _, statement := range strings.Split(script, ";") {
			statement = strings.TrimSpace(statement)
			if statement == "" {
				continue
			}
			if err := tx.Exec(ctx, statement); err != nil {
				return err
			}
		}
		track := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (?)`,
			schema.Migrations.Table, schema.Migrations.Name)
		return tx.Exec(ctx, track, name)
	})
}

// applyDialect rewrites the SQLite-dialect migration source for the target
// engine. Only the constructs actually used by the schema are translated.
func applyDialect(script, dialect string) string {
	if dialect != DialectPostgres {
		return script
	}
	script = strings.ReplaceAll(script, "INTEGER PRIMARY KEY AUTOINCREMENT", "SERIAL PRIMARY KEY")
	script = strings.ReplaceAll(script, "DATETIME", "TIMESTAMP")
	return script
}
