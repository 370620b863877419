// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	// Registers the pure-Go "sqlite" driver.
	_ "modernc.org/sqlite"
)

// SQLiteAdapter implements [Adapter] on top of an embedded SQLite file.
type SQLiteAdapter struct {
	db *sql.DB
}

// NewSQLite opens (creating if necessary) a SQLite-backed [Adapter].
//
// The pool is pinned to a single connection: SQLite serializes writers
// anyway, and a lone connection keeps ':memory:' databases alive for the
// process lifetime, which the test suite relies on.
func NewSQLite(path string, logger *slog.Logger) (*SQLiteAdapter, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
	if path == ":memory:" {
		dsn = "file::memory:?_pragma=foreign_keys(1)"
	} else if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open %s: %w", path, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	adapter := &SQLiteAdapter{db: db}
	if err := adapter.Ping(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("sqlite database opened", slog.String("path", path))
	return adapter, nil
}

// Dialect implements [Adapter].
func (a *SQLiteAdapter) Dialect() string { return DialectSQLite }

// Query implements [Adapter].
func (a *SQLiteAdapter) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: query failed: %w", err)
	}
	return sqlRows{rows: rows}, nil
}

// QueryRow implements [Adapter].
func (a *SQLiteAdapter) QueryRow(ctx context.Context, query string, args ...any) Row {
	return sqlRow{row: a.db.QueryRowContext(ctx, query, args...)}
}

// Exec implements [Adapter].
func (a *SQLiteAdapter) Exec(ctx context.Context, query string, args ...any) error {
	if _, err := a.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("sqlite: exec failed: %w", err)
	}
	return nil
}

// InTx implements [Adapter].
func (a *SQLiteAdapter) InTx(ctx context.Context, fn func(tx Adapter) error) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin failed: %w", err)
	}
	// Rollback is a no-op once the transaction has committed.
	defer func() { _ = tx.Rollback() }()

	if err := fn(&sqliteTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit failed: %w", err)
	}
	return nil
}

// Ping implements [Adapter].
func (a *SQLiteAdapter) Ping(ctx context.Context) error {
	if err := a.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite: ping failed: %w", err)
	}
	return nil
}

// Close implements [Adapter].
func (a *SQLiteAdapter) Close() { _ = a.db.Close() }

// # Transaction Scope

// sqliteTx adapts a database/sql transaction to the [Adapter] contract.
type sqliteTx struct {
	tx *sql.Tx
}

func (t *sqliteTx) Dialect() string { return DialectSQLite }

func (t *sqliteTx) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: query failed: %w", err)
	}
	return sqlRows{rows: rows}, nil
}

func (t *sqliteTx) QueryRow(ctx context.Context, query string, args ...any) Row {
	return sqlRow{row: t.tx.QueryRowContext(ctx, query, args...)}
}

func (t *sqliteTx) Exec(ctx context.Context, query string, args ...any) error {
	if _, err := t.tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("sqlite: exec failed: %w", err)
	}
	return nil
}

// InTx on a transaction-scoped adapter reuses the enclosing transaction.
func (t *sqliteTx) InTx(ctx context.Context, fn func(tx Adapter) error) error {
	return fn(t)
}

func (t *sqliteTx) Ping(ctx context.Context) error { return nil }

func (t *sqliteTx) Close() {}

// # Driver Shims

// sqlRows hides the error returned by database/sql's Close.
type sqlRows struct {
	rows *sql.Rows
}

func (r sqlRows) Next() bool            { return r.rows.Next() }
func (r sqlRows) Scan(dest ...any) error { return r.rows.Scan(dest...) }
func (r sqlRows) Err() error            { return r.rows.Err() }
func (r sqlRows) Close()                { _ = r.rows.Close() }

// sqlRow maps the driver's no-rows sentinel onto [ErrNoRows].
type sqlRow struct {
	row *sql.Row
}

func (r sqlRow) Scan(dest ...any) error {
	err := r.row.Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNoRows
	}
	return err
}
