// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package storage provides a uniform adapter over the supported relational
engines (embedded SQLite and networked PostgreSQL).

Architecture:

  - Adapter: The capability set every engine must provide (query-all,
    query-one, execute, transactions). Repositories depend only on this
    interface, never on a concrete driver.
  - Placeholders: All queries are written with '?' placeholders. The
    PostgreSQL adapter rewrites them to positional '$n' parameters; SQLite
    consumes them natively.
  - Engine selection happens once at startup via configuration. No package
    in the repository branches on the engine at query time.

Generated identifiers are returned through 'RETURNING id' clauses scanned via
[Adapter.QueryRow], which both engines support.
*/
package storage

import (
	"context"
	"errors"
)

// Supported dialect identifiers, reported by [Adapter.Dialect].
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// ErrNoRows is returned by [Row.Scan] when a query matches no row.
// Each adapter maps its driver's sentinel onto this one so callers never
// import driver packages.
var ErrNoRows = errors.New("storage: no rows in result set")

// Rows is the cursor over a multi-row result set.
//
// # Usage
//
// Callers must call Close (safe to defer) and check Err after iteration.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// Row is a single-row result. Scan returns [ErrNoRows] when empty.
type Row interface {
	Scan(dest ...any) error
}

// Adapter is the uniform query/execute contract over a relational engine.
//
// # Concurrency
//
// Adapters are safe for concurrent use. A transaction-scoped Adapter obtained
// through [Adapter.InTx] must not outlive the callback.
type Adapter interface {
	// Dialect reports which engine backs this adapter.
	Dialect() string

	// Query runs a statement expected to return zero or more rows.
	Query(ctx context.Context, query string, args ...any) (Rows, error)

	// QueryRow runs a statement expected to return at most one row.
	// The error, including [ErrNoRows], is deferred until Scan.
	QueryRow(ctx context.Context, query string, args ...any) Row

	// Exec runs a statement that returns no rows.
	Exec(ctx context.Context, query string, args ...any) error

	// InTx runs fn against a transaction-scoped Adapter. The transaction is
	// committed when fn returns nil and rolled back otherwise.
	InTx(ctx context.Context, fn func(tx Adapter) error) error

	// Ping verifies connectivity to the underlying engine.
	Ping(ctx context.Context) error

	// Close releases the underlying connections.
	Close()
}
