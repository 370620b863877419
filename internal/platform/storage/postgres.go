// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Opinionated pool settings for the Folio workload. The site serves a single
// owner plus public read traffic, so the pool is kept small.
const (
	maxConns = 10
	// minConns keeps a warm set of connections to avoid cold-start latency.
	minConns = 2
	// maxConnLifetime ensures connections are periodically recycled.
	maxConnLifetime = 60 * time.Minute
	// maxConnIdleTime closes connections that have been idle too long.
	maxConnIdleTime = 10 * time.Minute
	// healthCheckPeriod is the frequency of background connection health checks.
	healthCheckPeriod = 1 * time.Minute
	// connectTimeout is the maximum time allowed to establish a new connection.
	connectTimeout = 5 * time.Second
	// pingTimeout is the maximum duration for a health check ping.
	pingTimeout = 2 * time.Second
)

// PostgresAdapter implements [Adapter] on top of a pgx connection pool.
type PostgresAdapter struct {
	pool *pgxpool.Pool
}

// NewPostgres creates and validates a PostgreSQL-backed [Adapter].
//
// # Parameters
//   - ctx: Context for the initial connection attempt.
//   - dsn: A libpq-compatible connection string or postgres:// URL.
//   - logger: Structured logger for pool-level events.
func NewPostgres(ctx context.Context, dsn string, logger *slog.Logger) (*PostgresAdapter, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: invalid DSN: %w", err)
	}

	// Apply pool tuning parameters.
	poolConfig.MaxConns = maxConns
	poolConfig.MinConns = minConns
	poolConfig.MaxConnLifetime = maxConnLifetime
	poolConfig.MaxConnIdleTime = maxConnIdleTime
	poolConfig.HealthCheckPeriod = healthCheckPeriod
	poolConfig.ConnConfig.ConnectTimeout = connectTimeout

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to create pool: %w", err)
	}

	adapter := &PostgresAdapter{pool: pool}

	// Validate that we can actually reach the database.
	if err := adapter.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	stats := pool.Stat()
	logger.Info("postgres pool connected",
		slog.Int("max_conns", int(stats.MaxConns())),
		slog.Int("total_conns", int(stats.TotalConns())),
	)

	return adapter, nil
}

// Dialect implements [Adapter].
func (a *PostgresAdapter) Dialect() string { return DialectPostgres }

// Query implements [Adapter].
func (a *PostgresAdapter) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := a.pool.Query(ctx, rewritePlaceholders(query), args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: query failed: %w", err)
	}
	return rows, nil
}

// QueryRow implements [Adapter].
func (a *PostgresAdapter) QueryRow(ctx context.Context, query string, args ...any) Row {
	return pgxRow{row: a.pool.QueryRow(ctx, rewritePlaceholders(query), args...)}
}

// Exec implements [Adapter].
func (a *PostgresAdapter) Exec(ctx context.Context, query string, args ...any) error {
	if _, err := a.pool.Exec(ctx, rewritePlaceholders(query), args...); err != nil {
		return fmt.Errorf("postgres: exec failed: %w", err)
	}
	return nil
}

// InTx implements [Adapter].
func (a *PostgresAdapter) InTx(ctx context.Context, fn func(tx Adapter) error) error {
	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: begin failed: %w", err)
	}
	// Rollback is a no-op once the transaction has committed.
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&postgresTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: commit failed: %w", err)
	}
	return nil
}

// Ping implements [Adapter].
func (a *PostgresAdapter) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := a.pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("postgres: ping failed: %w", err)
	}
	return nil
}

// Close implements [Adapter].
func (a *PostgresAdapter) Close() { a.pool.Close() }

// # Transaction Scope

// postgresTx adapts a pgx transaction to the [Adapter] contract.
type postgresTx struct {
	tx pgx.Tx
}

func (t *postgresTx) Dialect() string { return DialectPostgres }

func (t *postgresTx) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := t.tx.Query(ctx, rewritePlaceholders(query), args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: query failed: %w", err)
	}
	return rows, nil
}

func (t *postgresTx) QueryRow(ctx context.Context, query string, args ...any) Row {
	return pgxRow{row: t.tx.QueryRow(ctx, rewritePlaceholders(query), args...)}
}

func (t *postgresTx) Exec(ctx context.Context, query string, args ...any) error {
	if _, err := t.tx.Exec(ctx, rewritePlaceholders(query), args...); err != nil {
		return fmt.Errorf("postgres: exec failed: %w", err)
	}
	return nil
}

// InTx on a transaction-scoped adapter reuses the enclosing transaction.
func (t *postgresTx) InTx(ctx context.Context, fn func(tx Adapter) error) error {
	return fn(t)
}

func (t *postgresTx) Ping(ctx context.Context) error { return nil }

func (t *postgresTx) Close() {}

// pgxRow maps the driver's no-rows sentinel onto [ErrNoRows].
type pgxRow struct {
	row pgx.Row
}

func (r pgxRow) Scan(dest ...any) error {
	err := r.row.Scan(dest...)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNoRows
	}
	return err
}

// # Placeholder Translation

// rewritePlaceholders converts '?' placeholders to PostgreSQL's positional
// '$1..$n' form. Queries in this repository never contain a literal '?'
// inside a string constant, so a plain scan is sufficient.
func rewritePlaceholders(query string) string {
	if !strings.ContainsRune(query, '?') {
		return query
	}

	var builder strings.Builder
	builder.Grow(len(query) + 8)

	position := 0
	for _, r := range query {
		if r == '?' {
			position++
			fmt.Fprintf(&builder, "$%d", position)
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
