// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema declares the physical table and column names of the Folio
// database.
//
// # Purpose
//
// Repositories build their SQL from these definitions instead of scattering
// string literals, so a rename happens in exactly one place. Every content
// family consists of a base table (language-independent structure) and a
// translation table keyed by (base id, language_code).
package schema

// MigrationsTable represents the migration tracking table.
type MigrationsTable struct {
	Table     string
	ID        string
	Name      string
	AppliedAt string
}

// Migrations is the schema definition for the migrations table.
var Migrations = MigrationsTable{
	Table:     "migrations",
	ID:        "id",
	Name:      "name",
	AppliedAt: "applied_at",
}
