// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (storage, auth) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Supported storage engines.
const (
	EngineSQLite   = "sqlite"
	EnginePostgres = "postgres"
)

// # Configuration Schema

// Config holds all runtime configuration for the Folio web server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"3001"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Storage engine selection: "sqlite" (embedded file) or "postgres".
	DBEngine string `env:"DB_ENGINE" envDefault:"sqlite"`

	// DatabaseURL is the PostgreSQL DSN. Required when DB_ENGINE=postgres.
	DatabaseURL string `env:"DATABASE_URL"`

	// SQLitePath is the database file path for the embedded engine.
	SQLitePath string `env:"SQLITE_PATH" envDefault:"data/folio.sqlite"`

	// Identity provider (Keycloak) connection parameters
	KeycloakURL          string `env:"KEYCLOAK_URL"           envDefault:"http://localhost:8080"`
	KeycloakRealm        string `env:"KEYCLOAK_REALM"         envDefault:"folio"`
	KeycloakClientID     string `env:"KEYCLOAK_CLIENT_ID"     envDefault:"folio-web"`
	KeycloakClientSecret string `env:"KEYCLOAK_CLIENT_SECRET"`

	// OAuthRedirectURL is the absolute URL of the /admin/callback endpoint
	// as registered with the identity provider.
	OAuthRedirectURL string `env:"OAUTH_REDIRECT_URL" envDefault:"http://localhost:3001/admin/callback"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	// Cross-field rules that struct tags cannot express.
	switch cfg.DBEngine {
	case EngineSQLite:
		// SQLitePath always has a default; nothing to check.
	case EnginePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("config: DATABASE_URL is required when DB_ENGINE=postgres")
		}
	default:
		return nil, fmt.Errorf("config: unknown DB_ENGINE %q (expected %q or %q)",
			cfg.DBEngine, EngineSQLite, EnginePostgres)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
