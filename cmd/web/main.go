// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command web is the entry point for the Folio resume site.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the configured storage engine (SQLite or PostgreSQL).
//  4. Run database migrations (idempotent).
//  5. Discover the identity provider and fetch its signing keys.
//  6. Wire content services and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/folio/internal/auth"
	"github.com/taibuivan/folio/internal/content/education"
	"github.com/taibuivan/folio/internal/content/experience"
	"github.com/taibuivan/folio/internal/content/profile"
	"github.com/taibuivan/folio/internal/content/project"
	"github.com/taibuivan/folio/internal/content/publication"
	"github.com/taibuivan/folio/internal/content/skill"
	"github.com/taibuivan/folio/internal/platform/config"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/sec"
	"github.com/taibuivan/folio/internal/platform/storage"
	"github.com/taibuivan/folio/internal/web"
	"github.com/taibuivan/folio/internal/web/view"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Folio] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("db_engine", cfg.DBEngine),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Storage ────────────────────────────────────────────────────────
	var db storage.Adapter
	switch cfg.DBEngine {
	case config.EnginePostgres:
		db, err = storage.NewPostgres(startupCtx, cfg.DatabaseURL, log)
	default:
		db, err = storage.NewSQLite(cfg.SQLitePath, log)
	}
	must(log, err, "open storage")
	defer func() {
		log.Info("closing storage adapter")
		db.Close()
	}()

	// ── 4. Migrations ─────────────────────────────────────────────────────
	must(log, storage.Migrate(startupCtx, db, log), "run migrations")

	// ── 5. Identity Provider ──────────────────────────────────────────────
	provider, err := sec.NewOIDCProvider(startupCtx,
		cfg.KeycloakURL,
		cfg.KeycloakRealm,
		cfg.KeycloakClientID,
		cfg.KeycloakClientSecret,
		cfg.OAuthRedirectURL,
	)
	must(log, err, "discover identity provider")

	// ── 6. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := web.NewHealthHandlers(web.HealthDependencies{
		CheckDatabase: func() error {
			return db.Ping(context.Background())
		},
	}, log)

	// ── 7. Views ──────────────────────────────────────────────────────────
	renderer, err := view.New()
	must(log, err, "parse templates")

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	profileService := profile.NewService(profile.NewSQLRepository(db), log)
	experienceService := experience.NewService(experience.NewSQLRepository(db), log)
	educationService := education.NewService(education.NewSQLRepository(db), log)
	skillService := skill.NewService(skill.NewSQLRepository(db), log)
	projectService := project.NewService(project.NewSQLRepository(db), log)
	publicationService := publication.NewService(publication.NewSQLRepository(db), log)

	authService := auth.NewService(provider, log)

	secureCookies := cfg.IsProduction()

	handlers := web.Handlers{
		Site: web.NewSiteHandler(web.SiteServices{
			Profile:     profileService,
			Experience:  experienceService,
			Education:   educationService,
			Skill:       skillService,
			Project:     projectService,
			Publication: publicationService,
		}, renderer, secureCookies),
		Auth:        auth.NewHandler(authService, secureCookies),
		Profile:     profile.NewHandler(profileService, renderer),
		Experience:  experience.NewHandler(experienceService, renderer),
		Education:   education.NewHandler(educationService, renderer),
		Skill:       skill.NewHandler(skillService, renderer),
		Project:     project.NewHandler(projectService, renderer),
		Publication: publication.NewHandler(publicationService, renderer),
		Liveness:    liveness,
		Readiness:   readiness,
	}

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	// The rate limiter's cleanup goroutine lives as long as this context.
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	router := web.NewRouter(serverCtx, log, provider, handlers)
	server := web.NewServer(cfg.ServerPort, router)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server_listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	log.Info("shutting down server", slog.Duration("timeout", constants.ShutdownTimeout))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
