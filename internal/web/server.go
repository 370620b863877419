// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/folio/internal/auth"
	"github.com/taibuivan/folio/internal/content/education"
	"github.com/taibuivan/folio/internal/content/experience"
	"github.com/taibuivan/folio/internal/content/profile"
	"github.com/taibuivan/folio/internal/content/project"
	"github.com/taibuivan/folio/internal/content/publication"
	"github.com/taibuivan/folio/internal/content/skill"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/middleware"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Site        *SiteHandler
	Auth        *auth.Handler
	Profile     *profile.Handler
	Experience  *experience.Handler
	Education   *education.Handler
	Skill       *skill.Handler
	Project     *project.Handler
	Publication *publication.Handler
	Liveness    http.HandlerFunc
	Readiness   http.HandlerFunc
}

/*
NewRouter assembles the full route tree with the shared middleware
chain.

Every request runs through the same chain; authentication merely
annotates the context, and only the /admin subtree (minus the OAuth2
callback, which must be reachable mid-login) demands a verified admin.
*/
func NewRouter(ctx context.Context, logger *slog.Logger, verifier middleware.TokenVerifier, handlers Handlers) chi.Router {
	router := chi.NewRouter()

	router.Use(chimiddleware.CleanPath)
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(logger))
	router.Use(chimiddleware.Timeout(constants.GlobalRequestTimeout))
	router.Use(middleware.RateLimit(ctx))
	router.Use(middleware.PanicRecovery(logger))
	router.Use(middleware.Language())
	router.Use(middleware.Authenticate(verifier))

	// Public surface
	router.Get("/", handlers.Site.Home)
	router.Post("/set-lang/{lang}", handlers.Site.SetLanguage)
	router.Handle("/static/*", StaticHandler())
	router.Get("/health", handlers.Liveness)
	router.Get("/ready", handlers.Readiness)

	// Login flow
	router.Get("/login", handlers.Auth.Login)
	router.Get("/logout", handlers.Auth.Logout)

	// Admin area
	router.Route("/admin", func(admin chi.Router) {
		// The callback completes the login, so it cannot sit behind the gate.
		admin.Get("/callback", handlers.Auth.Callback)

		admin.Group(func(protected chi.Router) {
			protected.Use(middleware.RequireAdmin)

			protected.Get("/", handlers.Site.Dashboard)
			protected.Mount("/profile", handlers.Profile.Routes())
			protected.Mount("/experience", handlers.Experience.Routes())
			protected.Mount("/education", handlers.Education.Routes())
			protected.Mount("/skills", handlers.Skill.Routes())
			protected.Mount("/projects", handlers.Project.Routes())
			protected.Mount("/publications", handlers.Publication.Routes())
		})
	})

	return router
}

// NewServer wraps the router in an http.Server with the platform's
// timeout policy.
func NewServer(port string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           handler,
		ReadTimeout:       constants.DefaultReadTimeout,
		ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		WriteTimeout:      constants.DefaultWriteTimeout,
		IdleTimeout:       constants.DefaultIdleTimeout,
	}
}
