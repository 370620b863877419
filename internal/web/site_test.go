// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package web_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/auth"
	"github.com/taibuivan/folio/internal/content/education"
	"github.com/taibuivan/folio/internal/content/experience"
	"github.com/taibuivan/folio/internal/content/profile"
	"github.com/taibuivan/folio/internal/content/project"
	"github.com/taibuivan/folio/internal/content/publication"
	"github.com/taibuivan/folio/internal/content/skill"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/sec"
	"github.com/taibuivan/folio/internal/platform/storage"
	"github.com/taibuivan/folio/internal/web"
	"github.com/taibuivan/folio/internal/web/view"
)

// stubVerifier accepts exactly one token value.
type stubVerifier struct {
	valid string
}

func (verifier stubVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if tokenStr == verifier.valid {
		return &sec.AuthClaims{Email: "admin@example.com"}, nil
	}
	return nil, errors.New("invalid token")
}

// stubProvider satisfies auth.Provider; the login flow itself is
// exercised in the auth package tests.
type stubProvider struct{}

func (stubProvider) NewVerifier() string { return "verifier" }

func (stubProvider) AuthCodeURL(state, _ string) string {
	return "https://idp.example.com/auth?state=" + state
}

func (stubProvider) Exchange(context.Context, string, string) (string, error) {
	return "", errors.New("not used")
}

type site struct {
	router   http.Handler
	services web.SiteServices
}

func newSite(t *testing.T) site {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := storage.NewSQLite(":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, storage.Migrate(context.Background(), db, logger))

	renderer, err := view.New()
	require.NoError(t, err)

	services := web.SiteServices{
		Profile:     profile.NewService(profile.NewSQLRepository(db), logger),
		Experience:  experience.NewService(experience.NewSQLRepository(db), logger),
		Education:   education.NewService(education.NewSQLRepository(db), logger),
		Skill:       skill.NewService(skill.NewSQLRepository(db), logger),
		Project:     project.NewService(project.NewSQLRepository(db), logger),
		Publication: publication.NewService(publication.NewSQLRepository(db), logger),
	}

	liveness, readiness := web.NewHealthHandlers(web.HealthDependencies{
		CheckDatabase: func() error { return db.Ping(context.Background()) },
	}, logger)

	handlers := web.Handlers{
		Site:        web.NewSiteHandler(services, renderer, false),
		Auth:        auth.NewHandler(auth.NewService(stubProvider{}, logger), false),
		Profile:     profile.NewHandler(services.Profile, renderer),
		Experience:  experience.NewHandler(services.Experience, renderer),
		Education:   education.NewHandler(services.Education, renderer),
		Skill:       skill.NewHandler(services.Skill, renderer),
		Project:     project.NewHandler(services.Project, renderer),
		Publication: publication.NewHandler(services.Publication, renderer),
		Liveness:    liveness,
		Readiness:   readiness,
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return site{
		router:   web.NewRouter(ctx, logger, stubVerifier{valid: "good-token"}, handlers),
		services: services,
	}
}

/*
TestHome_EmptyDatabase renders the public page even before any content
exists. The hero section is simply absent.
*/
func TestHome_EmptyDatabase(t *testing.T) {
	s := newSite(t)

	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "<html lang=\"en\">")
}

/*
TestHome_RendersContent seeds a profile and an experience entry and
checks both appear on the public page in the active language.
*/
func TestHome_RendersContent(t *testing.T) {
	ctx := context.Background()
	s := newSite(t)

	require.NoError(t, s.services.Profile.Save(ctx, profile.SaveInput{
		LanguageCode: "en",
		Name:         "Tai Bui Van",
		Title:        "Software Engineer",
		Email:        "tai.buivan.jp@gmail.com",
	}))
	_, err := s.services.Experience.Save(ctx, experience.SaveInput{
		StartDate:   "2022-01-01",
		JobTitle:    "Backend Engineer",
		CompanyName: "Acme GmbH",
	})
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "Tai Bui Van")
	assert.Contains(t, body, "Backend Engineer")
	assert.Contains(t, body, "Acme GmbH")
}

/*
TestHome_GermanLanguage serves German section headings and the German
translation when the language cookie says so.
*/
func TestHome_GermanLanguage(t *testing.T) {
	ctx := context.Background()
	s := newSite(t)

	_, err := s.services.Experience.Save(ctx, experience.SaveInput{
		StartDate:     "2022-01-01",
		JobTitle:      "Backend Engineer",
		CompanyName:   "Acme GmbH",
		DescriptionEN: "Built services",
		DescriptionDE: "Dienste gebaut",
	})
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.AddCookie(&http.Cookie{Name: constants.LangCookie, Value: "de"})
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "<html lang=\"de\">")
	assert.Contains(t, body, "Erfahrung")
	assert.Contains(t, body, "Dienste gebaut")
}

/*
TestSetLanguage persists a supported choice in a cookie and rejects
anything else.
*/
func TestSetLanguage(t *testing.T) {
	s := newSite(t)

	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/set-lang/de", nil))

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	cookies := recorder.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, constants.LangCookie, cookies[0].Name)
	assert.Equal(t, "de", cookies[0].Value)

	recorder = httptest.NewRecorder()
	s.router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/set-lang/fr", nil))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

/*
TestAdmin_Gate sends anonymous visitors to the login page and lets a
verified token through to the dashboard.
*/
func TestAdmin_Gate(t *testing.T) {
	s := newSite(t)

	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/login", recorder.Header().Get("Location"))

	request := httptest.NewRequest(http.MethodGet, "/admin", nil)
	request.AddCookie(&http.Cookie{Name: constants.AuthTokenCookie, Value: "good-token"})
	recorder = httptest.NewRecorder()
	s.router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Manage Experience")
}

/*
TestAdmin_CallbackReachableWithoutToken keeps the OAuth2 callback
outside the admin gate; a malformed callback is a 400, never a redirect
to /login.
*/
func TestAdmin_CallbackReachableWithoutToken(t *testing.T) {
	s := newSite(t)

	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/admin/callback", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

/*
TestHealthEndpoints covers the liveness and readiness probes against a
healthy database.
*/
func TestHealthEndpoints(t *testing.T) {
	s := newSite(t)

	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	s.router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "\"status\":\"ready\"")
}
