// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package web composes the HTTP surface of the site: the public resume
page, the admin dashboard, language switching, health probes and the
router wiring everything together.
*/
package web

import (
	"net/http"

	"github.com/taibuivan/folio/internal/content/education"
	"github.com/taibuivan/folio/internal/content/experience"
	"github.com/taibuivan/folio/internal/content/profile"
	"github.com/taibuivan/folio/internal/content/project"
	"github.com/taibuivan/folio/internal/content/publication"
	"github.com/taibuivan/folio/internal/content/skill"
	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/constants"
	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/internal/web/view"
)

// SiteServices bundles the content services the public page reads from.
type SiteServices struct {
	Profile     *profile.Service
	Experience  *experience.Service
	Education   *education.Service
	Skill       *skill.Service
	Project     *project.Service
	Publication *publication.Service
}

// HomeData is the template payload of the public resume page. Every
// slice holds only entries translated into the active language; a nil
// Profile means the hero section is skipped.
type HomeData struct {
	Profile      *profile.View
	Experience   []*experience.Entry
	Education    []*education.Entry
	SkillGroups  []skill.Group
	Projects     []*project.Entry
	Publications []*publication.Entry
}

type SiteHandler struct {
	services      SiteServices
	view          *view.Renderer
	secureCookies bool
}

func NewSiteHandler(services SiteServices, renderer *view.Renderer, secureCookies bool) *SiteHandler {
	return &SiteHandler{
		services:      services,
		view:          renderer,
		secureCookies: secureCookies,
	}
}

// Home handles GET /, the single public page.
func (handler *SiteHandler) Home(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	lang := requestutil.Language(request)

	data := HomeData{}

	var err error
	if data.Profile, err = handler.services.Profile.Get(ctx, lang); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if data.Experience, err = handler.services.Experience.List(ctx, lang); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if data.Education, err = handler.services.Education.List(ctx, lang); err != nil {
		respond.Error(writer, request, err)
		return
	}

	skills, err := handler.services.Skill.List(ctx, lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	data.SkillGroups = skill.GroupByCategory(skills)

	if data.Projects, err = handler.services.Project.List(ctx, lang); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if data.Publications, err = handler.services.Publication.List(ctx, lang); err != nil {
		respond.Error(writer, request, err)
		return
	}

	title := "Resume"
	if data.Profile != nil {
		title = data.Profile.Name
	}

	page := view.NewPage(request, title, data)
	if err := handler.view.Render(writer, "home.html", page); err != nil {
		respond.Error(writer, request, err)
	}
}

// Dashboard handles GET /admin, the landing page of the admin area.
func (handler *SiteHandler) Dashboard(writer http.ResponseWriter, request *http.Request) {
	page := view.NewPage(request, "Admin", nil)
	if err := handler.view.Render(writer, "admin_dashboard.html", page); err != nil {
		respond.Error(writer, request, err)
	}
}

// SetLanguage handles POST /set-lang/{lang}. It persists the choice in
// a long-lived cookie and sends the visitor back to where they were.
func (handler *SiteHandler) SetLanguage(writer http.ResponseWriter, request *http.Request) {
	lang := requestutil.Param(request, "lang")
	if !constants.IsSupportedLanguage(lang) {
		respond.Error(writer, request, apperr.BadRequest("Unsupported language"))
		return
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.LangCookie,
		Value:    lang,
		Path:     "/",
		MaxAge:   int(constants.LangCookieTTL.Seconds()),
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	target := request.Referer()
	if target == "" {
		target = "/"
	}
	respond.SeeOther(writer, request, target)
}
