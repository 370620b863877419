// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/platform/constants"
	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/internal/web/view"
)

type Handler struct {
	service *Service
	view    *view.Renderer
}

func NewHandler(service *Service, renderer *view.Renderer) *Handler {
	return &Handler{service: service, view: renderer}
}

// Routes returns the admin sub-router mounted at /admin/profile.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.editPage)
	router.Post("/", handler.save)
	return router
}

// EditForm is the template payload of the profile editor.
type EditForm struct {
	EditLang string
	Profile  *View
}

// editLanguage picks the language being edited from the ?lang query
// parameter, separate from the visitor's display language.
func editLanguage(request *http.Request) string {
	if lang := request.URL.Query().Get("lang"); constants.IsSupportedLanguage(lang) {
		return lang
	}
	return constants.DefaultLanguage
}

// editPage handles GET /admin/profile?lang={code}. A profile that has
// no translation yet in that language yields an empty form.
func (handler *Handler) editPage(writer http.ResponseWriter, request *http.Request) {
	editLang := editLanguage(request)

	current, err := handler.service.Get(request.Context(), editLang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page := view.NewPage(request, "Edit Profile", EditForm{EditLang: editLang, Profile: current})
	if err := handler.view.Render(writer, "admin_profile.html", page); err != nil {
		respond.Error(writer, request, err)
	}
}

// save handles POST /admin/profile?lang={code}. The response is a
// small confirmation fragment swapped into the form page.
func (handler *Handler) save(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.ParseForm(request); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := SaveInput{
		LanguageCode: editLanguage(request),
		Email:        request.FormValue("email"),
		Phone:        request.FormValue("phone"),
		GithubURL:    request.FormValue("github_url"),
		LinkedinURL:  request.FormValue("linkedin_url"),
		Name:         request.FormValue("name"),
		Title:        request.FormValue("title"),
		AboutMe:      request.FormValue("about_me"),
		Location:     request.FormValue("location"),
	}

	if err := handler.service.Save(request.Context(), input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	page := view.NewPage(request, "", nil)
	if err := handler.view.Fragment(writer, "profile_saved", page); err != nil {
		respond.Error(writer, request, err)
	}
}
