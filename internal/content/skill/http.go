// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package skill

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/internal/web/view"
	"github.com/taibuivan/folio/pkg/convert"
)

type Handler struct {
	service *Service
	view    *view.Renderer
}

func NewHandler(service *Service, renderer *view.Renderer) *Handler {
	return &Handler{service: service, view: renderer}
}

// Routes returns the admin sub-router mounted at /admin/skills.
// Skills are managed inline on one page, so there is no /add route.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listPage)
	router.Post("/", handler.create)
	router.Delete("/{id}", handler.remove)
	return router
}

func (handler *Handler) listPage(writer http.ResponseWriter, request *http.Request) {
	entries, err := handler.service.List(request.Context(), requestutil.Language(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page := view.NewPage(request, "Manage Skills", entries)
	if err := handler.view.Render(writer, "admin_skills.html", page); err != nil {
		respond.Error(writer, request, err)
	}
}

// create handles POST /admin/skills. Instead of redirecting it answers
// with the refreshed list fragment, which the page swaps in place.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.ParseForm(request); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := SaveInput{
		Category:  request.FormValue("category"),
		SortOrder: convert.ToInt(request.FormValue("sort_order")),
		NameEN:    request.FormValue("name_en"),
		NameDE:    request.FormValue("name_de"),
	}

	if _, err := handler.service.Save(request.Context(), input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entries, err := handler.service.List(request.Context(), requestutil.Language(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page := view.NewPage(request, "Manage Skills", entries)
	if err := handler.view.Fragment(writer, "skill_list", page); err != nil {
		respond.Error(writer, request, err)
	}
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Empty(writer)
}
