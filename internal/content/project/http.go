// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package project

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

// Routes returns the admin sub-router mounted at /admin/projects.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listPage)
	router.Get("/add", handler.addPage)
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

	page := view.NewPage(request, "Manage Projects", entries)
	if err := handler.view.Render(writer, "admin_projects.html", page); err != nil {
		respond.Error(writer, request, err)
	}
}

func (handler *Handler) addPage(writer http.ResponseWriter, request *http.Request) {
	page := view.NewPage(request, "Add Project", nil)
	if err := handler.view.Render(writer, "admin_projects_add.html", page); err != nil {
		respond.Error(writer, request, err)
	}
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.ParseForm(request); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := SaveInput{
		ImageURL:      request.FormValue("image_url"),
		GithubURL:     request.FormValue("github_url"),
		LiveURL:       request.FormValue("live_url"),
		SortOrder:     convert.ToInt(request.FormValue("sort_order")),
		TitleEN:       request.FormValue("title_en"),
		TitleDE:       request.FormValue("title_de"),
		DescriptionEN: request.FormValue("description_en"),
		DescriptionDE: request.FormValue("description_de"),
	}

	if _, err := handler.service.Save(request.Context(), input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.SeeOther(writer, request, "/admin/projects")
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
