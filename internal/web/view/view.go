// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package view renders the server-side HTML for the public site and the
admin area.

All templates are embedded into the binary and parsed once at startup.
Rendering goes through a buffer first so a template failure surfaces as
an error before any byte reaches the client.

# Pages and Fragments

Render writes a full page (layout chrome included). Fragment writes a
bare template without chrome, used for in-place swaps after form posts
(e.g. the refreshed skill list).
*/
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/taibuivan/folio/internal/platform/apperr"
	requestutil "github.com/taibuivan/folio/internal/platform/request"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data envelope handed to every page template.
type Page struct {
	Title    string
	Lang     string
	LoggedIn bool
	Data     any
}

// NewPage builds the envelope from request context: active language
// from the lang cookie middleware, LoggedIn from the verified claims.
func NewPage(request *http.Request, title string, data any) Page {
	return Page{
		Title:    title,
		Lang:     requestutil.Language(request),
		LoggedIn: requestutil.Claims(request) != nil,
		Data:     data,
	}
}

type Renderer struct {
	set *template.Template
}

// New parses the embedded template set.
func New() (*Renderer, error) {
	set, err := template.New("").Funcs(funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{set: set}, nil
}

/*
Render executes a full page template into the response.

Parameters:
  - writer: the HTTP response writer.
  - name: the template file name (e.g. "home.html").
  - page: the page envelope.

Returns:
  - error: an internal apperr if the template fails; nil on success.
*/
func (renderer *Renderer) Render(writer http.ResponseWriter, name string, page Page) error {
	var buffer bytes.Buffer
	if err := renderer.set.ExecuteTemplate(&buffer, name, page); err != nil {
		return apperr.Internal(fmt.Errorf("render %s: %w", name, err))
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buffer.WriteTo(writer)
	return err
}

// Fragment executes a partial template without the page chrome.
func (renderer *Renderer) Fragment(writer http.ResponseWriter, name string, page Page) error {
	var buffer bytes.Buffer
	if err := renderer.set.ExecuteTemplate(&buffer, name, page); err != nil {
		return apperr.Internal(fmt.Errorf("render fragment %s: %w", name, err))
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buffer.WriteTo(writer)
	return err
}

// labels holds the static interface strings per language. Content
// itself comes translated from the database; these cover only chrome
// like section headings.
var labels = map[string]map[string]string{
	"en": {
		"experience":   "Experience",
		"education":    "Education",
		"skills":       "Skills",
		"projects":     "Projects",
		"publications": "Publications",
		"present":      "Present",
	},
	"de": {
		"experience":   "Erfahrung",
		"education":    "Bildung",
		"skills":       "Fähigkeiten",
		"projects":     "Projekte",
		"publications": "Publikationen",
		"present":      "Heute",
	},
}

func funcs() template.FuncMap {
	return template.FuncMap{
		// t resolves an interface label for the active language,
		// falling back to English for unknown keys.
		"t": func(lang, key string) string {
			if m, ok := labels[lang]; ok {
				if s, ok := m[key]; ok {
					return s
				}
			}
			return labels["en"][key]
		},

		// year extracts the year part of an ISO date string.
		"year": func(date string) string {
			if len(date) >= 4 {
				return date[:4]
			}
			return date
		},
	}
}
