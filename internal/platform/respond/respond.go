// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers used by all handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses. The
// site is server-rendered, so the helpers cover browser-facing redirects and
// error pages alongside the JSON envelope used by infrastructure endpoints.
package respond

import (
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"net/http"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/ctxutil"
)

// # Navigation

// Redirect sends the browser to url with 302 Found. Used for GET flows
// (login redirects, logout).
func Redirect(writer http.ResponseWriter, request *http.Request, url string) {
	http.Redirect(writer, request, url, http.StatusFound)
}

// SeeOther sends the browser to url with 303 See Other. Used after form
// submissions so a refresh never replays the POST.
func SeeOther(writer http.ResponseWriter, request *http.Request, url string) {
	http.Redirect(writer, request, url, http.StatusSeeOther)
}

// Empty writes a 200 response with no body. Delete handlers use it; the
// client removes the corresponding DOM node itself.
func Empty(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusOK)
}

// # JSON (infrastructure endpoints)

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// # Errors

// Error converts any Go error into a minimal HTML error response.
//
// Unexpected errors are logged with full details server-side but surface to
// the client as a generic message; 5xx responses always log their cause.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.As(err)
	if appError == nil {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "unhandled_error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.WriteHeader(appError.HTTPStatus)
	fmt.Fprintf(writer, "<!doctype html><title>%d</title><h1>%s</h1>",
		appError.HTTPStatus, html.EscapeString(appError.Message))
}
