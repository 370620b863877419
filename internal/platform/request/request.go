// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
form decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/ctxutil"
	"github.com/taibuivan/folio/internal/platform/sec"
)

/*
ParseForm parses a form-encoded request body.

Returns:
  - error: apperr.BadRequest if the body cannot be parsed, otherwise nil
*/
func ParseForm(request *http.Request) error {
	if err := request.ParseForm(); err != nil {
		return apperr.BadRequest("Invalid form payload")
	}
	return nil
}

/*
IDParam retrieves the {id} URL parameter as an integer identifier.

Returns:
  - int64: The parsed identifier
  - error: apperr.BadRequest if the parameter is missing or not numeric
*/
func IDParam(request *http.Request) (int64, error) {
	raw := chi.URLParam(request, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.BadRequest("Invalid identifier")
	}
	return id, nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Language extracts the visitor's content language from the request context.

The language middleware guarantees a supported value is always present.
*/
func Language(request *http.Request) string {
	return ctxutil.GetLanguage(request.Context())
}

/*
Claims extracts the verified admin claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}
