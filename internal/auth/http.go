// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/respond"
)

type Handler struct {
	service *Service

	// secureCookies marks every auth cookie Secure; enabled outside
	// development so tokens never travel over plain HTTP.
	secureCookies bool
}

func NewHandler(service *Service, secureCookies bool) *Handler {
	return &Handler{service: service, secureCookies: secureCookies}
}

// Login handles GET /login. It parks the state and PKCE verifier in
// short-lived cookies and forwards the visitor to the identity
// provider.
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	redirect, err := handler.service.BeginLogin()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setCookie(writer, constants.StateCookie, redirect.State, int(constants.LoginFlowTTL.Seconds()))
	handler.setCookie(writer, constants.VerifierCookie, redirect.Verifier, int(constants.LoginFlowTTL.Seconds()))

	respond.Redirect(writer, request, redirect.URL)
}

/*
Callback handles GET /admin/callback, the return leg of the login.

The request must carry the authorization code and the state echoed by
the provider, and the state must match the cookie written by Login.
Anything missing or mismatched is a client error; only a failed code
exchange is a server error.
*/
func (handler *Handler) Callback(writer http.ResponseWriter, request *http.Request) {
	code := request.URL.Query().Get("code")
	state := request.URL.Query().Get("state")
	storedState := cookieValue(request, constants.StateCookie)
	verifier := cookieValue(request, constants.VerifierCookie)

	if code == "" || state == "" || storedState == "" || verifier == "" || state != storedState {
		respond.Error(writer, request, apperr.BadRequest("Invalid login callback"))
		return
	}

	token, err := handler.service.CompleteLogin(request.Context(), code, verifier)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setCookie(writer, constants.AuthTokenCookie, token, int(constants.AuthTokenTTL.Seconds()))
	handler.clearCookie(writer, constants.StateCookie)
	handler.clearCookie(writer, constants.VerifierCookie)

	respond.Redirect(writer, request, "/admin")
}

// Logout handles GET /logout. Dropping the token cookie is the whole
// logout; the provider session is left alone.
func (handler *Handler) Logout(writer http.ResponseWriter, request *http.Request) {
	handler.clearCookie(writer, constants.AuthTokenCookie)
	respond.Redirect(writer, request, "/")
}

func (handler *Handler) setCookie(writer http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (handler *Handler) clearCookie(writer http.ResponseWriter, name string) {
	http.SetCookie(writer, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func cookieValue(request *http.Request, name string) string {
	cookie, err := request.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
