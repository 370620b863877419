// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"log/slog"
	"net/http"

	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/ctxutil"
	"github.com/taibuivan/folio/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the OIDC
// implementation, allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// Authenticate extracts and verifies the access token from the auth cookie.
//
// # Flow
//  1. Check for a non-empty auth_token cookie.
//  2. If absent, the request proceeds as anonymous.
//  3. If present, verify signature, issuer, and expiry via [TokenVerifier].
//  4. On success inject [*sec.AuthClaims] into the request context; on any
//     verification failure the request remains anonymous. A stale cookie is
//     therefore equivalent to no cookie — never an error page.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			cookie, err := request.Cookie(constants.AuthTokenCookie)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			claims, err := verifier.VerifyToken(cookie.Value)
			if err != nil {
				ctxutil.GetLogger(request.Context()).DebugContext(request.Context(),
					"auth_token_rejected", slog.String("error", err.Error()))
				next.ServeHTTP(writer, request)
				return
			}

			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAdmin blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. Anonymous visitors
// are redirected to /login rather than served an error page.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetAuthUser(request.Context()) == nil {
			http.Redirect(writer, request, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(writer, request)
	})
}
