// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, cookie names, and cross-cutting keys
that are shared between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: Cookie names and lifetimes for the OAuth2 login flow.
  - Localization: Supported content languages.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "folio-web"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 50.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 100

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication Cookies

const (
	// AuthTokenCookie stores the Keycloak access token after a completed login.
	AuthTokenCookie = "auth_token"

	// StateCookie stores the anti-CSRF state token during the login redirect.
	StateCookie = "oauth_state"

	// VerifierCookie stores the PKCE code verifier during the login redirect.
	VerifierCookie = "oauth_code_verifier"

	// AuthTokenTTL is the lifetime of the access-token cookie.
	AuthTokenTTL = 24 * time.Hour

	// LoginFlowTTL is the lifetime of the transient state/verifier cookies.
	// A login redirect that takes longer than this has gone stale.
	LoginFlowTTL = 10 * time.Minute
)

// # Localization

const (
	// LangCookie stores the visitor's preferred content language.
	LangCookie = "lang"

	// LangCookieTTL is the lifetime of the language-preference cookie.
	LangCookieTTL = 365 * 24 * time.Hour

	// DefaultLanguage is used when no preference cookie is present.
	DefaultLanguage = "en"
)

// SupportedLanguages lists every language the admin area writes content in.
// The storage layer does not enforce a closed set; this is an application rule.
var SupportedLanguages = []string{"en", "de"}

// IsSupportedLanguage reports whether code is one of [SupportedLanguages].
func IsSupportedLanguage(code string) bool {
	for _, lang := range SupportedLanguages {
		if lang == code {
			return true
		}
	}
	return false
}

// # Content

const (
	// ProfileID is the fixed primary key of the singleton profile row.
	ProfileID = 1
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
)
