// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides the security primitives for the admin login flow.
//
// # Architecture
//
// This package isolates security-sensitive code (OAuth2 client, JWT
// verification, random token generation) from the domain logic. Credential
// issuance is fully delegated to an external Keycloak realm; this package
// only drives the authorization-code + PKCE flow and verifies the resulting
// access tokens against the realm's published JWKS.
package sec

import (
	"context"
	"fmt"
	"strings"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// AuthClaims represents the payload embedded inside a Keycloak access token.
//
// Only the claims the application actually reads are mapped; the rest of the
// token is verified but ignored.
type AuthClaims struct {
	jwt.RegisteredClaims

	Email             string `json:"email"`
	PreferredUsername string `json:"preferred_username"`
}

// OIDCProvider drives the OAuth2 authorization-code + PKCE flow against a
// Keycloak realm and verifies the access tokens it issues.
//
// # Token Verification
//
// VerifyToken checks the RS256 signature against the realm's JWKS (fetched
// once at startup and refreshed in the background by keyfunc), the issuer,
// and the expiry. Presence of a token alone never grants access.
type OIDCProvider struct {
	oauth  *oauth2.Config
	issuer string
	jwks   keyfunc.Keyfunc
}

// NewOIDCProvider builds the OAuth2 client for a Keycloak realm.
//
// Keycloak publishes all realm endpoints under a fixed layout, so the
// authorization, token, and JWKS URLs are derived from the realm URL rather
// than fetched via discovery.
//
// # Parameters
//   - ctx: Context for the initial JWKS fetch.
//   - baseURL: Keycloak server base URL (e.g. https://id.example.com).
//   - realm: Realm name.
//   - clientID, clientSecret: Confidential client credentials.
//   - redirectURL: Absolute URL of the /admin/callback endpoint.
func NewOIDCProvider(ctx context.Context, baseURL, realm, clientID, clientSecret, redirectURL string) (*OIDCProvider, error) {
	realmURL := fmt.Sprintf("%s/realms/%s", strings.TrimRight(baseURL, "/"), realm)

	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{realmURL + "/protocol/openid-connect/certs"})
	if err != nil {
		return nil, fmt.Errorf("sec: failed to fetch realm JWKS: %w", err)
	}

	return &OIDCProvider{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  realmURL + "/protocol/openid-connect/auth",
				TokenURL: realmURL + "/protocol/openid-connect/token",
			},
		},
		issuer: realmURL,
		jwks:   jwks,
	}, nil
}

// NewVerifier generates a fresh PKCE code verifier.
func (provider *OIDCProvider) NewVerifier() string {
	return oauth2.GenerateVerifier()
}

// AuthCodeURL returns the identity provider's authorization URL for the
// given state token and PKCE verifier (S256 challenge).
func (provider *OIDCProvider) AuthCodeURL(state, verifier string) string {
	return provider.oauth.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))
}

// Exchange trades an authorization code plus PKCE verifier for an access
// token via a server-to-server call to the token endpoint.
func (provider *OIDCProvider) Exchange(ctx context.Context, code, verifier string) (string, error) {
	token, err := provider.oauth.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return "", fmt.Errorf("sec: code exchange failed: %w", err)
	}
	return token.AccessToken, nil
}

// VerifyToken parses and verifies an access token string.
//
// # Returns
//   - *AuthClaims: The verified claims.
//   - error: Any signature, issuer, or expiry failure.
func (provider *OIDCProvider) VerifyToken(tokenStr string) (*AuthClaims, error) {
	claims := &AuthClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, provider.jwks.Keyfunc,
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(provider.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("sec: token verification failed: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("sec: token rejected")
	}

	return claims, nil
}
