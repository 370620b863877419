// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the admin login flow against the identity
provider: the authorization-code redirect with PKCE, the callback
exchange, and logout.

The server keeps no session state. The access token issued by the
provider travels in a cookie and is verified cryptographically on
every request by the middleware layer.
*/
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/sec"
)

// Provider is the identity-provider surface the login flow needs.
// *sec.OIDCProvider satisfies it; tests substitute a stub.
type Provider interface {
	NewVerifier() string
	AuthCodeURL(state, verifier string) string
	Exchange(ctx context.Context, code, verifier string) (string, error)
}

// LoginRedirect carries everything the handler must persist
// client-side before sending the visitor to the identity provider.
type LoginRedirect struct {
	URL      string
	State    string
	Verifier string
}

type Service struct {
	provider Provider
	logger   *slog.Logger
}

func NewService(provider Provider, logger *slog.Logger) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
	}
}

/*
BeginLogin starts an authorization-code flow.

It generates a fresh anti-CSRF state and a PKCE code verifier, and
builds the provider redirect URL binding both.

Returns:
  - *LoginRedirect: the redirect target plus the two transient secrets.
  - error: only when the system entropy source fails.
*/
func (service *Service) BeginLogin() (*LoginRedirect, error) {
	state, err := sec.GenerateSecureToken(stateTokenLength)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("generate state: %w", err))
	}

	verifier := service.provider.NewVerifier()

	return &LoginRedirect{
		URL:      service.provider.AuthCodeURL(state, verifier),
		State:    state,
		Verifier: verifier,
	}, nil
}

/*
CompleteLogin redeems the authorization code for an access token,
proving code possession with the PKCE verifier.

A rejected exchange is an internal error, not a client fault: the
code and state already passed the callback checks at this point.
*/
func (service *Service) CompleteLogin(ctx context.Context, code, verifier string) (string, error) {
	token, err := service.provider.Exchange(ctx, code, verifier)
	if err != nil {
		service.logger.Error("token_exchange_failed", slog.Any("error", err))
		return "", apperr.Internal(fmt.Errorf("exchange authorization code: %w", err))
	}

	service.logger.Info("admin_login")
	return token, nil
}
