// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"context"
	"log/slog"

	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// SaveInput carries the admin profile form for one language. Contact
// fields are shared; name, title, about and location belong to the
// language being edited.
type SaveInput struct {
	LanguageCode string
	Email        string
	Phone        string
	GithubURL    string
	LinkedinURL  string
	Name         string
	Title        string
	AboutMe      string
	Location     string
}

// Get returns the profile for the given language, or nil when it has
// not been filled in yet.
func (service *Service) Get(context context.Context, languageCode string) (*View, error) {
	return service.repo.Get(context, languageCode)
}

/*
Save validates the form and persists contact details plus the
translation of the submitted language in one transaction. Other
languages keep their existing text.
*/
func (service *Service) Save(context context.Context, input SaveInput) error {
	v := &validate.Validator{}
	v.Language("lang", input.LanguageCode, constants.SupportedLanguages)
	v.Required("name", input.Name)
	if input.Email != "" {
		v.Email("email", input.Email)
	}
	if v.HasErrors() {
		return v.Err()
	}

	base := &Profile{
		Email:       input.Email,
		Phone:       input.Phone,
		GithubURL:   input.GithubURL,
		LinkedinURL: input.LinkedinURL,
	}

	translation := &Translation{
		LanguageCode: input.LanguageCode,
		Name:         input.Name,
		Title:        input.Title,
		AboutMe:      input.AboutMe,
		Location:     input.Location,
	}

	if err := service.repo.Save(context, base, translation); err != nil {
		return err
	}

	service.logger.Info("profile_saved", slog.String("lang", input.LanguageCode))
	return nil
}
