// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package experience

import (
	"context"
	"log/slog"

	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/validate"
	"github.com/taibuivan/folio/pkg/pointer"
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

// SaveInput carries one admin form submission. Job title and company
// name are shared across languages; only the description differs.
type SaveInput struct {
	StartDate     string
	EndDate       string // empty means ongoing
	CompanyURL    string
	SortOrder     int
	JobTitle      string
	CompanyName   string
	DescriptionEN string
	DescriptionDE string
}

func (service *Service) List(context context.Context, languageCode string) ([]*Entry, error) {
	return service.repo.List(context, languageCode)
}

/*
Save validates the form input and persists a new experience entry with
both language translations atomically.

Returns:
  - int64: the id of the new base row.
  - error: a validation apperr or a wrapped storage error.
*/
func (service *Service) Save(context context.Context, input SaveInput) (int64, error) {
	v := &validate.Validator{}
	v.Required("job_title", input.JobTitle)
	v.Required("company_name", input.CompanyName)
	v.Date("start_date", input.StartDate)
	v.OptionalDate("end_date", input.EndDate)
	if v.HasErrors() {
		return 0, v.Err()
	}

	base := &Experience{
		StartDate:  input.StartDate,
		CompanyURL: input.CompanyURL,
		SortOrder:  input.SortOrder,
	}
	if input.EndDate != "" {
		base.EndDate = pointer.To(input.EndDate)
	}

	translations := []*Translation{
		{
			LanguageCode: "en",
			JobTitle:     input.JobTitle,
			CompanyName:  input.CompanyName,
			Description:  input.DescriptionEN,
		},
		{
			LanguageCode: "de",
			JobTitle:     input.JobTitle,
			CompanyName:  input.CompanyName,
			Description:  input.DescriptionDE,
		},
	}

	id, err := service.repo.CreateWithTranslations(context, base, translations)
	if err != nil {
		return 0, err
	}

	service.logger.Info("experience_created", slog.Int64("id", id))
	return id, nil
}

// Translate writes or replaces the translation of an existing entry
// for one language.
func (service *Service) Translate(context context.Context, translation *Translation) error {
	v := &validate.Validator{}
	v.Required("job_title", translation.JobTitle)
	v.Required("company_name", translation.CompanyName)
	v.Language("language_code", translation.LanguageCode, constants.SupportedLanguages)
	if v.HasErrors() {
		return v.Err()
	}

	return service.repo.UpsertTranslation(context, translation)
}

func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("experience_deleted", slog.Int64("id", id))
	return nil
}
