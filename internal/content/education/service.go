// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package education

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

// SaveInput carries one admin form submission. Degree and institution
// are shared across languages; only the description differs.
type SaveInput struct {
	StartDate     string
	EndDate       string // empty means still enrolled
	SortOrder     int
	Degree        string
	Institution   string
	DescriptionEN string
	DescriptionDE string
}

func (service *Service) List(context context.Context, languageCode string) ([]*Entry, error) {
	return service.repo.List(context, languageCode)
}

// Save validates the form input and persists a new education entry
// with both language translations atomically.
func (service *Service) Save(context context.Context, input SaveInput) (int64, error) {
	v := &validate.Validator{}
	v.Required("degree", input.Degree)
	v.Required("institution", input.Institution)
	v.Date("start_date", input.StartDate)
	v.OptionalDate("end_date", input.EndDate)
	if v.HasErrors() {
		return 0, v.Err()
	}

	base := &Education{
		StartDate: input.StartDate,
		SortOrder: input.SortOrder,
	}
	if input.EndDate != "" {
		base.EndDate = pointer.To(input.EndDate)
	}

	translations := []*Translation{
		{
			LanguageCode: "en",
			Degree:       input.Degree,
			Institution:  input.Institution,
			Description:  input.DescriptionEN,
		},
		{
			LanguageCode: "de",
			Degree:       input.Degree,
			Institution:  input.Institution,
			Description:  input.DescriptionDE,
		},
	}

	id, err := service.repo.CreateWithTranslations(context, base, translations)
	if err != nil {
		return 0, err
	}

	service.logger.Info("education_created", slog.Int64("id", id))
	return id, nil
}

// Translate writes or replaces the translation of an existing entry
// for one language.
func (service *Service) Translate(context context.Context, translation *Translation) error {
	v := &validate.Validator{}
	v.Required("degree", translation.Degree)
	v.Required("institution", translation.Institution)
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

	service.logger.Info("education_deleted", slog.Int64("id", id))
	return nil
}
