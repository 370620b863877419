// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package publication

import (
	"context"
	"log/slog"

	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/validate"
)

// Publication years outside this window are assumed to be typos.
const (
	minYear = 1900
	maxYear = 2100
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

// SaveInput carries one admin form submission. Titles and descriptions
// are captured per language; bibliographic fields are shared.
type SaveInput struct {
	Year          int
	Venue         string
	Authors       string
	Link          string
	SortOrder     int
	TitleEN       string
	TitleDE       string
	DescriptionEN string
	DescriptionDE string
}

func (service *Service) List(context context.Context, languageCode string) ([]*Entry, error) {
	return service.repo.List(context, languageCode)
}

// Save validates the form input and persists a new publication with
// both language translations atomically.
func (service *Service) Save(context context.Context, input SaveInput) (int64, error) {
	v := &validate.Validator{}
	v.Required("title_en", input.TitleEN)
	v.Required("title_de", input.TitleDE)
	v.Required("venue", input.Venue)
	v.Required("authors", input.Authors)
	v.Range("year", input.Year, minYear, maxYear)
	if v.HasErrors() {
		return 0, v.Err()
	}

	base := &Publication{
		Year:      input.Year,
		Venue:     input.Venue,
		Authors:   input.Authors,
		Link:      input.Link,
		SortOrder: input.SortOrder,
	}

	translations := []*Translation{
		{LanguageCode: "en", Title: input.TitleEN, Description: input.DescriptionEN},
		{LanguageCode: "de", Title: input.TitleDE, Description: input.DescriptionDE},
	}

	id, err := service.repo.CreateWithTranslations(context, base, translations)
	if err != nil {
		return 0, err
	}

	service.logger.Info("publication_created", slog.Int64("id", id), slog.Int("year", input.Year))
	return id, nil
}

// Translate writes or replaces the translation of an existing
// publication for one language.
func (service *Service) Translate(context context.Context, translation *Translation) error {
	v := &validate.Validator{}
	v.Required("title", translation.Title)
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

	service.logger.Info("publication_deleted", slog.Int64("id", id))
	return nil
}
