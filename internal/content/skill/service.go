// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package skill

import (
	"context"
	"log/slog"

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

// SaveInput carries one inline admin form submission.
type SaveInput struct {
	Category  string
	SortOrder int
	NameEN    string
	NameDE    string
}

func (service *Service) List(context context.Context, languageCode string) ([]*Entry, error) {
	return service.repo.List(context, languageCode)
}

// Save validates the input and persists a new skill with both language
// names atomically.
func (service *Service) Save(context context.Context, input SaveInput) (int64, error) {
	v := &validate.Validator{}
	v.Required("category", input.Category)
	v.Required("name_en", input.NameEN)
	v.Required("name_de", input.NameDE)
	if v.HasErrors() {
		return 0, v.Err()
	}

	base := &Skill{
		Category:  input.Category,
		SortOrder: input.SortOrder,
	}

	translations := []*Translation{
		{LanguageCode: "en", Name: input.NameEN},
		{LanguageCode: "de", Name: input.NameDE},
	}

	id, err := service.repo.CreateWithTranslations(context, base, translations)
	if err != nil {
		return 0, err
	}

	service.logger.Info("skill_created", slog.Int64("id", id), slog.String("category", input.Category))
	return id, nil
}

func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("skill_deleted", slog.Int64("id", id))
	return nil
}
