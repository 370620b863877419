// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import "context"

type Repository interface {
	// Get returns the profile in the given language, or (nil, nil)
	// when no profile or no translation for that language exists yet.
	Get(context context.Context, languageCode string) (*View, error)

	// Upsert writes the singleton base row and returns its id.
	Upsert(context context.Context, profile *Profile) (int64, error)

	UpsertTranslation(context context.Context, translation *Translation) error

	// Save writes the base row and one translation atomically.
	Save(context context.Context, profile *Profile, translation *Translation) error
}
