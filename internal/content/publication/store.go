// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package publication

import "context"

type Repository interface {
	List(context context.Context, languageCode string) ([]*Entry, error)
	Create(context context.Context, publication *Publication) (int64, error)
	UpsertTranslation(context context.Context, translation *Translation) error
	CreateWithTranslations(context context.Context, publication *Publication, translations []*Translation) (int64, error)
	Delete(context context.Context, id int64) error
}
