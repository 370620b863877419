// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package education

import "context"

type Repository interface {
	List(context context.Context, languageCode string) ([]*Entry, error)
	Create(context context.Context, education *Education) (int64, error)
	UpsertTranslation(context context.Context, translation *Translation) error
	CreateWithTranslations(context context.Context, education *Education, translations []*Translation) (int64, error)
	Delete(context context.Context, id int64) error
}
