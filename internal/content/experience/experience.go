// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package experience manages the work history entries of the resume.
package experience

// Experience is the language-independent base row of a position.
type Experience struct {
	ID         int64
	StartDate  string
	EndDate    *string // nil means the position is ongoing
	CompanyURL string
	SortOrder  int
}

// Current reports whether the position has no end date.
func (experience *Experience) Current() bool {
	return experience.EndDate == nil
}

// Translation is the display text of one experience in one language.
type Translation struct {
	ExperienceID int64
	LanguageCode string
	JobTitle     string
	CompanyName  string
	Description  string
}

// Entry is an experience joined with its translation for one language.
// Rows without a translation in the requested language are not
// represented; the repository simply omits them.
type Entry struct {
	Experience
	JobTitle    string
	CompanyName string
	Description string
}
