// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package education manages the academic history entries of the resume.
package education

// Education is the language-independent base row of one degree.
type Education struct {
	ID        int64
	StartDate string
	EndDate   *string // nil means still enrolled
	SortOrder int
}

// Translation is the display text of one education entry in one language.
type Translation struct {
	EducationID  int64
	LanguageCode string
	Degree       string
	Institution  string
	Description  string
}

// Entry is an education row joined with its translation for one language.
type Entry struct {
	Education
	Degree      string
	Institution string
	Description string
}
