// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package publication manages the academic publication list.
package publication

// Publication is the language-independent base row of one paper.
// Venue and authors are kept verbatim as cited, not translated.
type Publication struct {
	ID        int64
	Year      int
	Venue     string
	Authors   string
	Link      string
	SortOrder int
}

// Translation is the display text of one publication in one language.
type Translation struct {
	PublicationID int64
	LanguageCode  string
	Title         string
	Description   string
}

// Entry is a publication joined with its translation for one language.
type Entry struct {
	Publication
	Title       string
	Description string
}
