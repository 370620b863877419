// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// PublicationTable represents the 'publications' base table.
type PublicationTable struct {
	Table     string
	ID        string
	Year      string
	Venue     string
	Authors   string
	Link      string
	SortOrder string
}

// Publication is the schema definition for the publications table.
var Publication = PublicationTable{
	Table:     "publications",
	ID:        "id",
	Year:      "year",
	Venue:     "venue",
	Authors:   "authors",
	Link:      "link",
	SortOrder: "sort_order",
}

// PublicationTranslationTable represents the 'publication_translations' table.
type PublicationTranslationTable struct {
	Table         string
	ID            string
	PublicationID string
	LanguageCode  string
	Title         string
	Description   string
}

// PublicationTranslation is the schema definition for publication_translations.
var PublicationTranslation = PublicationTranslationTable{
	Table:         "publication_translations",
	ID:            "id",
	PublicationID: "publication_id",
	LanguageCode:  "language_code",
	Title:         "title",
	Description:   "description",
}
