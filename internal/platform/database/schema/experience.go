// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ExperienceTable represents the 'experience' base table.
type ExperienceTable struct {
	Table      string
	ID         string
	StartDate  string
	EndDate    string
	CompanyURL string
	SortOrder  string
}

// Experience is the schema definition for the experience table.
var Experience = ExperienceTable{
	Table:      "experience",
	ID:         "id",
	StartDate:  "start_date",
	EndDate:    "end_date",
	CompanyURL: "company_url",
	SortOrder:  "sort_order",
}

// ExperienceTranslationTable represents the 'experience_translations' table.
type ExperienceTranslationTable struct {
	Table        string
	ID           string
	ExperienceID string
	LanguageCode string
	JobTitle     string
	CompanyName  string
	Description  string
}

// ExperienceTranslation is the schema definition for experience_translations.
var ExperienceTranslation = ExperienceTranslationTable{
	Table:        "experience_translations",
	ID:           "id",
	ExperienceID: "experience_id",
	LanguageCode: "language_code",
	JobTitle:     "job_title",
	CompanyName:  "company_name",
	Description:  "description",
}
