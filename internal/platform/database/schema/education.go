// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// EducationTable represents the 'education' base table.
type EducationTable struct {
	Table     string
	ID        string
	StartDate string
	EndDate   string
	SortOrder string
}

// Education is the schema definition for the education table.
var Education = EducationTable{
	Table:     "education",
	ID:        "id",
	StartDate: "start_date",
	EndDate:   "end_date",
	SortOrder: "sort_order",
}

// EducationTranslationTable represents the 'education_translations' table.
type EducationTranslationTable struct {
	Table        string
	ID           string
	EducationID  string
	LanguageCode string
	Degree       string
	Institution  string
	Description  string
}

// EducationTranslation is the schema definition for education_translations.
var EducationTranslation = EducationTranslationTable{
	Table:        "education_translations",
	ID:           "id",
	EducationID:  "education_id",
	LanguageCode: "language_code",
	Degree:       "degree",
	Institution:  "institution",
	Description:  "description",
}
