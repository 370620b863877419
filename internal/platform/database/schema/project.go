// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ProjectTable represents the 'projects' base table.
type ProjectTable struct {
	Table     string
	ID        string
	ImageURL  string
	GithubURL string
	LiveURL   string
	SortOrder string
}

// Project is the schema definition for the projects table.
var Project = ProjectTable{
	Table:     "projects",
	ID:        "id",
	ImageURL:  "image_url",
	GithubURL: "github_url",
	LiveURL:   "live_url",
	SortOrder: "sort_order",
}

// ProjectTranslationTable represents the 'project_translations' table.
type ProjectTranslationTable struct {
	Table        string
	ID           string
	ProjectID    string
	LanguageCode string
	Title        string
	Description  string
}

// ProjectTranslation is the schema definition for project_translations.
var ProjectTranslation = ProjectTranslationTable{
	Table:        "project_translations",
	ID:           "id",
	ProjectID:    "project_id",
	LanguageCode: "language_code",
	Title:        "title",
	Description:  "description",
}
