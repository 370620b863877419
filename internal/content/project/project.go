// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package project manages the portfolio project showcase.
package project

// Project is the language-independent base row of one project.
type Project struct {
	ID        int64
	ImageURL  string
	GithubURL string
	LiveURL   string
	SortOrder int
}

// Translation is the display text of one project in one language.
// Unlike experience, the title is translated too.
type Translation struct {
	ProjectID    int64
	LanguageCode string
	Title        string
	Description  string
}

// Entry is a project joined with its translation for one language.
type Entry struct {
	Project
	Title       string
	Description string
}
