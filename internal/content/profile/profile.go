// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package profile manages the personal details shown in the hero
// section. The profile is a singleton: exactly one base row, pinned
// to a fixed id, with one translation per language.
package profile

// Profile is the language-independent base row.
type Profile struct {
	ID          int64
	Email       string
	Phone       string
	GithubURL   string
	LinkedinURL string
}

// Translation is the per-language presentation of the profile.
type Translation struct {
	ProfileID    int64
	LanguageCode string
	Name         string
	Title        string
	AboutMe      string
	Location     string
}

// View is the profile joined with its translation for one language.
type View struct {
	Profile
	LanguageCode string
	Name         string
	Title        string
	AboutMe      string
	Location     string
}
