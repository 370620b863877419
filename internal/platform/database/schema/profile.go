// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ProfileTable represents the 'profile' singleton base table.
type ProfileTable struct {
	Table       string
	ID          string
	Email       string
	Phone       string
	GithubURL   string
	LinkedinURL string
}

// Profile is the schema definition for the profile table.
var Profile = ProfileTable{
	Table:       "profile",
	ID:          "id",
	Email:       "email",
	Phone:       "phone",
	GithubURL:   "github_url",
	LinkedinURL: "linkedin_url",
}

// ProfileTranslationTable represents the 'profile_translations' table.
type ProfileTranslationTable struct {
	Table        string
	ID           string
	ProfileID    string
	LanguageCode string
	Name         string
	Title        string
	AboutMe      string
	Location     string
}

// ProfileTranslation is the schema definition for profile_translations.
var ProfileTranslation = ProfileTranslationTable{
	Table:        "profile_translations",
	ID:           "id",
	ProfileID:    "profile_id",
	LanguageCode: "language_code",
	Name:         "name",
	Title:        "title",
	AboutMe:      "about_me",
	Location:     "location",
}
