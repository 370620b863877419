// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// SkillTable represents the 'skills' base table.
type SkillTable struct {
	Table     string
	ID        string
	Category  string
	SortOrder string
}

// Skill is the schema definition for the skills table.
var Skill = SkillTable{
	Table:     "skills",
	ID:        "id",
	Category:  "category",
	SortOrder: "sort_order",
}

// SkillTranslationTable represents the 'skill_translations' table.
type SkillTranslationTable struct {
	Table        string
	ID           string
	SkillID      string
	LanguageCode string
	Name         string
}

// SkillTranslation is the schema definition for skill_translations.
var SkillTranslation = SkillTranslationTable{
	Table:        "skill_translations",
	ID:           "id",
	SkillID:      "skill_id",
	LanguageCode: "language_code",
	Name:         "name",
}
