// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package skill manages the categorized skill list of the resume.
package skill

// Skill is the language-independent base row of one skill.
// The category is a free-form label shared across languages.
type Skill struct {
	ID        int64
	Category  string
	SortOrder int
}

// Translation is the display name of one skill in one language.
type Translation struct {
	SkillID      int64
	LanguageCode string
	Name         string
}

// Entry is a skill joined with its translation for one language.
type Entry struct {
	Skill
	Name string
}

// Group bundles the entries of one category for display.
type Group struct {
	Category string
	Entries  []*Entry
}

// GroupByCategory folds a category-ordered entry list into display
// groups, preserving the list order.
func GroupByCategory(entries []*Entry) []Group {
	var groups []Group
	for _, entry := range entries {
		if len(groups) == 0 || groups[len(groups)-1].Category != entry.Category {
			groups = append(groups, Group{Category: entry.Category})
		}
		last := &groups[len(groups)-1]
		last.Entries = append(last.Entries, entry)
	}
	return groups
}
