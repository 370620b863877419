// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestRewritePlaceholders verifies the '?' to '$n' conversion the
Postgres adapter applies to every query.
*/
func TestRewritePlaceholders(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			"no_placeholders",
			"SELECT id FROM profile",
			"SELECT id FROM profile",
		},
		{
			"single_placeholder",
			"SELECT id FROM profile WHERE id = ?",
			"SELECT id FROM profile WHERE id = $1",
		},
		{
			"multiple_placeholders",
			"INSERT INTO skills (category, sort_order) VALUES (?, ?)",
			"INSERT INTO skills (category, sort_order) VALUES ($1, $2)",
		},
		{
			"mixed_clauses",
			"UPDATE experience SET end_date = ? WHERE id = ? AND sort_order > ?",
			"UPDATE experience SET end_date = $1 WHERE id = $2 AND sort_order > $3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rewritePlaceholders(tt.query))
		})
	}
}
