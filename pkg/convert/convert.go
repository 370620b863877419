// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides quick type-conversion utilities.

It wraps [strconv] with fault-tolerant defaults, which keeps form
handlers readable when a numeric field may legitimately be absent
(e.g. an omitted sort order defaults to 0).

Do not use this package if distinguishing between malformed data and zero
values matters in your domain logic; use strconv directly instead.
*/
package convert

import (
	"strconv"
)

// ToInt converts a string to an integer, silencing parsing errors.
// It returns 0 if the string is empty or cannot be parsed.
func ToInt(s string) int {
	if s == "" {
		return 0
	}

	v, _ := strconv.Atoi(s)
	return v
}
