// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer provides small generic helpers for pointer plumbing.

Nullable columns (end dates, optional links) travel through the
application as pointers; this helper cuts the boilerplate of taking
the address of a literal.
*/
package pointer

// To returns a pointer to the provided value.
// Useful when a struct field expects an optional value
// (e.g. pointer.To("2024-03-01") for a nullable end date).
func To[T any](v T) *T {
	return &v
}
