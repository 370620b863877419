// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

const (
	// stateTokenLength is the byte length of the random anti-CSRF
	// state before encoding.
	stateTokenLength = 32
)
