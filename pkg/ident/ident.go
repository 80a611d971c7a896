// Package ident provides case-insensitive identifier handling.
//
// Pascal identifiers are case-insensitive: MyVar, myvar and MYVAR all name
// the same thing. This package centralizes the normalization rule so every
// phase (keyword lookup, symbol tables, diagnostics) agrees on it, while
// callers keep the user's original spelling for output.
package ident

import "strings"

// Normalize returns the canonical lookup form of an identifier.
// The result is stable: Normalize(Normalize(s)) == Normalize(s).
func Normalize(name string) string {
	return strings.ToLower(name)
}

// Equal reports whether two identifiers name the same thing
// under Pascal's case-insensitive comparison rules.
func Equal(a, b string) bool {
	return strings.EqualFold(a, b)
}

// Compare compares two identifiers case-insensitively.
// It returns -1 if a < b, 0 if a == b, and +1 if a > b.
func Compare(a, b string) int {
	return strings.Compare(Normalize(a), Normalize(b))
}
