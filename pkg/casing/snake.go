// Package casing converts camel-case identifiers to snake_case the way
// the port tooling expects translated file names to be spelled.
package casing

import "strings"

// ToSnake converts a camel-case name to a lowercase underscore-separated
// one. An underscore is inserted before an uppercase ASCII letter when it
// is followed by a lowercase letter and is not the first character, or
// when it immediately follows a lowercase letter or digit. The result is
// then lowercased. Consecutive capitals stay glued to their run:
// "getTXHash" becomes "get_tx_hash", "NEOGetVersion" becomes
// "neo_get_version".
//
// The function is idempotent: its output contains no uppercase letters,
// so a second application inserts nothing.
func ToSnake(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)

	for i, r := range runes {
		if isUpper(r) && i > 0 {
			followedByLower := i+1 < len(runes) && isLower(runes[i+1])
			afterLowerOrDigit := isLower(runes[i-1]) || isDigit(runes[i-1])
			if followedByLower || afterLowerOrDigit {
				b.WriteByte('_')
			}
		}
		b.WriteRune(r)
	}

	return strings.ToLower(b.String())
}

// ASCII-only classification, matching the [A-Z], [a-z] and [0-9]
// classes the name convention is defined over.

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func isLower(r rune) bool { return r >= 'a' && r <= 'z' }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
