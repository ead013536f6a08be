// Package normalization turns strings into the canonical form used for
// scoring. The same flags must be applied to the input and to every candidate
// key; normalizing only one side scores the two strings in different alphabets.
package normalization

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize returns the canonical comparison form of s. The flags are applied
// independently:
// - foldCase lowercases the string
// - deburr strips diacritical marks ("café" becomes "cafe")
// - trimSpaces trims the ends and collapses interior whitespace runs
func Normalize(s string, foldCase, deburr, trimSpaces bool) string {
	if foldCase {
		s = strings.ToLower(s)
	}

	if deburr && hasNonASCII(s) {
		s = removeAccents(s)
	}

	if trimSpaces {
		s = strings.Join(strings.Fields(s), " ")
	}

	return s
}

// hasNonASCII checks if the string contains non-ASCII characters.
func hasNonASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return true
		}
	}
	return false
}

// removeAccents removes diacritical marks from Unicode characters.
func removeAccents(s string) string {
	// Normalize to NFD form (decomposed)
	normalized := norm.NFD.String(s)

	// Build result without combining marks
	var result strings.Builder
	for _, r := range normalized {
		if !unicode.Is(unicode.Mn, r) { // Mn = Mark, Nonspacing
			result.WriteRune(r)
		}
	}

	return result.String()
}
