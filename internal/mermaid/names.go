// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mermaid

import (
	"strings"
	"unicode"
)

// fallbackClassID replaces identifiers that are empty after cleanup.
const fallbackClassID = "Class"

// NormalizeName collapses runs of whitespace to single spaces and trims the
// ends.
func NormalizeName(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

// ParticipantID turns a normalized participant name into a sequence
// diagram identifier.
func ParticipantID(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

// ClassID turns a class name into an identifier made of letters, digits
// and underscores that never starts with a digit and is never empty.
func ClassID(raw string) string {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, raw)
	clean = strings.Trim(clean, "_")
	if clean == "" {
		clean = fallbackClassID
	}
	if first := []rune(clean)[0]; unicode.IsDigit(first) {
		clean = "_" + clean
	}
	return clean
}
