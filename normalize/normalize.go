// Package normalize turns raw, inconsistently-cased artist attributes into
// the canonical display values the game compares. Every function here is
// pure and total: no lookups, no failure modes, just string policy.
package normalize

import (
	"fmt"
	"strings"
)

// The five classification values the game knows about.
const (
	Male    = "Male"
	Female  = "Female"
	Other   = "Other"
	Group   = "Group"
	Unknown = "Unknown"
)

// Gender canonicalizes a raw gender value, falling back to hints from the
// artist's name and genres. An exact (case-insensitive) match on one of the
// canonical values always wins. The fallbacks are best-effort guesses and
// nothing more: a name containing "band" is probably a group, a name on the
// curated list is probably female, and everything else is Unknown.
func Gender(raw, name string, genres []string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "male":
		return Male
	case "female":
		return Female
	case "other", "non-binary":
		return Other
	case "group":
		return Group
	}

	if IsGroup(name, genres) {
		return Group
	}

	for _, needle := range femaleNames {
		if strings.Contains(name, needle) {
			return Female
		}
	}

	return Unknown
}

// IsGroup reports whether the artist looks like a band rather than a solo
// act, going by name keywords and genre tags.
func IsGroup(name string, genres []string) bool {
	lower := strings.ToLower(name)
	for _, needle := range groupKeywords {
		if strings.Contains(lower, needle) {
			return true
		}
	}
	for _, genre := range genres {
		lower := strings.ToLower(genre)
		if strings.Contains(lower, "rock") ||
			strings.Contains(lower, "metal") ||
			strings.Contains(lower, "band") {
			return true
		}
	}
	return false
}

// PrimaryGenre returns the artist's first genre tag, title-cased word by
// word, or "Unknown" when there are no tags. This is the one genre-default
// policy; callers must not invent their own.
func PrimaryGenre(genres []string) string {
	if len(genres) == 0 || strings.TrimSpace(genres[0]) == "" {
		return Unknown
	}
	return Title(genres[0])
}

// Title uppercases the first letter of each space-separated word, leaving
// the rest of the word alone ("hip hop" -> "Hip Hop", "r&b" -> "R&b").
func Title(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// CountryFlag returns the flag glyph for a two-letter country code, or ""
// when the code isn't in the table. The code itself is passed through
// untouched by everyone else; the table is display-only.
func CountryFlag(code string) string {
	return countryFlags[strings.ToUpper(code)]
}

// FormatCount renders a listener count with K/M suffixes and one decimal
// place, like the monthly-listeners figure on an artist page.
func FormatCount(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
