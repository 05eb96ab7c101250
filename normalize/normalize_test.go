package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pburel/SpotifyArtistGuess/normalize"
)

func TestGenderExactMatchWins(t *testing.T) {
	assert.Equal(t, normalize.Male, normalize.Gender("male", "", nil))
	assert.Equal(t, normalize.Female, normalize.Gender("FEMALE", "", nil))
	assert.Equal(t, normalize.Other, normalize.Gender("Other", "", nil))
	assert.Equal(t, normalize.Group, normalize.Gender("group", "", nil))

	// An authoritative value beats every heuristic.
	assert.Equal(t, normalize.Male, normalize.Gender("male", "The Example Band", []string{"rock"}))
}

func TestGenderGroupHeuristics(t *testing.T) {
	assert.Equal(t, normalize.Group, normalize.Gender("", "The Glenn Miller Orchestra", nil))
	assert.Equal(t, normalize.Group, normalize.Gender("", "Simon & Garfunkel", nil))
	assert.Equal(t, normalize.Group, normalize.Gender("", "Hall and Oates", nil))
	assert.Equal(t, normalize.Group, normalize.Gender("", "Nameless", []string{"norwegian death metal"}))
}

func TestGenderCuratedNames(t *testing.T) {
	assert.Equal(t, normalize.Female, normalize.Gender("", "Lady Gaga", nil))
	assert.Equal(t, normalize.Female, normalize.Gender("", "Dua Lipa", nil))
}

func TestGenderUnknownByDefault(t *testing.T) {
	assert.Equal(t, normalize.Unknown, normalize.Gender("", "Bon Iver", []string{"indie folk"}))
	assert.Equal(t, normalize.Unknown, normalize.Gender("n/a", "Bon Iver", nil))
}

func TestPrimaryGenre(t *testing.T) {
	assert.Equal(t, "Hip Hop", normalize.PrimaryGenre([]string{"hip hop", "rap"}))
	assert.Equal(t, "Pop", normalize.PrimaryGenre([]string{"pop"}))

	// The one canonical default, applied for empty and absent alike.
	assert.Equal(t, "Unknown", normalize.PrimaryGenre(nil))
	assert.Equal(t, "Unknown", normalize.PrimaryGenre([]string{}))
	assert.Equal(t, "Unknown", normalize.PrimaryGenre([]string{"  "}))
}

func TestCountryFlag(t *testing.T) {
	assert.Equal(t, "🇺🇸", normalize.CountryFlag("US"))
	assert.Equal(t, "🇺🇸", normalize.CountryFlag("us"))
	assert.Equal(t, "🇬🇧", normalize.CountryFlag("UK"))
	assert.Equal(t, "🇬🇧", normalize.CountryFlag("GB"))
	assert.Equal(t, "", normalize.CountryFlag("ZZ"))
	assert.Equal(t, "", normalize.CountryFlag(""))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", normalize.FormatCount(0))
	assert.Equal(t, "999", normalize.FormatCount(999))
	assert.Equal(t, "1.0K", normalize.FormatCount(1_000))
	assert.Equal(t, "1.5K", normalize.FormatCount(1_500))
	assert.Equal(t, "999.9K", normalize.FormatCount(999_900))
	assert.Equal(t, "1.0M", normalize.FormatCount(1_000_000))
	assert.Equal(t, "80.0M", normalize.FormatCount(80_000_000))
}
