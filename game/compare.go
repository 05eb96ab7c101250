// Package game holds the guess comparator and the per-round session state
// machine. Everything here works on fully-enriched records; the enrichment
// pipeline guarantees the fields the comparator reads are populated.
package game

import (
	"strconv"
	"strings"

	"github.com/pburel/SpotifyArtistGuess/data"
	"github.com/pburel/SpotifyArtistGuess/normalize"
)

// Direction is the hint shown next to a numeric field: the guess's value
// relative to the target's.
type Direction string

const (
	Exact  Direction = "exact"
	Higher Direction = "higher"
	Lower  Direction = "lower"
	NA     Direction = "na"
)

// FieldResult is the feedback for one attribute of a guess.
type FieldResult struct {
	Matched   bool
	Direction Direction
}

// A Comparison is the per-field feedback for one guess. Correct is the
// only whole-artist signal: it means the guess is the target, not that
// every field happened to match.
type Comparison struct {
	Debut          FieldResult
	Members        FieldResult
	Popularity     FieldResult
	Classification FieldResult
	Genre          FieldResult
	Country        FieldResult

	Correct bool
}

// Compare scores a guess against the target, field by field. It is pure:
// same inputs, same output, no side effects.
func Compare(guess, target data.ArtistDetails) Comparison {
	return Comparison{
		Debut:          compareYears(guess.DebutYear, target.DebutYear),
		Members:        compareExact(guess.Members == target.Members),
		Popularity:     compareNumbers(guess.Popularity, target.Popularity),
		Classification: compareExact(strings.EqualFold(guess.Classification, target.Classification)),
		Genre:          compareExact(normalize.PrimaryGenre(guess.Genres) == normalize.PrimaryGenre(target.Genres)),
		Country:        compareExact(guess.Country == target.Country),

		Correct: guess.SpotifyID == target.SpotifyID,
	}
}

// compareYears gives a directional result when both sides parse as
// integers; a missing or malformed year on either side means no arrow.
func compareYears(guess, target string) FieldResult {
	g, gerr := strconv.Atoi(guess)
	t, terr := strconv.Atoi(target)
	if gerr != nil || terr != nil {
		return FieldResult{Matched: false, Direction: NA}
	}
	return compareNumbers(int64(g), int64(t))
}

func compareNumbers(guess, target int64) FieldResult {
	switch {
	case guess == target:
		return FieldResult{Matched: true, Direction: Exact}
	case guess < target:
		return FieldResult{Matched: false, Direction: Lower}
	default:
		return FieldResult{Matched: false, Direction: Higher}
	}
}

func compareExact(matched bool) FieldResult {
	if matched {
		return FieldResult{Matched: true, Direction: Exact}
	}
	return FieldResult{Matched: false, Direction: NA}
}
