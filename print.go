package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pburel/SpotifyArtistGuess/data"
	"github.com/pburel/SpotifyArtistGuess/game"
	"github.com/pburel/SpotifyArtistGuess/normalize"
)

var detailsHeader = []string{
	"name", "debut", "members", "popularity", "gender", "genre", "country", "listeners",
}

func printDetailsHeader(tw *tabwriter.Writer) {
	fmt.Fprintf(tw, strings.Join(detailsHeader, "\t")+"\n")
}

func printDetails(tw *tabwriter.Writer, artist data.ArtistDetails) {
	country := artist.Country
	if flag := normalize.CountryFlag(country); flag != "" {
		country = flag + " " + country
	}
	fmt.Fprintf(tw, strings.Join([]string{
		artist.Name,
		artist.DebutYear,
		members(artist.Members),
		fmt.Sprintf("#%d", artist.Popularity),
		artist.Classification,
		normalize.PrimaryGenre(artist.Genres),
		country,
		normalize.FormatCount(artist.MonthlyListeners),
	}, "\t")+"\n")
}

// printComparison renders one guess row plus a feedback row underneath:
// check marks for matches, arrows pointing from the guess toward the
// target for the numeric fields.
func printComparison(w io.Writer, guess data.ArtistDetails, cmp game.Comparison) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	printDetailsHeader(tw)
	printDetails(tw, guess)
	fmt.Fprintf(tw, strings.Join([]string{
		"",
		mark(cmp.Debut),
		mark(cmp.Members),
		mark(cmp.Popularity),
		mark(cmp.Classification),
		mark(cmp.Genre),
		mark(cmp.Country),
		"",
	}, "\t")+"\n")
	tw.Flush()
}

func members(n int64) string {
	if n == 1 {
		return "Solo"
	}
	return fmt.Sprintf("%d", n)
}

func mark(field game.FieldResult) string {
	if field.Matched {
		return "✓"
	}
	switch field.Direction {
	case game.Lower:
		// The guess is lower; the target is up from here.
		return "✗ ↑"
	case game.Higher:
		return "✗ ↓"
	default:
		return "✗"
	}
}
