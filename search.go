package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pburel/SpotifyArtistGuess/db"
	"github.com/pburel/SpotifyArtistGuess/enrich"
	"github.com/pburel/SpotifyArtistGuess/spotify"
	"github.com/pburel/SpotifyArtistGuess/subcmd"
)

func search(ctx context.Context, db *db.DB, spo *spotify.Client, enricher *enrich.Enricher, args []string) error {
	subcmd := subcmd.New("search", "search for artists by name and show their enriched attributes")
	subcmd.SetArg("query", "string", "search query, matched against artist names (required)")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	query := strings.Join(subcmd.Args(), " ")
	if query == "" {
		return fmt.Errorf("search requires a query")
	}

	artists, err := findArtists(ctx, db, spo, query)
	if err != nil {
		return fmt.Errorf("error in search for '%s': %w", query, err)
	}

	if len(artists) == 0 {
		fmt.Printf("no results for '%s'\n", query)
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	printDetailsHeader(tw)
	for _, details := range enricher.EnrichAll(ctx, artists) {
		printDetails(tw, details)
	}
	tw.Flush()

	return nil
}
