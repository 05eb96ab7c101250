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

func lookup(ctx context.Context, db *db.DB, spo *spotify.Client, enricher *enrich.Enricher, args []string) error {
	subcmd := subcmd.New("lookup", "show the enriched record for the best match of a name")
	subcmd.SetArg("name", "string", "artist name (required)")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	name := strings.Join(subcmd.Args(), " ")
	if name == "" {
		return fmt.Errorf("lookup requires a name")
	}

	artists, err := findArtists(ctx, db, spo, name)
	if err != nil {
		return err
	}
	if len(artists) == 0 {
		fmt.Printf("no artist found for '%s'\n", name)
		return nil
	}

	details := enricher.Enrich(ctx, artists[0])

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	printDetailsHeader(tw)
	printDetails(tw, details)
	tw.Flush()

	return nil
}
