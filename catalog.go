package main

import (
	"context"
	"fmt"
	"log"

	"github.com/pburel/SpotifyArtistGuess/data"
	"github.com/pburel/SpotifyArtistGuess/db"
	"github.com/pburel/SpotifyArtistGuess/spotify"
)

const searchLimit = 10

// findArtists searches the local catalog first and only falls back to the
// Spotify API when the catalog has no match; API results are saved so the
// next search is local.
func findArtists(ctx context.Context, db *db.DB, spo *spotify.Client, query string) ([]data.Artist, error) {
	local, err := db.SearchArtists(ctx, query, searchLimit)
	if err != nil {
		return nil, err
	}
	if len(local) > 0 {
		return local, nil
	}

	remote, err := spo.SearchArtists(ctx, query, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("error searching spotify for '%s': %w", query, err)
	}
	if len(remote) > 0 {
		if err := db.SaveArtists(remote); err != nil {
			log.Printf("error saving %d searched artists: %v", len(remote), err)
		}
	}

	return remote, nil
}
