package main

import (
	"context"
	"fmt"

	"github.com/pburel/SpotifyArtistGuess/db"
	"github.com/pburel/SpotifyArtistGuess/fetcher"
	"github.com/pburel/SpotifyArtistGuess/setflag"
	"github.com/pburel/SpotifyArtistGuess/spotify"
	"github.com/pburel/SpotifyArtistGuess/subcmd"
)

func seed(ctx context.Context, db *db.DB, spo *spotify.Client, args []string) error {
	subcmd := subcmd.New("seed", "populate an empty catalog with artists from spotify\nrequires SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET")
	limit := subcmd.Int("limit", 200, "number of artists to fetch")
	genres := setflag.New(fetcher.DefaultGenres()...)
	subcmd.Var(genres, "genres", "comma-separated seed genres; defaults to the everynoise list")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	count, err := fetcher.New(db, spo).Seed(ctx, genres.List(), *limit)
	if err != nil {
		return fmt.Errorf("seed error: %w", err)
	}

	fmt.Printf("catalog holds %d artists\n", count)
	return nil
}
