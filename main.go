// artistguess is a terminal rendition of the daily artist-guessing game: a
// random artist is drawn from a local sqlite catalog seeded from Spotify,
// enriched with MusicBrainz metadata (with deterministic fallbacks), and
// the player gets five guesses with per-attribute higher/lower feedback.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pburel/SpotifyArtistGuess/config"
	"github.com/pburel/SpotifyArtistGuess/db"
	"github.com/pburel/SpotifyArtistGuess/enrich"
	"github.com/pburel/SpotifyArtistGuess/musicbrainz"
	"github.com/pburel/SpotifyArtistGuess/sigctx"
	"github.com/pburel/SpotifyArtistGuess/spotify"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var usage = strings.TrimSpace(`
usage: artistguess $cmd
valid $cmd are 'seed', 'play', 'search', 'lookup', 'history'
for help: artistguess $cmd -help
`)

func run() error {
	ctx := sigctx.New()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := db.Open(cfg.DBFile)
	if err != nil {
		return err
	}
	defer db.Close()

	spo := spotify.New(cfg.SpotifyClientID, cfg.SpotifyClientSecret)
	enricher := enrich.New(musicbrainz.New(cfg.Contact))

	if len(os.Args) < 2 {
		return errors.New(usage)
	}
	cmd, args := os.Args[1], os.Args[2:]

	switch cmd {
	case "seed":
		return seed(ctx, db, spo, args)

	case "play":
		return play(ctx, db, spo, enricher, args)

	case "search":
		return search(ctx, db, spo, enricher, args)

	case "lookup":
		return lookup(ctx, db, spo, enricher, args)

	case "history":
		return history(ctx, db, args)

	default:
		return fmt.Errorf("unknown cmd: '%s'\n%s", cmd, usage)
	}
}
