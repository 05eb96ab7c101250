// Package fetcher populates the catalog from Spotify. Unlike a full crawl,
// the game only needs a pool of recognizable artists to draw targets from,
// so seeding is a bounded batch of genre searches.
package fetcher

import (
	"context"
	"fmt"
	"log"

	"github.com/pburel/SpotifyArtistGuess/db"
	"github.com/pburel/SpotifyArtistGuess/enao"
	"github.com/pburel/SpotifyArtistGuess/spotify"
)

// defaultGenres covers the mainstream; it is the fallback when the
// everynoise scrape is unavailable, and the option set for -genres.
var defaultGenres = []string{
	"pop", "rock", "hip hop", "rap", "electronic", "r&b", "country",
	"latin", "indie", "dance", "jazz", "classical", "k-pop",
}

func DefaultGenres() []string {
	out := make([]string, len(defaultGenres))
	copy(out, defaultGenres)
	return out
}

func New(db *db.DB, spo *spotify.Client) *Fetcher {
	return &Fetcher{db: db, spo: spo}
}

type Fetcher struct {
	db  *db.DB
	spo *spotify.Client
}

// Seed fills an empty catalog with up to limit artists drawn from the
// given genres. A non-empty catalog is left alone. When no genres are
// passed, Seed tries the everynoise genre list and falls back to the
// built-in one.
func (f *Fetcher) Seed(ctx context.Context, genres []string, limit int) (int, error) {
	count, err := f.db.CountArtists(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		log.Printf("catalog already has %d artists; skipping seed", count)
		return count, nil
	}

	if len(genres) == 0 {
		genres = f.seedGenres()
	}

	artists, err := f.spo.FetchTopArtists(ctx, genres, limit)
	if err != nil {
		return 0, fmt.Errorf("error fetching artists to seed catalog: %w", err)
	}
	if len(artists) == 0 {
		return 0, fmt.Errorf("no artists found for seed genres")
	}

	if err := f.db.SaveArtists(artists); err != nil {
		return 0, err
	}

	log.Printf("seeded catalog with %d artists from %d genres", len(artists), len(genres))
	return len(artists), nil
}

func (f *Fetcher) seedGenres() []string {
	names, err := enao.GenreNames()
	if err != nil || len(names) == 0 {
		log.Printf("everynoise genre list unavailable, using built-in list: %v", err)
		return DefaultGenres()
	}
	// The scrape returns thousands of microgenres; the head of the list
	// is plenty for seeding.
	if len(names) > 50 {
		names = names[:50]
	}
	return names
}
