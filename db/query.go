package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pburel/SpotifyArtistGuess/data"
)

var ErrNoArtists = errors.New("no artists in catalog")

// GetArtist fetches one artist by Spotify id, genres included.
func (db *DB) GetArtist(ctx context.Context, spotifyID string) (*data.Artist, error) {
	var artist data.Artist
	if err := db.WithContext(ctx).
		Table("artists").
		Where("spotify_id = ?", spotifyID).
		First(&artist).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no artist with id '%s'", spotifyID)
		}
		return nil, fmt.Errorf("error getting artist '%s': %w", spotifyID, err)
	}

	if err := db.fillGenres(ctx, &artist); err != nil {
		return nil, err
	}

	return &artist, nil
}

// SearchArtists does a case-insensitive substring match against artist
// names, best (most popular) first.
func (db *DB) SearchArtists(ctx context.Context, query string, limit int) ([]data.Artist, error) {
	var artists []data.Artist
	if err := db.WithContext(ctx).
		Table("artists").
		Where("name like ? collate nocase", "%"+query+"%").
		Order("popularity desc").
		Limit(limit).
		Find(&artists).
		Error; err != nil {
		return nil, fmt.Errorf("error searching artists for '%s': %w", query, err)
	}

	for i := range artists {
		if err := db.fillGenres(ctx, &artists[i]); err != nil {
			return nil, err
		}
	}

	return artists, nil
}

// RandomArtist picks a uniformly random artist from the catalog, for use as
// a game target. Returns ErrNoArtists when the catalog is empty.
func (db *DB) RandomArtist(ctx context.Context) (*data.Artist, error) {
	var artist data.Artist
	if err := db.WithContext(ctx).
		Table("artists").
		Order("random()").
		First(&artist).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoArtists
		}
		return nil, fmt.Errorf("error picking random artist: %w", err)
	}

	if err := db.fillGenres(ctx, &artist); err != nil {
		return nil, err
	}

	return &artist, nil
}

// CountArtists reports how many artists the catalog holds.
func (db *DB) CountArtists(ctx context.Context) (int, error) {
	var count int64
	if err := db.WithContext(ctx).
		Table("artists").
		Count(&count).
		Error; err != nil {
		return 0, fmt.Errorf("error counting artists: %w", err)
	}
	return int(count), nil
}

// RecentResults returns the most recently recorded rounds, newest first.
func (db *DB) RecentResults(ctx context.Context, limit int) ([]data.GameResult, error) {
	var results []data.GameResult
	if err := db.WithContext(ctx).
		Table("game_results").
		Order("id desc").
		Limit(limit).
		Find(&results).
		Error; err != nil {
		return nil, fmt.Errorf("error getting game results: %w", err)
	}
	return results, nil
}

func (db *DB) fillGenres(ctx context.Context, artist *data.Artist) error {
	if err := db.WithContext(ctx).
		Table("artist_genres").
		Where("artist_spotify_id = ?", artist.SpotifyID).
		Order("position asc").
		Pluck("genre_name", &artist.Genres).
		Error; err != nil {
		return fmt.Errorf("error getting genres for artist '%s': %w", artist.SpotifyID, err)
	}
	return nil
}
