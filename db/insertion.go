package db

import (
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/pburel/SpotifyArtistGuess/data"
)

// SaveArtists upserts a batch of catalog artists along with their ordered
// genre lists. Existing rows are refreshed rather than skipped, so repeated
// searches keep the catalog current.
func (db *DB) SaveArtists(artists []data.Artist) error {
	for _, artist := range artists {
		if err := db.SaveArtist(&artist); err != nil {
			return err
		}
	}
	return nil
}

// SaveArtist, given an Artist, upserts the appropriate rows into the
// artists and artist_genres tables.
func (db *DB) SaveArtist(artist *data.Artist) error {
	if artist.SpotifyID == "" {
		return fmt.Errorf("no spotify id")
	}

	if err := db.
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(artist).
		Error; err != nil {
		return fmt.Errorf("error inserting artist '%s': %w", artist.Name, err)
	}

	for i, genre := range artist.Genres {
		if err := db.
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&data.ArtistGenre{
				ArtistSpotifyID: artist.SpotifyID,
				GenreName:       genre,
				Position:        int64(i),
			}).
			Error; err != nil {
			return fmt.Errorf("error inserting artist genre {'%s' '%s'}: %w", artist.Name, genre, err)
		}
	}

	return nil
}

// InsertGameResult records one finished round.
func (db *DB) InsertGameResult(result *data.GameResult) error {
	if result.TargetSpotifyID == "" {
		return fmt.Errorf("no target spotify id")
	}
	if err := db.Create(result).Error; err != nil {
		return fmt.Errorf("error inserting game result for '%s': %w", result.TargetSpotifyID, err)
	}
	return nil
}
