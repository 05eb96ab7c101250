package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pburel/SpotifyArtistGuess/data"
	"github.com/pburel/SpotifyArtistGuess/db"
)

func openTestDB(t *testing.T) *db.DB {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func TestSaveAndGetArtist(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	artist := data.Artist{
		SpotifyID:        "id-1",
		Name:             "Caroline Polachek",
		ImageURL:         "https://img.example/cp.jpg",
		Popularity:       71,
		MonthlyListeners: 710_000,
		Genres:           []string{"art pop", "indie pop"},
	}
	assert.NoError(t, d.SaveArtist(&artist))

	got, err := d.GetArtist(ctx, "id-1")
	assert.NoError(t, err)
	assert.Equal(t, artist.Name, got.Name)
	assert.Equal(t, artist.Popularity, got.Popularity)

	// Genre order survives the association table; the first genre is
	// the one the game compares.
	assert.Equal(t, []string{"art pop", "indie pop"}, got.Genres)
}

func TestSaveArtistsUpserts(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	assert.NoError(t, d.SaveArtists([]data.Artist{
		{SpotifyID: "id-1", Name: "Stale Name", Popularity: 10},
	}))
	assert.NoError(t, d.SaveArtists([]data.Artist{
		{SpotifyID: "id-1", Name: "Fresh Name", Popularity: 90},
	}))

	got, err := d.GetArtist(ctx, "id-1")
	assert.NoError(t, err)
	assert.Equal(t, "Fresh Name", got.Name)
	assert.Equal(t, int64(90), got.Popularity)

	count, err := d.CountArtists(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSearchArtistsIsCaseInsensitiveAndBounded(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	assert.NoError(t, d.SaveArtists([]data.Artist{
		{SpotifyID: "id-1", Name: "Phoebe Bridgers", Popularity: 75},
		{SpotifyID: "id-2", Name: "Bridge City Sinners", Popularity: 40},
		{SpotifyID: "id-3", Name: "Unrelated", Popularity: 99},
	}))

	got, err := d.SearchArtists(ctx, "bridge", 10)
	assert.NoError(t, err)
	assert.Len(t, got, 2)

	// Most popular first.
	assert.Equal(t, "Phoebe Bridgers", got[0].Name)

	got, err = d.SearchArtists(ctx, "bridge", 1)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRandomArtist(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	_, err := d.RandomArtist(ctx)
	assert.ErrorIs(t, err, db.ErrNoArtists)

	assert.NoError(t, d.SaveArtists([]data.Artist{
		{SpotifyID: "id-1", Name: "Only Artist"},
	}))

	got, err := d.RandomArtist(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "id-1", got.SpotifyID)
}

func TestGameResults(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	assert.NoError(t, d.InsertGameResult(&data.GameResult{
		TargetSpotifyID: "id-1",
		AttemptsUsed:    5,
		Correct:         false,
		Score:           0,
		PlayedAt:        "2026-08-27T10:00:00Z",
	}))
	assert.NoError(t, d.InsertGameResult(&data.GameResult{
		TargetSpotifyID: "id-2",
		AttemptsUsed:    2,
		Correct:         true,
		Score:           400,
		PlayedAt:        "2026-08-28T10:00:00Z",
	}))

	results, err := d.RecentResults(ctx, 10)
	assert.NoError(t, err)
	assert.Len(t, results, 2)

	// Newest first.
	assert.Equal(t, "id-2", results[0].TargetSpotifyID)
	assert.True(t, results[0].Correct)
	assert.Equal(t, int64(400), results[0].Score)
}
