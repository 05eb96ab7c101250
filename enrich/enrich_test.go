package enrich_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pburel/SpotifyArtistGuess/data"
	"github.com/pburel/SpotifyArtistGuess/enrich"
	"github.com/pburel/SpotifyArtistGuess/musicbrainz"
	"github.com/pburel/SpotifyArtistGuess/normalize"
)

// stubSource plays the metadata registry: a fixed answer per name, the
// all-absent Info for everyone else.
type stubSource struct {
	infos map[string]*musicbrainz.Info
}

func (s *stubSource) LookupEnriched(ctx context.Context, name string) *musicbrainz.Info {
	if info, ok := s.infos[name]; ok {
		return info
	}
	return &musicbrainz.Info{}
}

func noMetadata() *enrich.Enricher {
	return enrich.New(&stubSource{})
}

func TestEnrichIsDeterministicPerID(t *testing.T) {
	e := noMetadata()
	ctx := context.Background()

	artist := data.Artist{SpotifyID: "4gzpq5DPGxSnKTe4SA8HAU", Name: "Bon Iver", Popularity: 70}

	first := e.Enrich(ctx, artist)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.Enrich(ctx, artist))
	}
}

func TestEnrichPopulatesEveryField(t *testing.T) {
	e := noMetadata()

	details := e.Enrich(context.Background(), data.Artist{
		SpotifyID:  "id-with-no-metadata",
		Name:       "Nameless",
		Popularity: 55,
	})

	assert.Len(t, details.DebutYear, 4)
	assert.GreaterOrEqual(t, details.Members, int64(1))
	assert.Contains(t,
		[]string{normalize.Male, normalize.Female, normalize.Other, normalize.Group, normalize.Unknown},
		details.Classification)
	assert.NotEmpty(t, details.Country)
	assert.Equal(t, int64(550_000), details.MonthlyListeners)

	// Image and genres are the only fields allowed to stay empty.
	assert.Empty(t, details.ImageURL)
	assert.Empty(t, details.Genres)
}

func TestEnrichPrefersExternalMetadata(t *testing.T) {
	e := enrich.New(&stubSource{infos: map[string]*musicbrainz.Info{
		"Aurora": {
			MBID:      "mbid-1",
			StartYear: "2012",
			Type:      "Person",
			Gender:    "female",
			Country:   "NO",
		},
	}})

	details := e.Enrich(context.Background(), data.Artist{
		SpotifyID:  "aurora-id",
		Name:       "Aurora",
		Popularity: 72,
	})

	assert.Equal(t, "2012", details.DebutYear)
	assert.Equal(t, int64(1), details.Members)
	assert.Equal(t, normalize.Female, details.Classification)
	assert.Equal(t, "NO", details.Country)
}

func TestEnrichGroupDetection(t *testing.T) {
	e := noMetadata()
	ctx := context.Background()

	band := e.Enrich(ctx, data.Artist{
		SpotifyID: "band-id",
		Name:      "The Example Band",
	})
	assert.Equal(t, normalize.Group, band.Classification)
	assert.GreaterOrEqual(t, band.Members, int64(2))
	assert.LessOrEqual(t, band.Members, int64(6))

	rockers := e.Enrich(ctx, data.Artist{
		SpotifyID: "rockers-id",
		Name:      "Nameless",
		Genres:    []string{"indie rock"},
	})
	assert.Equal(t, normalize.Group, rockers.Classification)
	assert.GreaterOrEqual(t, rockers.Members, int64(2))
}

func TestEnrichRegistryTypeBeatsHeuristics(t *testing.T) {
	// A solo act whose genres look band-ish: the registry's "Person"
	// should win over the rock-genre heuristic.
	e := enrich.New(&stubSource{infos: map[string]*musicbrainz.Info{
		"Solo Rocker": {Type: "Person", Gender: "male"},
	}})

	details := e.Enrich(context.Background(), data.Artist{
		SpotifyID: "solo-id",
		Name:      "Solo Rocker",
		Genres:    []string{"hard rock"},
	})

	assert.Equal(t, normalize.Male, details.Classification)
	assert.Equal(t, int64(1), details.Members)
}

func TestEnrichCuratedCountry(t *testing.T) {
	e := noMetadata()

	details := e.Enrich(context.Background(), data.Artist{
		SpotifyID: "abba-id",
		Name:      "ABBA",
	})
	assert.Equal(t, "SE", details.Country)
}

func TestEnrichBadStartYearFallsBack(t *testing.T) {
	e := enrich.New(&stubSource{infos: map[string]*musicbrainz.Info{
		"Oddly Dated": {StartYear: "19xx"},
	}})

	details := e.Enrich(context.Background(), data.Artist{
		SpotifyID: "odd-id",
		Name:      "Oddly Dated",
	})

	assert.Len(t, details.DebutYear, 4)
	assert.NotEqual(t, "19xx", details.DebutYear)
}
