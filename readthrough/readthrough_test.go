package readthrough_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pburel/SpotifyArtistGuess/readthrough"
)

func TestMissThenHit(t *testing.T) {
	cache := readthrough.New[string]()

	_, err := cache.Get("key")
	assert.ErrorIs(t, err, readthrough.ErrMiss)

	cache.Set("key", "value")
	v, err := cache.Get("key")
	assert.NoError(t, err)
	assert.Equal(t, "value", v)
	assert.Equal(t, 1, cache.Len())
}

func TestStoredZeroValueIsNotAMiss(t *testing.T) {
	cache := readthrough.New[*int]()

	// A nil entry means "we asked, there's nothing" — distinct from a
	// key that was never queried.
	cache.Set("not-found", nil)

	v, err := cache.Get("not-found")
	assert.NoError(t, err)
	assert.Nil(t, v)

	_, err = cache.Get("never-queried")
	assert.ErrorIs(t, err, readthrough.ErrMiss)
}

func TestLastWriterWins(t *testing.T) {
	cache := readthrough.New[int]()
	cache.Set("key", 1)
	cache.Set("key", 2)

	v, err := cache.Get("key")
	assert.NoError(t, err)
	assert.Equal(t, 2, v)
}
