package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pburel/SpotifyArtistGuess/data"
)

func testArtist(id string) data.ArtistDetails {
	return data.ArtistDetails{
		SpotifyID:        id,
		Name:             "Artist " + id,
		Genres:           []string{"pop", "dance pop"},
		Popularity:       80,
		MonthlyListeners: 800_000,
		DebutYear:        "1990",
		Members:          1,
		Classification:   "Female",
		Country:          "US",
	}
}

func TestCorrectFirstGuessScoresFive(t *testing.T) {
	target := testArtist("A")
	s := New(target)

	cmp, err := s.Guess(target)
	assert.NoError(t, err)
	assert.True(t, cmp.Correct)

	assert.False(t, s.Active())
	assert.Equal(t, OutcomeCorrect, s.Outcome())
	assert.Equal(t, 4, s.AttemptsLeft())
	assert.Equal(t, int64(500), s.Score())
}

func TestCorrectLastGuessScoresOne(t *testing.T) {
	target := testArtist("A")
	s := New(target)

	for _, id := range []string{"B", "C", "D", "E"} {
		_, err := s.Guess(testArtist(id))
		assert.NoError(t, err)
	}
	assert.True(t, s.Active())
	assert.Equal(t, 1, s.AttemptsLeft())

	_, err := s.Guess(target)
	assert.NoError(t, err)
	assert.Equal(t, OutcomeCorrect, s.Outcome())
	assert.Equal(t, int64(100), s.Score())
}

func TestExhaustionIsTerminal(t *testing.T) {
	target := testArtist("A")
	s := New(target)

	for _, id := range []string{"B", "C", "D", "E", "F"} {
		_, err := s.Guess(testArtist(id))
		assert.NoError(t, err)
	}

	assert.False(t, s.Active())
	assert.Equal(t, OutcomeExhausted, s.Outcome())
	assert.Equal(t, 0, s.AttemptsLeft())
	assert.Equal(t, int64(0), s.Score())

	// Terminal states are absorbing: even the right answer is refused.
	_, err := s.Guess(target)
	assert.ErrorIs(t, err, ErrNotActive)
	assert.Equal(t, int64(0), s.Score())
	assert.Len(t, s.Guesses(), 5)
}

func TestDuplicateGuessIsANoOp(t *testing.T) {
	target := testArtist("A")
	s := New(target)

	guess := testArtist("B")
	first, err := s.Guess(guess)
	assert.NoError(t, err)

	again, err := s.Guess(guess)
	assert.NoError(t, err)
	assert.Equal(t, first, again)

	assert.Equal(t, 4, s.AttemptsLeft())
	assert.Len(t, s.Guesses(), 1)
	assert.Equal(t, int64(0), s.Score())
	assert.Equal(t, 1, s.hintCursor)
}

func TestGuessHistoryIsMostRecentFirst(t *testing.T) {
	s := New(testArtist("A"))

	s.Guess(testArtist("B"))
	s.Guess(testArtist("C"))

	guesses := s.Guesses()
	assert.Equal(t, "C", guesses[0].SpotifyID)
	assert.Equal(t, "B", guesses[1].SpotifyID)
}

func TestHintAdvancesPerWrongGuess(t *testing.T) {
	s := New(testArtist("A"))

	assert.Equal(t, "This artist has 800.0K monthly listeners", s.Hint())

	s.Guess(testArtist("B"))
	assert.Equal(t, "This artist's genres include pop and dance pop", s.Hint())

	s.Guess(testArtist("C"))
	assert.Equal(t, "This artist has a popularity rating of 80/100", s.Hint())
}

func TestHintSaturates(t *testing.T) {
	s := New(testArtist("A"))

	last := "The artist name has 8 characters"
	for _, cursor := range []int{0, 1, 2, 3, 4, 100} {
		s.hintCursor = cursor
		hint := s.Hint()
		assert.NotEmpty(t, hint)
		if cursor >= 4 {
			assert.Equal(t, last, hint)
		}
	}
}

func TestHintFirstLetter(t *testing.T) {
	s := New(testArtist("A"))
	s.hintCursor = 3
	assert.True(t, strings.Contains(s.Hint(), `"A"`))
}

func TestResultSummarizesRound(t *testing.T) {
	target := testArtist("A")
	s := New(target)
	s.Guess(testArtist("B"))
	s.Guess(target)

	result := s.Result("2026-08-28T00:00:00Z")
	assert.Equal(t, data.GameResult{
		TargetSpotifyID: "A",
		AttemptsUsed:    2,
		Correct:         true,
		Score:           400,
		PlayedAt:        "2026-08-28T00:00:00Z",
	}, result)
}
