package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pburel/SpotifyArtistGuess/data"
	"github.com/pburel/SpotifyArtistGuess/normalize"
)

// MaxAttempts is how many guesses a round allows.
const MaxAttempts = 5

// Outcome of a finished round. Unknown while the round is still going.
type Outcome string

const (
	OutcomeUnknown   Outcome = "unknown"
	OutcomeCorrect   Outcome = "correct"
	OutcomeExhausted Outcome = "exhausted"
)

// ErrNotActive is returned by Guess on a finished session. That's a caller
// bug, not a player mistake: a finished session must be replaced, never
// reused.
var ErrNotActive = errors.New("session is not active")

// New starts a round against the given target.
func New(target data.ArtistDetails) *Session {
	return &Session{
		target:       target,
		active:       true,
		outcome:      OutcomeUnknown,
		attemptsLeft: MaxAttempts,
	}
}

// A Session is one player's round. It is owned by a single caller and is
// not safe for concurrent use; terminal states are absorbing.
type Session struct {
	target data.ArtistDetails

	active       bool
	outcome      Outcome
	attemptsLeft int
	guesses      []data.ArtistDetails
	score        int64
	hintCursor   int
}

// Guess processes one guessed artist and returns the per-field feedback.
//
// Guessing an artist already in the history is a no-op: the comparison is
// recomputed (it's pure) but attempts, history, score, and hints don't
// move. A correct guess finishes the round and awards 100 points per
// attempt still in hand, the attempt just spent included; running out of
// attempts finishes the round with no score.
func (s *Session) Guess(artist data.ArtistDetails) (Comparison, error) {
	if !s.active {
		return Comparison{}, ErrNotActive
	}

	for _, prev := range s.guesses {
		if prev.SpotifyID == artist.SpotifyID {
			return Compare(artist, s.target), nil
		}
	}

	s.attemptsLeft--
	s.guesses = append([]data.ArtistDetails{artist}, s.guesses...)

	cmp := Compare(artist, s.target)
	switch {
	case cmp.Correct:
		s.score += 100 * int64(s.attemptsLeft+1)
		s.active = false
		s.outcome = OutcomeCorrect
	case s.attemptsLeft <= 0:
		s.active = false
		s.outcome = OutcomeExhausted
	default:
		s.hintCursor++
	}

	return cmp, nil
}

// Hint returns the hint for the current cursor. There are five fixed
// templates; once the cursor runs past them the last one repeats, so any
// cursor value yields a valid hint.
func (s *Session) Hint() string {
	hints := [...]string{
		fmt.Sprintf("This artist has %s monthly listeners", normalize.FormatCount(s.target.MonthlyListeners)),
		fmt.Sprintf("This artist's genres include %s", describeGenres(s.target.Genres)),
		fmt.Sprintf("This artist has a popularity rating of %d/100", s.target.Popularity),
		fmt.Sprintf("The artist name starts with %q", firstLetter(s.target.Name)),
		fmt.Sprintf("The artist name has %d characters", len([]rune(s.target.Name))),
	}

	idx := s.hintCursor
	if idx >= len(hints) {
		idx = len(hints) - 1
	}
	return hints[idx]
}

func (s *Session) Active() bool { return s.active }

func (s *Session) Outcome() Outcome { return s.outcome }

func (s *Session) AttemptsLeft() int { return s.attemptsLeft }

func (s *Session) Score() int64 { return s.score }

func (s *Session) Target() data.ArtistDetails { return s.target }

// Guesses returns the guess history, most recent first.
func (s *Session) Guesses() []data.ArtistDetails {
	out := make([]data.ArtistDetails, len(s.guesses))
	copy(out, s.guesses)
	return out
}

// Result summarizes a finished (or abandoned) round for the history table.
func (s *Session) Result(playedAt string) data.GameResult {
	return data.GameResult{
		TargetSpotifyID: s.target.SpotifyID,
		AttemptsUsed:    int64(MaxAttempts - s.attemptsLeft),
		Correct:         s.outcome == OutcomeCorrect,
		Score:           s.score,
		PlayedAt:        playedAt,
	}
}

func describeGenres(genres []string) string {
	switch len(genres) {
	case 0:
		return "unknown genres"
	case 1:
		return genres[0]
	case 2:
		return fmt.Sprintf("%s and %s", genres[0], genres[1])
	default:
		return fmt.Sprintf("%s, and others", strings.Join(genres[:2], ", "))
	}
}

func firstLetter(name string) string {
	for _, r := range name {
		return string(r)
	}
	return ""
}
