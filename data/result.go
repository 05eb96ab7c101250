package data

// GameResult is one finished round, kept for history. Rounds themselves are
// not persisted mid-game; only the outcome is recorded.
type GameResult struct {
	ID              int64
	TargetSpotifyID string
	AttemptsUsed    int64
	Correct         bool
	Score           int64
	PlayedAt        string
}
