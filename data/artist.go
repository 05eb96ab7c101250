package data

// Artist holds an artist as stored in the catalog, pre-enrichment. This is
// the shape Spotify's search API gives us, flattened: genres live in the
// artist_genres association table, ordered, because the first genre is the
// one the game displays.
type Artist struct {
	SpotifyID  string `gorm:"primaryKey"`
	Name       string
	ImageURL   string
	Popularity int64

	// Derived from popularity, never fetched: popularity * 10_000.
	MonthlyListeners int64

	Genres []string `gorm:"-"`
}

// ArtistGenre is one row of the ordered artist→genre association table.
type ArtistGenre struct {
	ArtistSpotifyID string `gorm:"primaryKey"`
	GenreName       string `gorm:"primaryKey"`
	Position        int64
}

// ArtistDetails is the fully-enriched record the game plays with. Every
// field except ImageURL and Genres is guaranteed populated by the
// enrichment pipeline; "absent" is the empty string, never a sentinel
// number.
type ArtistDetails struct {
	SpotifyID  string
	Name       string
	ImageURL   string
	Genres     []string
	Popularity int64

	MonthlyListeners int64

	// Four-digit year, like "1987".
	DebutYear string

	// 1 means solo.
	Members int64

	// One of Male, Female, Other, Group, Unknown.
	Classification string

	// Two-letter code, like "SE". The legacy "UK" alias is kept as-is so
	// comparisons against stored data stay exact.
	Country string
}
