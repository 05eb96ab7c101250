package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	SpotifyClientID     string `env:"SPOTIFY_CLIENT_ID"`
	SpotifyClientSecret string `env:"SPOTIFY_CLIENT_SECRET"`
	DBFile              string `env:"DB_FILE" envDefault:"artists.db"`

	// Sent as the MusicBrainz User-Agent; their guidelines ask for an
	// application name plus contact info.
	Contact string `env:"MUSICBRAINZ_CONTACT" envDefault:"ArtistGuess/1.0.0 (https://github.com/pburel/SpotifyArtistGuess)"`
}

// Load reads configuration from the environment, with a .env file merged
// in first when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
