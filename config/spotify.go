package config

import (
	"os"
	"sync"
)

// SpotifyConfig holds the client-credentials pair and the artist whose
// releases the site surfaces.
type SpotifyConfig struct {
	ClientID     string
	ClientSecret string
	ArtistID     string
}

var (
	spotifyCfg  *SpotifyConfig
	spotifyOnce sync.Once
)

// Spotify returns the Spotify configuration, loaded once from env.
func Spotify() *SpotifyConfig {
	spotifyOnce.Do(func() {
		spotifyCfg = &SpotifyConfig{
			ClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
			ClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
			ArtistID:     GetEnv("SPOTIFY_ARTIST_ID", "3K0KJBedbI1lEoTHc1zBPa"),
		}
	})
	return spotifyCfg
}
