package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"
)

// SquareConfig holds everything the Square adapter needs. LocationID may be
// empty: inventory lookups are skipped and variations default to in-stock.
type SquareConfig struct {
	AccessToken string
	Environment string // "sandbox" or "production"
	LocationID  string
	RedirectURL string
	Timeout     time.Duration
}

var (
	squareCfg  *SquareConfig
	squareOnce sync.Once
)

// Square returns the Square provider configuration, loaded once from env.
func Square() *SquareConfig {
	squareOnce.Do(func() {
		cfg := &SquareConfig{
			AccessToken: os.Getenv("SQUARE_ACCESS_TOKEN"),
			Environment: GetEnv("SQUARE_ENV", "sandbox"),
			LocationID:  os.Getenv("SQUARE_LOCATION_ID"),
			RedirectURL: GetEnv("CHECKOUT_REDIRECT_URL", "https://menuband.com"),
			Timeout:     10 * time.Second,
		}
		if s := os.Getenv("SQUARE_TIMEOUT_SECONDS"); s != "" {
			if secs, err := strconv.Atoi(s); err == nil && secs > 0 {
				cfg.Timeout = time.Duration(secs) * time.Second
			}
		}
		if cfg.AccessToken == "" {
			log.Println("Warning: SQUARE_ACCESS_TOKEN is not set, catalog calls will fail")
		}
		if cfg.LocationID == "" {
			log.Println("Warning: SQUARE_LOCATION_ID is not set, inventory counts disabled (items assumed in stock)")
		}
		squareCfg = cfg
	})
	return squareCfg
}

// BaseURL returns the Square API host for the configured environment.
func (c *SquareConfig) BaseURL() string {
	if c.Environment == "production" {
		return "https://connect.squareup.com"
	}
	return "https://connect.squareupsandbox.com"
}
