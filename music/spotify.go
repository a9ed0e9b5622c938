package music

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"menu.GO/config"
	"menu.GO/core/cache"
)

// ErrUnavailable wraps any Spotify transport or API failure.
var ErrUnavailable = errors.New("music: spotify unavailable")

const tokenCacheKey = "spotify:token"

// Release is the subset of a Spotify album object the site renders.
type Release struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	AlbumType    string            `json:"album_type"`
	ReleaseDate  string            `json:"release_date"`
	TotalTracks  int               `json:"total_tracks"`
	Images       []ReleaseImage    `json:"images"`
	ExternalURLs map[string]string `json:"external_urls"`
	Artists      []struct {
		Name string `json:"name"`
	} `json:"artists"`
}

type ReleaseImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Client fetches the artist's latest release using the client-credentials
// flow. Bearer tokens are cached until a minute before expiry.
type Client struct {
	cfg      *config.SpotifyConfig
	http     *http.Client
	cache    *cache.Cache
	tokenURL string
	apiURL   string
}

func NewClient(cfg *config.SpotifyConfig) *Client {
	return &Client{
		cfg:      cfg,
		http:     &http.Client{Timeout: 10 * time.Second},
		cache:    cache.GetInstance(),
		tokenURL: "https://accounts.spotify.com/api/token",
		apiURL:   "https://api.spotify.com",
	}
}

// NewClientWithURLs overrides the Spotify hosts and token cache (tests).
func NewClientWithURLs(cfg *config.SpotifyConfig, tokenURL, apiURL string, c *cache.Cache) *Client {
	cl := NewClient(cfg)
	cl.tokenURL = tokenURL
	cl.apiURL = apiURL
	cl.cache = c
	return cl
}

func (c *Client) token(ctx context.Context) (string, error) {
	if v, ok := c.cache.Get(tokenCacheKey); ok {
		if tok, isStr := v.(string); isStr && tok != "" {
			return tok, nil
		}
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	basic := base64.StdEncoding.EncodeToString([]byte(c.cfg.ClientID + ":" + c.cfg.ClientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("%w: token status %d: %s", ErrUnavailable, resp.StatusCode, b)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: decode token: %v", ErrUnavailable, err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrUnavailable)
	}

	ttl := body.ExpiresIn - 60
	if ttl < 0 {
		ttl = 0
	}
	c.cache.Set(tokenCacheKey, body.AccessToken, ttl)
	return body.AccessToken, nil
}

// LatestRelease returns the artist's newest single or album, or nil when the
// artist has no releases.
func (c *Client) LatestRelease(ctx context.Context, artistID string) (*Release, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v1/artists/%s/albums?include_groups=single,album&market=US&limit=1", c.apiURL, artistID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: albums status %d", ErrUnavailable, resp.StatusCode)
	}

	var body struct {
		Items []Release `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode albums: %v", ErrUnavailable, err)
	}
	if len(body.Items) == 0 {
		return nil, nil
	}
	return &body.Items[0], nil
}
