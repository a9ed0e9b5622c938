package music

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"menu.GO/config"
	"menu.GO/core/cache"
)

func newTestClient(t *testing.T, albums interface{}) (*Client, *int) {
	t.Helper()
	tokenCalls := 0
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		if r.FormValue("grant_type") != "client_credentials" {
			t.Errorf("grant_type = %q", r.FormValue("grant_type"))
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "tok-1",
			"expires_in":   3600,
		})
	}))
	t.Cleanup(tokenSrv.Close)

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"items": albums})
	}))
	t.Cleanup(apiSrv.Close)

	cfg := &config.SpotifyConfig{ClientID: "id", ClientSecret: "secret", ArtistID: "ARTIST1"}
	return NewClientWithURLs(cfg, tokenSrv.URL, apiSrv.URL, cache.NewCache()), &tokenCalls
}

func TestLatestRelease(t *testing.T) {
	c, _ := newTestClient(t, []map[string]interface{}{
		{"id": "ALB1", "name": "New Single", "album_type": "single", "release_date": "2026-08-01"},
	})

	rel, err := c.LatestRelease(context.Background(), "ARTIST1")
	if err != nil {
		t.Fatalf("LatestRelease: %v", err)
	}
	if rel == nil || rel.Name != "New Single" {
		t.Errorf("release = %+v, want New Single", rel)
	}
}

func TestLatestRelease_NoReleases(t *testing.T) {
	c, _ := newTestClient(t, []map[string]interface{}{})
	rel, err := c.LatestRelease(context.Background(), "ARTIST1")
	if err != nil {
		t.Fatalf("LatestRelease: %v", err)
	}
	if rel != nil {
		t.Errorf("release = %+v, want nil for an artist with no releases", rel)
	}
}

func TestLatestRelease_TokenCached(t *testing.T) {
	c, tokenCalls := newTestClient(t, []map[string]interface{}{
		{"id": "ALB1", "name": "New Single"},
	})

	for i := 0; i < 3; i++ {
		if _, err := c.LatestRelease(context.Background(), "ARTIST1"); err != nil {
			t.Fatalf("LatestRelease: %v", err)
		}
	}
	if *tokenCalls != 1 {
		t.Errorf("token calls = %d, want 1 (token cached until expiry)", *tokenCalls)
	}
}

func TestToken_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	cfg := &config.SpotifyConfig{ClientID: "id", ClientSecret: "secret"}
	c := NewClientWithURLs(cfg, srv.URL, srv.URL, cache.NewCache())
	_, err := c.LatestRelease(context.Background(), "ARTIST1")
	if err == nil {
		t.Error("LatestRelease with failing token endpoint: want error")
	}
}
