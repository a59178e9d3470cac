package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/oauth2"

	"github.com/halcyonlabs/moodsync/internal/shared"
)

// newTestSpotify builds a SpotifyService pointed at a test server, bypassing OAuth.
func newTestSpotify(t *testing.T, baseURL string) *SpotifyService {
	t.Helper()

	svc, err := NewSpotifyService("client", "secret", "http://localhost:3000/callback")
	if err != nil {
		t.Fatalf("failed to create spotify service: %v", err)
	}
	svc.baseURL = baseURL
	svc.token = &oauth2.Token{AccessToken: "test-token"}
	svc.httpClient = http.DefaultClient
	return svc
}

func TestSpotifyService(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		if _, err := NewSpotifyService("", "", ""); !errors.Is(err, shared.ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("not authenticated", func(t *testing.T) {
		svc, err := NewSpotifyService("client", "secret", "")
		if err != nil {
			t.Fatalf("failed to create spotify service: %v", err)
		}

		_, err = svc.CurrentlyPlaying(context.Background())
		if !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("currently playing", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/me/player/currently-playing" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			io.WriteString(w, `{
				"is_playing": true,
				"progress_ms": 43000,
				"item": {"id": "t1", "name": "Blue Monday", "artists": [{"name": "New Order"}], "duration_ms": 445000}
			}`)
		}))
		defer srv.Close()

		svc := newTestSpotify(t, srv.URL)
		np, err := svc.CurrentlyPlaying(context.Background())
		if err != nil {
			t.Fatalf("currently playing failed: %v", err)
		}

		if !np.IsPlaying {
			t.Error("expected is_playing true")
		}
		if np.Item == nil || np.Item.Name != "Blue Monday" {
			t.Errorf("unexpected item: %+v", np.Item)
		}
	})

	t.Run("idle playback returns empty", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		svc := newTestSpotify(t, srv.URL)
		np, err := svc.CurrentlyPlaying(context.Background())
		if err != nil {
			t.Fatalf("idle playback should not error: %v", err)
		}
		if np.IsPlaying {
			t.Error("expected is_playing false for 204 response")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		svc := newTestSpotify(t, srv.URL)
		_, err := svc.TopArtists(context.Background(), 5)
		if !errors.Is(err, shared.ErrTokenExpired) {
			t.Errorf("expected ErrTokenExpired, got %v", err)
		}
	})
}
