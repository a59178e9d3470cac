package shared

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./moodsync.db" {
			t.Errorf("expected database path ./moodsync.db, got %s", config.Database.Path)
		}

		if config.Server.Port != 3000 {
			t.Errorf("expected server port 3000, got %d", config.Server.Port)
		}

		if config.Credentials.Backend.BaseURL != "http://127.0.0.1:8000" {
			t.Errorf("expected backend base URL http://127.0.0.1:8000, got %s", config.Credentials.Backend.BaseURL)
		}

		if config.Credentials.Spotify.ClientID != "your_spotify_client_id" {
			t.Errorf("expected spotify client_id your_spotify_client_id, got %s", config.Credentials.Spotify.ClientID)
		}

		if config.Tracking.Enabled {
			t.Error("tracking should be disabled by default")
		}

		if config.Tracking.FlushIntervalSec != 120 {
			t.Errorf("expected flush interval 120, got %d", config.Tracking.FlushIntervalSec)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[identity]
username = "casey"
email = "casey@example.com"

[credentials.backend]
base_url = "https://mood.example.com"

[credentials.spotify]
client_id = "test_client_id"
client_secret = "test_secret"
redirect_uri = "http://localhost:3000/callback"

[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10

[server]
host = "0.0.0.0"
port = 8080

[tracking]
enabled = true
flush_interval_sec = 30
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Identity.Username != "casey" {
			t.Errorf("expected username casey, got %s", config.Identity.Username)
		}

		if config.Credentials.Backend.BaseURL != "https://mood.example.com" {
			t.Errorf("unexpected backend base URL: %s", config.Credentials.Backend.BaseURL)
		}

		if config.Database.MaxOpenConns != 20 {
			t.Errorf("expected max_open_conns 20, got %d", config.Database.MaxOpenConns)
		}

		if !config.Tracking.Enabled {
			t.Error("tracking should be enabled")
		}
	})

	t.Run("LoadConfigMissing", func(t *testing.T) {
		if _, err := LoadConfig("/nonexistent/config.toml"); err == nil {
			t.Error("loading a missing config should fail")
		}
	})

	t.Run("SaveConfigRoundTrip", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")

		config := DefaultConfig()
		config.Identity.Username = "casey"
		config.Credentials.Spotify.AccessToken = "access"
		config.Credentials.Spotify.RefreshToken = "refresh"

		if err := SaveConfig(configPath, config); err != nil {
			t.Fatalf("failed to save config: %v", err)
		}

		loaded, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to reload config: %v", err)
		}

		if loaded.Identity.Username != "casey" {
			t.Errorf("expected username casey, got %s", loaded.Identity.Username)
		}
		if loaded.Credentials.Spotify.AccessToken != "access" {
			t.Errorf("expected saved access token, got %s", loaded.Credentials.Spotify.AccessToken)
		}
	})
}

func TestSpotifyConfigToken(t *testing.T) {
	t.Run("empty credentials yield nil token", func(t *testing.T) {
		var spotify SpotifyConfig
		if spotify.Token() != nil {
			t.Error("expected nil token when no access token is stored")
		}
	})

	t.Run("token round-trips through Update", func(t *testing.T) {
		var spotify SpotifyConfig
		expiry := time.Now().Add(time.Hour).Truncate(time.Second)

		if err := spotify.Update(&oauth2.Token{
			AccessToken:  "access",
			RefreshToken: "refresh",
			Expiry:       expiry,
		}); err != nil {
			t.Fatalf("Update() failed: %v", err)
		}

		token := spotify.Token()
		if token == nil {
			t.Fatal("expected a token after Update")
		}
		if token.AccessToken != "access" || token.RefreshToken != "refresh" {
			t.Errorf("unexpected token contents: %+v", token)
		}
		if !token.Expiry.Equal(expiry) {
			t.Errorf("expected expiry %v, got %v", expiry, token.Expiry)
		}
		if token.TokenType != "Bearer" {
			t.Errorf("expected Bearer token type, got %s", token.TokenType)
		}
	})

	t.Run("Update keeps refresh token when omitted", func(t *testing.T) {
		spotify := SpotifyConfig{RefreshToken: "keep_me"}

		if err := spotify.Update(&oauth2.Token{AccessToken: "access"}); err != nil {
			t.Fatalf("Update() failed: %v", err)
		}

		if spotify.RefreshToken != "keep_me" {
			t.Errorf("expected refresh token to be preserved, got %s", spotify.RefreshToken)
		}
	})

	t.Run("Update rejects nil and empty tokens", func(t *testing.T) {
		var spotify SpotifyConfig
		if err := spotify.Update(nil); err == nil {
			t.Error("expected error for nil token")
		}
		if err := spotify.Update(&oauth2.Token{}); err == nil {
			t.Error("expected error for empty token")
		}
	})
}
