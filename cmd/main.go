package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/halcyonlabs/moodsync/internal/services"
	"github.com/halcyonlabs/moodsync/internal/shared"
	"github.com/halcyonlabs/moodsync/internal/tracking"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	configPath := "config.toml"
	config := shared.DefaultConfig()
	if _, err := os.Stat(configPath); err == nil {
		if loadedConfig, err := shared.LoadConfig(configPath); err == nil {
			config = loadedConfig
		}
	}

	moodService := services.NewMoodService(config.Credentials.Backend.BaseURL, nil)
	apiService := services.NewAPIService(config.Credentials.Backend.BaseURL, nil)

	var spotifyService *services.SpotifyService
	if config.Credentials.Spotify.ClientID != "" && config.Credentials.Spotify.ClientSecret != "" {
		if svc, err := services.NewSpotifyService(
			config.Credentials.Spotify.ClientID,
			config.Credentials.Spotify.ClientSecret,
			config.Credentials.Spotify.RedirectURI,
		); err == nil {
			if token := config.Credentials.Spotify.Token(); token != nil {
				if err := svc.Authenticate(context.Background(), token); err != nil {
					logger.Debug("stored spotify token rejected", "error", err)
				}
			}
			spotifyService = svc
		}
	}

	var tracker *tracking.BehaviorTracker
	sessionStart := time.Now()
	if config.Tracking.Enabled && config.Identity.Email != "" {
		opts := []tracking.Option{tracking.WithTrackerLogger(logger)}
		if config.Tracking.FlushIntervalSec > 0 {
			opts = append(opts, tracking.WithFlushInterval(time.Duration(config.Tracking.FlushIntervalSec)*time.Second))
		}
		tracker = tracking.NewBehaviorTracker(moodService, config.Identity.Email, opts...)
		tracker.StartSession()
		tracker.Record(tracking.SessionStartEvent())
	}

	runner := NewRunner(RunnerOpts{
		Config:     config,
		ConfigPath: configPath,
		Mood:       moodService,
		Spotify:    spotifyService,
		API:        apiService,
		Tracker:    tracker,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "moodsync",
		Usage:    "Sync contact moods, follows & the celebrity feed from your terminal",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	err := app.Run(context.Background(), os.Args)

	if tracker != nil {
		tracker.Record(tracking.SessionEndEvent(time.Since(sessionStart)))
		tracker.EndSession()
		tracker.Close()
	}

	if err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
