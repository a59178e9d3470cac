package main

import (
	"context"
	"fmt"

	"github.com/halcyonlabs/moodsync/internal/emotion"
	"github.com/halcyonlabs/moodsync/internal/repositories"
	"github.com/halcyonlabs/moodsync/internal/shared"
	"github.com/halcyonlabs/moodsync/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Celebrities shows the celebrity mood feed, fetching it when the cache is stale.
func (r *Runner) Celebrities(ctx context.Context, cmd *cli.Command) error {
	refresh := cmd.Bool("refresh")
	useJSON := cmd.Bool("json")

	if r.mood == nil {
		return fmt.Errorf("%w: mood backend not initialized", shared.ErrServiceUnavailable)
	}

	r.track("celebrities")

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	celebrityRepo := repositories.NewCelebrityRepository(db)
	refresher := tasks.NewCelebrityRefresher(r.mood, celebrityRepo)

	progressCh := make(chan tasks.ProgressUpdate, 10)
	go func() {
		for update := range progressCh {
			r.writePlain("📥 %s\n", update.Message)
		}
	}()

	moods, fetched, err := refresher.Refresh(ctx, refresh, progressCh)
	close(progressCh)

	if err != nil {
		return err
	}

	if useJSON {
		type celebrityEntry struct {
			Name        string `json:"name"`
			EmotionCode int    `json:"emotion_code"`
			Emotion     string `json:"emotion"`
			ProfileText string `json:"profile_text"`
		}
		entries := make([]celebrityEntry, 0, len(moods))
		for _, mood := range moods {
			entries = append(entries, celebrityEntry{
				Name:        mood.Name(),
				EmotionCode: mood.EmotionCode(),
				Emotion:     emotion.NameFor(mood.EmotionCode()),
				ProfileText: mood.ProfileText(),
			})
		}
		return r.writeJSON(entries, true)
	}

	if len(moods) == 0 {
		r.writePlain("The celebrity feed is empty.\n")
		return nil
	}

	if fetched {
		r.writePlain("\n")
	}
	r.writePlainHeader("Celebrity Moods")
	for i, mood := range moods {
		r.writePlain("%d. %s %s (%s)\n", i+1, emotion.GlyphFor(mood.EmotionCode()), mood.Name(), emotion.NameFor(mood.EmotionCode()))
		if mood.ProfileText() != "" {
			r.writePlain("   %s\n", mood.ProfileText())
		}
	}
	if !fetched {
		r.writePlain("\n(cached; use --refresh to refetch)\n")
	}

	return nil
}
