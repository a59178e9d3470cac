package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/halcyonlabs/moodsync/internal/models"
	"github.com/halcyonlabs/moodsync/internal/services"
	"github.com/halcyonlabs/moodsync/internal/shared"
)

// CelebrityCache is the local persistence layer for the celebrity feed.
type CelebrityCache interface {
	Fresh(now time.Time) (bool, error)
	List() ([]*models.CelebrityMood, error)
	ReplaceAll(moods []*models.CelebrityMood) error
}

// CelebrityRefresher keeps the local celebrity mood cache within its TTL.
type CelebrityRefresher struct {
	feed  services.CelebrityFeed
	cache CelebrityCache
}

// NewCelebrityRefresher creates a refresher over the given feed and cache.
func NewCelebrityRefresher(feed services.CelebrityFeed, cache CelebrityCache) *CelebrityRefresher {
	return &CelebrityRefresher{feed: feed, cache: cache}
}

// Refresh returns the celebrity mood feed, hitting the backend only when the
// cache is older than its TTL or force is set. The second return value
// reports whether a remote fetch happened.
func (r *CelebrityRefresher) Refresh(ctx context.Context, force bool, progress chan<- ProgressUpdate) ([]*models.CelebrityMood, bool, error) {
	if r.feed == nil {
		return nil, false, fmt.Errorf("%w: celebrity feed not initialized", shared.ErrServiceUnavailable)
	}

	if !force {
		fresh, err := r.cache.Fresh(time.Now())
		if err != nil {
			return nil, false, fmt.Errorf("failed to check feed cache: %w", err)
		}
		if fresh {
			moods, err := r.cache.List()
			if err != nil {
				return nil, false, fmt.Errorf("failed to read feed cache: %w", err)
			}
			return moods, false, nil
		}
	}

	sendProgress(progress, refreshFeedUpdate())

	entries, err := r.feed.CelebrityMoods(ctx)
	if err != nil {
		// Serve the stale cache rather than nothing when the feed is down.
		if stale, listErr := r.cache.List(); listErr == nil && len(stale) > 0 {
			return stale, false, nil
		}
		return nil, false, fmt.Errorf("failed to fetch celebrity moods: %w", err)
	}

	now := time.Now().UTC()
	moods := make([]*models.CelebrityMood, 0, len(entries))
	for _, entry := range entries {
		moods = append(moods, models.NewCelebrityMood(0, entry.Name, entry.EmotionCode, entry.ProfileText, now))
	}

	if err := r.cache.ReplaceAll(moods); err != nil {
		return moods, true, fmt.Errorf("fetched feed but failed to cache it: %w", err)
	}
	return moods, true, nil
}
