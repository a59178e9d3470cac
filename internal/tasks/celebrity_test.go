package tasks

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/halcyonlabs/moodsync/internal/models"
	"github.com/halcyonlabs/moodsync/internal/services"
)

type mockCelebrityFeed struct {
	entries   []services.CelebrityEntry
	fetchErr  error
	callCount int
}

func (m *mockCelebrityFeed) CelebrityMoods(ctx context.Context) ([]services.CelebrityEntry, error) {
	m.callCount++
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.entries, nil
}

type mockCelebrityCache struct {
	fresh    bool
	moods    []*models.CelebrityMood
	replaced [][]*models.CelebrityMood
}

func (m *mockCelebrityCache) Fresh(now time.Time) (bool, error) {
	return m.fresh, nil
}

func (m *mockCelebrityCache) List() ([]*models.CelebrityMood, error) {
	return m.moods, nil
}

func (m *mockCelebrityCache) ReplaceAll(moods []*models.CelebrityMood) error {
	m.replaced = append(m.replaced, moods)
	m.moods = moods
	return nil
}

func TestCelebrityRefresher_Refresh(t *testing.T) {
	t.Run("FreshCacheSkipsFetch", func(t *testing.T) {
		feed := &mockCelebrityFeed{}
		cache := &mockCelebrityCache{
			fresh: true,
			moods: []*models.CelebrityMood{models.NewCelebrityMood(1, "Big Star", 63, "", time.Now())},
		}
		refresher := NewCelebrityRefresher(feed, cache)

		moods, refreshed, err := refresher.Refresh(context.Background(), false, nil)
		if err != nil {
			t.Fatalf("Refresh() failed: %v", err)
		}
		if refreshed {
			t.Error("fresh cache should not trigger a fetch")
		}
		if feed.callCount != 0 {
			t.Errorf("expected 0 feed calls, got %d", feed.callCount)
		}
		if len(moods) != 1 {
			t.Errorf("expected cached mood, got %d entries", len(moods))
		}
	})

	t.Run("StaleCacheFetches", func(t *testing.T) {
		feed := &mockCelebrityFeed{
			entries: []services.CelebrityEntry{
				{Name: "Big Star", EmotionCode: 63, ProfileText: "On tour."},
				{Name: "Quiet Poet", EmotionCode: 45},
			},
		}
		cache := &mockCelebrityCache{fresh: false}
		refresher := NewCelebrityRefresher(feed, cache)

		moods, refreshed, err := refresher.Refresh(context.Background(), false, nil)
		if err != nil {
			t.Fatalf("Refresh() failed: %v", err)
		}
		if !refreshed {
			t.Error("stale cache should trigger a fetch")
		}
		if len(moods) != 2 {
			t.Fatalf("expected 2 moods, got %d", len(moods))
		}
		if moods[0].Name() != "Big Star" {
			t.Errorf("feed order should be preserved, got %s first", moods[0].Name())
		}
		if len(cache.replaced) != 1 {
			t.Errorf("expected one cache replacement, got %d", len(cache.replaced))
		}
	})

	t.Run("ForceBypassesFreshness", func(t *testing.T) {
		feed := &mockCelebrityFeed{entries: []services.CelebrityEntry{{Name: "Big Star", EmotionCode: 63}}}
		cache := &mockCelebrityCache{fresh: true}
		refresher := NewCelebrityRefresher(feed, cache)

		_, refreshed, err := refresher.Refresh(context.Background(), true, nil)
		if err != nil {
			t.Fatalf("Refresh() failed: %v", err)
		}
		if !refreshed {
			t.Error("force should bypass the freshness check")
		}
		if feed.callCount != 1 {
			t.Errorf("expected 1 feed call, got %d", feed.callCount)
		}
	})

	t.Run("FetchFailure", func(t *testing.T) {
		feed := &mockCelebrityFeed{fetchErr: fmt.Errorf("backend unreachable")}
		refresher := NewCelebrityRefresher(feed, &mockCelebrityCache{})

		if _, _, err := refresher.Refresh(context.Background(), false, nil); err == nil {
			t.Error("expected error when the feed is unreachable and the cache is empty")
		}
	})

	t.Run("StaleServedOnFetchFailure", func(t *testing.T) {
		feed := &mockCelebrityFeed{fetchErr: fmt.Errorf("backend unreachable")}
		cache := &mockCelebrityCache{
			fresh: false,
			moods: []*models.CelebrityMood{models.NewCelebrityMood(1, "Big Star", 63, "", time.Now().Add(-time.Hour))},
		}
		refresher := NewCelebrityRefresher(feed, cache)

		moods, refreshed, err := refresher.Refresh(context.Background(), false, nil)
		if err != nil {
			t.Fatalf("Refresh() should fall back to the stale cache, got %v", err)
		}
		if refreshed {
			t.Error("stale fallback should not report a refresh")
		}
		if len(moods) != 1 || moods[0].Name() != "Big Star" {
			t.Errorf("expected the stale cached entry, got %v", moods)
		}
	})
}
