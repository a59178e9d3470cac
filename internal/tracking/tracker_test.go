package tracking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/halcyonlabs/moodsync/internal/models"
)

type mockActivityLogger struct {
	mu     sync.Mutex
	events []models.BehaviorEvent
	emails []string
	logErr error
}

func (m *mockActivityLogger) LogActivity(ctx context.Context, email string, event models.BehaviorEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.logErr != nil {
		return m.logErr
	}
	m.emails = append(m.emails, email)
	m.events = append(m.events, event)
	return nil
}

func (m *mockActivityLogger) delivered() []models.BehaviorEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.BehaviorEvent, len(m.events))
	copy(out, m.events)
	return out
}

func TestBehaviorTracker_SessionLifecycle(t *testing.T) {
	logger := &mockActivityLogger{}
	tracker := NewBehaviorTracker(logger, "ada@example.com")
	defer tracker.Close()

	sessionID := tracker.StartSession()
	if sessionID == "" {
		t.Fatal("StartSession should return a session id")
	}

	tracker.Record(TabViewEvent("contacts", 3*time.Second))
	tracker.Record(TapEvent("contacts", &models.Coordinates{Latitude: 45.5, Longitude: -122.6}))
	tracker.EndSession()
	tracker.Close()

	events := logger.delivered()
	if len(events) != 2 {
		t.Fatalf("expected 2 delivered events, got %d", len(events))
	}
	if events[0].Action != ActionTabView || events[1].Action != ActionTap {
		t.Errorf("events should deliver in recorded order: %s, %s", events[0].Action, events[1].Action)
	}
	for _, event := range events {
		if event.Payload["session_id"] != sessionID {
			t.Errorf("event should carry session id %s, got %v", sessionID, event.Payload["session_id"])
		}
	}
	if logger.emails[0] != "ada@example.com" {
		t.Errorf("expected account email, got %s", logger.emails[0])
	}
}

func TestBehaviorTracker_RecordWithoutSession(t *testing.T) {
	logger := &mockActivityLogger{}
	tracker := NewBehaviorTracker(logger, "ada@example.com")

	tracker.Record(TabViewEvent("contacts", time.Second))
	tracker.Close()

	if got := len(logger.delivered()); got != 0 {
		t.Errorf("events without a session should be dropped, got %d", got)
	}
}

func TestBehaviorTracker_FlushAtCapacity(t *testing.T) {
	logger := &mockActivityLogger{}
	tracker := NewBehaviorTracker(logger, "ada@example.com")
	defer tracker.Close()

	tracker.StartSession()
	for i := 0; i < BufferCap; i++ {
		tracker.Record(models.BehaviorEvent{
			Action:    ActionTap,
			Payload:   map[string]any{"n": i},
			Timestamp: time.Now().UTC(),
		})
	}

	// The capacity flush runs on a background sender; give it a moment.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(logger.delivered()) == BufferCap {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if got := len(logger.delivered()); got != BufferCap {
		t.Errorf("expected %d events after capacity flush, got %d", BufferCap, got)
	}
}

func TestBehaviorTracker_PeriodicFlush(t *testing.T) {
	logger := &mockActivityLogger{}
	tracker := NewBehaviorTracker(logger, "ada@example.com", WithFlushInterval(50*time.Millisecond))
	defer tracker.Close()

	tracker.StartSession()
	tracker.Record(TabViewEvent("feed", time.Second))

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(logger.delivered()) == 1 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if got := len(logger.delivered()); got != 1 {
		t.Errorf("expected 1 event after periodic flush, got %d", got)
	}
}

func TestBehaviorTracker_AtMostOnce(t *testing.T) {
	logger := &mockActivityLogger{logErr: fmt.Errorf("backend unreachable")}
	tracker := NewBehaviorTracker(logger, "ada@example.com")

	tracker.StartSession()
	tracker.Record(TabViewEvent("contacts", time.Second))
	tracker.EndSession()
	tracker.Close()

	// Failed deliveries are dropped, not retried.
	if got := len(logger.delivered()); got != 0 {
		t.Errorf("expected 0 delivered events, got %d", got)
	}
}

func TestBehaviorTracker_CloseIsIdempotent(t *testing.T) {
	tracker := NewBehaviorTracker(&mockActivityLogger{}, "ada@example.com")
	tracker.Close()
	tracker.Close()

	// Calls after close are no-ops.
	if id := tracker.StartSession(); id != "" {
		t.Errorf("StartSession after close should return empty id, got %s", id)
	}
	tracker.Record(TapEvent("contacts", nil))
	tracker.EndSession()
}

func TestBehaviorTracker_NewSessionFlushesPrevious(t *testing.T) {
	logger := &mockActivityLogger{}
	tracker := NewBehaviorTracker(logger, "ada@example.com")
	defer tracker.Close()

	first := tracker.StartSession()
	tracker.Record(TabViewEvent("contacts", time.Second))
	second := tracker.StartSession()

	if first == second {
		t.Error("each session should get a distinct id")
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(logger.delivered()) == 1 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	events := logger.delivered()
	if len(events) != 1 {
		t.Fatalf("starting a session should flush the previous buffer, got %d events", len(events))
	}
	if events[0].Payload["session_id"] != first {
		t.Errorf("flushed event should belong to the first session")
	}
}

func TestEventConstructors(t *testing.T) {
	tab := TabViewEvent("feed", 1500*time.Millisecond)
	if tab.Action != ActionTabView || tab.Tab != "feed" {
		t.Errorf("unexpected tab view event: %+v", tab)
	}
	if tab.DurationSec != 1.5 {
		t.Errorf("DurationSec = %v, want 1.5", tab.DurationSec)
	}

	tap := TapEvent("map", &models.Coordinates{Latitude: 45.5, Longitude: -122.6})
	if tap.Coordinates == nil || tap.Coordinates.Latitude != 45.5 {
		t.Errorf("unexpected tap event: %+v", tap)
	}

	cmd := CommandEvent("sync")
	if cmd.Payload["command"] != "sync" {
		t.Errorf("unexpected command event: %+v", cmd)
	}

	if tab.Timestamp.IsZero() || tap.Timestamp.IsZero() {
		t.Error("constructors should stamp events")
	}
}
