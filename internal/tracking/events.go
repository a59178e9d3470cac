package tracking

import (
	"time"

	"github.com/halcyonlabs/moodsync/internal/models"
)

// Action tags for the events this client records.
const (
	ActionSessionStart = "session_start"
	ActionSessionEnd   = "session_end"
	ActionTabView      = "tab_view"
	ActionTap          = "tap"
	ActionCommand      = "command_executed"
)

// SessionStartEvent marks the beginning of a tracking session.
func SessionStartEvent() models.BehaviorEvent {
	return models.BehaviorEvent{
		Action:    ActionSessionStart,
		Timestamp: time.Now().UTC(),
	}
}

// SessionEndEvent marks the end of a tracking session, with how long it ran.
func SessionEndEvent(duration time.Duration) models.BehaviorEvent {
	return models.BehaviorEvent{
		Action:      ActionSessionEnd,
		DurationSec: duration.Seconds(),
		Timestamp:   time.Now().UTC(),
	}
}

// TabViewEvent records time spent on a tab or screen.
func TabViewEvent(tab string, duration time.Duration) models.BehaviorEvent {
	return models.BehaviorEvent{
		Action:      ActionTabView,
		Tab:         tab,
		DurationSec: duration.Seconds(),
		Timestamp:   time.Now().UTC(),
	}
}

// TapEvent records an interaction at a location within a tab.
func TapEvent(tab string, coords *models.Coordinates) models.BehaviorEvent {
	return models.BehaviorEvent{
		Action:      ActionTap,
		Tab:         tab,
		Coordinates: coords,
		Timestamp:   time.Now().UTC(),
	}
}

// CommandEvent records a CLI command invocation.
func CommandEvent(name string) models.BehaviorEvent {
	return models.BehaviorEvent{
		Action:    ActionCommand,
		Payload:   map[string]any{"command": name},
		Timestamp: time.Now().UTC(),
	}
}
