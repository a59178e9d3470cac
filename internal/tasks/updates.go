package tasks

import (
	"fmt"

	"github.com/halcyonlabs/moodsync/internal/models"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	CleanContacts Phase = iota
	LookupEmotion
	SortResults
	FetchFollowing
	PullFollows
	PushFollows
	RefreshFeed
)

func (p Phase) String() string {
	switch p {
	case CleanContacts:
		return "clean_contacts"
	case LookupEmotion:
		return "lookup_emotion"
	case SortResults:
		return "sort_results"
	case FetchFollowing:
		return "fetch_following"
	case PullFollows:
		return "pull_follows"
	case PushFollows:
		return "push_follows"
	case RefreshFeed:
		return "refresh_feed"
	default:
		return ""
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}

func cleaningContactsUpdate(total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CleanContacts,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Preparing %d contacts for analysis...", total),
	}
}

func lookupUpdate(step, total int, contact models.Contact) ProgressUpdate {
	return ProgressUpdate{
		Phase:   LookupEmotion,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %s", step, total, contact.Name),
	}
}

func lookupFailedUpdate(step, total int, contact models.Contact) ProgressUpdate {
	return ProgressUpdate{
		Phase:   LookupEmotion,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %s is not a registered user", step, total, contact.Name),
	}
}

func sortResultsUpdate(total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SortResults,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Caching %d profiles...", total),
	}
}

func fetchFollowingUpdate(user string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchFollowing,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Fetching remote following list for %s...", user),
	}
}

func pullFollowUpdate(step, total int, phone string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PullFollows,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Pulling %s", step, total, phone),
	}
}

func pushFollowsUpdate(total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PushFollows,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Pushing %d local follows...", total),
	}
}

func refreshFeedUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   RefreshFeed,
		Step:    1,
		Total:   1,
		Message: "Refreshing celebrity mood feed...",
	}
}
