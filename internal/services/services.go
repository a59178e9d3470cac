// package services defines interfaces for the remote HTTP APIs the client consumes
//
// Mood backend (Django), Spotify
package services

import (
	"context"

	"github.com/halcyonlabs/moodsync/internal/models"
)

// EmotionService looks up emotion profiles for individual contacts.
type EmotionService interface {
	// LatestEmotionByPhone fetches the most recent emotion snapshot for a
	// phone number. Returns shared.ErrNotFound when the number does not
	// belong to a registered user.
	LatestEmotionByPhone(ctx context.Context, phone string) (*EmotionLookup, error)
}

// FollowService manages the backend's authoritative following list.
type FollowService interface {
	// GetFollowing fetches the phone numbers the user follows.
	// Returns shared.ErrNotFound when the user has no remote list yet.
	GetFollowing(ctx context.Context, user string) ([]string, error)

	// Follow adds follower (a phone number) to the user's following list.
	Follow(ctx context.Context, user, follower string) error

	// Unfollow removes follower from the user's following list.
	Unfollow(ctx context.Context, user, follower string) error
}

// ActivityLogger delivers behavior events to the remote logging endpoint.
type ActivityLogger interface {
	// LogActivity submits a single behavior event, fire-and-forget from the
	// caller's perspective. One call per event; there is no batch endpoint.
	LogActivity(ctx context.Context, email string, event models.BehaviorEvent) error
}

// CelebrityFeed fetches the public celebrity mood feed.
type CelebrityFeed interface {
	CelebrityMoods(ctx context.Context) ([]CelebrityEntry, error)
}

// EmotionLookup is the decoded result of a per-contact emotion lookup.
type EmotionLookup struct {
	City            string
	BehaviorFactors string
	HealthFactors   string
	ProfileText     string
	EmotionCode     int
	PhoneNumber     string
	Username        string
}

// CelebrityEntry is one entry from the celebrity mood feed.
type CelebrityEntry struct {
	Name        string
	EmotionCode int
	ProfileText string
}
