// Package services implements HTTP clients for the remote APIs the moodsync client consumes.
//
// # Mood Backend
//
// [MoodService] wraps the Django backend's JSON endpoints behind four narrow
// interfaces so engine code depends only on the operations it uses:
//   - [EmotionService] : per-contact emotion lookups
//   - [FollowService] : the authoritative following list
//   - [ActivityLogger] : behavior event delivery (one call per event)
//   - [CelebrityFeed] : the public celebrity mood feed
//
// # Spotify Implementation
//
// [SpotifyService] provides the optional listening mood signal (currently
// playing track, top artists) using OAuth2 with automatic token refresh.
//
// # Error Handling
//
// Services use typed errors from the shared package:
//   - [shared.ErrNotFound] : 404-shaped responses; drives the reconciler's upload-only fallback
//   - [shared.ErrAPIRequest] : transport failures and other non-2xx statuses
//   - [shared.ErrDecodeFailed] : undecodable response bodies
//   - [shared.ErrNotAuthenticated] / [shared.ErrTokenExpired] : Spotify auth state
//
// None of the clients retry; a failed call is terminal for the operation that
// issued it and callers decide whether to degrade or surface the failure.
//
// JSON encoding uses goccy/go-json as a drop-in for encoding/json.
package services
