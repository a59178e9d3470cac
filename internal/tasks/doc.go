// Package tasks orchestrates contact analysis and following-list sync with real-time progress reporting.
//
// # Core Operations
//
//  1. [ContactAnalysisEngine.Analyze] : Resolve emotion profiles for a contact batch
//     - Cleans phone numbers and skips contacts without one
//     - Looks up each contact serially against the emotion endpoint, rate limited
//     - Degrades failed lookups to Known=false placeholder profiles
//     - Returns the sorted batch only once every contact has been processed
//
//  2. [FollowingReconciler.Reconcile] : Converge local and remote following lists
//     - Diffs local phones against the backend's following list
//     - Pulls remote-only contacts into the local list up to its capacity
//     - Pushes local-only contacts concurrently via follow calls
//     - Falls back to upload-only mode when no remote list exists yet
//
//  3. [CelebrityRefresher.Refresh] : Keep the celebrity mood cache fresh
//     - Serves cached entries while they are within the TTL
//     - Replaces the cache wholesale after a remote fetch
//
// # Progress Reporting
//
// All operations use non-blocking channels for progress updates
//
// The [ProgressUpdate] struct contains phase, step counters, messages, and optional data for advanced UI rendering.
// Updates use select with default to prevent blocking.
//
// # Implementation
//
// Engines depend on the service interfaces in [services] and on store
// interfaces satisfied by the repositories package, which keeps them
// testable with in-memory fakes.
package tasks
