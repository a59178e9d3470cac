// Package repositories implements SQLite persistence for all domain entities.
//
// Each repository handles CRUD operations with atomic sequence generation for human-readable ordering.
// All repositories support soft deletes via deleted_at timestamps and exclude deleted records from queries by default.
//
// Key Implementations:
//   - [FollowingRepository] : the device-local following set, capacity-bounded at [FollowingCapacity]
//   - [ProfileRepository] : contact emotion profile cache keyed by name+phone, replaced wholesale
//   - [CelebrityRepository] : celebrity feed cache with whole-feed replacement and TTL checks
//   - [SyncStateRepository] : small key-value state, notably the [LastSyncedKey] cooldown timestamp
//
// Sequence numbers provide stable, human-readable ordering (e.g., contact #7) independent of UUIDs and creation timestamps.
// The [NextSequence] function atomically increments per-table sequence counters in dedicated sequence tables.
package repositories
