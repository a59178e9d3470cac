// Package models defines domain entities and persistence interfaces for the moodsync client.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): Lightweight structs passed between layers
//   - [Contact] : A device contact (display name + raw phone) selected for analysis
//   - [ContactProfile] : Emotion profile for a contact, known or placeholder
//   - [BehaviorEvent] : A single tracked interaction or lifecycle event
//
// 2. Persistent Entities: Database-backed models with full lifecycle management
//   - [FollowedContact] : An entry in the device-local following set (capacity-bounded)
//   - [CachedProfile] : Cached contact emotion profile keyed by name+phone
//   - [CelebrityMood] : Cached celebrity feed entry with a fetch timestamp for TTL
//
// All persistent entities implement the [Model] interface providing ID generation, timestamps, validation, and soft delete support.
// The [Repository] interface defines standard CRUD operations for database access.
package models
