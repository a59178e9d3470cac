package models

import (
	"fmt"
	"time"
)

// Contact represents a device contact selected for emotion analysis.
type Contact struct {
	Name  string // Display name from the address book
	Phone string // Raw phone number, cleaned before any lookup
}

// ContactProfile represents the emotion profile for a single contact.
//
// A profile is either known (populated from a successful backend lookup) or a
// placeholder for a phone number the backend does not recognize. The
// placeholder is first-class data and is rendered, not treated as an error.
type ContactProfile struct {
	Name            string    // Contact display name
	Phone           string    // Cleaned phone number
	City            string    // Last reported city
	BehaviorFactors string    // Free-text behavioral factors from the backend
	HealthFactors   string    // Free-text health factors from the backend
	ProfileText     string    // AI-generated emotion profile text
	EmotionCode     int       // Emotion code id (1-95)
	Known           bool      // False for the "Not a user" placeholder
	FetchedAt       time.Time // When this profile was fetched
}

// NotAUserText is the sentinel profile text for contacts the backend does not know.
const NotAUserText = "Not a user"

// Key returns the cache key for this profile (name + phone).
func (p ContactProfile) Key() string {
	return p.Name + "|" + p.Phone
}

// Coordinates is an optional lat/long attached to a behavior event.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// BehaviorEvent represents a single tracked interaction or lifecycle event.
//
// Events are immutable once recorded and buffered in memory until flushed.
type BehaviorEvent struct {
	Action      string         // Action tag, e.g. "tab_view" or "command_executed"
	Tab         string         // Tab or screen context, if any
	Coordinates *Coordinates   // Optional location at the time of the event
	DurationSec float64        // Optional duration in seconds, 0 when absent
	Payload     map[string]any // Free-form key/value payload
	Timestamp   time.Time      // When the event occurred
}

// base provides the common persistent-entity fields and [Model] plumbing.
type base struct {
	id        string
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

func newBase() base {
	now := time.Now()
	return base{createdAt: now, updatedAt: now}
}

func (b *base) ID() string               { return b.id }
func (b *base) CreatedAt() time.Time     { return b.createdAt }
func (b *base) UpdatedAt() time.Time     { return b.updatedAt }
func (b *base) DeletedAt() *time.Time    { return b.deletedAt }
func (b *base) SetID(id string)          { b.id = id }
func (b *base) SetCreatedAt(t time.Time) { b.createdAt = t }
func (b *base) SetUpdatedAt(t time.Time) { b.updatedAt = t }
func (b *base) SetDeletedAt(t *time.Time) {
	b.deletedAt = t
}

// FollowedContact is an entry in the device-local following set.
//
// The set has membership semantics keyed by phone number; display name and
// emotion code are presentation state. Entries pulled from the remote side
// during reconciliation carry the placeholder display name.
type FollowedContact struct {
	base
	sequence    int
	name        string
	phone       string
	emotionCode int
}

// SyncedContactName is the placeholder display name for entries pulled from the remote set.
const SyncedContactName = "Synced Contact"

// NewFollowedContact creates a followed-contact entity with the given sequence, name, and phone.
func NewFollowedContact(sequence int, name, phone string, emotionCode int) *FollowedContact {
	return &FollowedContact{
		base:        newBase(),
		sequence:    sequence,
		name:        name,
		phone:       phone,
		emotionCode: emotionCode,
	}
}

func (f *FollowedContact) Sequence() int    { return f.sequence }
func (f *FollowedContact) Name() string     { return f.name }
func (f *FollowedContact) Phone() string    { return f.phone }
func (f *FollowedContact) EmotionCode() int { return f.emotionCode }

func (f *FollowedContact) SetSequence(n int)     { f.sequence = n }
func (f *FollowedContact) SetName(name string)   { f.name = name }
func (f *FollowedContact) SetEmotionCode(id int) { f.emotionCode = id }

// Validate checks required followed-contact fields.
func (f *FollowedContact) Validate() error {
	if f.phone == "" {
		return fmt.Errorf("followed contact requires a phone number")
	}
	if f.name == "" {
		return fmt.Errorf("followed contact requires a display name")
	}
	return nil
}

// CachedProfile is a persisted [ContactProfile] keyed by contact name+phone.
//
// Cached profiles are replaced wholesale on refresh, never partially updated.
type CachedProfile struct {
	base
	sequence int
	profile  ContactProfile
}

// NewCachedProfile creates a cached-profile entity wrapping the given profile.
func NewCachedProfile(sequence int, profile ContactProfile) *CachedProfile {
	return &CachedProfile{
		base:     newBase(),
		sequence: sequence,
		profile:  profile,
	}
}

func (c *CachedProfile) Sequence() int           { return c.sequence }
func (c *CachedProfile) Profile() ContactProfile { return c.profile }
func (c *CachedProfile) Key() string             { return c.profile.Key() }

func (c *CachedProfile) SetSequence(n int)           { c.sequence = n }
func (c *CachedProfile) SetProfile(p ContactProfile) { c.profile = p }

// Validate checks required cached-profile fields.
func (c *CachedProfile) Validate() error {
	if c.profile.Phone == "" {
		return fmt.Errorf("cached profile requires a phone number")
	}
	if c.profile.Name == "" {
		return fmt.Errorf("cached profile requires a contact name")
	}
	return nil
}

// CelebrityMood is a cached entry from the celebrity mood feed.
type CelebrityMood struct {
	base
	sequence    int
	name        string
	emotionCode int
	profileText string
	fetchedAt   time.Time
}

// NewCelebrityMood creates a celebrity-mood entity.
func NewCelebrityMood(sequence int, name string, emotionCode int, profileText string, fetchedAt time.Time) *CelebrityMood {
	return &CelebrityMood{
		base:        newBase(),
		sequence:    sequence,
		name:        name,
		emotionCode: emotionCode,
		profileText: profileText,
		fetchedAt:   fetchedAt,
	}
}

func (c *CelebrityMood) Sequence() int        { return c.sequence }
func (c *CelebrityMood) Name() string         { return c.name }
func (c *CelebrityMood) EmotionCode() int     { return c.emotionCode }
func (c *CelebrityMood) ProfileText() string  { return c.profileText }
func (c *CelebrityMood) FetchedAt() time.Time { return c.fetchedAt }

func (c *CelebrityMood) SetSequence(n int)          { c.sequence = n }
func (c *CelebrityMood) SetFetchedAt(t time.Time)   { c.fetchedAt = t }
func (c *CelebrityMood) SetEmotionCode(id int)      { c.emotionCode = id }
func (c *CelebrityMood) SetProfileText(text string) { c.profileText = text }

// Validate checks required celebrity-mood fields.
func (c *CelebrityMood) Validate() error {
	if c.name == "" {
		return fmt.Errorf("celebrity mood requires a name")
	}
	return nil
}
