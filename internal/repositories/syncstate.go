package repositories

import (
	"database/sql"
	"fmt"
	"time"
)

// LastSyncedKey is the sync_state key holding the last successful reconciliation time.
const LastSyncedKey = "last_synced_at"

// SyncStateRepository persists small key-value state, notably the
// reconciliation cooldown timestamp.
type SyncStateRepository struct {
	db *sql.DB
}

// NewSyncStateRepository creates a new [SyncStateRepository] with the given database connection
func NewSyncStateRepository(db *sql.DB) *SyncStateRepository {
	return &SyncStateRepository{db: db}
}

// Set stores a string value under key, replacing any existing value.
func (r *SyncStateRepository) Set(key, value string) error {
	query := `
		INSERT INTO sync_state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := r.db.Exec(query, key, value, time.Now()); err != nil {
		return fmt.Errorf("failed to set sync state %s: %w", key, err)
	}
	return nil
}

// Get returns the value stored under key; found is false when the key is absent.
func (r *SyncStateRepository) Get(key string) (value string, found bool, err error) {
	err = r.db.QueryRow("SELECT value FROM sync_state WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get sync state %s: %w", key, err)
	}
	return value, true, nil
}

// SetTime stores a timestamp under key in RFC 3339 form.
func (r *SyncStateRepository) SetTime(key string, t time.Time) error {
	return r.Set(key, t.UTC().Format(time.RFC3339))
}

// GetTime returns the timestamp stored under key; found is false when absent
// or unparsable.
func (r *SyncStateRepository) GetTime(key string) (time.Time, bool, error) {
	value, found, err := r.Get(key)
	if err != nil || !found {
		return time.Time{}, false, err
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false, nil
	}
	return t, true, nil
}
