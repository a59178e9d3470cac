package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/halcyonlabs/moodsync/internal/models"
	"github.com/halcyonlabs/moodsync/internal/shared"
)

// CelebrityTTL is how long a fetched celebrity feed stays fresh.
const CelebrityTTL = 30 * time.Minute

// CelebrityRepository caches the celebrity mood feed with a fetch timestamp for TTL checks.
//
// The feed is replaced as a whole on refresh; individual rows are never updated.
type CelebrityRepository struct {
	db *sql.DB
}

// NewCelebrityRepository creates a new [CelebrityRepository] with the given database connection
func NewCelebrityRepository(db *sql.DB) *CelebrityRepository {
	return &CelebrityRepository{db: db}
}

// ReplaceAll swaps the cached feed for the given entries in one transaction.
func (r *CelebrityRepository) ReplaceAll(moods []*models.CelebrityMood) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM celebrity_moods"); err != nil {
		return fmt.Errorf("failed to clear celebrity cache: %w", err)
	}

	query := `
		INSERT INTO celebrity_moods (id, sequence, name, emotion_code, profile_text, fetched_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	for i, mood := range moods {
		if err := mood.Validate(); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		mood.SetID(shared.GenerateID())
		mood.SetSequence(i + 1)

		_, err := tx.Exec(query, mood.ID(), mood.Sequence(), mood.Name(),
			mood.EmotionCode(), mood.ProfileText(), mood.FetchedAt(),
			mood.CreatedAt(), mood.UpdatedAt())
		if err != nil {
			return fmt.Errorf("failed to insert celebrity mood: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit celebrity cache: %w", err)
	}

	return nil
}

// List returns all cached celebrity moods in feed order.
func (r *CelebrityRepository) List() ([]*models.CelebrityMood, error) {
	query := `
		SELECT id, sequence, name, emotion_code, profile_text, fetched_at, created_at, updated_at
		FROM celebrity_moods
		WHERE deleted_at IS NULL
		ORDER BY sequence
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list celebrity moods: %w", err)
	}
	defer rows.Close()

	var moods []*models.CelebrityMood
	for rows.Next() {
		var (
			id          string
			sequence    int
			name        string
			emotionCode int
			profileText string
			fetchedAt   time.Time
			createdAt   time.Time
			updatedAt   time.Time
		)

		if err := rows.Scan(&id, &sequence, &name, &emotionCode, &profileText, &fetchedAt, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan celebrity mood: %w", err)
		}

		mood := models.NewCelebrityMood(sequence, name, emotionCode, profileText, fetchedAt)
		mood.SetID(id)
		mood.SetCreatedAt(createdAt)
		mood.SetUpdatedAt(updatedAt)
		moods = append(moods, mood)
	}

	return moods, rows.Err()
}

// LastFetchedAt returns when the cached feed was fetched, or the zero time
// when the cache is empty.
func (r *CelebrityRepository) LastFetchedAt() (time.Time, error) {
	var fetchedAt sql.NullTime
	err := r.db.QueryRow("SELECT MAX(fetched_at) FROM celebrity_moods WHERE deleted_at IS NULL").Scan(&fetchedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to query feed age: %w", err)
	}

	if !fetchedAt.Valid {
		return time.Time{}, nil
	}
	return fetchedAt.Time, nil
}

// Fresh reports whether the cached feed is within [CelebrityTTL] of now.
func (r *CelebrityRepository) Fresh(now time.Time) (bool, error) {
	fetchedAt, err := r.LastFetchedAt()
	if err != nil {
		return false, err
	}
	if fetchedAt.IsZero() {
		return false, nil
	}
	return now.Sub(fetchedAt) < CelebrityTTL, nil
}
