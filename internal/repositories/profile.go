package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/halcyonlabs/moodsync/internal/models"
	"github.com/halcyonlabs/moodsync/internal/shared"
)

// ProfileRepository persists cached contact emotion profiles keyed by name+phone.
//
// Profiles are replaced wholesale on refresh. Placeholder ("Not a user")
// profiles are cached the same way as known ones.
type ProfileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new [ProfileRepository] with the given database connection
func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts a new cached profile with generated ID and sequence
func (r *ProfileRepository) Create(cached *models.CachedProfile) error {
	sequence, err := NextSequence(r.db, "contact_profiles")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	cached.SetID(shared.GenerateID())
	cached.SetSequence(sequence)

	if err := cached.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	p := cached.Profile()
	query := `
		INSERT INTO contact_profiles (
			id, sequence, contact_key, name, phone, city, behavior_factors,
			health_factors, profile_text, emotion_code, known, fetched_at,
			created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		cached.ID(), sequence, cached.Key(), p.Name, p.Phone, p.City,
		p.BehaviorFactors, p.HealthFactors, p.ProfileText, p.EmotionCode,
		boolToInt(p.Known), p.FetchedAt, cached.CreatedAt(), cached.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert cached profile: %w", err)
	}

	return nil
}

// Upsert stores a profile, replacing any existing row with the same contact key.
//
// Replacement is wholesale; there are no partial updates.
func (r *ProfileRepository) Upsert(profile models.ContactProfile) error {
	existing, err := r.GetByKey(profile.Key())
	if err == nil && existing != nil {
		existing.SetProfile(profile)
		return r.Update(existing)
	}

	return r.Create(models.NewCachedProfile(0, profile))
}

// Get retrieves a cached profile by ID, excluding soft-deleted rows
func (r *ProfileRepository) Get(id string) (*models.CachedProfile, error) {
	return r.getWhere("id = ?", id)
}

// GetByKey retrieves a cached profile by its contact key (name+phone).
func (r *ProfileRepository) GetByKey(key string) (*models.CachedProfile, error) {
	return r.getWhere("contact_key = ?", key)
}

func (r *ProfileRepository) getWhere(cond string, arg any) (*models.CachedProfile, error) {
	query := fmt.Sprintf(`
		SELECT id, sequence, name, phone, city, behavior_factors, health_factors,
		       profile_text, emotion_code, known, fetched_at, created_at, updated_at, deleted_at
		FROM contact_profiles
		WHERE %s AND deleted_at IS NULL
	`, cond)

	row := r.db.QueryRow(query, arg)
	cached, err := scanCachedProfile(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: cached profile %v", shared.ErrNotFound, arg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query cached profile: %w", err)
	}

	return cached, nil
}

// Update replaces the stored profile for an existing row.
func (r *ProfileRepository) Update(cached *models.CachedProfile) error {
	if err := cached.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	cached.SetUpdatedAt(now)

	p := cached.Profile()
	query := `
		UPDATE contact_profiles
		SET contact_key = ?, name = ?, phone = ?, city = ?, behavior_factors = ?,
		    health_factors = ?, profile_text = ?, emotion_code = ?, known = ?,
		    fetched_at = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		cached.Key(), p.Name, p.Phone, p.City, p.BehaviorFactors,
		p.HealthFactors, p.ProfileText, p.EmotionCode, boolToInt(p.Known),
		p.FetchedAt, now, cached.ID(),
	)
	if err != nil {
		return fmt.Errorf("failed to update cached profile: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: cached profile %s", shared.ErrNotFound, cached.ID())
	}

	return nil
}

// Delete soft-deletes a cached profile by ID.
func (r *ProfileRepository) Delete(id string) error {
	return r.deleteWhere("id = ?", id)
}

// DeleteByPhone soft-deletes cached profiles for a phone number.
// Called when a contact is removed from the locally selected set.
func (r *ProfileRepository) DeleteByPhone(phone string) error {
	return r.deleteWhere("phone = ?", phone)
}

func (r *ProfileRepository) deleteWhere(cond string, arg any) error {
	query := fmt.Sprintf(`
		UPDATE contact_profiles SET deleted_at = ? WHERE %s AND deleted_at IS NULL
	`, cond)

	result, err := r.db.Exec(query, time.Now(), arg)
	if err != nil {
		return fmt.Errorf("failed to delete cached profile: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: cached profile %v", shared.ErrNotFound, arg)
	}

	return nil
}

// List retrieves all cached profiles ordered by contact name (case-sensitive).
func (r *ProfileRepository) List(criteria map[string]any) ([]*models.CachedProfile, error) {
	query := `
		SELECT id, sequence, name, phone, city, behavior_factors, health_factors,
		       profile_text, emotion_code, known, fetched_at, created_at, updated_at, deleted_at
		FROM contact_profiles
		WHERE deleted_at IS NULL
		ORDER BY name
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cached profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.CachedProfile
	for rows.Next() {
		cached, err := scanCachedProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cached profile: %w", err)
		}
		profiles = append(profiles, cached)
	}

	return profiles, rows.Err()
}

// PurgeOlderThan soft-deletes cached profiles fetched before cutoff and
// returns how many rows were purged.
func (r *ProfileRepository) PurgeOlderThan(cutoff time.Time) (int, error) {
	result, err := r.db.Exec(
		"UPDATE contact_profiles SET deleted_at = ? WHERE fetched_at < ? AND deleted_at IS NULL",
		time.Now(), cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to purge cached profiles: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check purge result: %w", err)
	}

	return int(affected), nil
}

func scanCachedProfile(row rowScanner) (*models.CachedProfile, error) {
	var (
		id        string
		sequence  int
		p         models.ContactProfile
		known     int
		createdAt time.Time
		updatedAt time.Time
		deletedAt sql.NullTime
	)

	err := row.Scan(&id, &sequence, &p.Name, &p.Phone, &p.City, &p.BehaviorFactors,
		&p.HealthFactors, &p.ProfileText, &p.EmotionCode, &known, &p.FetchedAt,
		&createdAt, &updatedAt, &deletedAt)
	if err != nil {
		return nil, err
	}

	p.Known = known != 0

	cached := models.NewCachedProfile(sequence, p)
	cached.SetID(id)
	cached.SetCreatedAt(createdAt)
	cached.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		cached.SetDeletedAt(&deletedAt.Time)
	}

	return cached, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
