package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/halcyonlabs/moodsync/internal/models"
	"github.com/halcyonlabs/moodsync/internal/shared"
)

// FollowingCapacity is the maximum size of the device-local following set.
// Entries beyond capacity are dropped by the reconciler, not queued.
const FollowingCapacity = 12

// FollowingRepository implements [models.Repository] for [models.FollowedContact] persistence.
//
// The set is keyed by phone number; capacity is enforced at insert time.
type FollowingRepository struct {
	db *sql.DB
}

// NewFollowingRepository creates a new [FollowingRepository] with the given database connection
func NewFollowingRepository(db *sql.DB) *FollowingRepository {
	return &FollowingRepository{db: db}
}

// Create inserts a new followed contact with generated ID and sequence.
//
// Returns [shared.ErrFollowingFull] when the set already holds [FollowingCapacity] entries.
func (r *FollowingRepository) Create(contact *models.FollowedContact) error {
	count, err := r.Count()
	if err != nil {
		return err
	}
	if count >= FollowingCapacity {
		return shared.ErrFollowingFull
	}

	sequence, err := NextSequence(r.db, "followed_contacts")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	contact.SetID(shared.GenerateID())
	contact.SetSequence(sequence)

	if err := contact.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO followed_contacts (id, sequence, name, phone, emotion_code, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, contact.ID(), sequence, contact.Name(), contact.Phone(), contact.EmotionCode(), contact.CreatedAt(), contact.UpdatedAt())
	if err != nil {
		return fmt.Errorf("failed to insert followed contact: %w", err)
	}

	return nil
}

// Get retrieves a followed contact by ID, excluding soft-deleted entries
func (r *FollowingRepository) Get(id string) (*models.FollowedContact, error) {
	return r.getWhere("id = ?", id)
}

// GetByPhone retrieves a followed contact by its phone number.
func (r *FollowingRepository) GetByPhone(phone string) (*models.FollowedContact, error) {
	return r.getWhere("phone = ?", phone)
}

func (r *FollowingRepository) getWhere(cond string, arg any) (*models.FollowedContact, error) {
	query := fmt.Sprintf(`
		SELECT id, sequence, name, phone, emotion_code, created_at, updated_at, deleted_at
		FROM followed_contacts
		WHERE %s AND deleted_at IS NULL
	`, cond)

	row := r.db.QueryRow(query, arg)
	contact, err := scanFollowedContact(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: followed contact %v", shared.ErrNotFound, arg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query followed contact: %w", err)
	}

	return contact, nil
}

// Update modifies an existing followed contact's display name and emotion code.
func (r *FollowingRepository) Update(contact *models.FollowedContact) error {
	if err := contact.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	contact.SetUpdatedAt(now)

	query := `
		UPDATE followed_contacts
		SET name = ?, emotion_code = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, contact.Name(), contact.EmotionCode(), now, contact.ID())
	if err != nil {
		return fmt.Errorf("failed to update followed contact: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: followed contact %s", shared.ErrNotFound, contact.ID())
	}

	return nil
}

// Delete soft-deletes a followed contact by ID.
func (r *FollowingRepository) Delete(id string) error {
	return r.deleteWhere("id = ?", id)
}

// DeleteByPhone soft-deletes a followed contact by phone number.
func (r *FollowingRepository) DeleteByPhone(phone string) error {
	return r.deleteWhere("phone = ?", phone)
}

func (r *FollowingRepository) deleteWhere(cond string, arg any) error {
	query := fmt.Sprintf(`
		UPDATE followed_contacts SET deleted_at = ? WHERE %s AND deleted_at IS NULL
	`, cond)

	result, err := r.db.Exec(query, time.Now(), arg)
	if err != nil {
		return fmt.Errorf("failed to delete followed contact: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: followed contact %v", shared.ErrNotFound, arg)
	}

	return nil
}

// List retrieves all followed contacts ordered by sequence.
// The criteria map is unused; the set is small enough to filter in memory.
func (r *FollowingRepository) List(criteria map[string]any) ([]*models.FollowedContact, error) {
	query := `
		SELECT id, sequence, name, phone, emotion_code, created_at, updated_at, deleted_at
		FROM followed_contacts
		WHERE deleted_at IS NULL
		ORDER BY sequence
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list followed contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*models.FollowedContact
	for rows.Next() {
		contact, err := scanFollowedContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan followed contact: %w", err)
		}
		contacts = append(contacts, contact)
	}

	return contacts, rows.Err()
}

// Phones returns the phone numbers of all followed contacts.
//
// This is the local side L of the reconciliation diff.
func (r *FollowingRepository) Phones() ([]string, error) {
	rows, err := r.db.Query("SELECT phone FROM followed_contacts WHERE deleted_at IS NULL ORDER BY sequence")
	if err != nil {
		return nil, fmt.Errorf("failed to query phones: %w", err)
	}
	defer rows.Close()

	var phones []string
	for rows.Next() {
		var phone string
		if err := rows.Scan(&phone); err != nil {
			return nil, fmt.Errorf("failed to scan phone: %w", err)
		}
		phones = append(phones, phone)
	}

	return phones, rows.Err()
}

// Count returns the number of live followed contacts.
func (r *FollowingRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM followed_contacts WHERE deleted_at IS NULL").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count followed contacts: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFollowedContact(row rowScanner) (*models.FollowedContact, error) {
	var (
		id          string
		sequence    int
		name        string
		phone       string
		emotionCode int
		createdAt   time.Time
		updatedAt   time.Time
		deletedAt   sql.NullTime
	)

	if err := row.Scan(&id, &sequence, &name, &phone, &emotionCode, &createdAt, &updatedAt, &deletedAt); err != nil {
		return nil, err
	}

	contact := models.NewFollowedContact(sequence, name, phone, emotionCode)
	contact.SetID(id)
	contact.SetCreatedAt(createdAt)
	contact.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		contact.SetDeletedAt(&deletedAt.Time)
	}

	return contact, nil
}
