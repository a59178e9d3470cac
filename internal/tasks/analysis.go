package tasks

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/halcyonlabs/moodsync/internal/emotion"
	"github.com/halcyonlabs/moodsync/internal/models"
	"github.com/halcyonlabs/moodsync/internal/services"
	"github.com/halcyonlabs/moodsync/internal/shared"
	"golang.org/x/time/rate"
)

// defaultAnalysisPace bounds emotion lookups to five requests per second.
const defaultAnalysisPace = rate.Limit(5)

// ProfileStore persists analyzed contact profiles.
type ProfileStore interface {
	Upsert(profile models.ContactProfile) error
}

// ContactAnalysisEngine resolves emotion profiles for a batch of contacts.
//
// Lookups run one at a time in input order against the emotion endpoint. A
// contact whose lookup fails for any reason becomes a Known=false placeholder
// rather than failing the batch. Results only become visible once the whole
// batch has finished.
type ContactAnalysisEngine struct {
	emotions services.EmotionService
	store    ProfileStore
	limiter  *rate.Limiter
	running  atomic.Bool
}

// NewContactAnalysisEngine creates an analysis engine backed by the given
// emotion service and profile store.
func NewContactAnalysisEngine(emotions services.EmotionService, store ProfileStore) *ContactAnalysisEngine {
	return &ContactAnalysisEngine{
		emotions: emotions,
		store:    store,
		limiter:  rate.NewLimiter(defaultAnalysisPace, 1),
	}
}

// Analyze fetches an emotion profile for every contact in the batch.
//
// Only one batch may run at a time; a second call while one is in flight
// returns shared.ErrBatchInProgress immediately. Contacts whose phone number
// is empty after cleaning are skipped. The returned profiles are sorted by
// contact name and have already been persisted to the store by the time
// Analyze returns.
func (e *ContactAnalysisEngine) Analyze(ctx context.Context, contacts []models.Contact, progress chan<- ProgressUpdate) ([]models.ContactProfile, error) {
	if e.emotions == nil {
		return nil, fmt.Errorf("%w: emotion service not initialized", shared.ErrServiceUnavailable)
	}
	if !e.running.CompareAndSwap(false, true) {
		return nil, fmt.Errorf("%w: contact analysis already running", shared.ErrBatchInProgress)
	}
	defer e.running.Store(false)

	sendProgress(progress, cleaningContactsUpdate(len(contacts)))

	batch := make([]models.Contact, 0, len(contacts))
	for _, contact := range contacts {
		contact.Phone = shared.CleanPhone(contact.Phone)
		if contact.Phone == "" {
			continue
		}
		batch = append(batch, contact)
	}

	total := len(batch)
	profiles := make([]models.ContactProfile, 0, total)

	for i, contact := range batch {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		sendProgress(progress, lookupUpdate(i+1, total, contact))

		lookup, err := e.emotions.LatestEmotionByPhone(ctx, contact.Phone)
		if err != nil {
			sendProgress(progress, lookupFailedUpdate(i+1, total, contact))
			profiles = append(profiles, placeholderProfile(contact))
			continue
		}

		profiles = append(profiles, models.ContactProfile{
			Name:            contact.Name,
			Phone:           contact.Phone,
			City:            lookup.City,
			BehaviorFactors: lookup.BehaviorFactors,
			HealthFactors:   lookup.HealthFactors,
			ProfileText:     lookup.ProfileText,
			EmotionCode:     lookup.EmotionCode,
			Known:           true,
			FetchedAt:       time.Now().UTC(),
		})
	}

	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].Name < profiles[j].Name
	})

	sendProgress(progress, sortResultsUpdate(len(profiles)))

	if e.store != nil {
		for _, profile := range profiles {
			if err := e.store.Upsert(profile); err != nil {
				return nil, fmt.Errorf("failed to cache profile for %s: %w", profile.Name, err)
			}
		}
	}
	return profiles, nil
}

// placeholderProfile builds the Known=false entry used when a lookup fails.
// Placeholders are regular cache rows, not errors.
func placeholderProfile(contact models.Contact) models.ContactProfile {
	return models.ContactProfile{
		Name:        contact.Name,
		Phone:       contact.Phone,
		ProfileText: models.NotAUserText,
		EmotionCode: emotion.NeutralID,
		Known:       false,
		FetchedAt:   time.Now().UTC(),
	}
}
