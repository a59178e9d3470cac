package tasks

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/halcyonlabs/moodsync/internal/emotion"
	"github.com/halcyonlabs/moodsync/internal/models"
	"github.com/halcyonlabs/moodsync/internal/repositories"
	"github.com/halcyonlabs/moodsync/internal/services"
	"github.com/halcyonlabs/moodsync/internal/shared"
	"golang.org/x/sync/errgroup"
)

// SyncCooldown is the minimum interval between reconciliation runs.
const SyncCooldown = time.Hour

// pushConcurrency caps the concurrent follow calls during a push.
const pushConcurrency = 4

// FollowingStore is the local side of a reconciliation.
type FollowingStore interface {
	Phones() ([]string, error)
	Create(contact *models.FollowedContact) error
}

// SyncStateStore records when the last reconciliation finished.
type SyncStateStore interface {
	GetTime(key string) (time.Time, bool, error)
	SetTime(key string, t time.Time) error
}

// ReconcileResult summarizes what a reconciliation run changed.
type ReconcileResult struct {
	Pulled       int  // Remote-only contacts inserted locally
	Pushed       int  // Local-only contacts sent to the backend
	Dropped      int  // Remote-only contacts dropped for lack of capacity
	PushFailures int  // Follow calls that failed (never rolled back)
	UploadOnly   bool // Remote list was missing; all local follows were pushed
}

// FollowingReconciler converges the local followed-contact list and the
// backend's following list toward each other.
//
// Contacts present on only one side are copied to the other: remote-only
// phones are pulled into the local list (up to its capacity), local-only
// phones are pushed via follow calls. Neither side is ever truncated to
// match the other.
type FollowingReconciler struct {
	follows services.FollowService
	local   FollowingStore
	state   SyncStateStore
	running atomic.Bool
}

// NewFollowingReconciler creates a reconciler over the given backend service
// and local stores.
func NewFollowingReconciler(follows services.FollowService, local FollowingStore, state SyncStateStore) *FollowingReconciler {
	return &FollowingReconciler{
		follows: follows,
		local:   local,
		state:   state,
	}
}

// Reconcile runs one reconciliation pass for the given username.
//
// Returns shared.ErrMissingIdentity when username is empty and
// shared.ErrSyncInProgress when another pass is already running. Unless force
// is set, a pass within SyncCooldown of the previous one is refused with
// shared.ErrSyncCooldown. A remote list missing entirely (shared.ErrNotFound)
// switches the pass to upload-only mode: every local contact is pushed and
// nothing is pulled.
func (r *FollowingReconciler) Reconcile(ctx context.Context, username string, force bool, progress chan<- ProgressUpdate) (*ReconcileResult, error) {
	if r.follows == nil {
		return nil, fmt.Errorf("%w: follow service not initialized", shared.ErrServiceUnavailable)
	}
	if username == "" {
		return nil, fmt.Errorf("%w: reconciliation requires a username", shared.ErrMissingIdentity)
	}
	if !r.running.CompareAndSwap(false, true) {
		return nil, fmt.Errorf("%w: reconciliation already running", shared.ErrSyncInProgress)
	}
	defer r.running.Store(false)

	if !force && r.state != nil {
		last, found, err := r.state.GetTime(repositories.LastSyncedKey)
		if err != nil {
			return nil, fmt.Errorf("failed to read sync state: %w", err)
		}
		if found {
			if elapsed := time.Since(last); elapsed < SyncCooldown {
				return nil, fmt.Errorf("%w: last sync was %s ago", shared.ErrSyncCooldown, elapsed.Round(time.Second))
			}
		}
	}

	localPhones, err := r.local.Phones()
	if err != nil {
		return nil, fmt.Errorf("failed to read local following list: %w", err)
	}

	result := &ReconcileResult{}

	sendProgress(progress, fetchFollowingUpdate(username))

	remotePhones, err := r.follows.GetFollowing(ctx, username)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, fmt.Errorf("failed to fetch remote following list: %w", err)
		}
		// No remote list yet: seed it with everything we have locally.
		result.UploadOnly = true
		remotePhones = nil
	}

	var onlyLocal, onlyRemote []string
	if result.UploadOnly {
		onlyLocal = localPhones
	} else {
		onlyLocal, onlyRemote = diffPhones(localPhones, remotePhones)
	}

	for i, phone := range onlyRemote {
		sendProgress(progress, pullFollowUpdate(i+1, len(onlyRemote), phone))

		contact := models.NewFollowedContact(0, models.SyncedContactName, phone, emotion.NeutralID)
		if err := r.local.Create(contact); err != nil {
			if errors.Is(err, shared.ErrFollowingFull) {
				result.Dropped++
				continue
			}
			return result, fmt.Errorf("failed to pull %s: %w", phone, err)
		}
		result.Pulled++
	}

	if len(onlyLocal) > 0 {
		sendProgress(progress, pushFollowsUpdate(len(onlyLocal)))

		var failures atomic.Int64
		group, groupCtx := errgroup.WithContext(ctx)
		group.SetLimit(pushConcurrency)

		for _, phone := range onlyLocal {
			group.Go(func() error {
				if err := r.follows.Follow(groupCtx, username, phone); err != nil {
					failures.Add(1)
				}
				return nil
			})
		}
		group.Wait()

		result.PushFailures = int(failures.Load())
		result.Pushed = len(onlyLocal) - result.PushFailures
	}

	if r.state != nil {
		if err := r.state.SetTime(repositories.LastSyncedKey, time.Now().UTC()); err != nil {
			return result, fmt.Errorf("reconciled but failed to record sync time: %w", err)
		}
	}
	return result, nil
}

// diffPhones computes the symmetric difference between the local and remote
// phone sets, preserving each side's order.
func diffPhones(local, remote []string) (onlyLocal, onlyRemote []string) {
	localSet := make(map[string]struct{}, len(local))
	for _, phone := range local {
		localSet[phone] = struct{}{}
	}
	remoteSet := make(map[string]struct{}, len(remote))
	for _, phone := range remote {
		remoteSet[phone] = struct{}{}
	}

	for _, phone := range local {
		if _, found := remoteSet[phone]; !found {
			onlyLocal = append(onlyLocal, phone)
		}
	}
	for _, phone := range remote {
		if _, found := localSet[phone]; !found {
			onlyRemote = append(onlyRemote, phone)
		}
	}
	return onlyLocal, onlyRemote
}
