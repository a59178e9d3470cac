package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/halcyonlabs/moodsync/internal/repositories"
	"github.com/halcyonlabs/moodsync/internal/shared"
	"github.com/halcyonlabs/moodsync/internal/tasks"
	"github.com/urfave/cli/v3"
)

// SyncRun reconciles the local following set with the backend's authoritative list.
func (r *Runner) SyncRun(ctx context.Context, cmd *cli.Command) error {
	force := cmd.Bool("force")

	if r.mood == nil {
		return fmt.Errorf("%w: mood backend not initialized", shared.ErrServiceUnavailable)
	}

	username := r.config.Identity.Username
	if username == "" {
		return fmt.Errorf("%w: identity.username must be set in config.toml", shared.ErrMissingIdentity)
	}

	r.track("sync run")

	r.logger.Info("starting following sync", "user", username, "force", force)
	r.writePlain("Syncing following list for %s...\n\n", username)

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	followingRepo := repositories.NewFollowingRepository(db)
	syncRepo := repositories.NewSyncStateRepository(db)
	reconciler := tasks.NewFollowingReconciler(r.mood, followingRepo, syncRepo)

	// Create progress channel and goroutine to handle updates
	progressCh := make(chan tasks.ProgressUpdate, 50)
	go func() {
		for update := range progressCh {
			switch update.Phase {
			case tasks.FetchFollowing:
				r.writePlain("📥 %s\n", update.Message)
			case tasks.PullFollows:
				r.writePlain("   %s\n", update.Message)
			case tasks.PushFollows:
				r.writePlain("📤 %s\n", update.Message)
			}
		}
	}()

	result, err := reconciler.Reconcile(ctx, username, force, progressCh)
	close(progressCh)

	if err != nil {
		if errors.Is(err, shared.ErrSyncCooldown) {
			r.writePlain("⏳ %v\n", err)
			r.writePlain("   Use --force to sync anyway.\n")
			return err
		}
		return err
	}

	r.writePlain("\n")
	r.writePlainHeader("Sync Complete!")
	r.writePlain("Pulled from backend: %d\n", result.Pulled)
	r.writePlain("Pushed to backend: %d\n", result.Pushed)
	if result.Dropped > 0 {
		r.writePlain("Dropped (local set full): %d\n", result.Dropped)
	}
	if result.PushFailures > 0 {
		r.writePlain("Push failures: %d\n", result.PushFailures)
	}
	if result.UploadOnly {
		r.writePlain("\nBackend had no following list; local contacts were uploaded.\n")
	}

	return nil
}

// SyncStatus shows the last reconciliation time and local following count.
func (r *Runner) SyncStatus(ctx context.Context, cmd *cli.Command) error {
	r.track("sync status")

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	followingRepo := repositories.NewFollowingRepository(db)
	syncRepo := repositories.NewSyncStateRepository(db)

	count, err := followingRepo.Count()
	if err != nil {
		return fmt.Errorf("failed to count following: %w", err)
	}

	lastSynced, found, err := syncRepo.GetTime(repositories.LastSyncedKey)
	if err != nil {
		return fmt.Errorf("failed to read sync state: %w", err)
	}

	r.writePlain("Following: %d of %d contacts\n", count, repositories.FollowingCapacity)

	if !found {
		r.writePlain("Last synced: never\n")
		return nil
	}

	elapsed := time.Since(lastSynced).Round(time.Second)
	r.writePlain("Last synced: %s (%s ago)\n", lastSynced.Local().Format(time.RFC1123), elapsed)

	if remaining := tasks.SyncCooldown - time.Since(lastSynced); remaining > 0 {
		r.writePlain("Cooldown: %s remaining (use --force to bypass)\n", remaining.Round(time.Second))
	} else {
		r.writePlain("Cooldown: expired, sync available\n")
	}

	return nil
}
