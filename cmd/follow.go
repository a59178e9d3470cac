package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/halcyonlabs/moodsync/internal/emotion"
	"github.com/halcyonlabs/moodsync/internal/models"
	"github.com/halcyonlabs/moodsync/internal/repositories"
	"github.com/halcyonlabs/moodsync/internal/shared"
	"github.com/urfave/cli/v3"
)

// FollowAdd adds a contact to the local following set.
func (r *Runner) FollowAdd(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	phone := shared.CleanPhone(cmd.StringArg("phone"))
	emotionName := cmd.String("emotion")

	if name == "" || phone == "" {
		return fmt.Errorf("%w: both name and phone are required", shared.ErrMissingArgument)
	}

	r.track("follow add")

	code := emotion.NeutralID
	if emotionName != "" {
		code = emotion.IDFor(emotionName)
	}

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	followingRepo := repositories.NewFollowingRepository(db)

	contact := models.NewFollowedContact(0, name, phone, code)
	if err := contact.Validate(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	if err := followingRepo.Create(contact); err != nil {
		if errors.Is(err, shared.ErrFollowingFull) {
			r.writePlain("✗ Following set is full (%d contacts max).\n", repositories.FollowingCapacity)
			r.writePlain("  Remove someone with 'moodsync follow remove <phone>' first.\n")
			return err
		}
		return fmt.Errorf("failed to follow contact: %w", err)
	}

	r.logger.Infof("now following %v (%v)", name, phone)

	r.writePlain("✓ Now following %s %s\n", emotion.GlyphFor(code), name)
	r.writePlain("  Run 'moodsync sync run' to push the change to the backend.\n")
	return nil
}

// FollowRemove removes a contact from the local following set by phone number.
func (r *Runner) FollowRemove(ctx context.Context, cmd *cli.Command) error {
	phone := shared.CleanPhone(cmd.StringArg("phone"))

	if phone == "" {
		return fmt.Errorf("%w: phone number is required", shared.ErrMissingArgument)
	}

	r.track("follow remove")

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	followingRepo := repositories.NewFollowingRepository(db)
	profileRepo := repositories.NewProfileRepository(db)

	if err := followingRepo.DeleteByPhone(phone); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return fmt.Errorf("%w: not following %s", shared.ErrNotFound, phone)
		}
		return fmt.Errorf("failed to unfollow contact: %w", err)
	}

	// The cached profile goes with the followed entry.
	if err := profileRepo.DeleteByPhone(phone); err != nil && !errors.Is(err, shared.ErrNotFound) {
		r.logger.Warnf("failed to drop cached profile for %v: %v", phone, err)
	}

	r.logger.Infof("unfollowed %v", phone)
	r.writePlain("✓ Unfollowed %s\n", phone)

	// Reconciliation only pulls and pushes; removals have to be sent to the
	// backend here or the contact comes back on the next sync.
	username := r.config.Identity.Username
	if r.mood == nil || username == "" {
		r.writePlain("  No backend identity configured; the remote list was left unchanged.\n")
		return nil
	}

	if err := r.mood.Unfollow(ctx, username, phone); err != nil {
		r.logger.Warnf("backend unfollow failed for %v: %v", phone, err)
		r.writePlain("  Could not update the backend; the contact may reappear on the next sync.\n")
		return nil
	}

	r.writePlain("  Removed from your backend following list.\n")
	return nil
}

// FollowList lists the local following set.
func (r *Runner) FollowList(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")

	r.track("follow list")

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	followingRepo := repositories.NewFollowingRepository(db)
	contacts, err := followingRepo.List(nil)
	if err != nil {
		return fmt.Errorf("failed to list following: %w", err)
	}

	if useJSON {
		type followedEntry struct {
			Name        string `json:"name"`
			Phone       string `json:"phone"`
			EmotionCode int    `json:"emotion_code"`
			Emotion     string `json:"emotion"`
		}
		entries := make([]followedEntry, 0, len(contacts))
		for _, c := range contacts {
			entries = append(entries, followedEntry{
				Name:        c.Name(),
				Phone:       c.Phone(),
				EmotionCode: c.EmotionCode(),
				Emotion:     emotion.NameFor(c.EmotionCode()),
			})
		}
		return r.writeJSON(entries, true)
	}

	if len(contacts) == 0 {
		r.writePlain("Not following anyone yet. Add someone with 'moodsync follow add <name> <phone>'.\n")
		return nil
	}

	r.writePlain("Following %d of %d contacts:\n\n", len(contacts), repositories.FollowingCapacity)
	for i, c := range contacts {
		r.writePlain("%d. %s %s\n", i+1, emotion.GlyphFor(c.EmotionCode()), c.Name())
		r.writePlain("   Phone: %s\n", c.Phone())
		r.writePlain("   Emotion: %s\n\n", emotion.NameFor(c.EmotionCode()))
	}

	return nil
}
