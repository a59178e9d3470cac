package main

import (
	"context"
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"github.com/halcyonlabs/moodsync/internal/emotion"
	"github.com/halcyonlabs/moodsync/internal/formatter"
	"github.com/halcyonlabs/moodsync/internal/models"
	"github.com/halcyonlabs/moodsync/internal/repositories"
	"github.com/halcyonlabs/moodsync/internal/shared"
	"github.com/halcyonlabs/moodsync/internal/tasks"
	"github.com/urfave/cli/v3"
)

// addressBookEntry is one contact in an exported address book file.
type addressBookEntry struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// loadAddressBook reads a JSON address book export into contacts.
func loadAddressBook(path string) ([]models.Contact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read address book: %w", err)
	}

	var entries []addressBookEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: address book is not valid JSON: %v", shared.ErrInvalidInput, err)
	}

	contacts := make([]models.Contact, 0, len(entries))
	for _, entry := range entries {
		contacts = append(contacts, models.Contact{Name: entry.Name, Phone: entry.Phone})
	}

	return contacts, nil
}

// ContactsAnalyze looks up an emotion profile for every contact in an address book file.
func (r *Runner) ContactsAnalyze(ctx context.Context, cmd *cli.Command) error {
	filePath := cmd.StringArg("file")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if filePath == "" {
		return fmt.Errorf("%w: address book file path is required", shared.ErrMissingArgument)
	}
	if r.mood == nil {
		return fmt.Errorf("%w: mood backend not initialized", shared.ErrServiceUnavailable)
	}

	r.track("contacts analyze")

	contacts, err := loadAddressBook(filePath)
	if err != nil {
		return err
	}

	r.logger.Infof("analyzing %v contacts from %v", len(contacts), filePath)

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	profileRepo := repositories.NewProfileRepository(db)
	engine := tasks.NewContactAnalysisEngine(r.mood, profileRepo)

	// Create progress channel and goroutine to handle updates
	progressCh := make(chan tasks.ProgressUpdate, 50)
	go func() {
		for update := range progressCh {
			switch update.Phase {
			case tasks.CleanContacts:
				r.writePlain("🧹 %s\n", update.Message)
			case tasks.LookupEmotion:
				r.writePlain("   %s\n", update.Message)
			case tasks.SortResults:
				r.writePlain("\n🗂  %s\n", update.Message)
			}
		}
	}()

	batchStart := time.Now()
	profiles, err := engine.Analyze(ctx, contacts, progressCh)
	close(progressCh)

	if err != nil {
		return err
	}

	// The cache mirrors the address book: anything not re-fetched in this
	// batch belongs to a contact that was removed from it.
	purged, err := profileRepo.PurgeOlderThan(batchStart)
	if err != nil {
		r.logger.Warnf("failed to purge stale profiles: %v", err)
	} else if purged > 0 {
		r.logger.Infof("purged %v cached profiles no longer in the address book", purged)
	}

	if useJSON {
		return r.writeJSON(profiles, pretty)
	}

	known := 0
	for _, profile := range profiles {
		if profile.Known {
			known++
		}
	}

	r.writePlain("\n")
	r.writePlainHeader("Analysis Complete!")
	r.writePlain("Contacts analyzed: %d\n", len(profiles))
	r.writePlain("Registered users: %d\n", known)
	r.writePlain("Not users: %d\n", len(profiles)-known)

	return nil
}

// ContactsList lists cached contact mood profiles.
func (r *Runner) ContactsList(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	r.track("contacts list")

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	profileRepo := repositories.NewProfileRepository(db)
	cached, err := profileRepo.List(nil)
	if err != nil {
		return fmt.Errorf("failed to list cached profiles: %w", err)
	}

	profiles := make([]models.ContactProfile, 0, len(cached))
	for _, c := range cached {
		profiles = append(profiles, c.Profile())
	}

	if useJSON {
		return r.writeJSON(profiles, pretty)
	}

	if len(profiles) == 0 {
		r.writePlain("No cached profiles. Run 'moodsync contacts analyze <file>' first.\n")
		return nil
	}

	r.writePlain("Found %d cached profiles:\n\n", len(profiles))
	for i, profile := range profiles {
		r.writePlain("%d. %s %s\n", i+1, emotion.GlyphFor(profile.EmotionCode), profile.Name)
		r.writePlain("   Phone: %s\n", profile.Phone)
		if profile.Known {
			r.writePlain("   Emotion: %s\n", emotion.NameFor(profile.EmotionCode))
			if profile.City != "" {
				r.writePlain("   City: %s\n", profile.City)
			}
		} else {
			r.writePlain("   %s\n", models.NotAUserText)
		}
		r.writePlain("\n")
	}

	return nil
}

// ContactsReport exports cached profiles as a mood report file.
func (r *Runner) ContactsReport(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String("format")
	outputPath := cmd.String("output")

	r.track("contacts report")

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	profileRepo := repositories.NewProfileRepository(db)
	cached, err := profileRepo.List(nil)
	if err != nil {
		return fmt.Errorf("failed to list cached profiles: %w", err)
	}

	if len(cached) == 0 {
		return fmt.Errorf("%w: no cached profiles to report on", shared.ErrNotFound)
	}

	profiles := make([]models.ContactProfile, 0, len(cached))
	for _, c := range cached {
		profiles = append(profiles, c.Profile())
	}

	written, err := formatter.WriteReport(profiles, format, outputPath)
	if err != nil {
		return err
	}

	r.logger.Infof("report written to %v with %v profiles", written, len(profiles))

	r.writePlain("✓ Report written to %s\n", written)
	r.writePlain("  Profiles: %d\n", len(profiles))
	return nil
}
