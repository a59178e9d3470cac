package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/halcyonlabs/moodsync/internal/repositories"
	"github.com/halcyonlabs/moodsync/internal/shared"
	"github.com/halcyonlabs/moodsync/internal/tasks"
	"github.com/halcyonlabs/moodsync/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for browsing contact moods and syncing follows.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.mood == nil {
		return fmt.Errorf("%w: mood backend not initialized", shared.ErrServiceUnavailable)
	}

	r.track("tui")

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	profileRepo := repositories.NewProfileRepository(db)
	followingRepo := repositories.NewFollowingRepository(db)
	syncRepo := repositories.NewSyncStateRepository(db)
	reconciler := tasks.NewFollowingReconciler(r.mood, followingRepo, syncRepo)

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/moodsync-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(ctx, profileRepo, reconciler, r.config.Identity.Username)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
