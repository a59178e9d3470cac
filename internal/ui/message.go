package ui

import (
	"github.com/halcyonlabs/moodsync/internal/models"
	"github.com/halcyonlabs/moodsync/internal/tasks"
)

// profilesLoadedMsg carries the cached contact profiles for the list view.
type profilesLoadedMsg struct {
	profiles []models.ContactProfile
	err      error
}

// progressUpdateMsg wraps a [tasks.ProgressUpdate] from a running sync.
type progressUpdateMsg tasks.ProgressUpdate

// syncCompleteMsg carries the outcome of a reconciliation run.
type syncCompleteMsg struct {
	result *tasks.ReconcileResult
	err    error
}
