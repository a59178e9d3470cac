// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow over the cached contact moods:
//  1. [ContactListView] : Browse cached contact profiles with emotion glyphs
//  2. [ProfileView] : Read a contact's full emotion profile
//  3. [ConfirmSyncView] : Confirm a following-list sync
//  4. [SyncView] : Monitor real-time reconciliation progress
//  5. [ResultView] : Display pulled/pushed/dropped counts
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Progress updates flow through a channel from the FollowingReconciler, providing non-blocking status reporting during syncs.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, s, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
