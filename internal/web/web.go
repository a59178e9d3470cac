// Package web implements an HTMX-based web dashboard mirroring the TUI functionality.
//
// # HTMX Mood Dashboard Implementation Plan
//
// # Architecture
//
// The dashboard replicates the TUI workflow using server-side rendering with
// HTMX for dynamic updates. Each view corresponds to a template and handler:
//
//  1. Contact List: Server-rendered table of cached profiles with emotion glyphs
//  2. Profile Detail: HTMX partial swap showing the full emotion profile text
//  3. Sync Confirm: Modal confirmation with hx-post trigger for reconciliation
//  4. Sync Monitor: SSE (Server-Sent Events) streaming reconciliation progress
//  5. Celebrity Feed: Auto-refreshing partial backed by the 30-minute cache
//
// Core Components
//
//   - HTTP Server: the server package's BasicRouter with html/template rendering
//   - Service Integration: Uses the same services.MoodService and tasks engines as the TUI
//   - Session Management: Cookie-based sessions for the configured identity
//   - SSE Handler: Streams tasks.ProgressUpdate events during analysis and sync
//
// Routes
//
//	GET  /                       → Contact list view
//	GET  /contacts/{key}/profile → HTMX partial: profile detail
//	POST /analyze                → Start contact analysis, return SSE endpoint
//	POST /sync                   → Start reconciliation, return SSE endpoint
//	GET  /jobs/{id}/stream       → SSE progress stream
//	GET  /celebrities            → HTMX partial: celebrity mood feed
//	GET  /auth/spotify           → OAuth initiation (listening signal)
//	GET  /auth/spotify/callback  → OAuth completion
//
// Templates
//
//   - base.html: Layout with navigation and identity status
//   - contacts.html: Table with hx-get on rows, glyph column
//   - profile.html: Partial template for the profile detail
//   - progress.html: SSE consumer with progress bar
//   - celebrities.html: Feed partial with hx-trigger="every 30m"
//
// # State Management
//
// Unlike the TUI's in-memory state, the dashboard reads persisted state:
//   - Session cookies: Identity from the [identity] config section
//   - Profile cache: repositories.ProfileRepository rows across requests
//   - In-memory channels: SSE connections for running analysis/sync jobs
//
// # Progress Streaming
//
// Long operations use Server-Sent Events:
//  1. POST /sync checks the cooldown, starts FollowingReconciler.Reconcile
//  2. Client opens SSE connection to /jobs/{id}/stream
//  3. Handler forwards the progress channel as SSE events
//  4. On completion, send "done" event with the ReconcileResult
//
// Implementation Tasks
//
//  1. HTTP server setup reusing server.BasicRouter and LoggingMiddleware
//  2. Template structure with HTMX integration
//  3. Contact list handler reading the profile cache
//  4. Profile detail handler (HTMX partial)
//  5. Analyze/sync endpoints wrapping the tasks engines
//  6. SSE handler streaming ProgressUpdate events
//  7. Celebrity feed handler over CelebrityRefresher
//  8. OAuth handlers wrapping the existing Spotify auth
//  9. Error handling mapping the shared sentinels to flash messages
//
// # Testing Strategy
//
// Use httptest:
//   - Mock the service interfaces for profile and feed data
//   - Seed an in-memory SQLite cache for list views
//   - Validate HTMX headers and response structure
//   - Test SSE stream formatting
package web
