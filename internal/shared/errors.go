package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig   = fmt.Errorf("configuration not found")
	ErrInvalidConfig   = fmt.Errorf("invalid configuration")
	ErrMissingIdentity = fmt.Errorf("missing user identity")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrNotFound           = fmt.Errorf("record not found")
	ErrDecodeFailed       = fmt.Errorf("malformed response payload")
	ErrTimeout            = fmt.Errorf("operation timed out")

	// Authentication errors
	ErrAuthFailed       = fmt.Errorf("authentication failed")
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrTokenExpired     = fmt.Errorf("access token expired")

	// Engine state errors
	ErrBatchInProgress = fmt.Errorf("analysis batch already in progress")
	ErrSyncInProgress  = fmt.Errorf("reconciliation already in progress")
	ErrSyncCooldown    = fmt.Errorf("reconciliation on cooldown")
	ErrFollowingFull   = fmt.Errorf("local following set at capacity")
	ErrNoSession       = fmt.Errorf("no active tracking session")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
