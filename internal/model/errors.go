package model

import "errors"

// Common errors used across the application
var (
	// Validation errors
	ErrMissingPlayerID   = errors.New("player_id is required")
	ErrMissingPlayerName = errors.New("player_name is required")
	ErrEmptyEntry        = errors.New("entry must have at least one identity field")

	// Store errors
	ErrStoreUnavailable = errors.New("backing store unavailable")
	ErrEntryNotFound    = errors.New("blacklist entry not found")
)
