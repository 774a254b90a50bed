package game

import "errors"

var (
	// ErrNotFound reports a game id that does not exist for the caller.
	ErrNotFound = errors.New("game not found")

	// ErrIDConflict reports a write against a game id owned by another user.
	ErrIDConflict = errors.New("game id owned by another user")
)
