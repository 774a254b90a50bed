package roster

import "errors"

// ErrIDConflict reports a write against a player id owned by another user.
var ErrIDConflict = errors.New("player id owned by another user")
