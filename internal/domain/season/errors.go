package season

import "errors"

// ErrIDConflict reports a write against a season or tournament id owned by
// another user.
var ErrIDConflict = errors.New("id owned by another user")
