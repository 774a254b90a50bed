package season

import (
	"encoding/json"
	"fmt"
)

// RosterRef is the legacy default-roster reference. Persisted data written by
// old clients holds either a single player id or an array of ids under the
// same key, so the type accepts both JSON shapes and always exposes a slice.
type RosterRef struct {
	ids []string
}

func NewRosterRef(ids ...string) RosterRef {
	return RosterRef{ids: append([]string(nil), ids...)}
}

// IDs returns the referenced player ids, nil when unset.
func (r RosterRef) IDs() []string {
	if len(r.ids) == 0 {
		return nil
	}
	return append([]string(nil), r.ids...)
}

func (r RosterRef) IsZero() bool {
	return len(r.ids) == 0
}

func (r *RosterRef) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		r.ids = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			r.ids = nil
		} else {
			r.ids = []string{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("roster reference must be a string or an array of strings: %w", err)
	}
	r.ids = many
	return nil
}

func (r RosterRef) MarshalJSON() ([]byte, error) {
	if len(r.ids) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(r.ids)
}
