package mapping

import (
	"github.com/VillePajala/matchops-sync/internal/domain/season"
	"github.com/VillePajala/matchops-sync/internal/validate"
)

// normalizeRoster resolves the dual-format default-roster fields to one
// array. The modern array field wins; otherwise the legacy reference (scalar
// or array in old exports) passes through as a slice. Only this layer knows
// the legacy shape exists.
func normalizeRoster(defaultRoster []string, legacy season.RosterRef) []string {
	if len(defaultRoster) > 0 {
		return append([]string(nil), defaultRoster...)
	}
	return legacy.IDs()
}

// NeedsServerID reports whether a row should be written without an id so the
// store assigns one. Legacy client ids stay as-is: they key cross-references
// in game_players and the event log.
func NeedsServerID(id string) bool {
	return id == ""
}

// IsLegacyClientID reports whether id uses the old client-generated
// kind_timestamp_suffix format.
func IsLegacyClientID(id string) bool {
	return validate.LegacyClientID(id)
}
