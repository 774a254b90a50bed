package mapping

import "github.com/VillePajala/matchops-sync/internal/domain/game"

// Enum values cross the persistence boundary through these tables and
// nowhere else. Keeping both directions in one place guarantees outbound and
// inbound can never drift apart.

const (
	storedStatusNotStarted = "not_started"
	storedStatusInProgress = "in_progress"
	storedStatusPeriodEnd  = "period_end"
	storedStatusGameEnd    = "game_end"
)

var statusToStored = map[game.Status]string{
	game.StatusNotStarted: storedStatusNotStarted,
	game.StatusInProgress: storedStatusInProgress,
	game.StatusPeriodEnd:  storedStatusPeriodEnd,
	game.StatusGameEnd:    storedStatusGameEnd,
}

var statusFromStored = invert(statusToStored)

const (
	storedDrawingLayerField    = "field"
	storedDrawingLayerTactical = "tactical"
)

var discTypeToStored = map[game.DiscType]string{
	game.DiscHome:     "home",
	game.DiscOpponent: "opponent",
	game.DiscGoalie:   "goalie",
}

var discTypeFromStored = invert(discTypeToStored)

var eventTypeToStored = map[game.EventType]string{
	game.EventGoal:         "goal",
	game.EventOpponentGoal: "opponent_goal",
	game.EventSubstitution: "substitution",
	game.EventPeriodEnd:    "period_end",
	game.EventGameEnd:      "game_end",
	game.EventFairPlayCard: "fair_play_card",
}

var eventTypeFromStored = invert(eventTypeToStored)

var sideToStored = map[game.Side]string{
	game.SideHome: "home",
	game.SideAway: "away",
}

var sideFromStored = invert(sideToStored)

func invert[K comparable, V comparable](in map[K]V) map[V]K {
	out := make(map[V]K, len(in))
	for k, v := range in {
		out[v] = k
	}
	return out
}

// StoredStatus maps an in-memory game status to its persisted value. Unknown
// statuses map to not_started rather than poisoning a write; the validator is
// the layer that rejects them.
func StoredStatus(s game.Status) string {
	if v, ok := statusToStored[s]; ok {
		return v
	}
	return storedStatusNotStarted
}

// StatusFromStored is the inverse of StoredStatus.
func StatusFromStored(v string) game.Status {
	if s, ok := statusFromStored[v]; ok {
		return s
	}
	return game.StatusNotStarted
}
