package validate

import (
	"fmt"
	"strings"

	"github.com/VillePajala/matchops-sync/internal/domain/game"
	"github.com/VillePajala/matchops-sync/internal/domain/roster"
	"github.com/VillePajala/matchops-sync/internal/domain/season"
)

// batch runs fn over every item and aggregates all failures into one
// ValidationError with a semicolon-joined summary ("Player 0: …; Player 2:
// …"). Bulk import wants the full list of problems in one pass, not
// one-at-a-time friction.
func batch[T any](label string, items []T, fn func(T) error) error {
	var parts []string
	for i, item := range items {
		if err := fn(item); err != nil {
			parts = append(parts, fmt.Sprintf("%s %d: %s", label, i, err.Error()))
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return &ValidationError{
		Field:   strings.ToLower(label) + "s",
		Message: strings.Join(parts, "; "),
	}
}

// Players validates a full roster import, reporting every invalid entry.
func Players(players []roster.Player) error {
	return batch("Player", players, Player)
}

// Seasons validates a season collection, reporting every invalid entry.
func Seasons(seasons []season.Season) error {
	return batch("Season", seasons, Season)
}

// Tournaments validates a tournament collection, reporting every invalid
// entry.
func Tournaments(tournaments []season.Tournament) error {
	return batch("Tournament", tournaments, Tournament)
}

// Games validates a collection of full Game States, reporting every invalid
// entry.
func Games(states []game.State) error {
	return batch("Game", states, State)
}

// Events validates a standalone event log, reporting every invalid entry.
func Events(events []game.Event) error {
	return batch("Event", events, Event)
}
