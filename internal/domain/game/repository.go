package game

import (
	"context"

	"github.com/VillePajala/matchops-sync/internal/domain/roster"
)

// Summary is the list-view projection of a stored game.
type Summary struct {
	ID           string
	TeamName     string
	OpponentName string
	GameDate     string
	HomeScore    int
	AwayScore    int
	Status       Status
	IsPlayed     bool
}

// Repository is the storage-provider contract: implementations flatten the
// state to rows on save and rebuild it on load, resolving player references
// against the supplied master roster. Load returns false when the game does
// not exist; a stale player reference inside a stored game never fails a load.
type Repository interface {
	Save(ctx context.Context, userID string, st State) (string, error)
	Load(ctx context.Context, userID, gameID string, masterRoster []roster.Player) (State, bool, error)
	List(ctx context.Context, userID string) ([]Summary, error)
	Archive(ctx context.Context, userID, gameID string) error
}
