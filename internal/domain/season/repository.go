package season

import "context"

// Repository describes season and tournament persistence needs from use cases.
type Repository interface {
	ListSeasons(ctx context.Context, userID string) ([]Season, error)
	UpsertSeason(ctx context.Context, userID string, s Season) (Season, error)
	ListTournaments(ctx context.Context, userID string) ([]Tournament, error)
	UpsertTournament(ctx context.Context, userID string, t Tournament) (Tournament, error)
}
