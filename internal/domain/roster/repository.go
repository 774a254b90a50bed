package roster

import "context"

// Repository describes master-roster persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, userID string) ([]Player, error)
	Upsert(ctx context.Context, userID string, p Player) (Player, error)
	Remove(ctx context.Context, userID, playerID string) error
}
