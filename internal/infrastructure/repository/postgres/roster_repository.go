package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/VillePajala/matchops-sync/internal/domain/roster"
	"github.com/VillePajala/matchops-sync/internal/mapping"
	idgen "github.com/VillePajala/matchops-sync/internal/platform/id"
	"github.com/VillePajala/matchops-sync/internal/validate"
)

type RosterRepository struct {
	db  *sqlx.DB
	ids idgen.Generator
}

func NewRosterRepository(db *sqlx.DB, ids idgen.Generator) *RosterRepository {
	return &RosterRepository{db: db, ids: ids}
}

func (r *RosterRepository) List(ctx context.Context, userID string) ([]roster.Player, error) {
	var rows []mapping.PlayerRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, user_id, name, nickname, jersey_number, notes, is_goalie, received_fair_play_card, color
		FROM players WHERE user_id = $1 ORDER BY name, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]roster.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapping.PlayerFromRow(row))
	}
	return out, nil
}

func (r *RosterRepository) Upsert(ctx context.Context, userID string, p roster.Player) (roster.Player, error) {
	if mapping.NeedsServerID(p.ID) {
		id, err := r.ids.NewID()
		if err != nil {
			return roster.Player{}, err
		}
		p.ID = id
	}
	if err := validate.Player(p); err != nil {
		return roster.Player{}, err
	}

	row := mapping.ToPlayerRow(userID, p)
	result, err := r.db.NamedExecContext(ctx,
		`INSERT INTO players (id, user_id, name, nickname, jersey_number, notes, is_goalie, received_fair_play_card, color)
		VALUES (:id, :user_id, :name, :nickname, :jersey_number, :notes, :is_goalie, :received_fair_play_card, :color)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			nickname = EXCLUDED.nickname,
			jersey_number = EXCLUDED.jersey_number,
			notes = EXCLUDED.notes,
			is_goalie = EXCLUDED.is_goalie,
			received_fair_play_card = EXCLUDED.received_fair_play_card,
			color = EXCLUDED.color,
			updated_at = now()
		WHERE players.user_id = EXCLUDED.user_id`, row)
	if err != nil {
		return roster.Player{}, fmt.Errorf("upsert player: %w", err)
	}
	// Zero affected rows means the ownership guard rejected the write.
	affected, err := result.RowsAffected()
	if err != nil {
		return roster.Player{}, fmt.Errorf("upsert player rows affected: %w", err)
	}
	if affected == 0 {
		return roster.Player{}, fmt.Errorf("upsert player %s: %w", p.ID, roster.ErrIDConflict)
	}
	return p, nil
}

// Remove deletes a roster entry. Stored games keep their game_players rows;
// reconstruction skips references it can no longer resolve.
func (r *RosterRepository) Remove(ctx context.Context, userID, playerID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM players WHERE id = $1 AND user_id = $2`, playerID, userID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}
