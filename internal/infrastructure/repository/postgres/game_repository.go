// Package postgres is the network-backed storage provider. Each repository
// honors the same contract as the memory fallback: full Game States are
// flattened to normalized rows on save and reconstructed on load.
package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/VillePajala/matchops-sync/internal/domain/game"
	"github.com/VillePajala/matchops-sync/internal/domain/roster"
	"github.com/VillePajala/matchops-sync/internal/mapping"
	idgen "github.com/VillePajala/matchops-sync/internal/platform/id"
	"github.com/VillePajala/matchops-sync/internal/validate"
)

type GameRepository struct {
	db         *sqlx.DB
	ids        idgen.Generator
	orphanHook func(playerID string)
}

// NewGameRepository builds the games store. orphanHook may be nil; when set
// it receives the player id of every stale reference skipped during loads.
func NewGameRepository(db *sqlx.DB, ids idgen.Generator, orphanHook func(playerID string)) *GameRepository {
	return &GameRepository{db: db, ids: ids, orphanHook: orphanHook}
}

const upsertGameQuery = `
INSERT INTO games (
	id, user_id, team_name, opponent_name, game_date, game_time, location,
	home_score, away_score, home_or_away, number_of_periods,
	period_duration_minutes, sub_interval_minutes, current_period, game_status,
	is_played, season_id, tournament_id, age_group, tournament_level,
	demand_factor, game_notes, show_player_names, last_sub_time_seconds,
	tactical_ball_pos, game_data
) VALUES (
	:id, :user_id, :team_name, :opponent_name, :game_date, :game_time, :location,
	:home_score, :away_score, :home_or_away, :number_of_periods,
	:period_duration_minutes, :sub_interval_minutes, :current_period, :game_status,
	:is_played, :season_id, :tournament_id, :age_group, :tournament_level,
	:demand_factor, :game_notes, :show_player_names, :last_sub_time_seconds,
	:tactical_ball_pos, :game_data
)
ON CONFLICT (id) DO UPDATE SET
	team_name = EXCLUDED.team_name,
	opponent_name = EXCLUDED.opponent_name,
	game_date = EXCLUDED.game_date,
	game_time = EXCLUDED.game_time,
	location = EXCLUDED.location,
	home_score = EXCLUDED.home_score,
	away_score = EXCLUDED.away_score,
	home_or_away = EXCLUDED.home_or_away,
	number_of_periods = EXCLUDED.number_of_periods,
	period_duration_minutes = EXCLUDED.period_duration_minutes,
	sub_interval_minutes = EXCLUDED.sub_interval_minutes,
	current_period = EXCLUDED.current_period,
	game_status = EXCLUDED.game_status,
	is_played = EXCLUDED.is_played,
	season_id = EXCLUDED.season_id,
	tournament_id = EXCLUDED.tournament_id,
	age_group = EXCLUDED.age_group,
	tournament_level = EXCLUDED.tournament_level,
	demand_factor = EXCLUDED.demand_factor,
	game_notes = EXCLUDED.game_notes,
	show_player_names = EXCLUDED.show_player_names,
	last_sub_time_seconds = EXCLUDED.last_sub_time_seconds,
	tactical_ball_pos = EXCLUDED.tactical_ball_pos,
	game_data = EXCLUDED.game_data,
	updated_at = now()
WHERE games.user_id = EXCLUDED.user_id`

var gameChildTables = []string{
	"game_players",
	"game_opponents",
	"game_events",
	"player_assessments",
	"tactical_discs",
	"game_drawings",
	"completed_intervals",
}

// Save validates the state, flattens it and writes the whole row bundle in
// one transaction. Child rows are replaced wholesale: the flattened bundle is
// the complete truth for the game, so stale child rows must not survive.
func (r *GameRepository) Save(ctx context.Context, userID string, st game.State) (string, error) {
	if mapping.NeedsServerID(st.ID) {
		id, err := r.ids.NewID()
		if err != nil {
			return "", err
		}
		st.ID = id
	}

	if err := validate.State(st); err != nil {
		return "", err
	}

	bundle, err := mapping.ToBundle(userID, st)
	if err != nil {
		return "", err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx save game: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.NamedExecContext(ctx, upsertGameQuery, bundle.Game)
	if err != nil {
		return "", fmt.Errorf("upsert game row: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("upsert game rows affected: %w", err)
	}
	// The upsert's ownership guard turns a write against another user's game
	// id into zero affected rows. Stop here: running the child-table deletes
	// below would wipe that user's rows.
	if affected == 0 {
		return "", fmt.Errorf("save game %s: %w", st.ID, game.ErrIDConflict)
	}
	for _, table := range gameChildTables {
		query := fmt.Sprintf("DELETE FROM %s WHERE game_id = $1", table)
		if _, err := tx.ExecContext(ctx, query, st.ID); err != nil {
			return "", fmt.Errorf("clear %s: %w", table, err)
		}
	}
	if err := insertChildRows(ctx, tx, bundle); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit save game tx: %w", err)
	}
	return st.ID, nil
}

func insertChildRows(ctx context.Context, tx *sqlx.Tx, bundle mapping.Bundle) error {
	if len(bundle.Players) > 0 {
		query := `INSERT INTO game_players (game_id, player_id, is_on_field, is_selected, rel_x, rel_y, color)
			VALUES (:game_id, :player_id, :is_on_field, :is_selected, :rel_x, :rel_y, :color)`
		if _, err := tx.NamedExecContext(ctx, query, bundle.Players); err != nil {
			return fmt.Errorf("insert game_players: %w", err)
		}
	}
	if len(bundle.Opponents) > 0 {
		query := `INSERT INTO game_opponents (id, game_id, rel_x, rel_y)
			VALUES (:id, :game_id, :rel_x, :rel_y)`
		if _, err := tx.NamedExecContext(ctx, query, bundle.Opponents); err != nil {
			return fmt.Errorf("insert game_opponents: %w", err)
		}
	}
	if len(bundle.Events) > 0 {
		query := `INSERT INTO game_events (id, game_id, event_type, time_seconds, scorer_id, assister_id, entity_id)
			VALUES (:id, :game_id, :event_type, :time_seconds, :scorer_id, :assister_id, :entity_id)`
		if _, err := tx.NamedExecContext(ctx, query, bundle.Events); err != nil {
			return fmt.Errorf("insert game_events: %w", err)
		}
	}
	if len(bundle.Assessments) > 0 {
		query := `INSERT INTO player_assessments (
				game_id, player_id, overall_rating, intensity, courage, duels,
				technique, creativity, decisions, awareness, teamwork, fair_play,
				impact, notes, minutes_played, created_by, created_at_ms
			) VALUES (
				:game_id, :player_id, :overall_rating, :intensity, :courage, :duels,
				:technique, :creativity, :decisions, :awareness, :teamwork, :fair_play,
				:impact, :notes, :minutes_played, :created_by, :created_at_ms
			)`
		if _, err := tx.NamedExecContext(ctx, query, bundle.Assessments); err != nil {
			return fmt.Errorf("insert player_assessments: %w", err)
		}
	}
	if len(bundle.Discs) > 0 {
		query := `INSERT INTO tactical_discs (id, game_id, rel_x, rel_y, disc_type)
			VALUES (:id, :game_id, :rel_x, :rel_y, :disc_type)`
		if _, err := tx.NamedExecContext(ctx, query, bundle.Discs); err != nil {
			return fmt.Errorf("insert tactical_discs: %w", err)
		}
	}
	if len(bundle.Drawings) > 0 {
		query := `INSERT INTO game_drawings (game_id, drawing_layer, drawing_data)
			VALUES (:game_id, :drawing_layer, :drawing_data)`
		if _, err := tx.NamedExecContext(ctx, query, bundle.Drawings); err != nil {
			return fmt.Errorf("insert game_drawings: %w", err)
		}
	}
	if len(bundle.Intervals) > 0 {
		query := `INSERT INTO completed_intervals (game_id, period, duration_seconds, timestamp_ms)
			VALUES (:game_id, :period, :duration_seconds, :timestamp_ms)`
		if _, err := tx.NamedExecContext(ctx, query, bundle.Intervals); err != nil {
			return fmt.Errorf("insert completed_intervals: %w", err)
		}
	}
	return nil
}

// Load selects the full row bundle and reconstructs the state against the
// supplied master roster. Stale player references degrade to skipped rows,
// never to a failed load.
func (r *GameRepository) Load(ctx context.Context, userID, gameID string, masterRoster []roster.Player) (game.State, bool, error) {
	var bundle mapping.Bundle

	err := r.db.GetContext(ctx, &bundle.Game,
		`SELECT id, user_id, team_name, opponent_name, game_date, game_time, location,
			home_score, away_score, home_or_away, number_of_periods,
			period_duration_minutes, sub_interval_minutes, current_period, game_status,
			is_played, season_id, tournament_id, age_group, tournament_level,
			demand_factor, game_notes, show_player_names, last_sub_time_seconds,
			tactical_ball_pos, archived, game_data
		FROM games WHERE id = $1 AND user_id = $2`, gameID, userID)
	if err != nil {
		if isNotFound(err) {
			return game.State{}, false, nil
		}
		return game.State{}, false, fmt.Errorf("select game: %w", err)
	}

	if err := r.selectChildRows(ctx, gameID, &bundle); err != nil {
		return game.State{}, false, err
	}
	return mapping.StateFromBundle(bundle, masterRoster, mapping.WithOrphanHook(r.orphanHook)), true, nil
}

func (r *GameRepository) selectChildRows(ctx context.Context, gameID string, bundle *mapping.Bundle) error {
	selects := []struct {
		dest  any
		query string
	}{
		{&bundle.Players, `SELECT game_id, player_id, is_on_field, is_selected, rel_x, rel_y, color
			FROM game_players WHERE game_id = $1`},
		{&bundle.Opponents, `SELECT id, game_id, rel_x, rel_y FROM game_opponents WHERE game_id = $1`},
		{&bundle.Events, `SELECT id, game_id, event_type, time_seconds, scorer_id, assister_id, entity_id
			FROM game_events WHERE game_id = $1 ORDER BY time_seconds, id`},
		{&bundle.Assessments, `SELECT game_id, player_id, overall_rating, intensity, courage, duels,
				technique, creativity, decisions, awareness, teamwork, fair_play,
				impact, notes, minutes_played, created_by, created_at_ms
			FROM player_assessments WHERE game_id = $1`},
		{&bundle.Discs, `SELECT id, game_id, rel_x, rel_y, disc_type FROM tactical_discs WHERE game_id = $1`},
		{&bundle.Drawings, `SELECT game_id, drawing_layer, drawing_data FROM game_drawings WHERE game_id = $1`},
		{&bundle.Intervals, `SELECT game_id, period, duration_seconds, timestamp_ms
			FROM completed_intervals WHERE game_id = $1 ORDER BY period, timestamp_ms`},
	}
	for _, s := range selects {
		if err := r.db.SelectContext(ctx, s.dest, s.query, gameID); err != nil {
			return fmt.Errorf("select game child rows: %w", err)
		}
	}
	return nil
}

// List returns unarchived games newest first.
func (r *GameRepository) List(ctx context.Context, userID string) ([]game.Summary, error) {
	var rows []struct {
		ID           string  `db:"id"`
		TeamName     string  `db:"team_name"`
		OpponentName string  `db:"opponent_name"`
		GameDate     *string `db:"game_date"`
		HomeScore    int     `db:"home_score"`
		AwayScore    int     `db:"away_score"`
		Status       string  `db:"game_status"`
		IsPlayed     *bool   `db:"is_played"`
	}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, team_name, opponent_name, game_date, home_score, away_score, game_status, is_played
		FROM games
		WHERE user_id = $1 AND archived = false
		ORDER BY game_date DESC NULLS LAST, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("select game summaries: %w", err)
	}

	out := make([]game.Summary, 0, len(rows))
	for _, row := range rows {
		summary := game.Summary{
			ID:           row.ID,
			TeamName:     row.TeamName,
			OpponentName: row.OpponentName,
			HomeScore:    row.HomeScore,
			AwayScore:    row.AwayScore,
			Status:       mapping.StatusFromStored(row.Status),
			IsPlayed:     row.IsPlayed == nil || *row.IsPlayed,
		}
		if row.GameDate != nil {
			summary.GameDate = *row.GameDate
		}
		out = append(out, summary)
	}
	return out, nil
}

// Archive soft-deletes a game. Child rows stay in place for recovery.
func (r *GameRepository) Archive(ctx context.Context, userID, gameID string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE games SET archived = true, updated_at = now() WHERE id = $1 AND user_id = $2`,
		gameID, userID)
	if err != nil {
		return fmt.Errorf("archive game: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("archive game rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("archive game %s: %w", gameID, game.ErrNotFound)
	}
	return nil
}
