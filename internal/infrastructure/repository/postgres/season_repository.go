package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/VillePajala/matchops-sync/internal/domain/season"
	"github.com/VillePajala/matchops-sync/internal/mapping"
	idgen "github.com/VillePajala/matchops-sync/internal/platform/id"
	"github.com/VillePajala/matchops-sync/internal/validate"
)

type SeasonRepository struct {
	db  *sqlx.DB
	ids idgen.Generator
}

func NewSeasonRepository(db *sqlx.DB, ids idgen.Generator) *SeasonRepository {
	return &SeasonRepository{db: db, ids: ids}
}

func (r *SeasonRepository) ListSeasons(ctx context.Context, userID string) ([]season.Season, error) {
	var rows []mapping.SeasonRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, user_id, name, location, period_count, period_duration_minutes,
			start_date, end_date, game_dates, archived, default_roster_ids,
			notes, color, badge, age_group
		FROM seasons WHERE user_id = $1 ORDER BY name, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("select seasons: %w", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapping.SeasonFromRow(row))
	}
	return out, nil
}

func (r *SeasonRepository) UpsertSeason(ctx context.Context, userID string, s season.Season) (season.Season, error) {
	if mapping.NeedsServerID(s.ID) {
		id, err := r.ids.NewID()
		if err != nil {
			return season.Season{}, err
		}
		s.ID = id
	}
	if err := validate.Season(s); err != nil {
		return season.Season{}, err
	}

	row := mapping.ToSeasonRow(userID, s)
	result, err := r.db.NamedExecContext(ctx,
		`INSERT INTO seasons (
			id, user_id, name, location, period_count, period_duration_minutes,
			start_date, end_date, game_dates, archived, default_roster_ids,
			notes, color, badge, age_group
		) VALUES (
			:id, :user_id, :name, :location, :period_count, :period_duration_minutes,
			:start_date, :end_date, :game_dates, :archived, :default_roster_ids,
			:notes, :color, :badge, :age_group
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			location = EXCLUDED.location,
			period_count = EXCLUDED.period_count,
			period_duration_minutes = EXCLUDED.period_duration_minutes,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			game_dates = EXCLUDED.game_dates,
			archived = EXCLUDED.archived,
			default_roster_ids = EXCLUDED.default_roster_ids,
			notes = EXCLUDED.notes,
			color = EXCLUDED.color,
			badge = EXCLUDED.badge,
			age_group = EXCLUDED.age_group,
			updated_at = now()
		WHERE seasons.user_id = EXCLUDED.user_id`, row)
	if err != nil {
		return season.Season{}, fmt.Errorf("upsert season: %w", err)
	}
	// Zero affected rows means the ownership guard rejected the write.
	affected, err := result.RowsAffected()
	if err != nil {
		return season.Season{}, fmt.Errorf("upsert season rows affected: %w", err)
	}
	if affected == 0 {
		return season.Season{}, fmt.Errorf("upsert season %s: %w", s.ID, season.ErrIDConflict)
	}
	return mapping.SeasonFromRow(row), nil
}

func (r *SeasonRepository) ListTournaments(ctx context.Context, userID string) ([]season.Tournament, error) {
	var rows []mapping.TournamentRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, user_id, name, location, period_count, period_duration_minutes,
			start_date, end_date, game_dates, archived, default_roster_ids,
			notes, color, badge, age_group, level, season_id
		FROM tournaments WHERE user_id = $1 ORDER BY name, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("select tournaments: %w", err)
	}

	out := make([]season.Tournament, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapping.TournamentFromRow(row))
	}
	return out, nil
}

func (r *SeasonRepository) UpsertTournament(ctx context.Context, userID string, t season.Tournament) (season.Tournament, error) {
	if mapping.NeedsServerID(t.ID) {
		id, err := r.ids.NewID()
		if err != nil {
			return season.Tournament{}, err
		}
		t.ID = id
	}
	if err := validate.Tournament(t); err != nil {
		return season.Tournament{}, err
	}

	row := mapping.ToTournamentRow(userID, t)
	result, err := r.db.NamedExecContext(ctx,
		`INSERT INTO tournaments (
			id, user_id, name, location, period_count, period_duration_minutes,
			start_date, end_date, game_dates, archived, default_roster_ids,
			notes, color, badge, age_group, level, season_id
		) VALUES (
			:id, :user_id, :name, :location, :period_count, :period_duration_minutes,
			:start_date, :end_date, :game_dates, :archived, :default_roster_ids,
			:notes, :color, :badge, :age_group, :level, :season_id
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			location = EXCLUDED.location,
			period_count = EXCLUDED.period_count,
			period_duration_minutes = EXCLUDED.period_duration_minutes,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			game_dates = EXCLUDED.game_dates,
			archived = EXCLUDED.archived,
			default_roster_ids = EXCLUDED.default_roster_ids,
			notes = EXCLUDED.notes,
			color = EXCLUDED.color,
			badge = EXCLUDED.badge,
			age_group = EXCLUDED.age_group,
			level = EXCLUDED.level,
			season_id = EXCLUDED.season_id,
			updated_at = now()
		WHERE tournaments.user_id = EXCLUDED.user_id`, row)
	if err != nil {
		return season.Tournament{}, fmt.Errorf("upsert tournament: %w", err)
	}
	// Zero affected rows means the ownership guard rejected the write.
	affected, err := result.RowsAffected()
	if err != nil {
		return season.Tournament{}, fmt.Errorf("upsert tournament rows affected: %w", err)
	}
	if affected == 0 {
		return season.Tournament{}, fmt.Errorf("upsert tournament %s: %w", t.ID, season.ErrIDConflict)
	}
	return mapping.TournamentFromRow(row), nil
}
