package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/VillePajala/matchops-sync/internal/domain/settings"
	"github.com/VillePajala/matchops-sync/internal/mapping"
	"github.com/VillePajala/matchops-sync/internal/validate"
)

type SettingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) GetSettings(ctx context.Context, userID string) (settings.AppSettings, bool, error) {
	var row mapping.AppSettingsRow
	err := r.db.GetContext(ctx, &row,
		`SELECT user_id, current_game_id, last_home_team_name, language, default_team_name,
			auto_backup_enabled, auto_backup_interval_hours, last_backup_time,
			backup_email, use_demand_correction
		FROM app_settings WHERE user_id = $1`, userID)
	if err != nil {
		if isNotFound(err) {
			return settings.AppSettings{}, false, nil
		}
		return settings.AppSettings{}, false, fmt.Errorf("select app settings: %w", err)
	}
	return mapping.SettingsFromRow(row), true, nil
}

func (r *SettingsRepository) SaveSettings(ctx context.Context, userID string, s settings.AppSettings) error {
	if err := validate.Settings(s); err != nil {
		return err
	}

	row := mapping.ToSettingsRow(userID, s)
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO app_settings (
			user_id, current_game_id, last_home_team_name, language, default_team_name,
			auto_backup_enabled, auto_backup_interval_hours, last_backup_time,
			backup_email, use_demand_correction
		) VALUES (
			:user_id, :current_game_id, :last_home_team_name, :language, :default_team_name,
			:auto_backup_enabled, :auto_backup_interval_hours, :last_backup_time,
			:backup_email, :use_demand_correction
		)
		ON CONFLICT (user_id) DO UPDATE SET
			current_game_id = EXCLUDED.current_game_id,
			last_home_team_name = EXCLUDED.last_home_team_name,
			language = EXCLUDED.language,
			default_team_name = EXCLUDED.default_team_name,
			auto_backup_enabled = EXCLUDED.auto_backup_enabled,
			auto_backup_interval_hours = EXCLUDED.auto_backup_interval_hours,
			last_backup_time = EXCLUDED.last_backup_time,
			backup_email = EXCLUDED.backup_email,
			use_demand_correction = EXCLUDED.use_demand_correction,
			updated_at = now()`, row)
	if err != nil {
		return fmt.Errorf("upsert app settings: %w", err)
	}
	return nil
}

// SaveTimerState overwrites the per-game timer snapshot. Writes land on
// every tick interval, so the row is replaced, never merged.
func (r *SettingsRepository) SaveTimerState(ctx context.Context, userID string, t settings.TimerState) error {
	if err := validate.TimerState(t); err != nil {
		return err
	}

	row := mapping.ToTimerStateRow(userID, t)
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO timer_states (game_id, user_id, time_elapsed_seconds, timestamp_ms)
		VALUES (:game_id, :user_id, :time_elapsed_seconds, :timestamp_ms)
		ON CONFLICT (game_id, user_id) DO UPDATE SET
			time_elapsed_seconds = EXCLUDED.time_elapsed_seconds,
			timestamp_ms = EXCLUDED.timestamp_ms`, row)
	if err != nil {
		return fmt.Errorf("upsert timer state: %w", err)
	}
	return nil
}

func (r *SettingsRepository) GetTimerState(ctx context.Context, userID, gameID string) (settings.TimerState, bool, error) {
	var row mapping.TimerStateRow
	err := r.db.GetContext(ctx, &row,
		`SELECT game_id, user_id, time_elapsed_seconds, timestamp_ms
		FROM timer_states WHERE game_id = $1 AND user_id = $2`, gameID, userID)
	if err != nil {
		if isNotFound(err) {
			return settings.TimerState{}, false, nil
		}
		return settings.TimerState{}, false, fmt.Errorf("select timer state: %w", err)
	}
	return mapping.TimerStateFromRow(row), true, nil
}
