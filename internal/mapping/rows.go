// Package mapping is the bidirectional data layer between the in-memory Game
// State graph and its normalized relational representation. Outbound
// transforms flatten one state into one row per entity; the inbound
// reconstructor rebuilds the graph from the full row bundle of a game. Every
// function is a pure mapping over its arguments: no I/O, no hidden state, no
// mutation of inputs.
package mapping

import "github.com/lib/pq"

// Row structs carry explicit pointers for nullable columns: an intentionally
// absent optional value crosses the wire as null, never as a missing key, so
// an update can clear a previously-set value. Id fields are omitted when
// empty, which signals "let the store assign one".

// GameRow is the flattened scalar surface of one Game State, plus the full
// serialized snapshot in GameData. Normalized columns enable indexed queries;
// the snapshot is the reconstruction fallback of last resort.
type GameRow struct {
	ID                    string   `db:"id" json:"id,omitempty"`
	UserID                string   `db:"user_id" json:"user_id"`
	TeamName              string   `db:"team_name" json:"team_name"`
	OpponentName          string   `db:"opponent_name" json:"opponent_name"`
	GameDate              *string  `db:"game_date" json:"game_date"`
	GameTime              *string  `db:"game_time" json:"game_time"`
	Location              *string  `db:"location" json:"location"`
	HomeScore             int      `db:"home_score" json:"home_score"`
	AwayScore             int      `db:"away_score" json:"away_score"`
	HomeOrAway            string   `db:"home_or_away" json:"home_or_away"`
	NumberOfPeriods       int      `db:"number_of_periods" json:"number_of_periods"`
	PeriodDurationMinutes int      `db:"period_duration_minutes" json:"period_duration_minutes"`
	SubIntervalMinutes    *int     `db:"sub_interval_minutes" json:"sub_interval_minutes"`
	CurrentPeriod         int      `db:"current_period" json:"current_period"`
	Status                string   `db:"game_status" json:"game_status"`
	IsPlayed              *bool    `db:"is_played" json:"is_played"`
	SeasonID              *string  `db:"season_id" json:"season_id"`
	TournamentID          *string  `db:"tournament_id" json:"tournament_id"`
	AgeGroup              *string  `db:"age_group" json:"age_group"`
	TournamentLevel       *string  `db:"tournament_level" json:"tournament_level"`
	DemandFactor          *float64 `db:"demand_factor" json:"demand_factor"`
	Notes                 *string  `db:"game_notes" json:"game_notes"`
	ShowPlayerNames       bool     `db:"show_player_names" json:"show_player_names"`
	LastSubTimeSeconds    *int     `db:"last_sub_time_seconds" json:"last_sub_time_seconds"`
	TacticalBallPos       *string  `db:"tactical_ball_pos" json:"tactical_ball_pos"`
	Archived              bool     `db:"archived" json:"archived"`
	GameData              string   `db:"game_data" json:"game_data"`
}

// GamePlayerRow is one row of the game_players junction table: one player,
// one row per game, field placement and selection folded into flags.
type GamePlayerRow struct {
	GameID     string   `db:"game_id" json:"game_id"`
	PlayerID   string   `db:"player_id" json:"player_id"`
	IsOnField  bool     `db:"is_on_field" json:"is_on_field"`
	IsSelected bool     `db:"is_selected" json:"is_selected"`
	RelX       *float64 `db:"rel_x" json:"rel_x"`
	RelY       *float64 `db:"rel_y" json:"rel_y"`
	Color      *string  `db:"color" json:"color"`
}

// OpponentRow is one opponent chip on the live field view.
type OpponentRow struct {
	ID     string  `db:"id" json:"id,omitempty"`
	GameID string  `db:"game_id" json:"game_id"`
	RelX   float64 `db:"rel_x" json:"rel_x"`
	RelY   float64 `db:"rel_y" json:"rel_y"`
}

// GameEventRow is one match-log entry. Which reference columns are set
// depends on EventType.
type GameEventRow struct {
	ID          string  `db:"id" json:"id,omitempty"`
	GameID      string  `db:"game_id" json:"game_id"`
	EventType   string  `db:"event_type" json:"event_type"`
	TimeSeconds int     `db:"time_seconds" json:"time_seconds"`
	ScorerID    *string `db:"scorer_id" json:"scorer_id"`
	AssisterID  *string `db:"assister_id" json:"assister_id"`
	EntityID    *string `db:"entity_id" json:"entity_id"`
}

// AssessmentRow flattens the nested slider object to ten columns.
type AssessmentRow struct {
	GameID        string  `db:"game_id" json:"game_id"`
	PlayerID      string  `db:"player_id" json:"player_id"`
	OverallRating int     `db:"overall_rating" json:"overall_rating"`
	Intensity     int     `db:"intensity" json:"intensity"`
	Courage       int     `db:"courage" json:"courage"`
	Duels         int     `db:"duels" json:"duels"`
	Technique     int     `db:"technique" json:"technique"`
	Creativity    int     `db:"creativity" json:"creativity"`
	Decisions     int     `db:"decisions" json:"decisions"`
	Awareness     int     `db:"awareness" json:"awareness"`
	Teamwork      int     `db:"teamwork" json:"teamwork"`
	FairPlay      int     `db:"fair_play" json:"fair_play"`
	Impact        int     `db:"impact" json:"impact"`
	Notes         *string `db:"notes" json:"notes"`
	MinutesPlayed int     `db:"minutes_played" json:"minutes_played"`
	CreatedBy     string  `db:"created_by" json:"created_by"`
	CreatedAt     int64   `db:"created_at_ms" json:"created_at_ms"`
}

// TacticalDiscRow is one non-player marker on the tactics board.
type TacticalDiscRow struct {
	ID       string  `db:"id" json:"id,omitempty"`
	GameID   string  `db:"game_id" json:"game_id"`
	RelX     float64 `db:"rel_x" json:"rel_x"`
	RelY     float64 `db:"rel_y" json:"rel_y"`
	DiscType string  `db:"disc_type" json:"disc_type"`
}

// DrawingRow stores one drawing layer of a game as a single row holding the
// JSON-encoded array of strokes.
type DrawingRow struct {
	GameID string `db:"game_id" json:"game_id"`
	Layer  string `db:"drawing_layer" json:"drawing_layer"`
	Data   string `db:"drawing_data" json:"drawing_data"`
}

// CompletedIntervalRow is one finished substitution interval.
type CompletedIntervalRow struct {
	GameID          string `db:"game_id" json:"game_id"`
	Period          int    `db:"period" json:"period"`
	DurationSeconds int    `db:"duration_seconds" json:"duration_seconds"`
	TimestampMillis int64  `db:"timestamp_ms" json:"timestamp_ms"`
}

// PlayerRow is a master-roster entry.
type PlayerRow struct {
	ID                   string  `db:"id" json:"id,omitempty"`
	UserID               string  `db:"user_id" json:"user_id"`
	Name                 string  `db:"name" json:"name"`
	Nickname             *string `db:"nickname" json:"nickname"`
	JerseyNumber         *string `db:"jersey_number" json:"jersey_number"`
	Notes                *string `db:"notes" json:"notes"`
	IsGoalie             bool    `db:"is_goalie" json:"is_goalie"`
	ReceivedFairPlayCard bool    `db:"received_fair_play_card" json:"received_fair_play_card"`
	Color                *string `db:"color" json:"color"`
}

// SeasonRow is a flattened season. The legacy scalar-or-array roster
// reference is normalized to DefaultRosterIDs before it reaches this shape.
type SeasonRow struct {
	ID                    string         `db:"id" json:"id,omitempty"`
	UserID                string         `db:"user_id" json:"user_id"`
	Name                  string         `db:"name" json:"name"`
	Location              *string        `db:"location" json:"location"`
	PeriodCount           *int           `db:"period_count" json:"period_count"`
	PeriodDurationMinutes *int           `db:"period_duration_minutes" json:"period_duration_minutes"`
	StartDate             *string        `db:"start_date" json:"start_date"`
	EndDate               *string        `db:"end_date" json:"end_date"`
	GameDates             pq.StringArray `db:"game_dates" json:"game_dates"`
	Archived              bool           `db:"archived" json:"archived"`
	DefaultRosterIDs      pq.StringArray `db:"default_roster_ids" json:"default_roster_ids"`
	Notes                 *string        `db:"notes" json:"notes"`
	Color                 *string        `db:"color" json:"color"`
	Badge                 *string        `db:"badge" json:"badge"`
	AgeGroup              *string        `db:"age_group" json:"age_group"`
}

// TournamentRow is a SeasonRow plus level and season back-reference.
type TournamentRow struct {
	ID                    string         `db:"id" json:"id,omitempty"`
	UserID                string         `db:"user_id" json:"user_id"`
	Name                  string         `db:"name" json:"name"`
	Location              *string        `db:"location" json:"location"`
	PeriodCount           *int           `db:"period_count" json:"period_count"`
	PeriodDurationMinutes *int           `db:"period_duration_minutes" json:"period_duration_minutes"`
	StartDate             *string        `db:"start_date" json:"start_date"`
	EndDate               *string        `db:"end_date" json:"end_date"`
	GameDates             pq.StringArray `db:"game_dates" json:"game_dates"`
	Archived              bool           `db:"archived" json:"archived"`
	DefaultRosterIDs      pq.StringArray `db:"default_roster_ids" json:"default_roster_ids"`
	Notes                 *string        `db:"notes" json:"notes"`
	Color                 *string        `db:"color" json:"color"`
	Badge                 *string        `db:"badge" json:"badge"`
	AgeGroup              *string        `db:"age_group" json:"age_group"`
	Level                 *string        `db:"level" json:"level"`
	SeasonID              *string        `db:"season_id" json:"season_id"`
}

// AppSettingsRow is the per-user settings row.
type AppSettingsRow struct {
	UserID                  string  `db:"user_id" json:"user_id"`
	CurrentGameID           *string `db:"current_game_id" json:"current_game_id"`
	LastHomeTeamName        *string `db:"last_home_team_name" json:"last_home_team_name"`
	Language                string  `db:"language" json:"language"`
	DefaultTeamName         *string `db:"default_team_name" json:"default_team_name"`
	AutoBackupEnabled       bool    `db:"auto_backup_enabled" json:"auto_backup_enabled"`
	AutoBackupIntervalHours int     `db:"auto_backup_interval_hours" json:"auto_backup_interval_hours"`
	LastBackupTime          *string `db:"last_backup_time" json:"last_backup_time"`
	BackupEmail             *string `db:"backup_email" json:"backup_email"`
	UseDemandCorrection     bool    `db:"use_demand_correction" json:"use_demand_correction"`
}

// TimerStateRow is the persisted live-timer snapshot for one game.
type TimerStateRow struct {
	GameID          string `db:"game_id" json:"game_id"`
	UserID          string `db:"user_id" json:"user_id"`
	ElapsedSeconds  int    `db:"time_elapsed_seconds" json:"time_elapsed_seconds"`
	TimestampMillis int64  `db:"timestamp_ms" json:"timestamp_ms"`
}

// Bundle is the full set of rows for one game: the game row plus every
// related child-row collection. What the outbound transformer produces is
// exactly what the inbound reconstructor consumes.
type Bundle struct {
	Game        GameRow
	Players     []GamePlayerRow
	Opponents   []OpponentRow
	Events      []GameEventRow
	Assessments []AssessmentRow
	Discs       []TacticalDiscRow
	Drawings    []DrawingRow
	Intervals   []CompletedIntervalRow
}
