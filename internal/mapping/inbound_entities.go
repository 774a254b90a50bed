package mapping

import (
	"github.com/VillePajala/matchops-sync/internal/domain/roster"
	"github.com/VillePajala/matchops-sync/internal/domain/season"
	"github.com/VillePajala/matchops-sync/internal/domain/settings"
)

// PlayerFromRow is the inverse of ToPlayerRow.
func PlayerFromRow(row PlayerRow) roster.Player {
	return roster.Player{
		ID:                   row.ID,
		Name:                 row.Name,
		Nickname:             fromNullString(row.Nickname),
		JerseyNumber:         roster.JerseyNumber(fromNullString(row.JerseyNumber)),
		Notes:                fromNullString(row.Notes),
		IsGoalie:             row.IsGoalie,
		ReceivedFairPlayCard: row.ReceivedFairPlayCard,
		Color:                fromNullString(row.Color),
	}
}

// SeasonFromRow is the inverse of ToSeasonRow. The reconstructed season only
// carries the normalized roster array; the legacy reference never re-enters
// memory.
func SeasonFromRow(row SeasonRow) season.Season {
	return season.Season{
		ID:                    row.ID,
		Name:                  row.Name,
		Location:              fromNullString(row.Location),
		PeriodCount:           fromNullInt(row.PeriodCount),
		PeriodDurationMinutes: fromNullInt(row.PeriodDurationMinutes),
		StartDate:             fromNullString(row.StartDate),
		EndDate:               fromNullString(row.EndDate),
		GameDates:             append([]string(nil), row.GameDates...),
		Archived:              row.Archived,
		DefaultRoster:         append([]string(nil), row.DefaultRosterIDs...),
		Notes:                 fromNullString(row.Notes),
		Color:                 fromNullString(row.Color),
		Badge:                 fromNullString(row.Badge),
		AgeGroup:              fromNullString(row.AgeGroup),
	}
}

// TournamentFromRow is the inverse of ToTournamentRow.
func TournamentFromRow(row TournamentRow) season.Tournament {
	return season.Tournament{
		ID:                    row.ID,
		Name:                  row.Name,
		Location:              fromNullString(row.Location),
		PeriodCount:           fromNullInt(row.PeriodCount),
		PeriodDurationMinutes: fromNullInt(row.PeriodDurationMinutes),
		StartDate:             fromNullString(row.StartDate),
		EndDate:               fromNullString(row.EndDate),
		GameDates:             append([]string(nil), row.GameDates...),
		Archived:              row.Archived,
		DefaultRoster:         append([]string(nil), row.DefaultRosterIDs...),
		Notes:                 fromNullString(row.Notes),
		Color:                 fromNullString(row.Color),
		Badge:                 fromNullString(row.Badge),
		AgeGroup:              fromNullString(row.AgeGroup),
		Level:                 fromNullString(row.Level),
		SeasonID:              fromNullString(row.SeasonID),
	}
}

// SettingsFromRow is the inverse of ToSettingsRow.
func SettingsFromRow(row AppSettingsRow) settings.AppSettings {
	return settings.AppSettings{
		CurrentGameID:           fromNullString(row.CurrentGameID),
		LastHomeTeamName:        fromNullString(row.LastHomeTeamName),
		Language:                row.Language,
		DefaultTeamName:         fromNullString(row.DefaultTeamName),
		AutoBackupEnabled:       row.AutoBackupEnabled,
		AutoBackupIntervalHours: row.AutoBackupIntervalHours,
		LastBackupTime:          fromNullString(row.LastBackupTime),
		BackupEmail:             fromNullString(row.BackupEmail),
		UseDemandCorrection:     row.UseDemandCorrection,
	}
}

// TimerStateFromRow is the inverse of ToTimerStateRow.
func TimerStateFromRow(row TimerStateRow) settings.TimerState {
	return settings.TimerState{
		GameID:          row.GameID,
		ElapsedSeconds:  row.ElapsedSeconds,
		TimestampMillis: row.TimestampMillis,
	}
}

func fromNullInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
