package validate

import (
	"github.com/VillePajala/matchops-sync/internal/domain/game"
	"github.com/VillePajala/matchops-sync/internal/domain/roster"
	"github.com/VillePajala/matchops-sync/internal/domain/season"
	"github.com/VillePajala/matchops-sync/internal/domain/settings"
)

// Player checks a master-roster entry. An empty id is allowed and means the
// store assigns one on insert.
func Player(p roster.Player) error {
	if err := checkID("player.id", p.ID, true); err != nil {
		return err
	}
	return checkRequired("player.name", p.Name)
}

// Season checks a season shell. Period configuration is optional; when set it
// must be usable by the timer.
func Season(s season.Season) error {
	if err := checkID("season.id", s.ID, true); err != nil {
		return err
	}
	if err := checkRequired("season.name", s.Name); err != nil {
		return err
	}
	if s.PeriodCount < 0 || s.PeriodCount > 2 {
		return newError("season.periodCount", s.PeriodCount, "period count %d outside [0,2]", s.PeriodCount)
	}
	return checkNonNegative("season.periodDuration", s.PeriodDurationMinutes)
}

// Tournament checks a tournament shell, including its optional season link.
func Tournament(t season.Tournament) error {
	if err := checkID("tournament.id", t.ID, true); err != nil {
		return err
	}
	if err := checkRequired("tournament.name", t.Name); err != nil {
		return err
	}
	if t.PeriodCount < 0 || t.PeriodCount > 2 {
		return newError("tournament.periodCount", t.PeriodCount, "period count %d outside [0,2]", t.PeriodCount)
	}
	if err := checkNonNegative("tournament.periodDuration", t.PeriodDurationMinutes); err != nil {
		return err
	}
	if t.SeasonID != "" {
		return checkID("tournament.seasonId", t.SeasonID, false)
	}
	return nil
}

// Event checks one match-log entry. A goal without a scorer is a hard
// failure; it must never be silently coerced into a valid row.
func Event(e game.Event) error {
	if _, ok := game.AllEventTypes[e.Type]; !ok {
		return newError("event.type", string(e.Type), "unknown event type %q", string(e.Type))
	}
	if err := checkNonNegative("event.time", e.TimeSeconds); err != nil {
		return err
	}
	if e.Type == game.EventGoal && e.ScorerID == "" {
		return newError("event.scorerId", e.ScorerID, "goal event requires a scorer")
	}
	return nil
}

// Assessment checks a per-player review: overall and every slider in [1,10],
// non-negative minutes, and an author.
func Assessment(a game.Assessment) error {
	if err := checkRating("assessment.overall", a.Overall); err != nil {
		return err
	}
	sliders := []struct {
		field string
		value int
	}{
		{"assessment.sliders.intensity", a.Sliders.Intensity},
		{"assessment.sliders.courage", a.Sliders.Courage},
		{"assessment.sliders.duels", a.Sliders.Duels},
		{"assessment.sliders.technique", a.Sliders.Technique},
		{"assessment.sliders.creativity", a.Sliders.Creativity},
		{"assessment.sliders.decisions", a.Sliders.Decisions},
		{"assessment.sliders.awareness", a.Sliders.Awareness},
		{"assessment.sliders.teamwork", a.Sliders.Teamwork},
		{"assessment.sliders.fair_play", a.Sliders.FairPlay},
		{"assessment.sliders.impact", a.Sliders.Impact},
	}
	for _, s := range sliders {
		if err := checkRating(s.field, s.value); err != nil {
			return err
		}
	}
	if err := checkNonNegative("assessment.minutesPlayed", a.MinutesPlayed); err != nil {
		return err
	}
	return checkRequired("assessment.createdBy", a.CreatedBy)
}

// Settings checks synced client preferences.
func Settings(s settings.AppSettings) error {
	return checkNonNegative("settings.autoBackupIntervalHours", s.AutoBackupIntervalHours)
}

// TimerState checks a live-timer snapshot.
func TimerState(t settings.TimerState) error {
	if err := checkID("timerState.gameId", t.GameID, false); err != nil {
		return err
	}
	return checkNonNegative("timerState.elapsedSeconds", t.ElapsedSeconds)
}
