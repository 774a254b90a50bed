package validate

import (
	"fmt"

	"github.com/VillePajala/matchops-sync/internal/domain/game"
)

// State checks a full Game State graph, recursing into every collection with
// index-qualified errors. It fails on the first violation found.
func State(st game.State) error {
	if err := checkID("game.id", st.ID, true); err != nil {
		return err
	}
	if err := checkRequired("game.teamName", st.TeamName); err != nil {
		return err
	}
	if err := checkRequired("game.opponentName", st.OpponentName); err != nil {
		return err
	}
	if _, ok := game.AllStatuses[st.Status]; !ok {
		return newError("game.gameStatus", string(st.Status), "unknown game status %q", string(st.Status))
	}
	if _, ok := game.AllSides[st.HomeOrAway]; !ok {
		return newError("game.homeOrAway", string(st.HomeOrAway), "must be home or away")
	}
	if err := firstError(
		checkNonNegative("game.homeScore", st.HomeScore),
		checkNonNegative("game.awayScore", st.AwayScore),
		checkNonNegative("game.lastSubConfirmationTimeSeconds", st.LastSubTimeSeconds),
		checkNonNegative("game.timeElapsedInSeconds", st.TimerElapsedSeconds),
	); err != nil {
		return err
	}
	if st.NumberOfPeriods != 1 && st.NumberOfPeriods != 2 {
		return newError("game.numberOfPeriods", st.NumberOfPeriods, "must be 1 or 2")
	}
	if st.PeriodDurationMinutes <= 0 {
		return newError("game.periodDurationMinutes", st.PeriodDurationMinutes, "must be positive")
	}
	if st.CurrentPeriod < 1 || st.CurrentPeriod > st.NumberOfPeriods {
		return newError("game.currentPeriod", st.CurrentPeriod, "period %d outside [1,%d]", st.CurrentPeriod, st.NumberOfPeriods)
	}

	if err := placedPlayers("game.playersOnField", st.PlayersOnField, true); err != nil {
		return err
	}
	if err := placedPlayers("game.availablePlayers", st.AvailablePlayers, false); err != nil {
		return err
	}

	for i, e := range st.Events {
		if err := Event(e); err != nil {
			return indexed("game.gameEvents", i, "event validation failed at index %d", err)
		}
	}
	for i, o := range st.Opponents {
		if err := firstError(
			checkCoordinate("opponent.relX", o.RelX),
			checkCoordinate("opponent.relY", o.RelY),
		); err != nil {
			return indexed("game.opponents", i, "opponent validation failed at index %d", err)
		}
	}
	for i, d := range st.TacticalDiscs {
		if _, ok := game.AllDiscTypes[d.Type]; !ok {
			return newError("game.tacticalDiscs", string(d.Type), "disc validation failed at index %d: unknown disc type %q", i, string(d.Type))
		}
		if err := firstError(
			checkCoordinate("disc.relX", d.RelX),
			checkCoordinate("disc.relY", d.RelY),
		); err != nil {
			return indexed("game.tacticalDiscs", i, "disc validation failed at index %d", err)
		}
	}
	for i, iv := range st.CompletedIntervals {
		if err := firstError(
			checkNonNegative("interval.duration", iv.DurationSeconds),
			checkNonNegative("interval.period", iv.Period),
		); err != nil {
			return indexed("game.completedIntervalDurations", i, "interval validation failed at index %d", err)
		}
	}
	if st.TacticalBallPos != nil {
		if err := firstError(
			checkCoordinate("game.tacticalBallPosition.relX", st.TacticalBallPos.RelX),
			checkCoordinate("game.tacticalBallPosition.relY", st.TacticalBallPos.RelY),
		); err != nil {
			return err
		}
	}
	for playerID, a := range st.Assessments {
		if err := Assessment(a); err != nil {
			return newError("game.assessments", playerID, "assessment for player %s: %s", playerID, err.Error())
		}
	}
	return nil
}

func placedPlayers(field string, players []game.PlacedPlayer, onField bool) error {
	for i, p := range players {
		if err := Player(p.Player); err != nil {
			return indexed(field, i, "player validation failed at index %d", err)
		}
		if onField {
			if p.RelX == nil || p.RelY == nil {
				return newError(field, p.ID, "player validation failed at index %d: on-field player has no position", i)
			}
		}
		if p.RelX != nil {
			if err := checkCoordinate(field+".relX", *p.RelX); err != nil {
				return indexed(field, i, "player validation failed at index %d", err)
			}
		}
		if p.RelY != nil {
			if err := checkCoordinate(field+".relY", *p.RelY); err != nil {
				return indexed(field, i, "player validation failed at index %d", err)
			}
		}
	}
	return nil
}

// indexed wraps a nested entity failure with its collection index, keeping
// the original field attribution in the message.
func indexed(field string, i int, format string, err error) *ValidationError {
	ve := &ValidationError{Field: field, cause: err}
	ve.Message = fmt.Sprintf(format, i) + ": " + err.Error()
	if inner, ok := err.(*ValidationError); ok {
		ve.Value = inner.Value
	}
	return ve
}
