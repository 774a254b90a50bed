package mapping

import (
	sonic "github.com/bytedance/sonic"

	"github.com/VillePajala/matchops-sync/internal/domain/game"
	"github.com/VillePajala/matchops-sync/internal/domain/roster"
)

// ReconstructOption tunes StateFromBundle.
type ReconstructOption func(*reconstructOptions)

type reconstructOptions struct {
	onOrphan func(playerID string)
}

// WithOrphanHook registers a diagnostic callback invoked once per
// game_players row whose player id is absent from the master roster. The row
// is skipped either way; a stale reference must never block loading a game.
func WithOrphanHook(hook func(playerID string)) ReconstructOption {
	return func(o *reconstructOptions) {
		o.onOrphan = hook
	}
}

// StateFromBundle rebuilds one Game State from the full set of its rows,
// resolving player references against the supplied master roster. Missing
// optional child rows yield empty collections, never an error; callers that
// need guarantees about the result run the validator afterward.
func StateFromBundle(b Bundle, masterRoster []roster.Player, opts ...ReconstructOption) game.State {
	var options reconstructOptions
	for _, opt := range opts {
		opt(&options)
	}

	// The snapshot column is the fallback for fields the normalized columns
	// cannot represent. A corrupt snapshot degrades to column-only data.
	var snapshot game.State
	snapshotOK := sonic.UnmarshalString(b.Game.GameData, &snapshot) == nil

	st := game.State{
		ID:                    b.Game.ID,
		TeamName:              b.Game.TeamName,
		OpponentName:          b.Game.OpponentName,
		GameDate:              fromNullString(b.Game.GameDate),
		GameTime:              fromNullString(b.Game.GameTime),
		Location:              fromNullString(b.Game.Location),
		HomeScore:             b.Game.HomeScore,
		AwayScore:             b.Game.AwayScore,
		CurrentPeriod:         b.Game.CurrentPeriod,
		Status:                StatusFromStored(b.Game.Status),
		HomeOrAway:            sideFromStoredOrHome(b.Game.HomeOrAway),
		NumberOfPeriods:       b.Game.NumberOfPeriods,
		PeriodDurationMinutes: b.Game.PeriodDurationMinutes,
		SeasonID:              fromNullString(b.Game.SeasonID),
		TournamentID:          fromNullString(b.Game.TournamentID),
		AgeGroup:              fromNullString(b.Game.AgeGroup),
		TournamentLevel:       fromNullString(b.Game.TournamentLevel),
		Notes:                 fromNullString(b.Game.Notes),
		ShowPlayerNames:       b.Game.ShowPlayerNames,
		PlayersOnField:        []game.PlacedPlayer{},
		AvailablePlayers:      []game.PlacedPlayer{},
		SelectedPlayerIDs:     []string{},
		Events:                []game.Event{},
		Opponents:             []game.OpponentMarker{},
		Drawings:              []game.Stroke{},
		TacticalDrawings:      []game.Stroke{},
		TacticalDiscs:         []game.TacticalDisc{},
		CompletedIntervals:    []game.CompletedInterval{},
		Assessments:           map[string]game.Assessment{},
	}

	if b.Game.SubIntervalMinutes != nil {
		st.SubIntervalMinutes = *b.Game.SubIntervalMinutes
	} else if snapshotOK {
		st.SubIntervalMinutes = snapshot.SubIntervalMinutes
	}
	if b.Game.DemandFactor != nil {
		st.DemandFactor = *b.Game.DemandFactor
	} else if snapshotOK {
		st.DemandFactor = snapshot.DemandFactor
	}
	if b.Game.LastSubTimeSeconds != nil {
		st.LastSubTimeSeconds = *b.Game.LastSubTimeSeconds
	} else if snapshotOK {
		st.LastSubTimeSeconds = snapshot.LastSubTimeSeconds
	}
	if snapshotOK {
		st.TimerElapsedSeconds = snapshot.TimerElapsedSeconds
	}

	// IsPlayed rule: the column wins; a null column falls back to the
	// snapshot; with neither, a finished game counts as played.
	switch {
	case b.Game.IsPlayed != nil:
		st.IsPlayed = *b.Game.IsPlayed
	case snapshotOK:
		st.IsPlayed = snapshot.IsPlayed
	default:
		st.IsPlayed = st.Status == game.StatusGameEnd
	}

	if b.Game.TacticalBallPos != nil {
		var p game.Point
		if err := sonic.UnmarshalString(*b.Game.TacticalBallPos, &p); err == nil {
			st.TacticalBallPos = &p
		}
	} else if snapshotOK && snapshot.TacticalBallPos != nil {
		p := *snapshot.TacticalBallPos
		st.TacticalBallPos = &p
	}

	lookup := roster.LookupMap(masterRoster)
	for _, row := range b.Players {
		master, ok := lookup[row.PlayerID]
		if !ok {
			// Orphaned reference: the player was deleted from the roster
			// after this game referenced them. Skip the row.
			if options.onOrphan != nil {
				options.onOrphan(row.PlayerID)
			}
			continue
		}

		placed := game.PlacedPlayer{
			Player: master,
			Color:  fromNullString(row.Color),
		}
		if row.IsOnField {
			placed.RelX = copyFloat(row.RelX)
			placed.RelY = copyFloat(row.RelY)
			st.PlayersOnField = append(st.PlayersOnField, placed)
		} else {
			st.AvailablePlayers = append(st.AvailablePlayers, placed)
		}
		if row.IsSelected {
			st.SelectedPlayerIDs = append(st.SelectedPlayerIDs, row.PlayerID)
		}
	}

	for _, row := range b.Events {
		st.Events = append(st.Events, game.Event{
			ID:          row.ID,
			Type:        eventTypeFromStored[row.EventType],
			TimeSeconds: row.TimeSeconds,
			ScorerID:    fromNullString(row.ScorerID),
			AssisterID:  fromNullString(row.AssisterID),
			EntityID:    fromNullString(row.EntityID),
		})
	}

	for _, row := range b.Opponents {
		st.Opponents = append(st.Opponents, game.OpponentMarker{
			ID:   row.ID,
			RelX: row.RelX,
			RelY: row.RelY,
		})
	}

	for _, row := range b.Discs {
		st.TacticalDiscs = append(st.TacticalDiscs, game.TacticalDisc{
			ID:   row.ID,
			RelX: row.RelX,
			RelY: row.RelY,
			Type: discTypeFromStored[row.DiscType],
		})
	}

	for _, row := range b.Assessments {
		st.Assessments[row.PlayerID] = game.Assessment{
			PlayerID: row.PlayerID,
			Overall:  row.OverallRating,
			Sliders: game.Sliders{
				Intensity:  row.Intensity,
				Courage:    row.Courage,
				Duels:      row.Duels,
				Technique:  row.Technique,
				Creativity: row.Creativity,
				Decisions:  row.Decisions,
				Awareness:  row.Awareness,
				Teamwork:   row.Teamwork,
				FairPlay:   row.FairPlay,
				Impact:     row.Impact,
			},
			Notes:         fromNullString(row.Notes),
			MinutesPlayed: row.MinutesPlayed,
			CreatedBy:     row.CreatedBy,
			CreatedAt:     row.CreatedAt,
		}
	}

	for _, row := range b.Intervals {
		st.CompletedIntervals = append(st.CompletedIntervals, game.CompletedInterval{
			Period:          row.Period,
			DurationSeconds: row.DurationSeconds,
			TimestampMillis: row.TimestampMillis,
		})
	}

	// Each drawing layer lives in a single row holding a JSON array of
	// strokes; a missing or unreadable layer yields an empty slice.
	for _, row := range b.Drawings {
		var strokes []game.Stroke
		if err := sonic.UnmarshalString(row.Data, &strokes); err != nil {
			continue
		}
		if strokes == nil {
			strokes = []game.Stroke{}
		}
		switch row.Layer {
		case storedDrawingLayerField:
			st.Drawings = strokes
		case storedDrawingLayerTactical:
			st.TacticalDrawings = strokes
		}
	}

	return st
}

func fromNullString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func sideFromStoredOrHome(v string) game.Side {
	if s, ok := sideFromStored[v]; ok {
		return s
	}
	return game.SideHome
}
