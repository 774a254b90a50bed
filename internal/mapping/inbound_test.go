package mapping

import (
	"reflect"
	"testing"

	"github.com/VillePajala/matchops-sync/internal/domain/game"
	"github.com/VillePajala/matchops-sync/internal/domain/roster"
	"github.com/VillePajala/matchops-sync/internal/validate"
)

func masterRoster() []roster.Player {
	return []roster.Player{
		{ID: "p1", Name: "Aino", JerseyNumber: "7"},
		{ID: "p2", Name: "Bea", JerseyNumber: "10", IsGoalie: true},
		{ID: "p3", Name: "Cia", JerseyNumber: "4"},
	}
}

func fullState(t *testing.T) game.State {
	t.Helper()
	st := game.NewState("FC Honka", "HJK")
	st.ID = "game_1700000000000_xy1"
	st.GameDate = "2026-05-02"
	st.Location = "Tapiolan urheilupuisto"
	st.HomeScore = 2
	st.AwayScore = 1
	st.Status = game.StatusGameEnd
	st.CurrentPeriod = 2
	st.SeasonID = "season_1690000000000_s1"
	st.PlayersOnField = []game.PlacedPlayer{
		{Player: roster.Player{ID: "p1", Name: "Aino", JerseyNumber: "7"}, RelX: floatPtr(0.25), RelY: floatPtr(0.6)},
		{Player: roster.Player{ID: "p2", Name: "Bea", JerseyNumber: "10", IsGoalie: true}, RelX: floatPtr(0.5), RelY: floatPtr(0.92)},
	}
	st.AvailablePlayers = []game.PlacedPlayer{
		{Player: roster.Player{ID: "p3", Name: "Cia", JerseyNumber: "4"}},
	}
	st.SelectedPlayerIDs = []string{"p1", "p2"}
	st.Events = []game.Event{
		{ID: "e1", Type: game.EventGoal, TimeSeconds: 312, ScorerID: "p1", AssisterID: "p2"},
		{ID: "e2", Type: game.EventOpponentGoal, TimeSeconds: 601},
		{ID: "e3", Type: game.EventGoal, TimeSeconds: 899, ScorerID: "p2"},
		{ID: "e4", Type: game.EventGameEnd, TimeSeconds: 1200},
	}
	st.Opponents = []game.OpponentMarker{{ID: "o1", RelX: 0.7, RelY: 0.3}}
	st.TacticalDiscs = []game.TacticalDisc{{ID: "d1", RelX: 0.4, RelY: 0.4, Type: game.DiscOpponent}}
	st.Drawings = []game.Stroke{{{RelX: 0.1, RelY: 0.1}, {RelX: 0.2, RelY: 0.3}}}
	st.TacticalDrawings = []game.Stroke{{{RelX: 0.9, RelY: 0.9}, {RelX: 0.8, RelY: 0.7}}}
	st.TacticalBallPos = &game.Point{RelX: 0.5, RelY: 0.5}
	st.CompletedIntervals = []game.CompletedInterval{
		{Period: 1, DurationSeconds: 300, TimestampMillis: 1700000300000},
	}
	st.Assessments = map[string]game.Assessment{
		"p1": {
			PlayerID: "p1",
			Overall:  8,
			Sliders: game.Sliders{
				Intensity: 7, Courage: 6, Duels: 8, Technique: 9, Creativity: 5,
				Decisions: 7, Awareness: 6, Teamwork: 10, FairPlay: 10, Impact: 7,
			},
			Notes:         "strong second half",
			MinutesPlayed: 40,
			CreatedAt:     1700000000000,
			CreatedBy:     "u1",
		},
	}
	st.LastSubTimeSeconds = 900
	return st
}

// The round-trip law: flattening a valid state and reconstructing it from
// the resulting bundle gives back the same graph in every field the client
// cares about.
func TestRoundTrip(t *testing.T) {
	original := fullState(t)
	if err := validate.State(original); err != nil {
		t.Fatalf("fixture must be valid: %v", err)
	}

	bundle, err := ToBundle("u1", original)
	if err != nil {
		t.Fatal(err)
	}

	rebuilt := StateFromBundle(bundle, masterRoster())

	if err := validate.State(rebuilt); err != nil {
		t.Fatalf("reconstructed state must validate: %v", err)
	}

	if rebuilt.ID != original.ID || rebuilt.TeamName != original.TeamName || rebuilt.OpponentName != original.OpponentName {
		t.Errorf("identity fields drifted: %+v", rebuilt)
	}
	if rebuilt.HomeScore != 2 || rebuilt.AwayScore != 1 {
		t.Errorf("score drifted: %d-%d", rebuilt.HomeScore, rebuilt.AwayScore)
	}
	if rebuilt.Status != game.StatusGameEnd {
		t.Errorf("status = %q, want gameEnd", rebuilt.Status)
	}
	if !rebuilt.IsPlayed {
		t.Error("isPlayed must survive the round trip")
	}
	if !reflect.DeepEqual(rebuilt.Events, original.Events) {
		t.Errorf("events drifted:\n got %+v\nwant %+v", rebuilt.Events, original.Events)
	}
	if !reflect.DeepEqual(rebuilt.Assessments, original.Assessments) {
		t.Errorf("assessments drifted:\n got %+v\nwant %+v", rebuilt.Assessments, original.Assessments)
	}
	if !reflect.DeepEqual(rebuilt.Drawings, original.Drawings) {
		t.Errorf("field drawings drifted: %+v", rebuilt.Drawings)
	}
	if !reflect.DeepEqual(rebuilt.TacticalDrawings, original.TacticalDrawings) {
		t.Errorf("tactical drawings drifted: %+v", rebuilt.TacticalDrawings)
	}
	if !reflect.DeepEqual(rebuilt.TacticalDiscs, original.TacticalDiscs) {
		t.Errorf("discs drifted: %+v", rebuilt.TacticalDiscs)
	}
	if !reflect.DeepEqual(rebuilt.Opponents, original.Opponents) {
		t.Errorf("opponents drifted: %+v", rebuilt.Opponents)
	}
	if !reflect.DeepEqual(rebuilt.CompletedIntervals, original.CompletedIntervals) {
		t.Errorf("intervals drifted: %+v", rebuilt.CompletedIntervals)
	}
	if !reflect.DeepEqual(rebuilt.TacticalBallPos, original.TacticalBallPos) {
		t.Errorf("ball position drifted: %+v", rebuilt.TacticalBallPos)
	}
	if rebuilt.LastSubTimeSeconds != 900 {
		t.Errorf("lastSubConfirmationTimeSeconds = %d, want 900", rebuilt.LastSubTimeSeconds)
	}

	if len(rebuilt.PlayersOnField) != 2 {
		t.Fatalf("playersOnField = %d, want 2", len(rebuilt.PlayersOnField))
	}
	onField := rebuilt.PlayersOnField[0]
	if onField.Name != "Aino" || onField.JerseyNumber != "7" {
		t.Errorf("roster attributes not resolved: %+v", onField)
	}
	if onField.RelX == nil || *onField.RelX != 0.25 {
		t.Errorf("field position drifted: %+v", onField.RelX)
	}
	if len(rebuilt.AvailablePlayers) != 1 || rebuilt.AvailablePlayers[0].ID != "p3" {
		t.Errorf("availablePlayers drifted: %+v", rebuilt.AvailablePlayers)
	}
	if !reflect.DeepEqual(rebuilt.SelectedPlayerIDs, []string{"p1", "p2"}) {
		t.Errorf("selectedPlayerIds drifted: %+v", rebuilt.SelectedPlayerIDs)
	}
}

func TestStateFromBundle_SkipsOrphanedPlayers(t *testing.T) {
	bundle := Bundle{
		Game: GameRow{
			ID:       "g1",
			TeamName: "FC Honka", OpponentName: "HJK",
			Status: "in_progress", HomeOrAway: "home",
			NumberOfPeriods: 2, PeriodDurationMinutes: 20, CurrentPeriod: 1,
		},
		Players: []GamePlayerRow{
			{GameID: "g1", PlayerID: "ghost", IsOnField: true, RelX: floatPtr(0.5), RelY: floatPtr(0.5)},
			{GameID: "g1", PlayerID: "p1", IsOnField: false},
		},
	}

	var skipped []string
	st := StateFromBundle(bundle, masterRoster(), WithOrphanHook(func(playerID string) {
		skipped = append(skipped, playerID)
	}))

	for _, p := range st.PlayersOnField {
		if p.ID == "ghost" {
			t.Error("ghost must not appear on the field")
		}
	}
	for _, p := range st.AvailablePlayers {
		if p.ID == "ghost" {
			t.Error("ghost must not appear on the bench")
		}
	}
	if len(st.AvailablePlayers) != 1 || st.AvailablePlayers[0].ID != "p1" {
		t.Errorf("resolvable rows must still load: %+v", st.AvailablePlayers)
	}
	if len(skipped) != 1 || skipped[0] != "ghost" {
		t.Errorf("orphan hook saw %v, want [ghost]", skipped)
	}
}

func TestStateFromBundle_MissingChildRowsYieldEmptyCollections(t *testing.T) {
	st := StateFromBundle(Bundle{
		Game: GameRow{ID: "g1", TeamName: "A", OpponentName: "B", Status: "not_started", HomeOrAway: "home"},
	}, nil)

	if st.Events == nil || len(st.Events) != 0 {
		t.Error("events must be an empty slice")
	}
	if st.Drawings == nil || len(st.Drawings) != 0 {
		t.Error("field drawings must be an empty slice")
	}
	if st.TacticalDrawings == nil || len(st.TacticalDrawings) != 0 {
		t.Error("tactical drawings must be an empty slice")
	}
	if st.Assessments == nil || len(st.Assessments) != 0 {
		t.Error("assessments must be an empty map")
	}
}

func TestStateFromBundle_IsPlayedFallback(t *testing.T) {
	base := GameRow{
		ID: "g1", TeamName: "A", OpponentName: "B", HomeOrAway: "home",
	}

	t.Run("column wins", func(t *testing.T) {
		row := base
		played := false
		row.Status = "game_end"
		row.IsPlayed = &played
		row.GameData = `{"isPlayed":true}`
		st := StateFromBundle(Bundle{Game: row}, nil)
		if st.IsPlayed {
			t.Error("column value must win over snapshot")
		}
	})

	t.Run("snapshot fallback", func(t *testing.T) {
		row := base
		row.Status = "not_started"
		row.GameData = `{"isPlayed":true}`
		st := StateFromBundle(Bundle{Game: row}, nil)
		if !st.IsPlayed {
			t.Error("null column must fall back to snapshot")
		}
	})

	t.Run("derived from status", func(t *testing.T) {
		row := base
		row.Status = "game_end"
		st := StateFromBundle(Bundle{Game: row}, nil)
		if !st.IsPlayed {
			t.Error("finished game with no flag anywhere counts as played")
		}
	})
}

func TestStatusMappingIsBijective(t *testing.T) {
	for status := range game.AllStatuses {
		stored := StoredStatus(status)
		if got := StatusFromStored(stored); got != status {
			t.Errorf("status %q -> %q -> %q", status, stored, got)
		}
	}
	for memory, stored := range eventTypeToStored {
		if got := eventTypeFromStored[stored]; got != memory {
			t.Errorf("event type %q -> %q -> %q", memory, stored, got)
		}
	}
}
