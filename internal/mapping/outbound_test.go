package mapping

import (
	"errors"
	"testing"

	"github.com/VillePajala/matchops-sync/internal/domain/game"
	"github.com/VillePajala/matchops-sync/internal/domain/roster"
	"github.com/VillePajala/matchops-sync/internal/domain/season"
	"github.com/VillePajala/matchops-sync/internal/domain/settings"
	"github.com/VillePajala/matchops-sync/internal/validate"
)

func floatPtr(v float64) *float64 { return &v }

func TestToGamePlayerRows_DeduplicatesOnFieldWins(t *testing.T) {
	st := game.NewState("FC Honka", "HJK")
	st.ID = "game_1700000000000_abc"
	st.PlayersOnField = []game.PlacedPlayer{
		{Player: roster.Player{ID: "p1", Name: "Aino"}, RelX: floatPtr(0.2), RelY: floatPtr(0.5)},
	}
	st.AvailablePlayers = []game.PlacedPlayer{
		{Player: roster.Player{ID: "p1", Name: "Aino"}},
		{Player: roster.Player{ID: "p2", Name: "Bea"}},
	}
	st.SelectedPlayerIDs = []string{"p2"}

	rows := ToGamePlayerRows(st.ID, st)
	if len(rows) != 2 {
		t.Fatalf("expected exactly 2 rows, got %d", len(rows))
	}

	byID := map[string]GamePlayerRow{}
	for _, r := range rows {
		byID[r.PlayerID] = r
	}

	p1 := byID["p1"]
	if !p1.IsOnField {
		t.Error("p1 should keep its on-field row")
	}
	if p1.RelX == nil || *p1.RelX != 0.2 {
		t.Errorf("p1 rel_x = %v, want 0.2", p1.RelX)
	}
	if p1.IsSelected {
		t.Error("p1 is not in selectedPlayerIds")
	}

	p2 := byID["p2"]
	if p2.IsOnField {
		t.Error("p2 is not on the field")
	}
	if p2.RelX != nil || p2.RelY != nil {
		t.Error("bench players must carry null coordinates")
	}
	if !p2.IsSelected {
		t.Error("p2 is in selectedPlayerIds")
	}
}

func TestToEventRows_GoalWithoutScorerFails(t *testing.T) {
	_, err := ToEventRows("g1", []game.Event{
		{ID: "e1", Type: game.EventGoal, TimeSeconds: 120},
	})
	if err == nil {
		t.Fatal("goal without scorer must fail")
	}
	if !errors.Is(err, validate.ErrValidation) {
		t.Errorf("expected a validation error, got %v", err)
	}
}

func TestToEventRows_TypeSpecificColumns(t *testing.T) {
	rows, err := ToEventRows("g1", []game.Event{
		{ID: "e1", Type: game.EventGoal, TimeSeconds: 60, ScorerID: "p1", AssisterID: "p2"},
		{ID: "e2", Type: game.EventOpponentGoal, TimeSeconds: 90},
		{ID: "e3", Type: game.EventSubstitution, TimeSeconds: 300, EntityID: "p3"},
		{ID: "e4", Type: game.EventFairPlayCard, TimeSeconds: 500},
	})
	if err != nil {
		t.Fatal(err)
	}
	if rows[0].ScorerID == nil || *rows[0].ScorerID != "p1" {
		t.Errorf("goal scorer_id = %v, want p1", rows[0].ScorerID)
	}
	if rows[0].AssisterID == nil || *rows[0].AssisterID != "p2" {
		t.Errorf("goal assister_id = %v, want p2", rows[0].AssisterID)
	}
	if rows[1].ScorerID != nil || rows[1].AssisterID != nil || rows[1].EntityID != nil {
		t.Error("opponent goal carries no player references")
	}
	if rows[1].EventType != "opponent_goal" {
		t.Errorf("opponent goal stored as %q", rows[1].EventType)
	}
	if rows[2].EntityID == nil || *rows[2].EntityID != "p3" {
		t.Errorf("substitution entity_id = %v, want p3", rows[2].EntityID)
	}
	if rows[3].EntityID != nil {
		t.Error("fair play card without entity stays null")
	}
}

func TestToSeasonRow_RosterDualFormat(t *testing.T) {
	t.Run("modern array field", func(t *testing.T) {
		row := ToSeasonRow("u1", season.Season{
			ID: "s1", Name: "Spring", DefaultRoster: []string{"p1", "p2"},
		})
		if len(row.DefaultRosterIDs) != 2 || row.DefaultRosterIDs[0] != "p1" || row.DefaultRosterIDs[1] != "p2" {
			t.Errorf("default_roster_ids = %v, want [p1 p2]", row.DefaultRosterIDs)
		}
	})

	t.Run("legacy scalar", func(t *testing.T) {
		row := ToSeasonRow("u1", season.Season{
			ID: "s1", Name: "Spring", DefaultRosterID: season.NewRosterRef("p1"),
		})
		if len(row.DefaultRosterIDs) != 1 || row.DefaultRosterIDs[0] != "p1" {
			t.Errorf("default_roster_ids = %v, want [p1]", row.DefaultRosterIDs)
		}
	})

	t.Run("legacy array passes through", func(t *testing.T) {
		row := ToSeasonRow("u1", season.Season{
			ID: "s1", Name: "Spring", DefaultRosterID: season.NewRosterRef("p1", "p2"),
		})
		if len(row.DefaultRosterIDs) != 2 {
			t.Errorf("default_roster_ids = %v, want [p1 p2]", row.DefaultRosterIDs)
		}
	})

	t.Run("modern field wins over legacy", func(t *testing.T) {
		row := ToSeasonRow("u1", season.Season{
			ID:              "s1",
			Name:            "Spring",
			DefaultRoster:   []string{"p9"},
			DefaultRosterID: season.NewRosterRef("p1"),
		})
		if len(row.DefaultRosterIDs) != 1 || row.DefaultRosterIDs[0] != "p9" {
			t.Errorf("default_roster_ids = %v, want [p9]", row.DefaultRosterIDs)
		}
	})
}

func TestToDrawingRows_EmptyIn(t *testing.T) {
	rows, err := ToDrawingRows("g1", []game.Stroke{}, "field")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("empty stroke list must produce no rows, got %d", len(rows))
	}

	rows, err = ToDrawingRows("g1", nil, "tactical")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("nil stroke list must produce no rows, got %d", len(rows))
	}
}

func TestToSettingsRow_Defaults(t *testing.T) {
	row := ToSettingsRow("u1", settings.AppSettings{})
	if row.Language != "en" {
		t.Errorf("language = %q, want en", row.Language)
	}
	if row.AutoBackupIntervalHours != 24 {
		t.Errorf("backup interval = %d, want 24", row.AutoBackupIntervalHours)
	}
	if row.AutoBackupEnabled || row.UseDemandCorrection {
		t.Error("boolean flags default to false")
	}
	if row.CurrentGameID != nil {
		t.Error("unset current game id must be null")
	}
}

func TestToPlayerRow_NullDiscipline(t *testing.T) {
	row := ToPlayerRow("u1", roster.Player{ID: "p1", Name: "Aino", JerseyNumber: "7"})
	if row.JerseyNumber == nil || *row.JerseyNumber != "7" {
		t.Errorf("jersey_number = %v, want 7", row.JerseyNumber)
	}
	if row.Nickname != nil || row.Notes != nil || row.Color != nil {
		t.Error("absent optionals must be explicit nulls")
	}
}

func TestToAssessmentRows_FlattensSliders(t *testing.T) {
	rows := ToAssessmentRows("g1", map[string]game.Assessment{
		"p1": {
			Overall: 8,
			Sliders: game.Sliders{
				Intensity: 7, Courage: 6, Duels: 8, Technique: 9, Creativity: 5,
				Decisions: 7, Awareness: 6, Teamwork: 10, FairPlay: 10, Impact: 7,
			},
			MinutesPlayed: 48,
			CreatedBy:     "u1",
		},
	})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	r := rows[0]
	if r.Teamwork != 10 || r.FairPlay != 10 || r.Creativity != 5 {
		t.Errorf("sliders not flattened: %+v", r)
	}
	if r.Notes != nil {
		t.Error("empty notes must map to null")
	}
}

func TestToBundle_RequiresGameID(t *testing.T) {
	st := game.NewState("FC Honka", "HJK")
	_, err := ToBundle("u1", st)
	if !errors.Is(err, validate.ErrValidation) {
		t.Fatalf("bundle without game id must fail validation, got %v", err)
	}
}
