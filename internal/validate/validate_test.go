package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/VillePajala/matchops-sync/internal/domain/game"
	"github.com/VillePajala/matchops-sync/internal/domain/roster"
)

func TestEvent_GoalRequiresScorer(t *testing.T) {
	err := Event(game.Event{ID: "e1", Type: game.EventGoal, TimeSeconds: 10})
	if err == nil {
		t.Fatal("goal without scorer must be rejected")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if ve.Field != "event.scorerId" {
		t.Errorf("field = %q, want event.scorerId", ve.Field)
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("must match ErrValidation")
	}

	if err := Event(game.Event{ID: "e1", Type: game.EventGoal, TimeSeconds: 10, ScorerID: "p1"}); err != nil {
		t.Errorf("goal with scorer is valid: %v", err)
	}
	if err := Event(game.Event{ID: "e2", Type: game.EventOpponentGoal, TimeSeconds: 10}); err != nil {
		t.Errorf("opponent goal needs no scorer: %v", err)
	}
}

func TestEvent_NegativeTime(t *testing.T) {
	err := Event(game.Event{ID: "e1", Type: game.EventSubstitution, TimeSeconds: -1})
	if err == nil {
		t.Fatal("negative event time must be rejected")
	}
}

func TestAssessment_RatingBounds(t *testing.T) {
	valid := game.Assessment{
		Overall: 5,
		Sliders: game.Sliders{
			Intensity: 5, Courage: 5, Duels: 5, Technique: 5, Creativity: 5,
			Decisions: 5, Awareness: 5, Teamwork: 5, FairPlay: 5, Impact: 5,
		},
		CreatedBy: "u1",
	}

	for _, overall := range []int{1, 10} {
		a := valid
		a.Overall = overall
		if err := Assessment(a); err != nil {
			t.Errorf("overall %d is inside the inclusive bounds: %v", overall, err)
		}
	}
	for _, overall := range []int{0, 11, -3} {
		a := valid
		a.Overall = overall
		if err := Assessment(a); err == nil {
			t.Errorf("overall %d must be rejected", overall)
		}
	}

	a := valid
	a.Sliders.FairPlay = 0
	if err := Assessment(a); err == nil {
		t.Error("slider 0 must be rejected")
	}
	a = valid
	a.Sliders.Impact = 11
	if err := Assessment(a); err == nil {
		t.Error("slider 11 must be rejected")
	}

	a = valid
	a.CreatedBy = ""
	if err := Assessment(a); err == nil {
		t.Error("createdBy is required")
	}
	a = valid
	a.MinutesPlayed = -1
	if err := Assessment(a); err == nil {
		t.Error("negative minutes must be rejected")
	}
}

func TestState_CoordinateBounds(t *testing.T) {
	base := func() game.State {
		st := game.NewState("A", "B")
		return st
	}

	for _, v := range []float64{0, 1} {
		st := base()
		x, y := v, v
		st.PlayersOnField = []game.PlacedPlayer{
			{Player: roster.Player{ID: "p1", Name: "Aino"}, RelX: &x, RelY: &y},
		}
		if err := State(st); err != nil {
			t.Errorf("coordinate %v is inside the inclusive bounds: %v", v, err)
		}
	}
	for _, v := range []float64{-0.0001, 1.0001} {
		st := base()
		x, y := v, 0.5
		st.PlayersOnField = []game.PlacedPlayer{
			{Player: roster.Player{ID: "p1", Name: "Aino"}, RelX: &x, RelY: &y},
		}
		if err := State(st); err == nil {
			t.Errorf("coordinate %v must be rejected", v)
		}
	}
}

func TestState_RecursiveIndexedErrors(t *testing.T) {
	st := game.NewState("A", "B")
	st.AvailablePlayers = []game.PlacedPlayer{
		{Player: roster.Player{ID: "p1", Name: "Aino"}},
		{Player: roster.Player{ID: "p2"}},
	}
	err := State(st)
	if err == nil {
		t.Fatal("player without name must fail")
	}
	if !strings.Contains(err.Error(), "index 1") {
		t.Errorf("error must name the offending index: %v", err)
	}
}

func TestState_OnFieldPlayerNeedsPosition(t *testing.T) {
	st := game.NewState("A", "B")
	st.PlayersOnField = []game.PlacedPlayer{
		{Player: roster.Player{ID: "p1", Name: "Aino"}},
	}
	if err := State(st); err == nil {
		t.Fatal("on-field player without position must fail")
	}
}

func TestLegacyClientID(t *testing.T) {
	for _, id := range []string{"player_1700000000000_abc", "game_1700000000000", "season_1690000000000_s1"} {
		if !LegacyClientID(id) {
			t.Errorf("%q is a legacy client id", id)
		}
	}
	for _, id := range []string{"", "p1x", "0f8fad5b-d9cb-469f-a165-70867728950e", "PLAYER_12"} {
		if LegacyClientID(id) {
			t.Errorf("%q is not a legacy client id", id)
		}
	}
}
