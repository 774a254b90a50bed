package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/VillePajala/matchops-sync/internal/domain/roster"
	"github.com/VillePajala/matchops-sync/internal/domain/season"
)

func TestPlayers_AggregatesAllFailures(t *testing.T) {
	err := Players([]roster.Player{
		{ID: "p1"},
		{ID: "p2", Name: "Bea"},
		{ID: "p3"},
	})
	if err == nil {
		t.Fatal("two invalid players must fail")
	}

	msg := err.Error()
	if !strings.Contains(msg, "Player 0") {
		t.Errorf("message must name Player 0: %q", msg)
	}
	if !strings.Contains(msg, "Player 2") {
		t.Errorf("message must name Player 2: %q", msg)
	}
	if strings.Contains(msg, "Player 1") {
		t.Errorf("valid Player 1 must not appear: %q", msg)
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("aggregate must still match ErrValidation")
	}
	if strings.Count(msg, ";") != 1 {
		t.Errorf("two failures join with one semicolon: %q", msg)
	}
}

func TestPlayers_AllValid(t *testing.T) {
	err := Players([]roster.Player{
		{ID: "p1", Name: "Aino"},
		{Name: "Bea"},
	})
	if err != nil {
		t.Errorf("valid roster must pass: %v", err)
	}
}

func TestSeasons_Aggregates(t *testing.T) {
	err := Seasons([]season.Season{
		{ID: "s1", Name: "Spring"},
		{ID: "s2"},
	})
	if err == nil {
		t.Fatal("season without name must fail")
	}
	if !strings.Contains(err.Error(), "Season 1") {
		t.Errorf("message must name Season 1: %q", err.Error())
	}
}

func TestTournaments_Aggregates(t *testing.T) {
	err := Tournaments([]season.Tournament{
		{ID: "t1", Name: "Cup", PeriodCount: 5},
	})
	if err == nil {
		t.Fatal("bad period count must fail")
	}
	if !strings.Contains(err.Error(), "Tournament 0") {
		t.Errorf("message must name Tournament 0: %q", err.Error())
	}
}
