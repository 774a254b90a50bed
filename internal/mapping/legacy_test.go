package mapping

import (
	"testing"

	"github.com/VillePajala/matchops-sync/internal/domain/season"
)

func TestNeedsServerID(t *testing.T) {
	if !NeedsServerID("") {
		t.Error("empty id must get a server-assigned one")
	}
	if NeedsServerID("game_1700000000000_ab12c") {
		t.Error("legacy client ids must pass through unchanged")
	}
	if NeedsServerID("3f2a9c1d8e4b") {
		t.Error("server ids must pass through unchanged")
	}
}

func TestIsLegacyClientID(t *testing.T) {
	legacy := []string{
		"game_1700000000000_ab12c",
		"player_1690000000001_aa",
	}
	for _, id := range legacy {
		if !IsLegacyClientID(id) {
			t.Errorf("%q should be recognized as a legacy client id", id)
		}
	}

	modern := []string{"", "3f2a9c1d8e4b", "game-1", "game_notanumber_x"}
	for _, id := range modern {
		if IsLegacyClientID(id) {
			t.Errorf("%q should not be recognized as a legacy client id", id)
		}
	}
}

func TestNormalizeRoster(t *testing.T) {
	// The modern array field wins over the legacy reference.
	got := normalizeRoster([]string{"p1", "p2"}, season.NewRosterRef("p9"))
	if len(got) != 2 || got[0] != "p1" || got[1] != "p2" {
		t.Fatalf("modern field should win: %v", got)
	}

	got = normalizeRoster(nil, season.NewRosterRef("p9"))
	if len(got) != 1 || got[0] != "p9" {
		t.Fatalf("legacy reference should fill in: %v", got)
	}

	if got := normalizeRoster(nil, season.RosterRef{}); got != nil {
		t.Fatalf("nothing set should stay nil: %v", got)
	}
}
