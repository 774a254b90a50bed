package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/VillePajala/matchops-sync/internal/domain/game"
	"github.com/VillePajala/matchops-sync/internal/domain/roster"
	idgen "github.com/VillePajala/matchops-sync/internal/platform/id"
)

func newGameState(id, opponent, date string) game.State {
	st := game.NewState("Lions", opponent)
	st.ID = id
	st.GameDate = date
	return st
}

func TestGameRepository_SaveRejectsForeignGameID(t *testing.T) {
	ctx := context.Background()
	repo := NewGameRepository(idgen.NewRandomGenerator(), nil)

	st := newGameState("game_1700000000_abc", "Tigers", "2026-03-01")
	x, y := 0.4, 0.6
	st.PlayersOnField = []game.PlacedPlayer{
		{Player: roster.Player{ID: "p1", Name: "Aino"}, RelX: &x, RelY: &y},
	}
	if _, err := repo.Save(ctx, "user-1", st); err != nil {
		t.Fatalf("save: %v", err)
	}

	// A second user writing against the same id must fail instead of
	// silently touching the first user's rows.
	intruder := newGameState(st.ID, "Bears", "2026-04-01")
	if _, err := repo.Save(ctx, "user-2", intruder); !errors.Is(err, game.ErrIDConflict) {
		t.Fatalf("expected id conflict, got %v", err)
	}

	masterRoster := []roster.Player{{ID: "p1", Name: "Aino"}}
	loaded, found, err := repo.Load(ctx, "user-1", st.ID, masterRoster)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !found {
		t.Fatal("expected original game to survive")
	}
	if loaded.OpponentName != "Tigers" {
		t.Fatalf("opponent = %q, want Tigers", loaded.OpponentName)
	}
	if len(loaded.PlayersOnField) != 1 || loaded.PlayersOnField[0].ID != "p1" {
		t.Fatalf("field players corrupted: %+v", loaded.PlayersOnField)
	}
}

func TestGameRepository_ListOrdersNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewGameRepository(idgen.NewRandomGenerator(), nil)

	states := []game.State{
		newGameState("game_1700000001_aaa", "Tigers", "2026-03-01"),
		newGameState("game_1700000002_bbb", "Bears", "2026-03-05"),
		newGameState("game_1700000003_ccc", "Wolves", ""),
	}
	for _, st := range states {
		if _, err := repo.Save(ctx, "user-1", st); err != nil {
			t.Fatalf("save %s: %v", st.ID, err)
		}
	}

	summaries, err := repo.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(summaries))
	}
	want := []string{"game_1700000002_bbb", "game_1700000001_aaa", "game_1700000003_ccc"}
	for i, id := range want {
		if summaries[i].ID != id {
			t.Fatalf("summaries[%d] = %s, want %s (full order %+v)", i, summaries[i].ID, id, summaries)
		}
	}
}

func TestGameRepository_ArchiveMissingGame(t *testing.T) {
	ctx := context.Background()
	repo := NewGameRepository(idgen.NewRandomGenerator(), nil)

	err := repo.Archive(ctx, "user-1", "game_1700000999_zzz")
	if !errors.Is(err, game.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
