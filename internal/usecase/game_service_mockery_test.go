package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/VillePajala/matchops-sync/internal/domain/game"
	"github.com/VillePajala/matchops-sync/internal/domain/roster"
	gamemock "github.com/VillePajala/matchops-sync/internal/mocks/domain/game"
	rostermock "github.com/VillePajala/matchops-sync/internal/mocks/domain/roster"
)

func TestGameSyncService_Load_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), "trace_id", "trace-123")
	gameRepo := gamemock.NewRepository(t)
	rosterRepo := rostermock.NewRepository(t)

	service := NewGameSyncService(gameRepo, rosterRepo, nil)
	masterRoster := []roster.Player{
		{ID: "p1", Name: "Aino Korhonen", Nickname: "Aino"},
	}
	stored := game.State{
		ID:       "game_1700000000000_ab12c",
		TeamName: "PEPO U10",
	}

	rosterRepo.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "user-1").
		Return(masterRoster, nil).
		Once()
	gameRepo.
		On("Load", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "user-1", stored.ID, masterRoster).
		Return(stored, true, nil).
		Once()

	got, found, err := service.Load(ctx, "user-1", stored.ID)
	if err != nil {
		t.Fatalf("load game: %v", err)
	}
	if !found {
		t.Fatal("expected game to be found")
	}
	if got.TeamName != stored.TeamName {
		t.Fatalf("unexpected team name: got=%s want=%s", got.TeamName, stored.TeamName)
	}
}

func TestGameSyncService_Load_RosterFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gameRepo := gamemock.NewRepository(t)
	rosterRepo := rostermock.NewRepository(t)

	service := NewGameSyncService(gameRepo, rosterRepo, nil)
	repoErr := errors.New("connection reset")

	rosterRepo.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "user-1").
		Return(nil, repoErr).
		Once()

	_, _, err := service.Load(ctx, "user-1", "game-1")
	if err == nil {
		t.Fatal("expected error when the roster lookup fails")
	}
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repository error, got: %v", err)
	}
}

func TestGameSyncService_Save_RepositoryFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gameRepo := gamemock.NewRepository(t)
	rosterRepo := rostermock.NewRepository(t)

	service := NewGameSyncService(gameRepo, rosterRepo, nil)
	repoErr := errors.New("tx aborted")

	gameRepo.
		On("Save", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "user-1", mock.AnythingOfType("game.State")).
		Return("", repoErr).
		Once()

	_, err := service.Save(ctx, "user-1", game.State{TeamName: "PEPO U10"})
	if err == nil {
		t.Fatal("expected error when the repository save fails")
	}
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repository error, got: %v", err)
	}
}

func TestGameSyncService_Save_TrimsNamesUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gameRepo := gamemock.NewRepository(t)
	rosterRepo := rostermock.NewRepository(t)

	service := NewGameSyncService(gameRepo, rosterRepo, nil)

	gameRepo.
		On("Save", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "user-1",
			mock.MatchedBy(func(st game.State) bool {
				return st.TeamName == "PEPO U10" && st.OpponentName == "FC Inter"
			})).
		Return("game-1", nil).
		Once()

	gameID, err := service.Save(ctx, "user-1", game.State{
		TeamName:     "  PEPO U10  ",
		OpponentName: " FC Inter ",
	})
	if err != nil {
		t.Fatalf("save game: %v", err)
	}
	if gameID != "game-1" {
		t.Fatalf("unexpected game id: got=%s want=game-1", gameID)
	}
}
