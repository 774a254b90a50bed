package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/VillePajala/matchops-sync/internal/infrastructure/repository/memory"
	idgen "github.com/VillePajala/matchops-sync/internal/platform/id"
	"github.com/VillePajala/matchops-sync/internal/validate"
)

func newImportService(t *testing.T) (*ImportService, *memory.GameRepository, *memory.RosterRepository, *memory.SeasonRepository, *memory.SettingsRepository) {
	t.Helper()
	ids := idgen.NewRandomGenerator()
	gameRepo := memory.NewGameRepository(ids, nil)
	rosterRepo := memory.NewRosterRepository(ids)
	seasonRepo := memory.NewSeasonRepository(ids)
	settingsRepo := memory.NewSettingsRepository()
	service := NewImportService(gameRepo, rosterRepo, seasonRepo, settingsRepo, nil)
	return service, gameRepo, rosterRepo, seasonRepo, settingsRepo
}

const backupJSON = `{
	"players": [
		{"id": "p1", "name": "Aino", "jerseyNumber": "7"},
		{"id": "p2", "name": "Eero", "isGoalie": true}
	],
	"seasons": [
		{"id": "season_1700000000_x", "name": "Spring 2026", "periodCount": 2}
	],
	"tournaments": [
		{"id": "tournament_1700000000_y", "name": "Helsinki Cup", "level": "U10"}
	],
	"savedGames": {
		"game_1700000000_abc": {
			"teamName": "Lions",
			"opponentName": "Tigers",
			"gameDate": "2026-03-01",
			"gameStatus": "notStarted",
			"homeOrAway": "home",
			"isPlayed": true,
			"numberOfPeriods": 2,
			"periodDurationMinutes": 10,
			"currentPeriod": 1,
			"selectedPlayerIds": ["p1", "p2"]
		}
	},
	"settings": {
		"language": "fi",
		"defaultTeamName": "Lions"
	}
}`

func TestImportService_Import(t *testing.T) {
	ctx := context.Background()
	service, gameRepo, rosterRepo, seasonRepo, settingsRepo := newImportService(t)

	report, err := service.Import(ctx, testUserID, []byte(backupJSON))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if report.Players != 2 || report.Seasons != 1 || report.Tournaments != 1 || report.Games != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}

	players, err := rosterRepo.List(ctx, testUserID)
	if err != nil {
		t.Fatalf("list roster: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}

	seasons, err := seasonRepo.ListSeasons(ctx, testUserID)
	if err != nil {
		t.Fatalf("list seasons: %v", err)
	}
	if len(seasons) != 1 || seasons[0].Name != "Spring 2026" {
		t.Fatalf("unexpected seasons: %+v", seasons)
	}

	st, found, err := gameRepo.Load(ctx, testUserID, "game_1700000000_abc", players)
	if err != nil {
		t.Fatalf("load imported game: %v", err)
	}
	if !found {
		t.Fatal("expected imported game to exist")
	}
	if st.TeamName != "Lions" || len(st.SelectedPlayerIDs) != 2 {
		t.Fatalf("unexpected imported game: %+v", st)
	}

	appSettings, found, err := settingsRepo.GetSettings(ctx, testUserID)
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if !found || appSettings.Language != "fi" {
		t.Fatalf("unexpected settings: found=%v %+v", found, appSettings)
	}
}

func TestImportService_ImportUsesMapKeyAsGameID(t *testing.T) {
	ctx := context.Background()
	service, gameRepo, rosterRepo, _, _ := newImportService(t)

	report, err := service.Import(ctx, testUserID, []byte(backupJSON))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if report.Games != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}

	players, _ := rosterRepo.List(ctx, testUserID)
	if _, found, _ := gameRepo.Load(ctx, testUserID, "game_1700000000_abc", players); !found {
		t.Fatal("expected game stored under its map key")
	}
}

func TestImportService_CoercesNumericJerseyNumber(t *testing.T) {
	ctx := context.Background()
	service, _, rosterRepo, _, _ := newImportService(t)

	// Exports written by old app versions carry the jersey number as a bare
	// JSON number instead of a string.
	raw := []byte(`{
		"players": [
			{"id": "p1", "name": "Aino", "jerseyNumber": 7},
			{"id": "p2", "name": "Eero", "jerseyNumber": "10"}
		]
	}`)

	report, err := service.Import(ctx, testUserID, raw)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if report.Players != 2 {
		t.Fatalf("unexpected report: %+v", report)
	}

	players, err := rosterRepo.List(ctx, testUserID)
	if err != nil {
		t.Fatalf("list roster: %v", err)
	}
	byID := make(map[string]string, len(players))
	for _, p := range players {
		byID[p.ID] = p.JerseyNumber.String()
	}
	if byID["p1"] != "7" {
		t.Errorf("numeric jersey imported as %q, want 7", byID["p1"])
	}
	if byID["p2"] != "10" {
		t.Errorf("string jersey imported as %q, want 10", byID["p2"])
	}
}

func TestImportService_RejectsMalformedFile(t *testing.T) {
	ctx := context.Background()
	service, _, _, _, _ := newImportService(t)

	_, err := service.Import(ctx, testUserID, []byte(`{"players": [`))
	if !errors.Is(err, validate.ErrValidation) {
		t.Fatalf("expected validation error for malformed file, got %v", err)
	}
}

func TestImportService_RejectsInvalidCollectionsTogether(t *testing.T) {
	ctx := context.Background()
	service, _, rosterRepo, _, _ := newImportService(t)

	// Two broken players and a broken season: all failures surface at once.
	raw := []byte(`{
		"players": [
			{"id": "p1", "name": ""},
			{"id": "p2", "name": "Eero"},
			{"id": "p3", "name": ""}
		],
		"seasons": [{"id": "season_1_a", "name": "", "periodCount": 5}]
	}`)

	_, err := service.Import(ctx, testUserID, raw)
	if !errors.Is(err, validate.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	msg := err.Error()
	for _, want := range []string{"Player 0", "Player 2", "Season 0"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in aggregated error, got %q", want, msg)
		}
	}
	if strings.Contains(msg, "Player 1") {
		t.Fatalf("valid player reported as failure: %q", msg)
	}

	// Nothing persists from a rejected file, valid items included.
	players, listErr := rosterRepo.List(ctx, testUserID)
	if listErr != nil {
		t.Fatalf("list roster: %v", listErr)
	}
	if len(players) != 0 {
		t.Fatalf("expected empty roster after rejected import, got %+v", players)
	}
}
