package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"

	"github.com/VillePajala/matchops-sync/internal/domain/game"
	"github.com/VillePajala/matchops-sync/internal/domain/roster"
	"github.com/VillePajala/matchops-sync/internal/domain/season"
	"github.com/VillePajala/matchops-sync/internal/domain/settings"
	"github.com/VillePajala/matchops-sync/internal/platform/logging"
	"github.com/VillePajala/matchops-sync/internal/validate"
)

const importWorkerCount = 4

// Backup is the client's full export file: the whole roster, every season
// and tournament, every saved game keyed by game id, and the app settings.
type Backup struct {
	Players     []roster.Player       `json:"players"`
	Seasons     []season.Season       `json:"seasons"`
	Tournaments []season.Tournament   `json:"tournaments"`
	SavedGames  map[string]game.State `json:"savedGames"`
	Settings    *settings.AppSettings `json:"settings"`
}

// ImportReport summarizes what an accepted import wrote.
type ImportReport struct {
	Players     int `json:"players"`
	Seasons     int `json:"seasons"`
	Tournaments int `json:"tournaments"`
	Games       int `json:"games"`
}

// ImportService accepts full-backup files. The whole file is validated
// before anything is written: every invalid item across every collection is
// reported in one pass, and nothing persists from a rejected file.
type ImportService struct {
	gameRepo     game.Repository
	rosterRepo   roster.Repository
	seasonRepo   season.Repository
	settingsRepo settings.Repository
	logger       *logging.Logger
}

func NewImportService(
	gameRepo game.Repository,
	rosterRepo roster.Repository,
	seasonRepo season.Repository,
	settingsRepo settings.Repository,
	logger *logging.Logger,
) *ImportService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &ImportService{
		gameRepo:     gameRepo,
		rosterRepo:   rosterRepo,
		seasonRepo:   seasonRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Parse decodes a raw backup file. Decode failures come back as validation
// errors so import callers deal with a single error kind.
func (s *ImportService) Parse(raw []byte) (Backup, error) {
	var backup Backup
	if err := sonic.Unmarshal(raw, &backup); err != nil {
		return Backup{}, validate.WrapExternal("backup", errors.Wrap(err, "decode backup file"))
	}
	return backup, nil
}

// Validate checks every collection of a backup, aggregating all failures.
func (s *ImportService) Validate(backup Backup) error {
	var parts []string
	if err := validate.Players(backup.Players); err != nil {
		parts = append(parts, err.Error())
	}
	if err := validate.Seasons(backup.Seasons); err != nil {
		parts = append(parts, err.Error())
	}
	if err := validate.Tournaments(backup.Tournaments); err != nil {
		parts = append(parts, err.Error())
	}
	if err := validate.Games(statesInKeyOrder(backup.SavedGames)); err != nil {
		parts = append(parts, err.Error())
	}
	if backup.Settings != nil {
		if err := validate.Settings(*backup.Settings); err != nil {
			parts = append(parts, err.Error())
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return validate.Errorf("backup", nil, "%s", strings.Join(parts, "; "))
}

// Import parses, validates and persists a backup file. Games fan out over a
// bounded worker pool; roster, seasons and tournaments go first since games
// reference them.
func (s *ImportService) Import(ctx context.Context, userID string, raw []byte) (ImportReport, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ImportReport{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	backup, err := s.Parse(raw)
	if err != nil {
		return ImportReport{}, err
	}
	if err := s.Validate(backup); err != nil {
		return ImportReport{}, err
	}

	for _, p := range backup.Players {
		if _, err := s.rosterRepo.Upsert(ctx, userID, p); err != nil {
			return ImportReport{}, fmt.Errorf("import player %s: %w", p.ID, err)
		}
	}
	for _, item := range backup.Seasons {
		if _, err := s.seasonRepo.UpsertSeason(ctx, userID, item); err != nil {
			return ImportReport{}, fmt.Errorf("import season %s: %w", item.ID, err)
		}
	}
	for _, item := range backup.Tournaments {
		if _, err := s.seasonRepo.UpsertTournament(ctx, userID, item); err != nil {
			return ImportReport{}, fmt.Errorf("import tournament %s: %w", item.ID, err)
		}
	}
	if backup.Settings != nil {
		if err := s.settingsRepo.SaveSettings(ctx, userID, *backup.Settings); err != nil {
			return ImportReport{}, fmt.Errorf("import settings: %w", err)
		}
	}

	workers := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(importWorkerCount)
	for gameID, st := range backup.SavedGames {
		gameID, st := gameID, st
		workers.Go(func(ctx context.Context) error {
			if st.ID == "" {
				st.ID = gameID
			}
			if _, err := s.gameRepo.Save(ctx, userID, st); err != nil {
				return fmt.Errorf("import game %s: %w", gameID, err)
			}
			return nil
		})
	}
	if err := workers.Wait(); err != nil {
		return ImportReport{}, err
	}

	report := ImportReport{
		Players:     len(backup.Players),
		Seasons:     len(backup.Seasons),
		Tournaments: len(backup.Tournaments),
		Games:       len(backup.SavedGames),
	}
	s.logger.InfoContext(ctx, "backup imported",
		"players", report.Players,
		"seasons", report.Seasons,
		"tournaments", report.Tournaments,
		"games", report.Games,
	)
	return report, nil
}

// statesInKeyOrder flattens the saved-games map deterministically so batch
// error indexes are stable across runs.
func statesInKeyOrder(games map[string]game.State) []game.State {
	keys := make([]string, 0, len(games))
	for k := range games {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]game.State, 0, len(keys))
	for _, k := range keys {
		st := games[k]
		if st.ID == "" {
			st.ID = k
		}
		out = append(out, st)
	}
	return out
}
