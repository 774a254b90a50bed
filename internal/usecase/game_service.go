package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/VillePajala/matchops-sync/internal/domain/game"
	"github.com/VillePajala/matchops-sync/internal/domain/roster"
	"github.com/VillePajala/matchops-sync/internal/platform/logging"
)

// GameSyncService persists and restores full Game States through the storage
// provider. Validation happens inside the provider before any write; loading
// resolves player references against the caller's current master roster.
type GameSyncService struct {
	gameRepo   game.Repository
	rosterRepo roster.Repository
	logger     *logging.Logger
	now        func() time.Time
}

func NewGameSyncService(gameRepo game.Repository, rosterRepo roster.Repository, logger *logging.Logger) *GameSyncService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &GameSyncService{
		gameRepo:   gameRepo,
		rosterRepo: rosterRepo,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *GameSyncService) Save(ctx context.Context, userID string, st game.State) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	st.TeamName = strings.TrimSpace(st.TeamName)
	st.OpponentName = strings.TrimSpace(st.OpponentName)

	// Assessments written without a timestamp get the save time. The map is
	// copied so the caller's state is left untouched.
	if len(st.Assessments) > 0 {
		nowMillis := s.now().UnixMilli()
		stamped := make(map[string]game.Assessment, len(st.Assessments))
		for id, a := range st.Assessments {
			if a.CreatedAt == 0 {
				a.CreatedAt = nowMillis
			}
			stamped[id] = a
		}
		st.Assessments = stamped
	}

	gameID, err := s.gameRepo.Save(ctx, userID, st)
	if err != nil {
		return "", fmt.Errorf("save game: %w", err)
	}
	return gameID, nil
}

func (s *GameSyncService) Load(ctx context.Context, userID, gameID string) (game.State, bool, error) {
	userID = strings.TrimSpace(userID)
	gameID = strings.TrimSpace(gameID)
	if userID == "" || gameID == "" {
		return game.State{}, false, fmt.Errorf("%w: user_id and game_id are required", ErrInvalidInput)
	}

	masterRoster, err := s.rosterRepo.List(ctx, userID)
	if err != nil {
		return game.State{}, false, fmt.Errorf("load master roster: %w", err)
	}

	st, found, err := s.gameRepo.Load(ctx, userID, gameID, masterRoster)
	if err != nil {
		return game.State{}, false, fmt.Errorf("load game: %w", err)
	}
	return st, found, nil
}

func (s *GameSyncService) List(ctx context.Context, userID string) ([]game.Summary, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	summaries, err := s.gameRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return summaries, nil
}

// Archive soft-deletes a game. The rows stay recoverable; nothing cascades.
func (s *GameSyncService) Archive(ctx context.Context, userID, gameID string) error {
	userID = strings.TrimSpace(userID)
	gameID = strings.TrimSpace(gameID)
	if userID == "" || gameID == "" {
		return fmt.Errorf("%w: user_id and game_id are required", ErrInvalidInput)
	}

	if err := s.gameRepo.Archive(ctx, userID, gameID); err != nil {
		return fmt.Errorf("archive game: %w", err)
	}
	s.logger.InfoContext(ctx, "game archived", "game_id", gameID)
	return nil
}
