package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/VillePajala/matchops-sync/internal/domain/game"
	"github.com/VillePajala/matchops-sync/internal/domain/roster"
	"github.com/VillePajala/matchops-sync/internal/platform/logging"
)

const resyncWorkerCount = 8

// ResyncReport is the outcome of one resync run.
type ResyncReport struct {
	Total    int      `json:"total"`
	Repaired int      `json:"repaired"`
	Failed   int      `json:"failed"`
	Failures []string `json:"failures,omitempty"`
}

// ResyncService re-runs every stored game through the load/save pipeline.
// Loading reconstructs the state from its flattened rows and the current
// roster, saving flattens it again, so a run repairs rows written by older
// clients and drops references to players removed from the roster.
type ResyncService struct {
	gameRepo   game.Repository
	rosterRepo roster.Repository
	logger     *logging.Logger
	workers    int
}

func NewResyncService(gameRepo game.Repository, rosterRepo roster.Repository, logger *logging.Logger) *ResyncService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &ResyncService{
		gameRepo:   gameRepo,
		rosterRepo: rosterRepo,
		logger:     logger,
		workers:    resyncWorkerCount,
	}
}

// Run resyncs all of a user's games on a bounded worker pool. Individual
// game failures are collected into the report instead of aborting the run.
func (s *ResyncService) Run(ctx context.Context, userID string) (ResyncReport, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ResyncReport{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	masterRoster, err := s.rosterRepo.List(ctx, userID)
	if err != nil {
		return ResyncReport{}, fmt.Errorf("list roster: %w", err)
	}
	summaries, err := s.gameRepo.List(ctx, userID)
	if err != nil {
		return ResyncReport{}, fmt.Errorf("list games: %w", err)
	}
	if len(summaries) == 0 {
		return ResyncReport{}, nil
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return ResyncReport{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		repaired atomic.Int64
		mu       sync.Mutex
		failures []string
	)
	for _, summary := range summaries {
		gameID := summary.ID
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if err := s.resyncGame(ctx, userID, gameID, masterRoster); err != nil {
				mu.Lock()
				failures = append(failures, fmt.Sprintf("%s: %v", gameID, err))
				mu.Unlock()
				return
			}
			repaired.Add(1)
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			failures = append(failures, fmt.Sprintf("%s: submit: %v", gameID, submitErr))
			mu.Unlock()
		}
	}
	wg.Wait()

	sort.Strings(failures)
	report := ResyncReport{
		Total:    len(summaries),
		Repaired: int(repaired.Load()),
		Failed:   len(failures),
		Failures: failures,
	}
	s.logger.InfoContext(ctx, "resync finished",
		"total", report.Total,
		"repaired", report.Repaired,
		"failed", report.Failed,
	)
	return report, nil
}

func (s *ResyncService) resyncGame(ctx context.Context, userID, gameID string, masterRoster []roster.Player) error {
	st, found, err := s.gameRepo.Load(ctx, userID, gameID, masterRoster)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	if !found {
		return fmt.Errorf("load: %w", ErrNotFound)
	}
	if _, err := s.gameRepo.Save(ctx, userID, st); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}
