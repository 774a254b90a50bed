package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/VillePajala/matchops-sync/internal/domain/season"
)

// SeasonService manages seasons and tournaments.
type SeasonService struct {
	seasonRepo season.Repository
}

func NewSeasonService(seasonRepo season.Repository) *SeasonService {
	return &SeasonService{seasonRepo: seasonRepo}
}

func (s *SeasonService) ListSeasons(ctx context.Context, userID string) ([]season.Season, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	seasons, err := s.seasonRepo.ListSeasons(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return seasons, nil
}

func (s *SeasonService) UpsertSeason(ctx context.Context, userID string, item season.Season) (season.Season, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return season.Season{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	item.Name = strings.TrimSpace(item.Name)

	saved, err := s.seasonRepo.UpsertSeason(ctx, userID, item)
	if err != nil {
		return season.Season{}, fmt.Errorf("upsert season: %w", err)
	}
	return saved, nil
}

func (s *SeasonService) ListTournaments(ctx context.Context, userID string) ([]season.Tournament, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	tournaments, err := s.seasonRepo.ListTournaments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	return tournaments, nil
}

func (s *SeasonService) UpsertTournament(ctx context.Context, userID string, item season.Tournament) (season.Tournament, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return season.Tournament{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	item.Name = strings.TrimSpace(item.Name)

	saved, err := s.seasonRepo.UpsertTournament(ctx, userID, item)
	if err != nil {
		return season.Tournament{}, fmt.Errorf("upsert tournament: %w", err)
	}
	return saved, nil
}
