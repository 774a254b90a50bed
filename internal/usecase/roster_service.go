package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/VillePajala/matchops-sync/internal/domain/roster"
)

// RosterService manages the master player roster.
type RosterService struct {
	rosterRepo roster.Repository
}

func NewRosterService(rosterRepo roster.Repository) *RosterService {
	return &RosterService{rosterRepo: rosterRepo}
}

func (s *RosterService) List(ctx context.Context, userID string) ([]roster.Player, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	players, err := s.rosterRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	return players, nil
}

func (s *RosterService) Upsert(ctx context.Context, userID string, p roster.Player) (roster.Player, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return roster.Player{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Nickname = strings.TrimSpace(p.Nickname)
	p.JerseyNumber = roster.JerseyNumber(strings.TrimSpace(p.JerseyNumber.String()))

	saved, err := s.rosterRepo.Upsert(ctx, userID, p)
	if err != nil {
		return roster.Player{}, fmt.Errorf("upsert player: %w", err)
	}
	return saved, nil
}

// Remove deletes a roster entry. Games that reference the player keep their
// rows; their reconstruction skips the now-orphaned reference.
func (s *RosterService) Remove(ctx context.Context, userID, playerID string) error {
	userID = strings.TrimSpace(userID)
	playerID = strings.TrimSpace(playerID)
	if userID == "" || playerID == "" {
		return fmt.Errorf("%w: user_id and player_id are required", ErrInvalidInput)
	}

	if err := s.rosterRepo.Remove(ctx, userID, playerID); err != nil {
		return fmt.Errorf("remove player: %w", err)
	}
	return nil
}
