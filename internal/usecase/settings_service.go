package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/VillePajala/matchops-sync/internal/domain/settings"
)

// SettingsService syncs client preferences and live-timer snapshots.
type SettingsService struct {
	settingsRepo settings.Repository
}

func NewSettingsService(settingsRepo settings.Repository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

func (s *SettingsService) Get(ctx context.Context, userID string) (settings.AppSettings, bool, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return settings.AppSettings{}, false, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	item, found, err := s.settingsRepo.GetSettings(ctx, userID)
	if err != nil {
		return settings.AppSettings{}, false, fmt.Errorf("get settings: %w", err)
	}
	return item, found, nil
}

func (s *SettingsService) Save(ctx context.Context, userID string, item settings.AppSettings) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	if err := s.settingsRepo.SaveSettings(ctx, userID, item); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (s *SettingsService) SaveTimer(ctx context.Context, userID string, t settings.TimerState) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	if err := s.settingsRepo.SaveTimerState(ctx, userID, t); err != nil {
		return fmt.Errorf("save timer state: %w", err)
	}
	return nil
}

func (s *SettingsService) GetTimer(ctx context.Context, userID, gameID string) (settings.TimerState, bool, error) {
	userID = strings.TrimSpace(userID)
	gameID = strings.TrimSpace(gameID)
	if userID == "" || gameID == "" {
		return settings.TimerState{}, false, fmt.Errorf("%w: user_id and game_id are required", ErrInvalidInput)
	}

	item, found, err := s.settingsRepo.GetTimerState(ctx, userID, gameID)
	if err != nil {
		return settings.TimerState{}, false, fmt.Errorf("get timer state: %w", err)
	}
	return item, found, nil
}
