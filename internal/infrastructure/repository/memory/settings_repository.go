package memory

import (
	"context"
	"sync"

	"github.com/VillePajala/matchops-sync/internal/domain/settings"
	"github.com/VillePajala/matchops-sync/internal/mapping"
	"github.com/VillePajala/matchops-sync/internal/validate"
)

type SettingsRepository struct {
	mu       sync.RWMutex
	settings map[string]mapping.AppSettingsRow
	timers   map[string]map[string]mapping.TimerStateRow
}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{
		settings: make(map[string]mapping.AppSettingsRow),
		timers:   make(map[string]map[string]mapping.TimerStateRow),
	}
}

func (r *SettingsRepository) GetSettings(ctx context.Context, userID string) (settings.AppSettings, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.settings[userID]
	if !ok {
		return settings.AppSettings{}, false, nil
	}
	return mapping.SettingsFromRow(row), true, nil
}

func (r *SettingsRepository) SaveSettings(ctx context.Context, userID string, s settings.AppSettings) error {
	if err := validate.Settings(s); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings[userID] = mapping.ToSettingsRow(userID, s)
	return nil
}

func (r *SettingsRepository) SaveTimerState(ctx context.Context, userID string, t settings.TimerState) error {
	if err := validate.TimerState(t); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timers[userID] == nil {
		r.timers[userID] = make(map[string]mapping.TimerStateRow)
	}
	r.timers[userID][t.GameID] = mapping.ToTimerStateRow(userID, t)
	return nil
}

func (r *SettingsRepository) GetTimerState(ctx context.Context, userID, gameID string) (settings.TimerState, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.timers[userID][gameID]
	if !ok {
		return settings.TimerState{}, false, nil
	}
	return mapping.TimerStateFromRow(row), true, nil
}
