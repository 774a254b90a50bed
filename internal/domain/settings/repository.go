package settings

import "context"

// Repository describes settings and timer-state persistence needs.
type Repository interface {
	GetSettings(ctx context.Context, userID string) (AppSettings, bool, error)
	SaveSettings(ctx context.Context, userID string, s AppSettings) error
	SaveTimerState(ctx context.Context, userID string, t TimerState) error
	GetTimerState(ctx context.Context, userID, gameID string) (TimerState, bool, error)
}
