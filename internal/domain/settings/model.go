package settings

// AppSettings are the per-user client preferences synced across devices.
type AppSettings struct {
	CurrentGameID           string `json:"currentGameId,omitempty"`
	LastHomeTeamName        string `json:"lastHomeTeamName,omitempty"`
	Language                string `json:"language,omitempty"`
	DefaultTeamName         string `json:"defaultTeamName,omitempty"`
	AutoBackupEnabled       bool   `json:"autoBackupEnabled"`
	AutoBackupIntervalHours int    `json:"autoBackupIntervalHours,omitempty"`
	LastBackupTime          string `json:"lastBackupTime,omitempty"`
	BackupEmail             string `json:"backupEmail,omitempty"`
	UseDemandCorrection     bool   `json:"useDemandCorrection"`
}

// TimerState is the persisted live-timer snapshot for one game, written on
// every tick interval so a reloaded client resumes at the right second.
type TimerState struct {
	GameID          string `json:"gameId"`
	ElapsedSeconds  int    `json:"timeElapsedInSeconds"`
	TimestampMillis int64  `json:"timestamp"`
}
