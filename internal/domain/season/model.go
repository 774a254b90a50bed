package season

// Season groups games played under one recurring competition window. JSON
// tags mirror the client field names used by backup export files.
type Season struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Location              string   `json:"location,omitempty"`
	PeriodCount           int      `json:"periodCount,omitempty"`
	PeriodDurationMinutes int      `json:"periodDuration,omitempty"`
	StartDate             string   `json:"startDate,omitempty"`
	EndDate               string   `json:"endDate,omitempty"`
	GameDates             []string `json:"gameDates,omitempty"`
	Archived              bool     `json:"archived"`
	DefaultRoster         []string `json:"defaultRoster,omitempty"`
	// DefaultRosterID is the legacy roster reference. Old exports carry it
	// as either a single id or an array; DefaultRoster wins when both are set.
	DefaultRosterID RosterRef `json:"defaultRosterId,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Color           string    `json:"color,omitempty"`
	Badge           string    `json:"badge,omitempty"`
	AgeGroup        string    `json:"ageGroup,omitempty"`
}

// Tournament is shaped like a Season plus a competition level and an optional
// back-reference to the season it belongs to.
type Tournament struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Location              string    `json:"location,omitempty"`
	PeriodCount           int       `json:"periodCount,omitempty"`
	PeriodDurationMinutes int       `json:"periodDuration,omitempty"`
	StartDate             string    `json:"startDate,omitempty"`
	EndDate               string    `json:"endDate,omitempty"`
	GameDates             []string  `json:"gameDates,omitempty"`
	Archived              bool      `json:"archived"`
	DefaultRoster         []string  `json:"defaultRoster,omitempty"`
	DefaultRosterID       RosterRef `json:"defaultRosterId,omitempty"`
	Notes                 string    `json:"notes,omitempty"`
	Color                 string    `json:"color,omitempty"`
	Badge                 string    `json:"badge,omitempty"`
	AgeGroup              string    `json:"ageGroup,omitempty"`
	Level                 string    `json:"level,omitempty"`
	SeasonID              string    `json:"seasonId,omitempty"`
}
