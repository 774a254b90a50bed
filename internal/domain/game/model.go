package game

import "github.com/VillePajala/matchops-sync/internal/domain/roster"

// Status is the lifecycle phase of a coaching session.
type Status string

const (
	StatusNotStarted Status = "notStarted"
	StatusInProgress Status = "inProgress"
	StatusPeriodEnd  Status = "periodEnd"
	StatusGameEnd    Status = "gameEnd"
)

var AllStatuses = map[Status]struct{}{
	StatusNotStarted: {},
	StatusInProgress: {},
	StatusPeriodEnd:  {},
	StatusGameEnd:    {},
}

// Side says which side the coached team plays on the scoreboard.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

var AllSides = map[Side]struct{}{
	SideHome: {},
	SideAway: {},
}

// Point is a position in relative field coordinates, each axis in [0,1].
type Point struct {
	RelX float64 `json:"relX"`
	RelY float64 `json:"relY"`
}

// PlacedPlayer is a roster player with per-game field overlay data. RelX and
// RelY are nil for players off the field; the overlay is never written back to
// the master roster.
type PlacedPlayer struct {
	roster.Player
	RelX  *float64 `json:"relX,omitempty"`
	RelY  *float64 `json:"relY,omitempty"`
	Color string   `json:"color,omitempty"`
}

// OpponentMarker is an opponent chip on the live field view.
type OpponentMarker struct {
	ID   string  `json:"id"`
	RelX float64 `json:"relX"`
	RelY float64 `json:"relY"`
}

// DiscType tags a tactical disc on the tactics board.
type DiscType string

const (
	DiscHome     DiscType = "home"
	DiscOpponent DiscType = "opponent"
	DiscGoalie   DiscType = "goalie"
)

var AllDiscTypes = map[DiscType]struct{}{
	DiscHome:     {},
	DiscOpponent: {},
	DiscGoalie:   {},
}

// TacticalDisc is a non-player marker on the tactics board.
type TacticalDisc struct {
	ID   string   `json:"id"`
	RelX float64  `json:"relX"`
	RelY float64  `json:"relY"`
	Type DiscType `json:"type"`
}

// Stroke is one drawn polyline of relative points.
type Stroke []Point

// CompletedInterval records one finished substitution interval.
type CompletedInterval struct {
	Period          int   `json:"period"`
	DurationSeconds int   `json:"duration"`
	TimestampMillis int64 `json:"timestamp"`
}

// Assessment is a per-game per-player performance review. Sliders hold the
// ten named sub-ratings, each in [1,10].
type Assessment struct {
	PlayerID      string  `json:"playerId,omitempty"`
	Overall       int     `json:"overall"`
	Sliders       Sliders `json:"sliders"`
	Notes         string  `json:"notes,omitempty"`
	MinutesPlayed int     `json:"minutesPlayed"`
	CreatedAt     int64   `json:"createdAt"`
	CreatedBy     string  `json:"createdBy"`
}

// Sliders are the named sub-ratings of an assessment.
type Sliders struct {
	Intensity  int `json:"intensity"`
	Courage    int `json:"courage"`
	Duels      int `json:"duels"`
	Technique  int `json:"technique"`
	Creativity int `json:"creativity"`
	Decisions  int `json:"decisions"`
	Awareness  int `json:"awareness"`
	Teamwork   int `json:"teamwork"`
	FairPlay   int `json:"fair_play"`
	Impact     int `json:"impact"`
}

// State is the full in-memory representation of one coaching session: the
// aggregate root the mapping layer flattens to rows and rebuilds from them.
// JSON tags mirror the client-side field names so a state round-trips through
// backup export files and the persisted snapshot column unchanged.
type State struct {
	ID           string `json:"id,omitempty"`
	TeamName     string `json:"teamName"`
	OpponentName string `json:"opponentName"`
	GameDate     string `json:"gameDate,omitempty"`
	GameTime     string `json:"gameTime,omitempty"`
	Location     string `json:"gameLocation,omitempty"`

	HomeScore     int    `json:"homeScore"`
	AwayScore     int    `json:"awayScore"`
	CurrentPeriod int    `json:"currentPeriod"`
	Status        Status `json:"gameStatus"`
	HomeOrAway    Side   `json:"homeOrAway"`
	IsPlayed      bool   `json:"isPlayed"`

	NumberOfPeriods       int `json:"numberOfPeriods"`
	PeriodDurationMinutes int `json:"periodDurationMinutes"`
	SubIntervalMinutes    int `json:"subIntervalMinutes,omitempty"`

	SeasonID        string  `json:"seasonId,omitempty"`
	TournamentID    string  `json:"tournamentId,omitempty"`
	AgeGroup        string  `json:"ageGroup,omitempty"`
	TournamentLevel string  `json:"tournamentLevel,omitempty"`
	DemandFactor    float64 `json:"demandFactor,omitempty"`
	Notes           string  `json:"gameNotes,omitempty"`
	ShowPlayerNames bool    `json:"showPlayerNames"`

	PlayersOnField    []PlacedPlayer `json:"playersOnField"`
	AvailablePlayers  []PlacedPlayer `json:"availablePlayers"`
	SelectedPlayerIDs []string       `json:"selectedPlayerIds"`

	Events []Event `json:"gameEvents"`

	Opponents          []OpponentMarker    `json:"opponents"`
	Drawings           []Stroke            `json:"drawings"`
	TacticalDrawings   []Stroke            `json:"tacticalDrawings"`
	TacticalDiscs      []TacticalDisc      `json:"tacticalDiscs"`
	TacticalBallPos    *Point              `json:"tacticalBallPosition,omitempty"`
	CompletedIntervals []CompletedInterval `json:"completedIntervalDurations"`
	LastSubTimeSeconds int                 `json:"lastSubConfirmationTimeSeconds,omitempty"`

	Assessments map[string]Assessment `json:"assessments,omitempty"`

	TimerElapsedSeconds int `json:"timeElapsedInSeconds"`
}

// NewState returns a session in its pre-kickoff shape. IsPlayed starts true:
// a game is assumed to count toward stats unless the coach marks it otherwise.
func NewState(teamName, opponentName string) State {
	return State{
		TeamName:              teamName,
		OpponentName:          opponentName,
		Status:                StatusNotStarted,
		HomeOrAway:            SideHome,
		IsPlayed:              true,
		NumberOfPeriods:       2,
		PeriodDurationMinutes: 10,
		SubIntervalMinutes:    5,
		CurrentPeriod:         1,
		ShowPlayerNames:       true,
		Assessments:           map[string]Assessment{},
	}
}
