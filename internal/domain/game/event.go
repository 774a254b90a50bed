package game

// EventType discriminates entries in the match event log.
type EventType string

const (
	EventGoal         EventType = "goal"
	EventOpponentGoal EventType = "opponentGoal"
	EventSubstitution EventType = "substitution"
	EventPeriodEnd    EventType = "periodEnd"
	EventGameEnd      EventType = "gameEnd"
	EventFairPlayCard EventType = "fairPlayCard"
)

var AllEventTypes = map[EventType]struct{}{
	EventGoal:         {},
	EventOpponentGoal: {},
	EventSubstitution: {},
	EventPeriodEnd:    {},
	EventGameEnd:      {},
	EventFairPlayCard: {},
}

// Event is one entry in the ordered match log. Which payload fields apply
// depends on Type: goal carries ScorerID (required) and optional AssisterID,
// substitution and fairPlayCard carry an optional EntityID, opponentGoal and
// the period markers carry no references.
type Event struct {
	ID          string    `json:"id"`
	Type        EventType `json:"type"`
	TimeSeconds int       `json:"time"`
	ScorerID    string    `json:"scorerId,omitempty"`
	AssisterID  string    `json:"assisterId,omitempty"`
	EntityID    string    `json:"entityId,omitempty"`
}
