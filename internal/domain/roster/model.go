package roster

// Player is a master-roster athlete. Game State collections reference players
// by id only; name, nickname and jersey number are resolved from the roster
// when a game is reconstructed. JSON tags mirror the client field names used
// by backup export files.
type Player struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	Nickname             string       `json:"nickname,omitempty"`
	JerseyNumber         JerseyNumber `json:"jerseyNumber,omitempty"`
	Notes                string       `json:"notes,omitempty"`
	IsGoalie             bool         `json:"isGoalie"`
	ReceivedFairPlayCard bool         `json:"receivedFairPlayCard"`
	Color                string       `json:"color,omitempty"`
}

// LookupMap indexes players by id for cross-reference resolution.
func LookupMap(players []Player) map[string]Player {
	out := make(map[string]Player, len(players))
	for _, p := range players {
		out[p.ID] = p
	}
	return out
}
