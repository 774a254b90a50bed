package memory

import (
	"github.com/VillePajala/matchops-sync/internal/domain/roster"
)

// SeedRoster returns a small demo roster used by tests and by the in-memory
// backend when the service runs without a database.
func SeedRoster() []roster.Player {
	return []roster.Player{
		{ID: "player_1690000000001_aa", Name: "Aino Korhonen", Nickname: "Aino", JerseyNumber: "7"},
		{ID: "player_1690000000002_bb", Name: "Bea Virtanen", Nickname: "Bea", JerseyNumber: "10"},
		{ID: "player_1690000000003_cc", Name: "Cia Mäkinen", Nickname: "Cia", JerseyNumber: "4", IsGoalie: true},
		{ID: "player_1690000000004_dd", Name: "Doris Nieminen", Nickname: "Dodo", JerseyNumber: "12"},
		{ID: "player_1690000000005_ee", Name: "Eveliina Laine", Nickname: "Evi", JerseyNumber: "9"},
	}
}
