package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/VillePajala/matchops-sync/internal/domain/season"
	"github.com/VillePajala/matchops-sync/internal/mapping"
	idgen "github.com/VillePajala/matchops-sync/internal/platform/id"
	"github.com/VillePajala/matchops-sync/internal/validate"
)

type SeasonRepository struct {
	mu               sync.RWMutex
	ids              idgen.Generator
	seasons          map[string]map[string]mapping.SeasonRow
	tournaments      map[string]map[string]mapping.TournamentRow
	seasonOwners     map[string]string
	tournamentOwners map[string]string
}

func NewSeasonRepository(ids idgen.Generator) *SeasonRepository {
	return &SeasonRepository{
		ids:              ids,
		seasons:          make(map[string]map[string]mapping.SeasonRow),
		tournaments:      make(map[string]map[string]mapping.TournamentRow),
		seasonOwners:     make(map[string]string),
		tournamentOwners: make(map[string]string),
	}
}

func (r *SeasonRepository) ListSeasons(ctx context.Context, userID string) ([]season.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]season.Season, 0, len(r.seasons[userID]))
	for _, row := range r.seasons[userID] {
		out = append(out, mapping.SeasonFromRow(row))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *SeasonRepository) UpsertSeason(ctx context.Context, userID string, s season.Season) (season.Season, error) {
	if err := validate.Season(s); err != nil {
		return season.Season{}, err
	}
	if mapping.NeedsServerID(s.ID) {
		id, err := r.ids.NewID()
		if err != nil {
			return season.Season{}, err
		}
		s.ID = id
	}

	row := mapping.ToSeasonRow(userID, s)

	r.mu.Lock()
	defer r.mu.Unlock()
	if owner, ok := r.seasonOwners[s.ID]; ok && owner != userID {
		return season.Season{}, fmt.Errorf("upsert season %s: %w", s.ID, season.ErrIDConflict)
	}
	if r.seasons[userID] == nil {
		r.seasons[userID] = make(map[string]mapping.SeasonRow)
	}
	r.seasons[userID][s.ID] = row
	r.seasonOwners[s.ID] = userID
	return mapping.SeasonFromRow(row), nil
}

func (r *SeasonRepository) ListTournaments(ctx context.Context, userID string) ([]season.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]season.Tournament, 0, len(r.tournaments[userID]))
	for _, row := range r.tournaments[userID] {
		out = append(out, mapping.TournamentFromRow(row))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *SeasonRepository) UpsertTournament(ctx context.Context, userID string, t season.Tournament) (season.Tournament, error) {
	if err := validate.Tournament(t); err != nil {
		return season.Tournament{}, err
	}
	if mapping.NeedsServerID(t.ID) {
		id, err := r.ids.NewID()
		if err != nil {
			return season.Tournament{}, err
		}
		t.ID = id
	}

	row := mapping.ToTournamentRow(userID, t)

	r.mu.Lock()
	defer r.mu.Unlock()
	if owner, ok := r.tournamentOwners[t.ID]; ok && owner != userID {
		return season.Tournament{}, fmt.Errorf("upsert tournament %s: %w", t.ID, season.ErrIDConflict)
	}
	if r.tournaments[userID] == nil {
		r.tournaments[userID] = make(map[string]mapping.TournamentRow)
	}
	r.tournaments[userID][t.ID] = row
	r.tournamentOwners[t.ID] = userID
	return mapping.TournamentFromRow(row), nil
}
