package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/VillePajala/matchops-sync/internal/domain/roster"
	"github.com/VillePajala/matchops-sync/internal/mapping"
	idgen "github.com/VillePajala/matchops-sync/internal/platform/id"
	"github.com/VillePajala/matchops-sync/internal/validate"
)

type RosterRepository struct {
	mu     sync.RWMutex
	ids    idgen.Generator
	items  map[string]map[string]mapping.PlayerRow
	owners map[string]string
}

func NewRosterRepository(ids idgen.Generator) *RosterRepository {
	return &RosterRepository{
		ids:    ids,
		items:  make(map[string]map[string]mapping.PlayerRow),
		owners: make(map[string]string),
	}
}

func (r *RosterRepository) List(ctx context.Context, userID string) ([]roster.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.Player, 0, len(r.items[userID]))
	for _, row := range r.items[userID] {
		out = append(out, mapping.PlayerFromRow(row))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *RosterRepository) Upsert(ctx context.Context, userID string, p roster.Player) (roster.Player, error) {
	if err := validate.Player(p); err != nil {
		return roster.Player{}, err
	}
	if mapping.NeedsServerID(p.ID) {
		id, err := r.ids.NewID()
		if err != nil {
			return roster.Player{}, err
		}
		p.ID = id
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Player ids are globally unique like the primary key in the
	// network-backed store.
	if owner, ok := r.owners[p.ID]; ok && owner != userID {
		return roster.Player{}, fmt.Errorf("upsert player %s: %w", p.ID, roster.ErrIDConflict)
	}
	if r.items[userID] == nil {
		r.items[userID] = make(map[string]mapping.PlayerRow)
	}
	r.items[userID][p.ID] = mapping.ToPlayerRow(userID, p)
	r.owners[p.ID] = userID
	return p, nil
}

func (r *RosterRepository) Remove(ctx context.Context, userID, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[userID][playerID]; ok {
		delete(r.items[userID], playerID)
		delete(r.owners, playerID)
	}
	return nil
}
