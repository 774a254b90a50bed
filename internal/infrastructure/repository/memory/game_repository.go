// Package memory is the local persistence fallback. It honors the same
// contract as the network-backed store: states are flattened to row bundles
// on save and reconstructed on load, so the mapping layer is exercised on
// both paths regardless of backend.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/VillePajala/matchops-sync/internal/domain/game"
	"github.com/VillePajala/matchops-sync/internal/domain/roster"
	"github.com/VillePajala/matchops-sync/internal/mapping"
	idgen "github.com/VillePajala/matchops-sync/internal/platform/id"
	"github.com/VillePajala/matchops-sync/internal/validate"
)

type GameRepository struct {
	mu         sync.RWMutex
	ids        idgen.Generator
	orphanHook func(playerID string)
	bundles    map[string]map[string]mapping.Bundle
	owners     map[string]string
}

// NewGameRepository builds the local games store. orphanHook may be nil; when
// set it receives the player id of every stale reference skipped during loads.
func NewGameRepository(ids idgen.Generator, orphanHook func(playerID string)) *GameRepository {
	return &GameRepository{
		ids:        ids,
		orphanHook: orphanHook,
		bundles:    make(map[string]map[string]mapping.Bundle),
		owners:     make(map[string]string),
	}
}

func (r *GameRepository) Save(ctx context.Context, userID string, st game.State) (string, error) {
	if mapping.NeedsServerID(st.ID) {
		id, err := r.ids.NewID()
		if err != nil {
			return "", err
		}
		st.ID = id
	}

	if err := validate.State(st); err != nil {
		return "", err
	}

	bundle, err := mapping.ToBundle(userID, st)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Game ids are globally unique, same as the primary key in the
	// network-backed store: a write against another user's id is rejected.
	if owner, ok := r.owners[st.ID]; ok && owner != userID {
		return "", fmt.Errorf("save game %s: %w", st.ID, game.ErrIDConflict)
	}
	if r.bundles[userID] == nil {
		r.bundles[userID] = make(map[string]mapping.Bundle)
	}
	// Preserve the archived flag across re-saves.
	if prev, ok := r.bundles[userID][st.ID]; ok {
		bundle.Game.Archived = prev.Game.Archived
	}
	r.bundles[userID][st.ID] = bundle
	r.owners[st.ID] = userID
	return st.ID, nil
}

func (r *GameRepository) Load(ctx context.Context, userID, gameID string, masterRoster []roster.Player) (game.State, bool, error) {
	r.mu.RLock()
	bundle, ok := r.bundles[userID][gameID]
	r.mu.RUnlock()
	if !ok {
		return game.State{}, false, nil
	}

	return mapping.StateFromBundle(bundle, masterRoster, mapping.WithOrphanHook(r.orphanHook)), true, nil
}

// List returns unarchived games newest first, dateless games last.
func (r *GameRepository) List(ctx context.Context, userID string) ([]game.Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Summary, 0, len(r.bundles[userID]))
	for _, b := range r.bundles[userID] {
		if b.Game.Archived {
			continue
		}
		isPlayed := b.Game.IsPlayed == nil || *b.Game.IsPlayed
		gameDate := ""
		if b.Game.GameDate != nil {
			gameDate = *b.Game.GameDate
		}
		out = append(out, game.Summary{
			ID:           b.Game.ID,
			TeamName:     b.Game.TeamName,
			OpponentName: b.Game.OpponentName,
			GameDate:     gameDate,
			HomeScore:    b.Game.HomeScore,
			AwayScore:    b.Game.AwayScore,
			Status:       mapping.StatusFromStored(b.Game.Status),
			IsPlayed:     isPlayed,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.GameDate != b.GameDate {
			if a.GameDate == "" {
				return false
			}
			if b.GameDate == "" {
				return true
			}
			return a.GameDate > b.GameDate
		}
		return a.ID < b.ID
	})
	return out, nil
}

func (r *GameRepository) Archive(ctx context.Context, userID, gameID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bundle, ok := r.bundles[userID][gameID]
	if !ok {
		return fmt.Errorf("archive game %s: %w", gameID, game.ErrNotFound)
	}
	bundle.Game.Archived = true
	r.bundles[userID][gameID] = bundle
	return nil
}
