package httpapi

import (
	"net/http"

	"github.com/VillePajala/matchops-sync/internal/domain/roster"
)

type upsertPlayerRequest struct {
	ID                   string `json:"id" validate:"omitempty,max=128"`
	Name                 string `json:"name" validate:"required,max=100"`
	Nickname             string `json:"nickname" validate:"omitempty,max=100"`
	JerseyNumber         string `json:"jerseyNumber" validate:"omitempty,max=8"`
	Notes                string `json:"notes" validate:"omitempty,max=1000"`
	IsGoalie             bool   `json:"isGoalie"`
	ReceivedFairPlayCard bool   `json:"receivedFairPlayCard"`
	Color                string `json:"color" validate:"omitempty,max=32"`
}

func (h *Handler) ListRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRoster")
	defer span.End()

	players, err := h.rosterService.List(ctx, requestUserID(r))
	if err != nil {
		h.logger.WarnContext(ctx, "list roster failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, players)
}

func (h *Handler) UpsertPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertPlayer")
	defer span.End()

	var payload upsertPlayerRequest
	if err := h.decodeJSON(r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.rosterService.Upsert(ctx, requestUserID(r), roster.Player{
		ID:                   payload.ID,
		Name:                 payload.Name,
		Nickname:             payload.Nickname,
		JerseyNumber:         roster.JerseyNumber(payload.JerseyNumber),
		Notes:                payload.Notes,
		IsGoalie:             payload.IsGoalie,
		ReceivedFairPlayCard: payload.ReceivedFairPlayCard,
		Color:                payload.Color,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "upsert player failed", "player_id", payload.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, saved)
}

func (h *Handler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemovePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	if err := h.rosterService.Remove(ctx, requestUserID(r), playerID); err != nil {
		h.logger.WarnContext(ctx, "remove player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"playerId": playerID})
}
