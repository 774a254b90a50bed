package httpapi

import (
	"net/http"

	"github.com/VillePajala/matchops-sync/internal/domain/season"
)

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	seasons, err := h.seasonService.ListSeasons(ctx, requestUserID(r))
	if err != nil {
		h.logger.WarnContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasons)
}

// UpsertSeason takes the client's season JSON as-is, legacy defaultRosterId
// shapes included.
func (h *Handler) UpsertSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertSeason")
	defer span.End()

	var payload season.Season
	if err := h.decodeJSON(r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.seasonService.UpsertSeason(ctx, requestUserID(r), payload)
	if err != nil {
		h.logger.WarnContext(ctx, "upsert season failed", "season_id", payload.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, saved)
}

func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournaments")
	defer span.End()

	tournaments, err := h.seasonService.ListTournaments(ctx, requestUserID(r))
	if err != nil {
		h.logger.WarnContext(ctx, "list tournaments failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournaments)
}

func (h *Handler) UpsertTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertTournament")
	defer span.End()

	var payload season.Tournament
	if err := h.decodeJSON(r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.seasonService.UpsertTournament(ctx, requestUserID(r), payload)
	if err != nil {
		h.logger.WarnContext(ctx, "upsert tournament failed", "tournament_id", payload.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, saved)
}
