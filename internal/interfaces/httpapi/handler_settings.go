package httpapi

import (
	"fmt"
	"net/http"

	"github.com/VillePajala/matchops-sync/internal/domain/settings"
	"github.com/VillePajala/matchops-sync/internal/usecase"
)

type saveTimerStateRequest struct {
	ElapsedSeconds  int   `json:"timeElapsedInSeconds" validate:"min=0"`
	TimestampMillis int64 `json:"timestamp" validate:"min=0"`
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSettings")
	defer span.End()

	appSettings, found, err := h.settingsService.Get(ctx, requestUserID(r))
	if err != nil {
		h.logger.WarnContext(ctx, "get settings failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if !found {
		writeError(ctx, w, fmt.Errorf("%w: settings", usecase.ErrNotFound))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, appSettings)
}

func (h *Handler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveSettings")
	defer span.End()

	var payload settings.AppSettings
	if err := h.decodeJSON(r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.settingsService.Save(ctx, requestUserID(r), payload); err != nil {
		h.logger.WarnContext(ctx, "save settings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}

func (h *Handler) GetTimerState(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTimerState")
	defer span.End()

	gameID := r.PathValue("gameID")
	state, found, err := h.settingsService.GetTimer(ctx, requestUserID(r), gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "get timer state failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !found {
		writeError(ctx, w, fmt.Errorf("%w: timer state for game %s", usecase.ErrNotFound, gameID))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, state)
}

func (h *Handler) SaveTimerState(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveTimerState")
	defer span.End()

	gameID := r.PathValue("gameID")
	var payload saveTimerStateRequest
	if err := h.decodeJSON(r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	state := settings.TimerState{
		GameID:          gameID,
		ElapsedSeconds:  payload.ElapsedSeconds,
		TimestampMillis: payload.TimestampMillis,
	}
	if err := h.settingsService.SaveTimer(ctx, requestUserID(r), state); err != nil {
		h.logger.WarnContext(ctx, "save timer state failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, state)
}
