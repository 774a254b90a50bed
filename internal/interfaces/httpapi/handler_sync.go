package httpapi

import (
	"fmt"
	"io"
	"net/http"

	"github.com/VillePajala/matchops-sync/internal/usecase"
)

// ImportBackup accepts a full backup export file. The whole file validates
// or the whole file is rejected; partial imports never happen.
func (h *Handler) ImportBackup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportBackup")
	defer span.End()

	raw, err := io.ReadAll(io.LimitReader(r.Body, h.maxBodyBytes))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err))
		return
	}

	report, err := h.importService.Import(ctx, requestUserID(r), raw)
	if err != nil {
		h.logger.WarnContext(ctx, "backup import rejected", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}

// RunResync re-runs every stored game through the load/save pipeline.
func (h *Handler) RunResync(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunResync")
	defer span.End()

	report, err := h.resyncService.Run(ctx, requestUserID(r))
	if err != nil {
		h.logger.WarnContext(ctx, "resync failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}
