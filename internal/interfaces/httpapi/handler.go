package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/VillePajala/matchops-sync/internal/domain/game"
	"github.com/VillePajala/matchops-sync/internal/platform/logging"
	"github.com/VillePajala/matchops-sync/internal/usecase"
)

// DemoUserID scopes requests that carry no X-User-ID header. Single-coach
// deployments run without any account system.
const DemoUserID = "demo-coach"

const defaultMaxBodyBytes = 8 << 20

type Handler struct {
	gameService     *usecase.GameSyncService
	rosterService   *usecase.RosterService
	seasonService   *usecase.SeasonService
	settingsService *usecase.SettingsService
	importService   *usecase.ImportService
	resyncService   *usecase.ResyncService
	logger          *logging.Logger
	validator       *validator.Validate
	maxBodyBytes    int64
}

func NewHandler(
	gameService *usecase.GameSyncService,
	rosterService *usecase.RosterService,
	seasonService *usecase.SeasonService,
	settingsService *usecase.SettingsService,
	importService *usecase.ImportService,
	resyncService *usecase.ResyncService,
	logger *logging.Logger,
	maxBodyBytes int,
) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}

	return &Handler{
		gameService:     gameService,
		rosterService:   rosterService,
		seasonService:   seasonService,
		settingsService: settingsService,
		importService:   importService,
		resyncService:   resyncService,
		logger:          logger,
		validator:       validator.New(),
		maxBodyBytes:    int64(maxBodyBytes),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func requestUserID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get("X-User-ID")); id != "" {
		return id
	}
	return DemoUserID
}

func (h *Handler) decodeJSON(r *http.Request, dest any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, h.maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err)
	}
	if err := sonic.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// SaveGame accepts a full Game State in the client's JSON shape, flattens it
// and persists the bundle. The response carries the (possibly newly
// assigned) game id.
func (h *Handler) SaveGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveGame")
	defer span.End()

	var st game.State
	if err := h.decodeJSON(r, &st); err != nil {
		writeError(ctx, w, err)
		return
	}

	gameID, err := h.gameService.Save(ctx, requestUserID(r), st)
	if err != nil {
		h.logger.WarnContext(ctx, "save game failed", "game_id", st.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"gameId": gameID})
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGame")
	defer span.End()

	gameID := r.PathValue("gameID")
	st, found, err := h.gameService.Load(ctx, requestUserID(r), gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "load game failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !found {
		writeError(ctx, w, fmt.Errorf("%w: game %s", usecase.ErrNotFound, gameID))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, st)
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	summaries, err := h.gameService.List(ctx, requestUserID(r))
	if err != nil {
		h.logger.WarnContext(ctx, "list games failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]gameSummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, gameSummaryDTO{
			ID:           s.ID,
			TeamName:     s.TeamName,
			OpponentName: s.OpponentName,
			GameDate:     s.GameDate,
			HomeScore:    s.HomeScore,
			AwayScore:    s.AwayScore,
			Status:       string(s.Status),
			IsPlayed:     s.IsPlayed,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ArchiveGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ArchiveGame")
	defer span.End()

	gameID := r.PathValue("gameID")
	if err := h.gameService.Archive(ctx, requestUserID(r), gameID); err != nil {
		h.logger.WarnContext(ctx, "archive game failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"gameId": gameID})
}

type gameSummaryDTO struct {
	ID           string `json:"id"`
	TeamName     string `json:"teamName"`
	OpponentName string `json:"opponentName"`
	GameDate     string `json:"gameDate,omitempty"`
	HomeScore    int    `json:"homeScore"`
	AwayScore    int    `json:"awayScore"`
	Status       string `json:"gameStatus"`
	IsPlayed     bool   `json:"isPlayed"`
}
