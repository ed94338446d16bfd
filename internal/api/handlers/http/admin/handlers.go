package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/armelyara/TraficDay/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AdminObstacles interface {
	List(ctx context.Context, page, limit int) ([]*domain.Obstacle, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Obstacle, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type StatsGetter interface {
	GetStats(ctx context.Context) (*domain.EngineStats, error)
}

type Broadcaster interface {
	Broadcast(ctx context.Context, req domain.BroadcastRequest) (domain.DispatchReport, error)
}

type Handler struct {
	logger      *slog.Logger
	Admin       AdminObstacles
	Stats       StatsGetter
	Broadcaster Broadcaster
}

func NewHandler(logger *slog.Logger, admin AdminObstacles, stats StatsGetter, broadcaster Broadcaster) *Handler {
	return &Handler{
		logger:      logger,
		Admin:       admin,
		Stats:       stats,
		Broadcaster: broadcaster,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AdminObstacleList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminObstacleList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 20)
	if limit > 100 {
		limit = 100
		l.Warn("limit capped", slog.Int("limit", limit))
	}

	obstacles, total, err := h.Admin.List(r.Context(), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("obstacles listed", slog.Int("count", len(obstacles)), slog.Int64("total", total))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"obstacles": obstacles,
		"total":     total,
		"page":      page,
		"limit":     limit,
	})
}

func (h *Handler) AdminObstacleGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	obstacle, err := h.Admin.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, obstacle)
}

func (h *Handler) AdminObstacleDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminObstacleDelete", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if err := h.Admin.Deactivate(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminStats", slog.String("remote", r.RemoteAddr))

	stats, err := h.Stats.GetStats(r.Context())
	if err != nil {
		l.Error("Stats.GetStats failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) AdminBroadcast(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.BroadcastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	report, err := h.Broadcaster.Broadcast(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("broadcast sent",
		slog.Int("attempted", report.Attempted),
		slog.Int("delivered", report.Delivered),
	)
	h.writeJSON(w, http.StatusOK, report)
}
