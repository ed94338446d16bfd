package public

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/armelyara/TraficDay/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ObstacleReporter interface {
	Report(ctx context.Context, req domain.ReportObstacleRequest) (uuid.UUID, error)
}

type ObstacleConfirmer interface {
	Confirm(ctx context.Context, obstacleID, userID uuid.UUID) (domain.Outcome, error)
	Resolve(ctx context.Context, obstacleID, userID uuid.UUID) (domain.Outcome, error)
}

type LocationChecker interface {
	CheckLocation(ctx context.Context, req domain.LocationCheckRequest) (domain.LocationCheckResponse, error)
}

type UserUpdater interface {
	UpdateLocation(ctx context.Context, userID uuid.UUID, req domain.UpdateLocationRequest) error
	UpdateToken(ctx context.Context, userID uuid.UUID, req domain.UpdateTokenRequest) error
	UpdateSubscription(ctx context.Context, userID uuid.UUID, req domain.UpdateSubscriptionRequest) error
}

type Handler struct {
	logger    *slog.Logger
	Reporter  ObstacleReporter
	Confirmer ObstacleConfirmer
	Location  LocationChecker
	Users     UserUpdater
}

func NewHandler(logger *slog.Logger, reporter ObstacleReporter, confirmer ObstacleConfirmer, location LocationChecker, users UserUpdater) *Handler {
	return &Handler{
		logger:    logger,
		Reporter:  reporter,
		Confirmer: confirmer,
		Location:  location,
		Users:     users,
	}
}

func (h *Handler) ObstacleReport(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.ReportObstacleRequest
	if !h.decodeStrict(w, r, &req) {
		return
	}

	l.Info("reporting obstacle",
		slog.String("type", string(req.Type)),
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
	)

	id, err := h.Reporter.Report(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("obstacle reported", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) ObstacleConfirm(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, h.Confirmer.Confirm)
}

func (h *Handler) ObstacleResolve(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, h.Confirmer.Resolve)
}

func (h *Handler) vote(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID, uuid.UUID) (domain.Outcome, error)) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	obstacleID, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.ConfirmObstacleRequest
	if !h.decodeStrict(w, r, &req) {
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user_id"})
		return
	}

	outcome, err := fn(r.Context(), obstacleID, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("vote recorded",
		slog.String("obstacle_id", obstacleID.String()),
		slog.String("outcome", string(outcome)),
	)
	h.writeJSON(w, http.StatusOK, map[string]string{"outcome": string(outcome)})
}

func (h *Handler) LocationCheck(w http.ResponseWriter, r *http.Request) {
	var req domain.LocationCheckRequest
	if !h.decodeStrict(w, r, &req) {
		return
	}

	resp, err := h.Location.CheckLocation(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) UserLocationUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateLocationRequest
	if !h.decodeStrict(w, r, &req) {
		return
	}

	if err := h.Users.UpdateLocation(r.Context(), userID, req); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) UserTokenUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateTokenRequest
	if !h.decodeStrict(w, r, &req) {
		return
	}

	if err := h.Users.UpdateToken(r.Context(), userID, req); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) UserSubscriptionUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateSubscriptionRequest
	if !h.decodeStrict(w, r, &req) {
		return
	}

	if err := h.Users.UpdateSubscription(r.Context(), userID, req); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid user id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// decodeStrict rejects trailing data after the first JSON object.
func (h *Handler) decodeStrict(w http.ResponseWriter, r *http.Request, target any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(target); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	return true
}
