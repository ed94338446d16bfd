package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/armelyara/TraficDay/internal/domain"
	"github.com/armelyara/TraficDay/pkg/e"
	"github.com/armelyara/TraficDay/pkg/geo"
	"github.com/armelyara/TraficDay/pkg/validator"
)

// ReportService accepts new obstacle reports. Persisting the record
// triggers the store's created-subscribers, so duplicate detection and
// any resulting escalation have run by the time Report returns.
type ReportService struct {
	store      ObstacleStore
	clock      Clock
	logger     *slog.Logger
	defaultTTL time.Duration
}

func NewReportService(store ObstacleStore, clock Clock, logger *slog.Logger, defaultTTL time.Duration) *ReportService {
	return &ReportService{
		store:      store,
		clock:      clock,
		logger:     logger,
		defaultTTL: defaultTTL,
	}
}

func (s *ReportService) Report(ctx context.Context, req domain.ReportObstacleRequest) (uuid.UUID, error) {
	const op = "service.Report"

	if err := validator.ValidateStruct(req); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %s: %w", op, err, e.ErrInvalidInput)
	}
	if !geo.ValidCoordinates(req.Lat, req.Lng) {
		return uuid.Nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	reporterID, err := uuid.Parse(req.ReporterID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, e.ErrInvalidUserID)
	}

	severity := req.Severity
	if severity == "" {
		severity = domain.DefaultSeverity(req.Type)
	}
	description := req.Description
	if description == "" {
		description = fmt.Sprintf("%s signalé(e)", domain.ObstacleLabel(req.Type))
	}

	now := s.clock.Now()
	obstacle := &domain.Obstacle{
		ID:          uuid.New(),
		Type:        req.Type,
		Location:    geo.Point{Lat: req.Lat, Lng: req.Lng},
		Severity:    severity,
		Description: description,
		ReporterID:  reporterID,
		Active:      true,
		IsPrimary:   true,
		// The reporter counts as the first confirmer. Aggregate sets start
		// empty, never nil: the postgres writer maps them onto NOT NULL
		// array columns.
		ConfirmedBy:     []uuid.UUID{reporterID},
		Confirmations:   1,
		LinkedObstacles: []uuid.UUID{},
		ResolvedBy:      []uuid.UUID{},
		CreatedAt:       now,
	}

	ttl := s.defaultTTL
	if req.TTLMinutes > 0 {
		ttl = time.Duration(req.TTLMinutes) * time.Minute
	}
	if ttl > 0 {
		expires := now.Add(ttl)
		obstacle.ExpiresAt = &expires
	}

	if err := s.store.Create(ctx, obstacle); err != nil {
		s.logger.Error("obstacle create failed",
			slog.String("op", op),
			slog.Any("error", err),
		)
		return uuid.Nil, err
	}

	s.logger.Info("obstacle reported",
		slog.String("obstacle_id", obstacle.ID.String()),
		slog.String("type", string(obstacle.Type)),
		slog.String("severity", string(obstacle.Severity)),
		slog.String("reporter_id", reporterID.String()),
	)

	return obstacle.ID, nil
}
