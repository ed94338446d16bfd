package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/armelyara/TraficDay/internal/domain"
	"github.com/armelyara/TraficDay/pkg/e"
	"github.com/armelyara/TraficDay/pkg/geo"
	"github.com/armelyara/TraficDay/pkg/validator"
)

// LocationService answers the public "what is around me" query from the
// active-obstacle cache, falling back to the store on a cold cache.
type LocationService struct {
	store    ObstacleStore
	cache    ObstacleCache
	logger   *slog.Logger
	radiusKm float64
	cacheTTL time.Duration
}

func NewLocationService(store ObstacleStore, cache ObstacleCache, logger *slog.Logger, radiusKm float64, cacheTTL time.Duration) *LocationService {
	if radiusKm <= 0 {
		radiusKm = 1.6
	}
	return &LocationService{
		store:    store,
		cache:    cache,
		logger:   logger,
		radiusKm: radiusKm,
		cacheTTL: cacheTTL,
	}
}

func (s *LocationService) CheckLocation(ctx context.Context, req domain.LocationCheckRequest) (domain.LocationCheckResponse, error) {
	const op = "service.CheckLocation"

	if err := validator.ValidateStruct(req); err != nil {
		return domain.LocationCheckResponse{}, fmt.Errorf("%s: %s: %w", op, err, e.ErrInvalidInput)
	}
	if !geo.ValidCoordinates(req.Lat, req.Lng) {
		return domain.LocationCheckResponse{}, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	obstacles, err := s.activeObstacles(ctx)
	if err != nil {
		return domain.LocationCheckResponse{}, err
	}

	here := geo.Point{Lat: req.Lat, Lng: req.Lng}
	nearby := make([]domain.NearbyObstacle, 0)
	for _, o := range obstacles {
		dist := geo.DistanceKm(here, o.Location)
		if dist > s.radiusKm {
			continue
		}
		nearby = append(nearby, domain.NearbyObstacle{
			ID:         o.ID,
			Type:       o.Type,
			Severity:   o.Severity,
			DistanceKm: dist,
		})
	}

	s.logger.Debug("location check",
		slog.String("user_id", req.UserID),
		slog.Int("active", len(obstacles)),
		slog.Int("nearby", len(nearby)),
	)

	return domain.LocationCheckResponse{Obstacles: nearby}, nil
}

// activeObstacles reads through the cache. Only primaries are surfaced;
// duplicates are already represented by their primary.
func (s *LocationService) activeObstacles(ctx context.Context) ([]domain.CachedObstacle, error) {
	if s.cache != nil {
		cached, err := s.cache.GetActive(ctx)
		if err != nil {
			s.logger.Warn("obstacle cache read failed", slog.Any("error", err))
		} else if cached != nil {
			return cached, nil
		}
	}

	active, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	projection := make([]domain.CachedObstacle, 0, len(active))
	for _, o := range active {
		if !o.IsPrimary {
			continue
		}
		projection = append(projection, domain.CachedObstacle{
			ID:       o.ID,
			Type:     o.Type,
			Severity: o.Severity,
			Location: o.Location,
		})
	}

	if s.cache != nil {
		if err := s.cache.SetActive(ctx, projection, s.cacheTTL); err != nil {
			s.logger.Warn("obstacle cache write failed", slog.Any("error", err))
		}
	}

	return projection, nil
}
