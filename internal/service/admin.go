package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/armelyara/TraficDay/internal/domain"
)

// AdminService is the operator surface over the obstacle set. Delete
// semantics are deactivation: records are never physically removed.
type AdminService struct {
	store  ObstacleStore
	logger *slog.Logger
}

func NewAdminService(store ObstacleStore, logger *slog.Logger) *AdminService {
	return &AdminService{store: store, logger: logger}
}

func (s *AdminService) List(ctx context.Context, page, limit int) ([]*domain.Obstacle, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.store.List(ctx, page, limit)
}

func (s *AdminService) Get(ctx context.Context, id uuid.UUID) (*domain.Obstacle, error) {
	return s.store.Get(ctx, id)
}

// Deactivate force-retires an obstacle. Idempotent: deactivating an
// already-inactive obstacle succeeds without a write.
func (s *AdminService) Deactivate(ctx context.Context, id uuid.UUID) error {
	_, err := s.store.Update(ctx, id, func(o *domain.Obstacle) error {
		if !o.Active {
			return errSkipWrite
		}
		o.Active = false
		return nil
	})
	if errors.Is(err, errSkipWrite) {
		return nil
	}
	if err != nil {
		return err
	}

	s.logger.Info("obstacle deactivated by admin", slog.String("obstacle_id", id.String()))
	return nil
}
