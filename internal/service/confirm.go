package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/armelyara/TraficDay/internal/domain"
	"github.com/armelyara/TraficDay/pkg/e"
)

// ConfirmService maintains the confirmation and resolution sets of a
// primary obstacle. Both operations resolve through linkedTo first:
// votes always land on the primary, never on a linked duplicate.
type ConfirmService struct {
	store      ObstacleStore
	escalation *EscalationEngine
	logger     *slog.Logger
}

func NewConfirmService(store ObstacleStore, escalation *EscalationEngine, logger *slog.Logger) *ConfirmService {
	return &ConfirmService{
		store:      store,
		escalation: escalation,
		logger:     logger,
	}
}

// Confirm records userID's confirmation. Returns OutcomeAlreadyConfirmed
// when the user is already in the set; the count grows by exactly one
// otherwise.
func (s *ConfirmService) Confirm(ctx context.Context, obstacleID, userID uuid.UUID) (domain.Outcome, error) {
	const op = "service.Confirm"

	primaryID, err := s.resolvePrimary(ctx, obstacleID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.store.Update(ctx, primaryID, func(o *domain.Obstacle) error {
		if o.Confirmations != len(o.ConfirmedBy) {
			return fmt.Errorf("%s: confirmations=%d confirmers=%d: %w",
				op, o.Confirmations, len(o.ConfirmedBy), e.ErrInvariant)
		}
		if !o.AddConfirmer(userID) {
			return e.ErrAlreadyConfirmed
		}
		return nil
	})
	if errors.Is(err, e.ErrAlreadyConfirmed) {
		return domain.OutcomeAlreadyConfirmed, nil
	}
	if err != nil {
		if errors.Is(err, e.ErrInvariant) {
			s.logger.Error("INVARIANT VIOLATION: confirmation count out of sync, halting mutation",
				slog.String("obstacle_id", primaryID.String()),
				slog.Any("error", err),
			)
		}
		return "", err
	}

	s.logger.Info("obstacle confirmed",
		slog.String("obstacle_id", primaryID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("confirmations", updated.Confirmations),
	)

	if err := s.escalation.CheckThreshold(ctx, primaryID); err != nil {
		// The confirmation itself is committed; the threshold check can
		// be replayed by the next confirm or the reaper.
		s.logger.Error("threshold check failed", slog.Any("error", err))
	}

	return domain.OutcomeSuccess, nil
}

// Resolve records userID's "it's gone" vote, symmetric with Confirm.
// Deactivation itself is the reaper's job once the resolution threshold
// is met.
func (s *ConfirmService) Resolve(ctx context.Context, obstacleID, userID uuid.UUID) (domain.Outcome, error) {
	const op = "service.Resolve"

	primaryID, err := s.resolvePrimary(ctx, obstacleID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.store.Update(ctx, primaryID, func(o *domain.Obstacle) error {
		if !o.AddResolver(userID) {
			return e.ErrAlreadyResolved
		}
		return nil
	})
	if errors.Is(err, e.ErrAlreadyResolved) {
		return domain.OutcomeAlreadyResolved, nil
	}
	if err != nil {
		return "", err
	}

	s.logger.Info("obstacle resolution vote",
		slog.String("obstacle_id", primaryID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("resolved_count", updated.ResolvedCount),
	)

	return domain.OutcomeSuccess, nil
}

// resolvePrimary follows linkedTo one hop. Duplicates never link to
// duplicates, so a single hop always lands on the primary.
func (s *ConfirmService) resolvePrimary(ctx context.Context, obstacleID uuid.UUID) (uuid.UUID, error) {
	o, err := s.store.Get(ctx, obstacleID)
	if err != nil {
		return uuid.Nil, err
	}
	if !o.IsPrimary && o.LinkedTo != nil {
		return *o.LinkedTo, nil
	}
	return o.ID, nil
}
