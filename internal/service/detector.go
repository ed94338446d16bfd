package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/armelyara/TraficDay/internal/domain"
	"github.com/armelyara/TraficDay/pkg/geo"
)

// DuplicateDetector folds new reports of an already-known hazard into the
// existing primary record. It runs as a created-subscriber on the
// obstacle store.
//
// Two reports racing through here before either is visible as active can
// both end up primaries. That missed dedup is the accepted failure mode;
// the per-obstacle update serialization below rules out the worse one
// (corrupted confirmation state).
type DuplicateDetector struct {
	store      ObstacleStore
	escalation *EscalationEngine
	logger     *slog.Logger
	radiusKm   float64
}

func NewDuplicateDetector(store ObstacleStore, escalation *EscalationEngine, logger *slog.Logger, radiusKm float64) *DuplicateDetector {
	return &DuplicateDetector{
		store:      store,
		escalation: escalation,
		logger:     logger,
		radiusKm:   radiusKm,
	}
}

// OnObstacleCreated links the new report to the closest active primary of
// the same type within the duplicate radius, if one exists.
func (d *DuplicateDetector) OnObstacleCreated(ctx context.Context, newObstacle *domain.Obstacle) {
	l := d.logger.With(
		slog.String("obstacle_id", newObstacle.ID.String()),
		slog.String("type", string(newObstacle.Type)),
	)

	active, err := d.store.ListActive(ctx)
	if err != nil {
		l.Error("duplicate scan: list active failed", slog.Any("error", err))
		return
	}

	primary := closestPrimary(active, newObstacle, d.radiusKm)
	if primary == nil {
		l.Debug("no primary nearby, report stays independent")
		return
	}

	merged, err := d.linkToPrimary(ctx, primary.ID, newObstacle)
	if err != nil {
		l.Error("merge into primary failed",
			slog.String("primary_id", primary.ID.String()),
			slog.Any("error", err),
		)
		return
	}
	if !merged {
		// Primary stopped being eligible between scan and lock.
		l.Info("primary no longer eligible, report stays independent",
			slog.String("primary_id", primary.ID.String()))
		return
	}

	l.Info("report merged as duplicate",
		slog.String("primary_id", primary.ID.String()),
	)

	if err := d.escalation.CheckThreshold(ctx, primary.ID); err != nil {
		l.Error("threshold check after merge failed", slog.Any("error", err))
	}
}

// linkToPrimary updates the primary first and the duplicate second; the
// two writes are independent row locks, never nested. If the second write
// fails the new report simply remains an independent primary that also
// appears in the old primary's linked set, which later sweeps tolerate.
func (d *DuplicateDetector) linkToPrimary(ctx context.Context, primaryID uuid.UUID, newObstacle *domain.Obstacle) (bool, error) {
	_, err := d.store.Update(ctx, primaryID, func(p *domain.Obstacle) error {
		if !p.Active || !p.IsPrimary {
			return errSkipWrite
		}
		if !p.HasLinked(newObstacle.ID) {
			p.LinkedObstacles = append(p.LinkedObstacles, newObstacle.ID)
		}
		p.AddConfirmer(newObstacle.ReporterID)
		return nil
	})
	if errors.Is(err, errSkipWrite) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	_, err = d.store.Update(ctx, newObstacle.ID, func(o *domain.Obstacle) error {
		o.IsPrimary = false
		o.LinkedTo = &primaryID
		// A duplicate never accumulates its own aggregate state; the
		// reporter's vote now lives on the primary. Empty, not nil, so the
		// postgres writer keeps satisfying its NOT NULL array columns.
		o.LinkedObstacles = []uuid.UUID{}
		o.ConfirmedBy = []uuid.UUID{}
		o.Confirmations = 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func closestPrimary(active []*domain.Obstacle, newObstacle *domain.Obstacle, radiusKm float64) *domain.Obstacle {
	var (
		best     *domain.Obstacle
		bestDist float64
	)
	for _, c := range active {
		if c.ID == newObstacle.ID || c.Type != newObstacle.Type {
			continue
		}
		if !c.Active || !c.IsPrimary {
			continue
		}
		dist := geo.DistanceKm(newObstacle.Location, c.Location)
		if dist > radiusKm {
			continue
		}
		if best == nil || dist < bestDist {
			best = c
			bestDist = dist
		}
	}
	return best
}
