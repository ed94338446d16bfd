package service

import (
	"context"

	"github.com/armelyara/TraficDay/internal/domain"
)

// StatsService summarizes live engine state for the admin dashboard.
type StatsService struct {
	store   ObstacleStore
	intents IntentStore
	clock   Clock
}

func NewStatsService(store ObstacleStore, intents IntentStore, clock Clock) *StatsService {
	return &StatsService{store: store, intents: intents, clock: clock}
}

func (s *StatsService) GetStats(ctx context.Context) (*domain.EngineStats, error) {
	active, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.EngineStats{
		ActiveByType: make(map[domain.ObstacleType]int64),
	}
	for _, o := range active {
		if !o.IsPrimary {
			continue
		}
		stats.ActiveObstacles++
		stats.ActiveByType[o.Type]++
		if o.NotificationSent {
			stats.NotifiedObstacles++
		}
	}

	pending, err := s.intents.ListUnsentIntents(ctx, s.clock.Now())
	if err != nil {
		return nil, err
	}
	stats.PendingIntents = int64(len(pending))

	return stats, nil
}
