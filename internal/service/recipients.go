package service

import (
	"context"
	"log/slog"

	"github.com/armelyara/TraficDay/internal/domain"
	"github.com/armelyara/TraficDay/pkg/geo"
)

// RecipientResolver computes who should hear about an escalated obstacle:
// users close enough to it, plus broad-topic subscribers, minus everyone
// already involved with the report.
type RecipientResolver struct {
	store    ObstacleStore
	users    UserDirectory
	logger   *slog.Logger
	radiusKm float64
}

func NewRecipientResolver(store ObstacleStore, users UserDirectory, logger *slog.Logger, radiusKm float64) *RecipientResolver {
	return &RecipientResolver{
		store:    store,
		users:    users,
		logger:   logger,
		radiusKm: radiusKm,
	}
}

// Resolve returns the de-duplicated set of delivery addresses for an
// intent. Users without a push token are silently skipped.
func (r *RecipientResolver) Resolve(ctx context.Context, intent domain.NotificationIntent) ([]string, error) {
	involved := map[string]struct{}{}
	if obstacle, err := r.store.Get(ctx, intent.ObstacleID); err == nil {
		for _, id := range obstacle.ConfirmedBy {
			involved[id.String()] = struct{}{}
		}
	} else {
		// The snapshot outlives the obstacle; resolve with no exclusions
		// rather than dropping the alert.
		r.logger.Warn("recipient resolution without exclusion set",
			slog.String("obstacle_id", intent.ObstacleID.String()),
			slog.Any("error", err),
		)
	}

	users, err := r.users.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	addresses := make([]string, 0, len(users))
	for _, u := range users {
		if !u.Reachable() {
			continue
		}
		if _, ok := involved[u.ID.String()]; ok {
			continue
		}

		inRadius := u.Location != nil &&
			geo.DistanceKm(*u.Location, intent.Location) <= r.radiusKm
		if !inRadius && !u.SubscribedToAll {
			continue
		}

		if _, dup := seen[u.PushToken]; dup {
			continue
		}
		seen[u.PushToken] = struct{}{}
		addresses = append(addresses, u.PushToken)
	}

	r.logger.Debug("recipients resolved",
		slog.String("obstacle_id", intent.ObstacleID.String()),
		slog.Int("candidates", len(users)),
		slog.Int("recipients", len(addresses)),
	)

	return addresses, nil
}

// BroadcastAddresses returns every broad-topic subscriber's address, for
// the admin broadcast path.
func (r *RecipientResolver) BroadcastAddresses(ctx context.Context) ([]string, error) {
	users, err := r.users.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	addresses := make([]string, 0, len(users))
	for _, u := range users {
		if !u.SubscribedToAll || !u.Reachable() {
			continue
		}
		if _, dup := seen[u.PushToken]; dup {
			continue
		}
		seen[u.PushToken] = struct{}{}
		addresses = append(addresses, u.PushToken)
	}
	return addresses, nil
}
