package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/armelyara/TraficDay/internal/domain"
	"github.com/armelyara/TraficDay/pkg/geo"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// ObstacleStore is the persisted obstacle collection. Update applies
// mutate under per-obstacle serialization (row lock or equivalent): the
// callback sees the current record, and either its changes are persisted
// atomically or, when it returns an error, nothing is written and the
// error is handed back unchanged.
type ObstacleStore interface {
	Create(ctx context.Context, o *domain.Obstacle) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Obstacle, error)
	ListActive(ctx context.Context) ([]*domain.Obstacle, error)
	List(ctx context.Context, page, limit int) ([]*domain.Obstacle, int64, error)
	Update(ctx context.Context, id uuid.UUID, mutate func(*domain.Obstacle) error) (*domain.Obstacle, error)

	// SubscribeCreated registers a handler invoked synchronously after a
	// record is persisted. Handlers receive the stored record and run
	// outside any store lock.
	SubscribeCreated(h func(ctx context.Context, o *domain.Obstacle))
}

// IntentStore persists notification intents keyed by obstacle id.
// LatchIntent flips the obstacle's notificationSent flag and writes the
// intent snapshot as one logical transaction; it reports false without
// side effects when the obstacle is below threshold, already notified,
// not primary, or inactive.
type IntentStore interface {
	LatchIntent(ctx context.Context, obstacleID uuid.UUID, threshold int, now time.Time) (*domain.NotificationIntent, bool, error)
	GetIntent(ctx context.Context, obstacleID uuid.UUID) (*domain.NotificationIntent, error)
	MarkIntentSent(ctx context.Context, obstacleID uuid.UUID, at time.Time) error
	ListUnsentIntents(ctx context.Context, olderThan time.Time) ([]*domain.NotificationIntent, error)
}

// UserDirectory is the persisted user collection, read-mostly from the
// engine's side. ClearToken is the invalid-address cleanup path and may
// touch several users sharing one stale token.
type UserDirectory interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	SaveLocation(ctx context.Context, id uuid.UUID, p geo.Point, at time.Time) error
	SaveToken(ctx context.Context, id uuid.UUID, token string) error
	SaveSubscription(ctx context.Context, id uuid.UUID, subscribedToAll bool) error
	ClearToken(ctx context.Context, token string) (int64, error)
}

// IntentQueue decouples escalation from dispatch so that no per-obstacle
// lock is ever held across sender I/O. Dequeue returns e.ErrQueueEmpty
// when the wait times out with nothing to deliver.
type IntentQueue interface {
	Enqueue(ctx context.Context, intent domain.NotificationIntent) error
	Dequeue(ctx context.Context, timeout time.Duration) (domain.NotificationIntent, error)
}

// Sender is the external push-delivery capability. A non-nil error means
// the batch attempt itself failed (nothing was delivered); per-address
// failures come back in the results.
type Sender interface {
	Send(ctx context.Context, addresses []string, msg domain.PushMessage) ([]domain.DeliveryResult, error)
}

// ObstacleCache holds the active-obstacle projection for the public
// nearby query.
type ObstacleCache interface {
	GetActive(ctx context.Context) ([]domain.CachedObstacle, error)
	SetActive(ctx context.Context, obstacles []domain.CachedObstacle, ttl time.Duration) error
}

// Clock is injected wherever expiry or snapshot timestamps are taken.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// errSkipWrite aborts a store mutation from inside the callback without
// persisting anything; callers use it for "checked under lock, nothing to
// do" paths.
var errSkipWrite = errors.New("skip write")

// Service bundles the engine's use cases for the transport layer.
type Service struct {
	Reporter   *ReportService
	Confirmer  *ConfirmService
	Escalation *EscalationEngine
	Dispatcher *Dispatcher
	Reaper     *Reaper
	Location   *LocationService
	Users      *UserService
	Admin      *AdminService
	Stats      *StatsService
}
