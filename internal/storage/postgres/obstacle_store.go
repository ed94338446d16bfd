package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/armelyara/TraficDay/internal/domain"
	"github.com/armelyara/TraficDay/pkg/e"
	"github.com/armelyara/TraficDay/pkg/geo"
)

// ObstacleStore persists obstacles and notification intents. Atomic
// updates run inside a transaction holding a row lock (SELECT FOR
// UPDATE), which gives the per-obstacle serialization the engine relies
// on; unrelated obstacles never contend.
type ObstacleStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger

	handlersMu sync.RWMutex
	onCreated  []func(ctx context.Context, o *domain.Obstacle)
}

func NewObstacleStore(pool *pgxpool.Pool, logger *slog.Logger) *ObstacleStore {
	return &ObstacleStore{pool: pool, logger: logger}
}

const obstacleColumns = `
	id, type,
	ST_Y(geo_point::geometry) AS lat,
	ST_X(geo_point::geometry) AS lng,
	severity, description, reporter_id,
	active, is_primary, linked_to,
	linked_obstacles, confirmed_by, confirmations,
	resolved_by, resolved_count,
	notification_sent, created_at, expires_at
`

func (p *ObstacleStore) Create(ctx context.Context, o *domain.Obstacle) error {
	const op = "postgres.Obstacle.Create"

	const query = `
INSERT INTO obstacles (
	id, type, geo_point, severity, description, reporter_id,
	active, is_primary, linked_to,
	linked_obstacles, confirmed_by, confirmations,
	resolved_by, resolved_count,
	notification_sent, created_at, expires_at
) VALUES (
	$1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6, $7,
	$8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
)`

	_, err := p.pool.Exec(ctx, query,
		o.ID,
		o.Type,
		o.Location.Lng,
		o.Location.Lat,
		o.Severity,
		o.Description,
		o.ReporterID,
		o.Active,
		o.IsPrimary,
		o.LinkedTo,
		idArray(o.LinkedObstacles),
		idArray(o.ConfirmedBy),
		o.Confirmations,
		idArray(o.ResolvedBy),
		o.ResolvedCount,
		o.NotificationSent,
		o.CreatedAt,
		o.ExpiresAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	p.handlersMu.RLock()
	handlers := p.onCreated
	p.handlersMu.RUnlock()
	for _, h := range handlers {
		h(ctx, o)
	}

	return nil
}

func (p *ObstacleStore) Get(ctx context.Context, id uuid.UUID) (*domain.Obstacle, error) {
	const op = "postgres.Obstacle.Get"

	query := `SELECT ` + obstacleColumns + ` FROM obstacles WHERE id = $1`

	o, err := scanObstacle(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return o, nil
}

func (p *ObstacleStore) ListActive(ctx context.Context) ([]*domain.Obstacle, error) {
	const op = "postgres.Obstacle.ListActive"

	query := `SELECT ` + obstacleColumns + ` FROM obstacles WHERE active = true`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return collectObstacles(ctx, op, rows)
}

func (p *ObstacleStore) List(ctx context.Context, page, limit int) ([]*domain.Obstacle, int64, error) {
	const op = "postgres.Obstacle.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM obstacles`).Scan(&total); err != nil {
		return nil, 0, e.WrapError(ctx, op, err)
	}

	query := `SELECT ` + obstacleColumns + `
FROM obstacles
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	rows, err := p.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	obstacles, err := collectObstacles(ctx, op, rows)
	if err != nil {
		return nil, 0, err
	}
	return obstacles, total, nil
}

func (p *ObstacleStore) Update(ctx context.Context, id uuid.UUID, mutate func(*domain.Obstacle) error) (*domain.Obstacle, error) {
	const op = "postgres.Obstacle.Update"

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	o, err := lockObstacle(ctx, tx, id)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	if err := mutate(o); err != nil {
		// Mutation aborts pass through untouched so callers can branch on
		// their own sentinels.
		return nil, err
	}

	if err := writeObstacle(ctx, tx, o); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return o, nil
}

func (p *ObstacleStore) SubscribeCreated(h func(ctx context.Context, o *domain.Obstacle)) {
	p.handlersMu.Lock()
	defer p.handlersMu.Unlock()
	p.onCreated = append(p.onCreated, h)
}

// LatchIntent performs the escalation latch: flip notification_sent and
// write the intent snapshot in one transaction under the obstacle's row
// lock.
func (p *ObstacleStore) LatchIntent(ctx context.Context, obstacleID uuid.UUID, threshold int, now time.Time) (*domain.NotificationIntent, bool, error) {
	const op = "postgres.Obstacle.LatchIntent"

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, false, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	o, err := lockObstacle(ctx, tx, obstacleID)
	if err != nil {
		return nil, false, e.WrapError(ctx, op, err)
	}

	if !o.Active || !o.IsPrimary || o.NotificationSent || o.Confirmations < threshold {
		return nil, false, nil
	}

	o.NotificationSent = true
	if err := writeObstacle(ctx, tx, o); err != nil {
		return nil, false, e.WrapError(ctx, op, err)
	}

	intent := &domain.NotificationIntent{
		ObstacleID:    o.ID,
		Type:          o.Type,
		Location:      o.Location,
		Description:   o.Description,
		Confirmations: o.Confirmations,
		CreatedAt:     now,
	}

	const insertIntent = `
INSERT INTO notification_intents (
	obstacle_id, type, lat, lng, description, confirmations, created_at, sent
) VALUES ($1, $2, $3, $4, $5, $6, $7, false)`

	if _, err := tx.Exec(ctx, insertIntent,
		intent.ObstacleID,
		intent.Type,
		intent.Location.Lat,
		intent.Location.Lng,
		intent.Description,
		intent.Confirmations,
		intent.CreatedAt,
	); err != nil {
		return nil, false, e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, e.WrapError(ctx, op, err)
	}
	return intent, true, nil
}

func (p *ObstacleStore) GetIntent(ctx context.Context, obstacleID uuid.UUID) (*domain.NotificationIntent, error) {
	const op = "postgres.Intent.Get"

	const query = `
SELECT obstacle_id, type, lat, lng, description, confirmations, created_at, sent, sent_at
FROM notification_intents
WHERE obstacle_id = $1`

	var intent domain.NotificationIntent
	err := p.pool.QueryRow(ctx, query, obstacleID).Scan(
		&intent.ObstacleID,
		&intent.Type,
		&intent.Location.Lat,
		&intent.Location.Lng,
		&intent.Description,
		&intent.Confirmations,
		&intent.CreatedAt,
		&intent.Sent,
		&intent.SentAt,
	)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return &intent, nil
}

func (p *ObstacleStore) MarkIntentSent(ctx context.Context, obstacleID uuid.UUID, at time.Time) error {
	const op = "postgres.Intent.MarkSent"

	tag, err := p.pool.Exec(ctx,
		`UPDATE notification_intents SET sent = true, sent_at = $2 WHERE obstacle_id = $1`,
		obstacleID, at,
	)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (p *ObstacleStore) ListUnsentIntents(ctx context.Context, olderThan time.Time) ([]*domain.NotificationIntent, error) {
	const op = "postgres.Intent.ListUnsent"

	const query = `
SELECT obstacle_id, type, lat, lng, description, confirmations, created_at, sent, sent_at
FROM notification_intents
WHERE sent = false AND created_at < $1`

	rows, err := p.pool.Query(ctx, query, olderThan)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	intents := make([]*domain.NotificationIntent, 0, 8)
	for rows.Next() {
		var intent domain.NotificationIntent
		if err := rows.Scan(
			&intent.ObstacleID,
			&intent.Type,
			&intent.Location.Lat,
			&intent.Location.Lng,
			&intent.Description,
			&intent.Confirmations,
			&intent.CreatedAt,
			&intent.Sent,
			&intent.SentAt,
		); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		intents = append(intents, &intent)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return intents, nil
}

// --- row helpers ---

func lockObstacle(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Obstacle, error) {
	query := `SELECT ` + obstacleColumns + ` FROM obstacles WHERE id = $1 FOR UPDATE`
	return scanObstacle(tx.QueryRow(ctx, query, id))
}

func writeObstacle(ctx context.Context, tx pgx.Tx, o *domain.Obstacle) error {
	const query = `
UPDATE obstacles SET
	severity = $2,
	description = $3,
	active = $4,
	is_primary = $5,
	linked_to = $6,
	linked_obstacles = $7,
	confirmed_by = $8,
	confirmations = $9,
	resolved_by = $10,
	resolved_count = $11,
	notification_sent = $12,
	expires_at = $13
WHERE id = $1`

	_, err := tx.Exec(ctx, query,
		o.ID,
		o.Severity,
		o.Description,
		o.Active,
		o.IsPrimary,
		o.LinkedTo,
		idArray(o.LinkedObstacles),
		idArray(o.ConfirmedBy),
		o.Confirmations,
		idArray(o.ResolvedBy),
		o.ResolvedCount,
		o.NotificationSent,
		o.ExpiresAt,
	)
	return err
}

// idArray keeps uuid[] parameters non-NULL: pgx encodes a nil slice as
// SQL NULL, which the NOT NULL array columns reject.
func idArray(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanObstacle(row rowScanner) (*domain.Obstacle, error) {
	var (
		o        domain.Obstacle
		lat, lng float64
	)
	err := row.Scan(
		&o.ID,
		&o.Type,
		&lat,
		&lng,
		&o.Severity,
		&o.Description,
		&o.ReporterID,
		&o.Active,
		&o.IsPrimary,
		&o.LinkedTo,
		&o.LinkedObstacles,
		&o.ConfirmedBy,
		&o.Confirmations,
		&o.ResolvedBy,
		&o.ResolvedCount,
		&o.NotificationSent,
		&o.CreatedAt,
		&o.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	o.Location = geo.Point{Lat: lat, Lng: lng}
	return &o, nil
}

func collectObstacles(ctx context.Context, op string, rows pgx.Rows) ([]*domain.Obstacle, error) {
	obstacles := make([]*domain.Obstacle, 0, 16)
	for rows.Next() {
		o, err := scanObstacle(rows)
		if err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		obstacles = append(obstacles, o)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return obstacles, nil
}
