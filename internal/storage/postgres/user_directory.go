package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/armelyara/TraficDay/internal/domain"
	"github.com/armelyara/TraficDay/pkg/e"
	"github.com/armelyara/TraficDay/pkg/geo"
)

// UserDirectory persists the notification-targeting fields of user
// accounts. Device writes upsert: a token or location may land before
// anything else is known about the user.
type UserDirectory struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewUserDirectory(pool *pgxpool.Pool, logger *slog.Logger) *UserDirectory {
	return &UserDirectory{pool: pool, logger: logger}
}

const userColumns = `id, lat, lng, push_token, subscribed_all, location_at`

func (d *UserDirectory) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const op = "postgres.User.Get"

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(d.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return u, nil
}

func (d *UserDirectory) List(ctx context.Context) ([]*domain.User, error) {
	const op = "postgres.User.List"

	query := `SELECT ` + userColumns + ` FROM users`

	rows, err := d.pool.Query(ctx, query)
	if err != nil {
		d.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0, 32)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return users, nil
}

func (d *UserDirectory) SaveLocation(ctx context.Context, id uuid.UUID, p geo.Point, at time.Time) error {
	const op = "postgres.User.SaveLocation"

	const query = `
INSERT INTO users (id, lat, lng, location_at, subscribed_all)
VALUES ($1, $2, $3, $4, false)
ON CONFLICT (id) DO UPDATE SET lat = $2, lng = $3, location_at = $4`

	_, err := d.pool.Exec(ctx, query, id, p.Lat, p.Lng, at)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (d *UserDirectory) SaveToken(ctx context.Context, id uuid.UUID, token string) error {
	const op = "postgres.User.SaveToken"

	const query = `
INSERT INTO users (id, push_token, subscribed_all)
VALUES ($1, $2, false)
ON CONFLICT (id) DO UPDATE SET push_token = $2`

	_, err := d.pool.Exec(ctx, query, id, token)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (d *UserDirectory) SaveSubscription(ctx context.Context, id uuid.UUID, subscribedToAll bool) error {
	const op = "postgres.User.SaveSubscription"

	const query = `
INSERT INTO users (id, subscribed_all)
VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET subscribed_all = $2`

	_, err := d.pool.Exec(ctx, query, id, subscribedToAll)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (d *UserDirectory) ClearToken(ctx context.Context, token string) (int64, error) {
	const op = "postgres.User.ClearToken"

	tag, err := d.pool.Exec(ctx,
		`UPDATE users SET push_token = NULL WHERE push_token = $1`,
		token,
	)
	if err != nil {
		return 0, e.WrapError(ctx, op, err)
	}
	return tag.RowsAffected(), nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u          domain.User
		lat, lng   *float64
		token      *string
		locationAt *time.Time
	)
	err := row.Scan(&u.ID, &lat, &lng, &token, &u.SubscribedToAll, &locationAt)
	if err != nil {
		return nil, err
	}
	if lat != nil && lng != nil {
		u.Location = &geo.Point{Lat: *lat, Lng: *lng}
	}
	if token != nil {
		u.PushToken = *token
	}
	u.LocationAt = locationAt
	return &u, nil
}
