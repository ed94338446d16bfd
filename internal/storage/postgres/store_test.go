//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/armelyara/TraficDay/internal/domain"
	"github.com/armelyara/TraficDay/pkg/e"
	"github.com/armelyara/TraficDay/pkg/geo"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgis/postgis:16-3.4-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := setupSchema(ctx, testPool); err != nil {
		fmt.Println("setupSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func setupSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE EXTENSION IF NOT EXISTS postgis;

		CREATE TABLE IF NOT EXISTS obstacles (
			id uuid PRIMARY KEY,
			type text NOT NULL,
			geo_point geography(Point, 4326) NOT NULL,
			severity text NOT NULL,
			description text NOT NULL DEFAULT '',
			reporter_id uuid NOT NULL,
			active boolean NOT NULL DEFAULT true,
			is_primary boolean NOT NULL DEFAULT true,
			linked_to uuid,
			linked_obstacles uuid[] NOT NULL DEFAULT '{}',
			confirmed_by uuid[] NOT NULL DEFAULT '{}',
			confirmations integer NOT NULL DEFAULT 0,
			resolved_by uuid[] NOT NULL DEFAULT '{}',
			resolved_count integer NOT NULL DEFAULT 0,
			notification_sent boolean NOT NULL DEFAULT false,
			created_at timestamptz NOT NULL,
			expires_at timestamptz
		);

		CREATE TABLE IF NOT EXISTS notification_intents (
			obstacle_id uuid PRIMARY KEY,
			type text NOT NULL,
			lat double precision NOT NULL,
			lng double precision NOT NULL,
			description text NOT NULL DEFAULT '',
			confirmations integer NOT NULL,
			created_at timestamptz NOT NULL,
			sent boolean NOT NULL DEFAULT false,
			sent_at timestamptz
		);

		CREATE TABLE IF NOT EXISTS users (
			id uuid PRIMARY KEY,
			lat double precision,
			lng double precision,
			push_token text,
			subscribed_all boolean NOT NULL DEFAULT false,
			location_at timestamptz
		);
	`)
	return err
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE TABLE obstacles, notification_intents, users`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestObstacle(reporter uuid.UUID) *domain.Obstacle {
	return &domain.Obstacle{
		ID:            uuid.New(),
		Type:          domain.ObstacleFlood,
		Location:      geo.Point{Lat: 5.30, Lng: -4.00},
		Severity:      domain.SeverityHigh,
		Description:   "Inondation signalé(e)",
		ReporterID:    reporter,
		Active:        true,
		IsPrimary:     true,
		ConfirmedBy:   []uuid.UUID{reporter},
		Confirmations: 1,
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestObstacleStore_CreateGetRoundTrip(t *testing.T) {
	truncateAll(t)

	store := NewObstacleStore(testPool, testLogger())
	reporter := uuid.New()
	o := newTestObstacle(reporter)

	if err := store.Create(context.Background(), o); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.Get(context.Background(), o.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Type != o.Type || !got.Active || !got.IsPrimary {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Confirmations != 1 || len(got.ConfirmedBy) != 1 || got.ConfirmedBy[0] != reporter {
		t.Fatalf("confirmation state mismatch: %+v", got)
	}
}

func TestObstacleStore_NilUUIDSlicesWriteAsEmptyArrays(t *testing.T) {
	truncateAll(t)

	store := NewObstacleStore(testPool, testLogger())
	o := newTestObstacle(uuid.New())
	o.LinkedObstacles = nil
	o.ResolvedBy = nil

	// The uuid[] columns are NOT NULL; a nil slice must land as '{}'.
	if err := store.Create(context.Background(), o); err != nil {
		t.Fatalf("Create with nil uuid slices: %v", err)
	}

	got, err := store.Get(context.Background(), o.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.LinkedObstacles) != 0 || len(got.ResolvedBy) != 0 {
		t.Fatalf("aggregate sets not empty: %+v", got)
	}

	primaryID := uuid.New()
	_, err = store.Update(context.Background(), o.ID, func(cur *domain.Obstacle) error {
		cur.IsPrimary = false
		cur.LinkedTo = &primaryID
		cur.LinkedObstacles = nil
		cur.ConfirmedBy = nil
		cur.Confirmations = 0
		return nil
	})
	if err != nil {
		t.Fatalf("Update with nil uuid slices: %v", err)
	}
}

func TestObstacleStore_Get_NotFound(t *testing.T) {
	truncateAll(t)

	store := NewObstacleStore(testPool, testLogger())
	_, err := store.Get(context.Background(), uuid.New())
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestObstacleStore_Update_Atomic(t *testing.T) {
	truncateAll(t)

	store := NewObstacleStore(testPool, testLogger())
	o := newTestObstacle(uuid.New())
	if err := store.Create(context.Background(), o); err != nil {
		t.Fatalf("Create: %v", err)
	}

	confirmer := uuid.New()
	updated, err := store.Update(context.Background(), o.ID, func(cur *domain.Obstacle) error {
		cur.AddConfirmer(confirmer)
		return nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Confirmations != 2 {
		t.Fatalf("confirmations = %d, want 2", updated.Confirmations)
	}

	// Mutation error must leave the row untouched.
	boom := errors.New("boom")
	_, err = store.Update(context.Background(), o.ID, func(cur *domain.Obstacle) error {
		cur.Active = false
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("want mutation error passthrough, got %v", err)
	}

	got, err := store.Get(context.Background(), o.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.Active {
		t.Fatal("aborted mutation was persisted")
	}
}

func TestObstacleStore_LatchIntent_Once(t *testing.T) {
	truncateAll(t)

	store := NewObstacleStore(testPool, testLogger())
	o := newTestObstacle(uuid.New())
	o.ConfirmedBy = append(o.ConfirmedBy, uuid.New())
	o.Confirmations = 2
	if err := store.Create(context.Background(), o); err != nil {
		t.Fatalf("Create: %v", err)
	}

	now := time.Now().UTC()
	intent, latched, err := store.LatchIntent(context.Background(), o.ID, 2, now)
	if err != nil {
		t.Fatalf("LatchIntent: %v", err)
	}
	if !latched || intent == nil || intent.Confirmations != 2 {
		t.Fatalf("latched=%v intent=%+v", latched, intent)
	}

	_, latched, err = store.LatchIntent(context.Background(), o.ID, 2, now)
	if err != nil {
		t.Fatalf("second LatchIntent: %v", err)
	}
	if latched {
		t.Fatal("latch fired twice")
	}

	stored, err := store.GetIntent(context.Background(), o.ID)
	if err != nil {
		t.Fatalf("GetIntent: %v", err)
	}
	if stored.Sent {
		t.Fatal("fresh intent marked sent")
	}

	if err := store.MarkIntentSent(context.Background(), o.ID, now); err != nil {
		t.Fatalf("MarkIntentSent: %v", err)
	}
	stored, _ = store.GetIntent(context.Background(), o.ID)
	if !stored.Sent || stored.SentAt == nil {
		t.Fatalf("sent flag not persisted: %+v", stored)
	}
}

func TestUserDirectory_TokenLifecycle(t *testing.T) {
	truncateAll(t)

	dir := NewUserDirectory(testPool, testLogger())
	ctx := context.Background()
	userID := uuid.New()

	if err := dir.SaveToken(ctx, userID, "tok-1"); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}
	if err := dir.SaveLocation(ctx, userID, geo.Point{Lat: 5.3, Lng: -4.0}, time.Now().UTC()); err != nil {
		t.Fatalf("SaveLocation: %v", err)
	}
	if err := dir.SaveSubscription(ctx, userID, true); err != nil {
		t.Fatalf("SaveSubscription: %v", err)
	}

	u, err := dir.Get(ctx, userID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if u.PushToken != "tok-1" || u.Location == nil || !u.SubscribedToAll {
		t.Fatalf("user state mismatch: %+v", u)
	}

	cleared, err := dir.ClearToken(ctx, "tok-1")
	if err != nil {
		t.Fatalf("ClearToken: %v", err)
	}
	if cleared != 1 {
		t.Fatalf("cleared = %d, want 1", cleared)
	}

	u, _ = dir.Get(ctx, userID)
	if u.Reachable() {
		t.Fatal("token survived cleanup")
	}
}
