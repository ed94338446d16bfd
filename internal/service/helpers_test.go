package service_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/armelyara/TraficDay/internal/domain"
	"github.com/armelyara/TraficDay/internal/service"
	"github.com/armelyara/TraficDay/internal/storage/memory"
	"github.com/armelyara/TraficDay/pkg/geo"
)

const (
	testDupRadiusKm   = 0.05
	testNotifRadiusKm = 1.6
	testNotifMin      = 2
	testResolutionMin = 5
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

// engine bundles a fully wired in-memory pipeline for behavioral tests.
type engine struct {
	store      *memory.Store
	dir        *memory.Directory
	queue      *memory.Queue
	clock      *fakeClock
	sender     *captureSender
	reporter   *service.ReportService
	confirmer  *service.ConfirmService
	escalation *service.EscalationEngine
	dispatcher *service.Dispatcher
	reaper     *service.Reaper
	location   *service.LocationService
}

func newEngine() *engine {
	logger := testLogger()
	store := memory.NewStore()
	dir := memory.NewDirectory()
	queue := memory.NewQueue(64)
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	sender := &captureSender{}

	escalation := service.NewEscalationEngine(store, queue, clock, logger, testNotifMin)
	detector := service.NewDuplicateDetector(store, escalation, logger, testDupRadiusKm)
	recipients := service.NewRecipientResolver(store, dir, logger, testNotifRadiusKm)

	eng := &engine{
		store:      store,
		dir:        dir,
		queue:      queue,
		clock:      clock,
		sender:     sender,
		reporter:   service.NewReportService(store, clock, logger, 4*time.Hour),
		confirmer:  service.NewConfirmService(store, escalation, logger),
		escalation: escalation,
		dispatcher: service.NewDispatcher(queue, store, recipients, sender, dir, clock, logger, time.Second, time.Second),
		reaper:     service.NewReaper(store, store, queue, clock, logger, 15*time.Minute, testResolutionMin, 10*time.Minute, time.Second),
		location:   service.NewLocationService(store, memory.NewCache(), logger, testNotifRadiusKm, 30*time.Second),
	}

	store.SubscribeCreated(detector.OnObstacleCreated)
	return eng
}

func reportReq(t domain.ObstacleType, lat, lng float64, reporter uuid.UUID) domain.ReportObstacleRequest {
	return domain.ReportObstacleRequest{
		Type:       t,
		Lat:        lat,
		Lng:        lng,
		ReporterID: reporter.String(),
	}
}

func seedUser(dir *memory.Directory, token string, loc *geo.Point, all bool) uuid.UUID {
	id := uuid.New()
	dir.Put(&domain.User{
		ID:              id,
		Location:        loc,
		PushToken:       token,
		SubscribedToAll: all,
	})
	return id
}

// captureSender records every batch it is asked to deliver. When results
// is nil it reports every address as delivered.
type captureSender struct {
	mu      sync.Mutex
	batches [][]string
	msgs    []domain.PushMessage
	results []domain.DeliveryResult
	err     error
}

func (s *captureSender) Send(_ context.Context, addresses []string, msg domain.PushMessage) ([]domain.DeliveryResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}

	batch := make([]string, len(addresses))
	copy(batch, addresses)
	s.batches = append(s.batches, batch)
	s.msgs = append(s.msgs, msg)

	if s.results != nil {
		return s.results, nil
	}
	out := make([]domain.DeliveryResult, 0, len(addresses))
	for _, addr := range addresses {
		out = append(out, domain.DeliveryResult{Address: addr, Success: true})
	}
	return out, nil
}

func (s *captureSender) sent() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]string, len(s.batches))
	copy(out, s.batches)
	return out
}
