package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/armelyara/TraficDay/internal/domain"
	"github.com/armelyara/TraficDay/pkg/geo"
)

// Full pipeline: two drivers report the same flood minutes apart, the
// reports merge, the merged confirmation count trips the threshold, and
// exactly one alert goes out to nearby uninvolved drivers.
func TestScenario_TwoReportsOneAlert(t *testing.T) {
	t.Parallel()

	eng := newEngine()
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()

	eng.dir.Put(&domain.User{ID: alice, Location: &geo.Point{Lat: 5.30, Lng: -4.00}, PushToken: "tok-alice"})
	eng.dir.Put(&domain.User{ID: bob, Location: &geo.Point{Lat: 5.3003, Lng: -4.0003}, PushToken: "tok-bob"})
	eng.dir.Put(&domain.User{ID: carol, Location: &geo.Point{Lat: 5.31, Lng: -4.00}, PushToken: "tok-carol"})

	primaryID, err := eng.reporter.Report(ctx, reportReq(domain.ObstacleFlood, 5.30, -4.00, alice))
	if err != nil {
		t.Fatalf("alice's report: %v", err)
	}

	dupID, err := eng.reporter.Report(ctx, reportReq(domain.ObstacleFlood, 5.3003, -4.0003, bob))
	if err != nil {
		t.Fatalf("bob's report: %v", err)
	}

	primary, _ := eng.store.Get(ctx, primaryID)
	if primary.Confirmations != 2 {
		t.Fatalf("confirmations = %d, want 2", primary.Confirmations)
	}
	if !primary.NotificationSent {
		t.Fatal("threshold crossed but latch not set")
	}
	dup, _ := eng.store.Get(ctx, dupID)
	if dup.IsPrimary {
		t.Fatal("bob's report was not merged")
	}

	intent, err := eng.queue.Dequeue(ctx, time.Second)
	if err != nil {
		t.Fatalf("no intent queued: %v", err)
	}

	if _, err := eng.dispatcher.Dispatch(ctx, intent); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	batches := eng.sender.sent()
	if len(batches) != 1 {
		t.Fatalf("batches = %d, want 1", len(batches))
	}
	got := batches[0]
	if len(got) != 1 || got[0] != "tok-carol" {
		t.Fatalf("recipients = %v, want carol only (alice and bob are involved)", got)
	}

	// Carol checks her surroundings and sees one hazard, not two.
	resp, err := eng.location.CheckLocation(ctx, domain.LocationCheckRequest{
		UserID: carol.String(),
		Lat:    5.31,
		Lng:    -4.00,
	})
	if err != nil {
		t.Fatalf("location check: %v", err)
	}
	if len(resp.Obstacles) != 1 {
		t.Fatalf("nearby = %d, want the merged hazard once", len(resp.Obstacles))
	}
	if resp.Obstacles[0].ID != primaryID {
		t.Fatalf("nearby id = %s, want primary %s", resp.Obstacles[0].ID, primaryID)
	}
}

// A third report on the same hazard after escalation merges quietly.
func TestScenario_LateReportNoSecondAlert(t *testing.T) {
	t.Parallel()

	eng := newEngine()
	ctx := context.Background()

	if _, err := eng.reporter.Report(ctx, reportReq(domain.ObstacleAccident, 5.30, -4.00, uuid.New())); err != nil {
		t.Fatalf("first report: %v", err)
	}
	if _, err := eng.reporter.Report(ctx, reportReq(domain.ObstacleAccident, 5.3002, -4.0002, uuid.New())); err != nil {
		t.Fatalf("second report: %v", err)
	}
	if _, err := eng.reporter.Report(ctx, reportReq(domain.ObstacleAccident, 5.3001, -4.0001, uuid.New())); err != nil {
		t.Fatalf("third report: %v", err)
	}

	if intents := drainQueue(t, eng); len(intents) != 1 {
		t.Fatalf("intents = %d, want exactly 1", len(intents))
	}
}
