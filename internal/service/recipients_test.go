package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/armelyara/TraficDay/internal/domain"
	"github.com/armelyara/TraficDay/internal/service"
	"github.com/armelyara/TraficDay/internal/storage/memory"
	"github.com/armelyara/TraficDay/pkg/geo"
)

func contains(addresses []string, token string) bool {
	for _, a := range addresses {
		if a == token {
			return true
		}
	}
	return false
}

func TestRecipients_RadiusAndExclusion(t *testing.T) {
	t.Parallel()

	eng := newEngine()
	ctx := context.Background()

	reporter := uuid.New()
	obstacleID, err := eng.reporter.Report(ctx, reportReq(domain.ObstacleFlood, 5.30, -4.00, reporter))
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	// The reporter has a token and is right on top of the obstacle, but
	// is already involved.
	eng.dir.Put(&domain.User{
		ID:        reporter,
		Location:  &geo.Point{Lat: 5.30, Lng: -4.00},
		PushToken: "tok-reporter",
	})
	nearToken := "tok-near"
	seedUser(eng.dir, nearToken, &geo.Point{Lat: 5.305, Lng: -4.00}, false) // ~550m
	farToken := "tok-far"
	seedUser(eng.dir, farToken, &geo.Point{Lat: 5.35, Lng: -4.00}, false) // ~5.5km
	allToken := "tok-all"
	seedUser(eng.dir, allToken, &geo.Point{Lat: 5.35, Lng: -4.00}, true) // far but subscribed
	seedUser(eng.dir, "", &geo.Point{Lat: 5.30, Lng: -4.00}, false)      // near, no token

	recipients := service.NewRecipientResolver(eng.store, eng.dir, testLogger(), testNotifRadiusKm)

	intent := domain.NotificationIntent{
		ObstacleID: obstacleID,
		Type:       domain.ObstacleFlood,
		Location:   geo.Point{Lat: 5.30, Lng: -4.00},
	}

	addresses, err := recipients.Resolve(ctx, intent)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if contains(addresses, "tok-reporter") {
		t.Fatal("reporter must be excluded")
	}
	if !contains(addresses, nearToken) {
		t.Fatal("in-radius user missing")
	}
	if contains(addresses, farToken) {
		t.Fatal("out-of-radius user included")
	}
	if !contains(addresses, allToken) {
		t.Fatal("broad-topic subscriber missing despite distance")
	}
	if len(addresses) != 2 {
		t.Fatalf("addresses = %v, want exactly [near, all]", addresses)
	}
}

func TestRecipients_ConfirmersExcluded(t *testing.T) {
	t.Parallel()

	eng := newEngine()
	ctx := context.Background()

	obstacleID, err := eng.reporter.Report(ctx, reportReq(domain.ObstacleAccident, 5.30, -4.00, uuid.New()))
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	confirmer := uuid.New()
	if _, err := eng.confirmer.Confirm(ctx, obstacleID, confirmer); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	eng.dir.Put(&domain.User{
		ID:        confirmer,
		Location:  &geo.Point{Lat: 5.30, Lng: -4.00},
		PushToken: "tok-confirmer",
	})

	recipients := service.NewRecipientResolver(eng.store, eng.dir, testLogger(), testNotifRadiusKm)
	addresses, err := recipients.Resolve(ctx, domain.NotificationIntent{
		ObstacleID: obstacleID,
		Location:   geo.Point{Lat: 5.30, Lng: -4.00},
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if contains(addresses, "tok-confirmer") {
		t.Fatal("confirmer must be excluded")
	}
}

func TestRecipients_SharedTokenDeduplicated(t *testing.T) {
	t.Parallel()

	dir := memory.NewDirectory()
	store := memory.NewStore()

	shared := "tok-shared"
	seedUser(dir, shared, &geo.Point{Lat: 5.30, Lng: -4.00}, false)
	seedUser(dir, shared, &geo.Point{Lat: 5.30, Lng: -4.00}, false)

	recipients := service.NewRecipientResolver(store, dir, testLogger(), testNotifRadiusKm)
	addresses, err := recipients.Resolve(context.Background(), domain.NotificationIntent{
		ObstacleID: uuid.New(),
		Location:   geo.Point{Lat: 5.30, Lng: -4.00},
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(addresses) != 1 {
		t.Fatalf("addresses = %v, want one shared token delivered once", addresses)
	}
}

func TestRecipients_StaleLocationStillCounts(t *testing.T) {
	t.Parallel()

	// Last-known location is used as-is; the engine does not age it out.
	dir := memory.NewDirectory()
	store := memory.NewStore()

	id := seedUser(dir, "tok-stale", &geo.Point{Lat: 5.30, Lng: -4.00}, false)
	if err := dir.SaveLocation(context.Background(), id, geo.Point{Lat: 5.30, Lng: -4.00},
		time.Now().Add(-48*time.Hour)); err != nil {
		t.Fatalf("save location: %v", err)
	}

	recipients := service.NewRecipientResolver(store, dir, testLogger(), testNotifRadiusKm)
	addresses, err := recipients.Resolve(context.Background(), domain.NotificationIntent{
		ObstacleID: uuid.New(),
		Location:   geo.Point{Lat: 5.30, Lng: -4.00},
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !contains(addresses, "tok-stale") {
		t.Fatal("stale but last-known location should still target the user")
	}
}

func TestBroadcastAddresses_OnlySubscribers(t *testing.T) {
	t.Parallel()

	dir := memory.NewDirectory()
	store := memory.NewStore()

	seedUser(dir, "tok-sub", nil, true)
	seedUser(dir, "tok-unsub", nil, false)
	seedUser(dir, "", nil, true) // subscribed, unreachable

	recipients := service.NewRecipientResolver(store, dir, testLogger(), testNotifRadiusKm)
	addresses, err := recipients.BroadcastAddresses(context.Background())
	if err != nil {
		t.Fatalf("broadcast addresses: %v", err)
	}
	if len(addresses) != 1 || addresses[0] != "tok-sub" {
		t.Fatalf("addresses = %v, want [tok-sub]", addresses)
	}
}
