package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/armelyara/TraficDay/internal/domain"
)

func TestDetector_NearbyReportLinksToPrimary(t *testing.T) {
	t.Parallel()

	eng := newEngine()
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()

	primaryID, err := eng.reporter.Report(ctx, reportReq(domain.ObstacleFlood, 5.30, -4.00, alice))
	if err != nil {
		t.Fatalf("first report: %v", err)
	}

	// ~40 meters away, same type: folds into the first report.
	dupID, err := eng.reporter.Report(ctx, reportReq(domain.ObstacleFlood, 5.3003, -4.0003, bob))
	if err != nil {
		t.Fatalf("second report: %v", err)
	}

	primary, err := eng.store.Get(ctx, primaryID)
	if err != nil {
		t.Fatalf("get primary: %v", err)
	}
	if !primary.IsPrimary {
		t.Fatal("first report lost primary status")
	}
	if primary.Confirmations != 2 {
		t.Fatalf("confirmations = %d, want 2", primary.Confirmations)
	}
	if !primary.HasLinked(dupID) {
		t.Fatal("duplicate missing from primary's linked set")
	}

	dup, err := eng.store.Get(ctx, dupID)
	if err != nil {
		t.Fatalf("get duplicate: %v", err)
	}
	if dup.IsPrimary {
		t.Fatal("duplicate still marked primary")
	}
	if dup.LinkedTo == nil || *dup.LinkedTo != primaryID {
		t.Fatalf("duplicate linkedTo = %v, want %s", dup.LinkedTo, primaryID)
	}
	if len(dup.LinkedObstacles) != 0 {
		t.Fatal("duplicate carries its own linked set")
	}
	// The reporter's vote moved to the primary; the demoted record keeps
	// no confirmer state of its own.
	if dup.Confirmations != 0 || len(dup.ConfirmedBy) != 0 {
		t.Fatalf("duplicate keeps confirmer state: confirmations=%d confirmedBy=%d",
			dup.Confirmations, len(dup.ConfirmedBy))
	}
}

func TestDetector_FarReportStaysIndependent(t *testing.T) {
	t.Parallel()

	eng := newEngine()
	ctx := context.Background()

	firstID, err := eng.reporter.Report(ctx, reportReq(domain.ObstacleFlood, 5.30, -4.00, uuid.New()))
	if err != nil {
		t.Fatalf("first report: %v", err)
	}

	// ~200 meters away, well past the duplicate radius.
	secondID, err := eng.reporter.Report(ctx, reportReq(domain.ObstacleFlood, 5.3018, -4.00, uuid.New()))
	if err != nil {
		t.Fatalf("second report: %v", err)
	}

	second, _ := eng.store.Get(ctx, secondID)
	if !second.IsPrimary || second.LinkedTo != nil {
		t.Fatalf("far report should stay primary: %+v", second)
	}
	first, _ := eng.store.Get(ctx, firstID)
	if first.Confirmations != 1 {
		t.Fatalf("first report confirmations = %d, want 1", first.Confirmations)
	}
}

func TestDetector_DifferentTypeStaysIndependent(t *testing.T) {
	t.Parallel()

	eng := newEngine()
	ctx := context.Background()

	if _, err := eng.reporter.Report(ctx, reportReq(domain.ObstacleFlood, 5.30, -4.00, uuid.New())); err != nil {
		t.Fatalf("first report: %v", err)
	}

	accidentID, err := eng.reporter.Report(ctx, reportReq(domain.ObstacleAccident, 5.3001, -4.0001, uuid.New()))
	if err != nil {
		t.Fatalf("second report: %v", err)
	}

	accident, _ := eng.store.Get(ctx, accidentID)
	if !accident.IsPrimary || accident.LinkedTo != nil {
		t.Fatalf("different type must not merge: %+v", accident)
	}
}

func TestDetector_PicksClosestPrimary(t *testing.T) {
	t.Parallel()

	eng := newEngine()
	ctx := context.Background()

	// Two same-type primaries ~66m apart survive as independents; the
	// third report lands between them, inside the radius of both.
	farID, err := eng.reporter.Report(ctx, reportReq(domain.ObstaclePolice, 5.30, -4.00, uuid.New()))
	if err != nil {
		t.Fatalf("far seed: %v", err)
	}
	nearID, err := eng.reporter.Report(ctx, reportReq(domain.ObstaclePolice, 5.3006, -4.00, uuid.New()))
	if err != nil {
		t.Fatalf("near seed: %v", err)
	}
	_ = farID

	thirdID, err := eng.reporter.Report(ctx, reportReq(domain.ObstaclePolice, 5.3004, -4.00, uuid.New()))
	if err != nil {
		t.Fatalf("third report: %v", err)
	}

	third, _ := eng.store.Get(ctx, thirdID)
	if third.LinkedTo == nil || *third.LinkedTo != nearID {
		t.Fatalf("linkedTo = %v, want nearest primary %s", third.LinkedTo, nearID)
	}
}
