package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/armelyara/TraficDay/internal/domain"
)

func TestConfirm_SucceedsOncePerUser(t *testing.T) {
	t.Parallel()

	eng := newEngine()
	ctx := context.Background()

	id, err := eng.reporter.Report(ctx, reportReq(domain.ObstacleAccident, 5.31, -4.01, uuid.New()))
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	voter := uuid.New()

	outcome, err := eng.confirmer.Confirm(ctx, id, voter)
	if err != nil {
		t.Fatalf("first confirm: %v", err)
	}
	if outcome != domain.OutcomeSuccess {
		t.Fatalf("outcome = %q, want success", outcome)
	}

	outcome, err = eng.confirmer.Confirm(ctx, id, voter)
	if err != nil {
		t.Fatalf("repeat confirm: %v", err)
	}
	if outcome != domain.OutcomeAlreadyConfirmed {
		t.Fatalf("outcome = %q, want already_confirmed", outcome)
	}

	o, _ := eng.store.Get(ctx, id)
	if o.Confirmations != 2 {
		t.Fatalf("confirmations = %d, want 2 (reporter + one voter)", o.Confirmations)
	}
	if len(o.ConfirmedBy) != o.Confirmations {
		t.Fatalf("confirmers %d out of sync with count %d", len(o.ConfirmedBy), o.Confirmations)
	}
}

func TestConfirm_ReporterCannotDoubleCount(t *testing.T) {
	t.Parallel()

	eng := newEngine()
	ctx := context.Background()

	reporter := uuid.New()
	id, err := eng.reporter.Report(ctx, reportReq(domain.ObstacleTraffic, 5.31, -4.01, reporter))
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	outcome, err := eng.confirmer.Confirm(ctx, id, reporter)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if outcome != domain.OutcomeAlreadyConfirmed {
		t.Fatalf("outcome = %q, want already_confirmed", outcome)
	}

	o, _ := eng.store.Get(ctx, id)
	if o.Confirmations != 1 {
		t.Fatalf("confirmations = %d, want 1", o.Confirmations)
	}
}

func TestConfirm_OnDuplicateLandsOnPrimary(t *testing.T) {
	t.Parallel()

	eng := newEngine()
	ctx := context.Background()

	primaryID, err := eng.reporter.Report(ctx, reportReq(domain.ObstacleFlood, 5.30, -4.00, uuid.New()))
	if err != nil {
		t.Fatalf("primary report: %v", err)
	}
	dupID, err := eng.reporter.Report(ctx, reportReq(domain.ObstacleFlood, 5.3001, -4.0001, uuid.New()))
	if err != nil {
		t.Fatalf("duplicate report: %v", err)
	}

	voter := uuid.New()
	outcome, err := eng.confirmer.Confirm(ctx, dupID, voter)
	if err != nil {
		t.Fatalf("confirm via duplicate: %v", err)
	}
	if outcome != domain.OutcomeSuccess {
		t.Fatalf("outcome = %q, want success", outcome)
	}

	primary, _ := eng.store.Get(ctx, primaryID)
	if !primary.HasConfirmer(voter) {
		t.Fatal("vote did not land on the primary")
	}
	dup, _ := eng.store.Get(ctx, dupID)
	if dup.HasConfirmer(voter) {
		t.Fatal("vote recorded on the duplicate")
	}
}

func TestResolve_SucceedsOncePerUser(t *testing.T) {
	t.Parallel()

	eng := newEngine()
	ctx := context.Background()

	id, err := eng.reporter.Report(ctx, reportReq(domain.ObstacleClosure, 5.31, -4.01, uuid.New()))
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	voter := uuid.New()

	outcome, err := eng.confirmer.Resolve(ctx, id, voter)
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	if outcome != domain.OutcomeSuccess {
		t.Fatalf("outcome = %q, want success", outcome)
	}

	outcome, err = eng.confirmer.Resolve(ctx, id, voter)
	if err != nil {
		t.Fatalf("repeat resolve: %v", err)
	}
	if outcome != domain.OutcomeAlreadyResolved {
		t.Fatalf("outcome = %q, want already_resolved", outcome)
	}

	o, _ := eng.store.Get(ctx, id)
	if o.ResolvedCount != 1 {
		t.Fatalf("resolved_count = %d, want 1", o.ResolvedCount)
	}
	// Resolution votes never deactivate directly; that is the sweep's job.
	if !o.Active {
		t.Fatal("resolve vote deactivated the obstacle")
	}
}

func TestConfirm_UnknownObstacle(t *testing.T) {
	t.Parallel()

	eng := newEngine()

	if _, err := eng.confirmer.Confirm(context.Background(), uuid.New(), uuid.New()); err == nil {
		t.Fatal("expected error for unknown obstacle")
	}
}
