package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/armelyara/TraficDay/internal/domain"
	"github.com/armelyara/TraficDay/internal/service"
	mock_service "github.com/armelyara/TraficDay/internal/service/mocks"
)

// A fresh report must reach the store with every aggregate set allocated:
// the postgres writer maps nil slices to SQL NULL, which its NOT NULL
// uuid[] columns reject.
func TestReport_AggregateSetsNeverNil(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_service.NewMockObstacleStore(ctrl)
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	reporter := service.NewReportService(store, clock, testLogger(), 4*time.Hour)

	var created *domain.Obstacle
	store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o *domain.Obstacle) error {
			created = o
			return nil
		})

	reporterID := uuid.New()
	if _, err := reporter.Report(context.Background(), reportReq(domain.ObstacleFlood, 5.30, -4.00, reporterID)); err != nil {
		t.Fatalf("report: %v", err)
	}

	if created == nil {
		t.Fatal("store never saw the obstacle")
	}
	if created.ConfirmedBy == nil || len(created.ConfirmedBy) != 1 {
		t.Fatalf("confirmedBy = %v, want the reporter", created.ConfirmedBy)
	}
	if created.LinkedObstacles == nil {
		t.Fatal("linkedObstacles is nil")
	}
	if created.ResolvedBy == nil {
		t.Fatal("resolvedBy is nil")
	}
}
