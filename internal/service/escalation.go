package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// EscalationEngine is the threshold state machine: below-threshold →
// notified, one way, guarded by the obstacle's notificationSent latch.
// The latch flip and the intent snapshot are written as one logical
// transaction by the store, so two confirms racing over the threshold
// produce exactly one intent.
type EscalationEngine struct {
	store     IntentStore
	queue     IntentQueue
	clock     Clock
	logger    *slog.Logger
	threshold int
}

func NewEscalationEngine(store IntentStore, queue IntentQueue, clock Clock, logger *slog.Logger, threshold int) *EscalationEngine {
	return &EscalationEngine{
		store:     store,
		queue:     queue,
		clock:     clock,
		logger:    logger,
		threshold: threshold,
	}
}

// CheckThreshold creates and enqueues the notification intent if the
// obstacle just crossed the confirmation threshold. No-op otherwise.
func (s *EscalationEngine) CheckThreshold(ctx context.Context, obstacleID uuid.UUID) error {
	intent, latched, err := s.store.LatchIntent(ctx, obstacleID, s.threshold, s.clock.Now())
	if err != nil {
		return err
	}
	if !latched {
		return nil
	}

	s.logger.Info("obstacle escalated",
		slog.String("obstacle_id", obstacleID.String()),
		slog.Int("confirmations", intent.Confirmations),
	)

	if err := s.queue.Enqueue(ctx, *intent); err != nil {
		// The intent is persisted with sent=false; the reaper re-enqueues
		// unsent intents, so a lost enqueue delays the alert, not drops it.
		s.logger.Error("intent enqueue failed",
			slog.String("obstacle_id", obstacleID.String()),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}
