package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/armelyara/TraficDay/internal/domain"
)

// Reaper periodically deactivates expired and community-resolved
// obstacles and re-enqueues escalation intents whose dispatch never
// completed. It only ever touches obstacle fields; no notifications are
// cascaded from a deactivation.
type Reaper struct {
	store         ObstacleStore
	intents       IntentStore
	queue         IntentQueue
	clock         Clock
	logger        *slog.Logger
	interval      time.Duration
	resolutionMin int
	retryAfter    time.Duration
	storeTimeout  time.Duration
}

func NewReaper(
	store ObstacleStore,
	intents IntentStore,
	queue IntentQueue,
	clock Clock,
	logger *slog.Logger,
	interval time.Duration,
	resolutionMin int,
	retryAfter time.Duration,
	storeTimeout time.Duration,
) *Reaper {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	if storeTimeout <= 0 {
		storeTimeout = 5 * time.Second
	}
	return &Reaper{
		store:         store,
		intents:       intents,
		queue:         queue,
		clock:         clock,
		logger:        logger,
		interval:      interval,
		resolutionMin: resolutionMin,
		retryAfter:    retryAfter,
		storeTimeout:  storeTimeout,
	}
}

// storeCtx bounds a single store call; the sweep loop itself runs on the
// unexpiring process context.
func (r *Reaper) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.storeTimeout)
}

// Run sweeps on a fixed interval until ctx is canceled.
func (r *Reaper) Run(ctx context.Context) {
	r.logger.Info("reaper started", slog.Duration("interval", r.interval))

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("reaper stopped", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			r.Sweep(ctx, r.clock.Now())
		}
	}
}

// Sweep runs one pass. Expiry and resolution checks are independent;
// either deactivates. Deactivation goes through the same per-obstacle
// serialization as every other mutation, so sweeps run safely alongside
// live confirms.
func (r *Reaper) Sweep(ctx context.Context, now time.Time) {
	listCtx, cancel := r.storeCtx(ctx)
	active, err := r.store.ListActive(listCtx)
	cancel()
	if err != nil {
		r.logger.Error("sweep: list active failed", slog.Any("error", err))
		return
	}

	var expired, resolved int
	for _, o := range active {
		reason := r.deactivationReason(o, now)
		if reason == "" {
			continue
		}

		updateCtx, cancel := r.storeCtx(ctx)
		_, err := r.store.Update(updateCtx, o.ID, func(cur *domain.Obstacle) error {
			if !cur.Active {
				return errSkipWrite
			}
			// Re-derive under lock; a racing resolve vote may have just
			// pushed the count over.
			if r.deactivationReason(cur, now) == "" {
				return errSkipWrite
			}
			cur.Active = false
			return nil
		})
		cancel()
		if errors.Is(err, errSkipWrite) {
			continue
		}
		if err != nil {
			r.logger.Error("sweep: deactivate failed",
				slog.String("obstacle_id", o.ID.String()),
				slog.Any("error", err),
			)
			continue
		}

		switch reason {
		case domain.DeactivatedExpired:
			expired++
		case domain.DeactivatedResolved:
			resolved++
		}
		r.logger.Info("obstacle deactivated",
			slog.String("obstacle_id", o.ID.String()),
			slog.String("reason", string(reason)),
		)
	}

	requeued := r.requeueStaleIntents(ctx, now)

	r.logger.Info("sweep done",
		slog.Int("active", len(active)),
		slog.Int("expired", expired),
		slog.Int("resolved", resolved),
		slog.Int("intents_requeued", requeued),
	)
}

func (r *Reaper) deactivationReason(o *domain.Obstacle, now time.Time) domain.DeactivationReason {
	if o.Expired(now) {
		return domain.DeactivatedExpired
	}
	if o.ResolvedCount >= r.resolutionMin {
		return domain.DeactivatedResolved
	}
	return ""
}

// requeueStaleIntents puts intents that escalated but never finished
// dispatching back on the queue. Dispatch is idempotent on sent intents,
// so over-requeueing is harmless.
func (r *Reaper) requeueStaleIntents(ctx context.Context, now time.Time) int {
	listCtx, cancel := r.storeCtx(ctx)
	stale, err := r.intents.ListUnsentIntents(listCtx, now.Add(-r.retryAfter))
	cancel()
	if err != nil {
		r.logger.Error("sweep: list unsent intents failed", slog.Any("error", err))
		return 0
	}

	requeued := 0
	for _, intent := range stale {
		pushCtx, cancel := r.storeCtx(ctx)
		err := r.queue.Enqueue(pushCtx, *intent)
		cancel()
		if err != nil {
			r.logger.Error("sweep: intent requeue failed",
				slog.String("obstacle_id", intent.ObstacleID.String()),
				slog.Any("error", err),
			)
			continue
		}
		requeued++
	}
	return requeued
}
