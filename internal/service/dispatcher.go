package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/armelyara/TraficDay/internal/domain"
	"github.com/armelyara/TraficDay/pkg/e"
	"github.com/armelyara/TraficDay/pkg/validator"
)

// Dispatcher consumes escalated intents off the queue and pushes them out
// through the external sender. It owns the invalid-address cleanup: a
// permanently dead token is wiped from the user directory so future
// resolutions stop retrying it.
type Dispatcher struct {
	queue        IntentQueue
	intents      IntentStore
	recipients   *RecipientResolver
	sender       Sender
	users        UserDirectory
	clock        Clock
	logger       *slog.Logger
	sendTimeout  time.Duration
	storeTimeout time.Duration
}

func NewDispatcher(
	queue IntentQueue,
	intents IntentStore,
	recipients *RecipientResolver,
	sender Sender,
	users UserDirectory,
	clock Clock,
	logger *slog.Logger,
	sendTimeout time.Duration,
	storeTimeout time.Duration,
) *Dispatcher {
	if sendTimeout <= 0 {
		sendTimeout = 5 * time.Second
	}
	if storeTimeout <= 0 {
		storeTimeout = 5 * time.Second
	}
	return &Dispatcher{
		queue:        queue,
		intents:      intents,
		recipients:   recipients,
		sender:       sender,
		users:        users,
		clock:        clock,
		logger:       logger,
		sendTimeout:  sendTimeout,
		storeTimeout: storeTimeout,
	}
}

// storeCtx bounds a single store or directory call. The background loops
// run on the process context, which never expires on its own.
func (d *Dispatcher) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d.storeTimeout)
}

// Run blocks on the intent queue until ctx is canceled.
func (d *Dispatcher) Run(ctx context.Context) {
	d.logger.Info("dispatcher started")

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("dispatcher stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		intent, err := d.queue.Dequeue(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) || errors.Is(err, context.Canceled) {
				continue
			}
			d.logger.Error("intent dequeue failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		if _, err := d.Dispatch(ctx, intent); err != nil {
			d.logger.Error("dispatch failed",
				slog.String("obstacle_id", intent.ObstacleID.String()),
				slog.Any("error", err),
			)
		}
	}
}

// Dispatch sends one intent. Re-invoking with an intent already marked
// sent is a no-op, which makes queue replays and reaper retries safe.
func (d *Dispatcher) Dispatch(ctx context.Context, intent domain.NotificationIntent) (domain.DispatchReport, error) {
	const op = "service.Dispatch"

	report := domain.DispatchReport{ObstacleID: intent.ObstacleID}
	l := d.logger.With(slog.String("obstacle_id", intent.ObstacleID.String()))

	getCtx, cancel := d.storeCtx(ctx)
	stored, err := d.intents.GetIntent(getCtx, intent.ObstacleID)
	cancel()
	if err != nil && !errors.Is(err, e.ErrNotFound) {
		return report, fmt.Errorf("%s: %w", op, err)
	}
	if stored != nil && stored.Sent {
		l.Info("intent already dispatched, skipping")
		return report, nil
	}

	resolveCtx, cancel := d.storeCtx(ctx)
	addresses, err := d.recipients.Resolve(resolveCtx, intent)
	cancel()
	if err != nil {
		return report, fmt.Errorf("%s: %w", op, err)
	}
	report.Attempted = len(addresses)

	if len(addresses) > 0 {
		msg := domain.ComposeMessage(intent)

		sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
		results, err := d.sender.Send(sendCtx, addresses, msg)
		cancel()
		if err != nil {
			// Batch attempt itself failed; intent stays unsent and the
			// reaper will re-enqueue it.
			return report, fmt.Errorf("%s: %w", op, err)
		}

		report.Results = results
		d.handleFailures(ctx, l, results, &report)

		l.Info("notifications dispatched",
			slog.Int("attempted", report.Attempted),
			slog.Int("delivered", report.Delivered),
			slog.Int("invalid", report.Invalid),
		)
	} else {
		l.Info("no eligible recipients for intent")
	}

	// Sent means the attempt completed, not that every address succeeded.
	markCtx, cancel := d.storeCtx(ctx)
	err = d.intents.MarkIntentSent(markCtx, intent.ObstacleID, d.clock.Now())
	cancel()
	if err != nil {
		return report, fmt.Errorf("%s: %w", op, err)
	}

	return report, nil
}

func (d *Dispatcher) handleFailures(ctx context.Context, l *slog.Logger, results []domain.DeliveryResult, report *domain.DispatchReport) {
	for _, res := range results {
		if res.Success {
			report.Delivered++
			continue
		}
		if res.ErrorClass != domain.ErrorClassInvalidAddress {
			continue
		}
		report.Invalid++
		clearCtx, cancel := d.storeCtx(ctx)
		cleared, err := d.users.ClearToken(clearCtx, res.Address)
		cancel()
		if err != nil {
			l.Error("invalid token cleanup failed", slog.Any("error", err))
			continue
		}
		l.Info("invalid push token cleared", slog.Int64("users", cleared))
	}
}

// Broadcast sends a manual announcement to every broad-topic subscriber.
func (d *Dispatcher) Broadcast(ctx context.Context, req domain.BroadcastRequest) (domain.DispatchReport, error) {
	const op = "service.Broadcast"

	var report domain.DispatchReport

	if err := validator.ValidateStruct(req); err != nil {
		return report, fmt.Errorf("%s: %s: %w", op, err, e.ErrInvalidInput)
	}

	listCtx, cancel := d.storeCtx(ctx)
	addresses, err := d.recipients.BroadcastAddresses(listCtx)
	cancel()
	if err != nil {
		return report, fmt.Errorf("%s: %w", op, err)
	}
	report.Attempted = len(addresses)
	if len(addresses) == 0 {
		return report, nil
	}

	msg := domain.PushMessage{Title: req.Title, Body: req.Body}

	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	results, err := d.sender.Send(sendCtx, addresses, msg)
	cancel()
	if err != nil {
		return report, fmt.Errorf("%s: %w", op, err)
	}

	report.Results = results
	d.handleFailures(ctx, d.logger, results, &report)

	d.logger.Info("broadcast dispatched",
		slog.Int("attempted", report.Attempted),
		slog.Int("delivered", report.Delivered),
	)

	return report, nil
}
