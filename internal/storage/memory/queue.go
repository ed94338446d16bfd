package memory

import (
	"context"
	"time"

	"github.com/armelyara/TraficDay/internal/domain"
	"github.com/armelyara/TraficDay/pkg/e"
)

// Queue is a channel-backed intent queue for runs without redis.
type Queue struct {
	ch chan domain.NotificationIntent
}

func NewQueue(size int) *Queue {
	if size <= 0 {
		size = 256
	}
	return &Queue{ch: make(chan domain.NotificationIntent, size)}
}

func (q *Queue) Enqueue(ctx context.Context, intent domain.NotificationIntent) error {
	select {
	case q.ch <- intent:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *Queue) Dequeue(ctx context.Context, timeout time.Duration) (domain.NotificationIntent, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case intent := <-q.ch:
		return intent, nil
	case <-timer.C:
		return domain.NotificationIntent{}, e.ErrQueueEmpty
	case <-ctx.Done():
		return domain.NotificationIntent{}, ctx.Err()
	}
}
