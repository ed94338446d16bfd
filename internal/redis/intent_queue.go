package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/armelyara/TraficDay/internal/domain"
	"github.com/armelyara/TraficDay/pkg/e"

	"github.com/redis/go-redis/v9"
)

// IntentQueue is a redis-backed FIFO of notification intents. Producers
// LPush, the dispatcher BRPops, so intents survive a process restart.
type IntentQueue struct {
	client *redis.Client
	key    string
}

func NewIntentQueue(r *Redis, key string) *IntentQueue {
	return &IntentQueue{client: r.Client, key: key}
}

func (q *IntentQueue) Enqueue(ctx context.Context, intent domain.NotificationIntent) error {
	b, err := json.Marshal(intent)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *IntentQueue) Dequeue(ctx context.Context, timeout time.Duration) (domain.NotificationIntent, error) {
	var intent domain.NotificationIntent

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return intent, e.ErrQueueEmpty
		}
		return intent, err
	}
	if len(res) < 2 {
		return intent, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &intent); err != nil {
		return intent, err
	}
	return intent, nil
}
