// Package redis holds the shared client plus the two structures built on
// it: the notification intent queue and the active-obstacle cache.
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/armelyara/TraficDay/internal/config"

	"github.com/redis/go-redis/v9"
)

// DefaultIntentQueueKey is the list escalated intents wait on until the
// dispatcher picks them up.
const DefaultIntentQueueKey = "intents:queue"

const pingTimeout = 5 * time.Second

type Redis struct {
	Client *redis.Client
}

func NewRedis(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
	}

	logger.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
		slog.Int("db", cfg.Redis.DB),
	)
	return &Redis{Client: client}, nil
}

func (r *Redis) Close() error {
	return r.Client.Close()
}
