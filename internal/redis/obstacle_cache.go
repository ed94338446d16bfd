package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/armelyara/TraficDay/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

type ObstacleCacheService interface {
	GetActive(ctx context.Context) ([]domain.CachedObstacle, error)
	SetActive(ctx context.Context, obstacles []domain.CachedObstacle, ttl time.Duration) error
}

type ObstacleCache struct {
	client *goredis.Client
	key    string
}

func NewObstacleCache(r *Redis) *ObstacleCache {
	return &ObstacleCache{
		client: r.Client,
		key:    "obstacles:active",
	}
}

func (c *ObstacleCache) GetActive(ctx context.Context) ([]domain.CachedObstacle, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var obstacles []domain.CachedObstacle
	if err := json.Unmarshal(data, &obstacles); err != nil {
		return nil, err
	}

	return obstacles, nil
}

func (c *ObstacleCache) SetActive(ctx context.Context, obstacles []domain.CachedObstacle, ttl time.Duration) error {
	b, err := json.Marshal(obstacles)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}
