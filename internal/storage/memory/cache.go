package memory

import (
	"context"
	"sync"
	"time"

	"github.com/armelyara/TraficDay/internal/domain"
)

// Cache is the in-process stand-in for the redis active-obstacle cache.
type Cache struct {
	mu        sync.Mutex
	obstacles []domain.CachedObstacle
	expiresAt time.Time
}

func NewCache() *Cache {
	return &Cache{}
}

func (c *Cache) GetActive(_ context.Context) ([]domain.CachedObstacle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.obstacles == nil || time.Now().After(c.expiresAt) {
		return nil, nil
	}
	out := make([]domain.CachedObstacle, len(c.obstacles))
	copy(out, c.obstacles)
	return out, nil
}

func (c *Cache) SetActive(_ context.Context, obstacles []domain.CachedObstacle, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.obstacles = make([]domain.CachedObstacle, len(obstacles))
	copy(c.obstacles, obstacles)
	c.expiresAt = time.Now().Add(ttl)
	return nil
}
