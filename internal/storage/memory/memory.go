// Package memory implements the obstacle store, intent store and user
// directory on process-local maps with per-obstacle locking. It backs
// local runs without infrastructure and the engine's behavioral tests;
// the serialization guarantees match the postgres implementation
// (row-level locks there, per-id mutexes here).
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/armelyara/TraficDay/internal/domain"
	"github.com/armelyara/TraficDay/pkg/e"
	"github.com/armelyara/TraficDay/pkg/geo"
)

type Store struct {
	mu        sync.RWMutex
	obstacles map[uuid.UUID]*domain.Obstacle
	intents   map[uuid.UUID]*domain.NotificationIntent
	locks     map[uuid.UUID]*sync.Mutex

	handlersMu sync.RWMutex
	onCreated  []func(ctx context.Context, o *domain.Obstacle)
}

func NewStore() *Store {
	return &Store{
		obstacles: make(map[uuid.UUID]*domain.Obstacle),
		intents:   make(map[uuid.UUID]*domain.NotificationIntent),
		locks:     make(map[uuid.UUID]*sync.Mutex),
	}
}

// lockFor returns the mutex serializing mutations of one obstacle id.
func (s *Store) lockFor(id uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

// --- ObstacleStore ---

func (s *Store) Create(ctx context.Context, o *domain.Obstacle) error {
	stored := cloneObstacle(o)

	s.mu.Lock()
	s.obstacles[stored.ID] = stored
	s.mu.Unlock()

	// Subscribers run synchronously after persist, outside any lock.
	s.handlersMu.RLock()
	handlers := s.onCreated
	s.handlersMu.RUnlock()
	for _, h := range handlers {
		h(ctx, cloneObstacle(stored))
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*domain.Obstacle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.obstacles[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	return cloneObstacle(o), nil
}

func (s *Store) ListActive(ctx context.Context) ([]*domain.Obstacle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Obstacle, 0, len(s.obstacles))
	for _, o := range s.obstacles {
		if o.Active {
			out = append(out, cloneObstacle(o))
		}
	}
	return out, nil
}

func (s *Store) List(ctx context.Context, page, limit int) ([]*domain.Obstacle, int64, error) {
	s.mu.RLock()
	all := make([]*domain.Obstacle, 0, len(s.obstacles))
	for _, o := range s.obstacles {
		all = append(all, cloneObstacle(o))
	}
	s.mu.RUnlock()

	sortByCreatedAtDesc(all)

	total := int64(len(all))
	start := (page - 1) * limit
	if start >= len(all) {
		return []*domain.Obstacle{}, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (s *Store) Update(ctx context.Context, id uuid.UUID, mutate func(*domain.Obstacle) error) (*domain.Obstacle, error) {
	l := s.lockFor(id)
	l.Lock()
	defer l.Unlock()

	s.mu.RLock()
	cur, ok := s.obstacles[id]
	s.mu.RUnlock()
	if !ok {
		return nil, e.ErrNotFound
	}

	next := cloneObstacle(cur)
	if err := mutate(next); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.obstacles[id] = next
	s.mu.Unlock()

	return cloneObstacle(next), nil
}

func (s *Store) SubscribeCreated(h func(ctx context.Context, o *domain.Obstacle)) {
	s.handlersMu.Lock()
	defer s.handlersMu.Unlock()
	s.onCreated = append(s.onCreated, h)
}

// --- IntentStore ---

// LatchIntent flips notificationSent and writes the intent snapshot under
// the same per-obstacle lock, the memory equivalent of the postgres
// transaction.
func (s *Store) LatchIntent(ctx context.Context, obstacleID uuid.UUID, threshold int, now time.Time) (*domain.NotificationIntent, bool, error) {
	l := s.lockFor(obstacleID)
	l.Lock()
	defer l.Unlock()

	s.mu.RLock()
	cur, ok := s.obstacles[obstacleID]
	s.mu.RUnlock()
	if !ok {
		return nil, false, e.ErrNotFound
	}
	if !cur.Active || !cur.IsPrimary || cur.NotificationSent || cur.Confirmations < threshold {
		return nil, false, nil
	}

	next := cloneObstacle(cur)
	next.NotificationSent = true

	intent := &domain.NotificationIntent{
		ObstacleID:    next.ID,
		Type:          next.Type,
		Location:      next.Location,
		Description:   next.Description,
		Confirmations: next.Confirmations,
		CreatedAt:     now,
	}

	s.mu.Lock()
	s.obstacles[obstacleID] = next
	s.intents[obstacleID] = cloneIntent(intent)
	s.mu.Unlock()

	return intent, true, nil
}

func (s *Store) GetIntent(ctx context.Context, obstacleID uuid.UUID) (*domain.NotificationIntent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	intent, ok := s.intents[obstacleID]
	if !ok {
		return nil, e.ErrNotFound
	}
	return cloneIntent(intent), nil
}

func (s *Store) MarkIntentSent(ctx context.Context, obstacleID uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	intent, ok := s.intents[obstacleID]
	if !ok {
		return e.ErrNotFound
	}
	intent.Sent = true
	sentAt := at
	intent.SentAt = &sentAt
	return nil
}

func (s *Store) ListUnsentIntents(ctx context.Context, olderThan time.Time) ([]*domain.NotificationIntent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.NotificationIntent, 0)
	for _, intent := range s.intents {
		if !intent.Sent && intent.CreatedAt.Before(olderThan) {
			out = append(out, cloneIntent(intent))
		}
	}
	return out, nil
}

// Directory is the in-memory user directory.
type Directory struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User
}

func NewDirectory() *Directory {
	return &Directory{users: make(map[uuid.UUID]*domain.User)}
}

// Put seeds a user record; used by wiring and tests.
func (d *Directory) Put(u *domain.User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users[u.ID] = cloneUser(u)
}

func (d *Directory) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	u, ok := d.users[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	return cloneUser(u), nil
}

func (d *Directory) List(ctx context.Context) ([]*domain.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*domain.User, 0, len(d.users))
	for _, u := range d.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (d *Directory) SaveLocation(ctx context.Context, id uuid.UUID, p geo.Point, at time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	u := d.userLocked(id)
	loc := p
	ts := at
	u.Location = &loc
	u.LocationAt = &ts
	return nil
}

func (d *Directory) SaveToken(ctx context.Context, id uuid.UUID, token string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.userLocked(id).PushToken = token
	return nil
}

func (d *Directory) SaveSubscription(ctx context.Context, id uuid.UUID, subscribedToAll bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.userLocked(id).SubscribedToAll = subscribedToAll
	return nil
}

func (d *Directory) ClearToken(ctx context.Context, token string) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var cleared int64
	for _, u := range d.users {
		if u.PushToken == token {
			u.PushToken = ""
			cleared++
		}
	}
	return cleared, nil
}

// userLocked returns the record for id, creating it on first write.
// Device registration may land before any report touches the user.
func (d *Directory) userLocked(id uuid.UUID) *domain.User {
	u, ok := d.users[id]
	if !ok {
		u = &domain.User{ID: id}
		d.users[id] = u
	}
	return u
}

// --- clone helpers ---

func cloneObstacle(o *domain.Obstacle) *domain.Obstacle {
	c := *o
	if o.LinkedTo != nil {
		linked := *o.LinkedTo
		c.LinkedTo = &linked
	}
	if o.ExpiresAt != nil {
		exp := *o.ExpiresAt
		c.ExpiresAt = &exp
	}
	c.LinkedObstacles = append([]uuid.UUID(nil), o.LinkedObstacles...)
	c.ConfirmedBy = append([]uuid.UUID(nil), o.ConfirmedBy...)
	c.ResolvedBy = append([]uuid.UUID(nil), o.ResolvedBy...)
	return &c
}

func cloneIntent(i *domain.NotificationIntent) *domain.NotificationIntent {
	c := *i
	if i.SentAt != nil {
		at := *i.SentAt
		c.SentAt = &at
	}
	return &c
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	if u.Location != nil {
		loc := *u.Location
		c.Location = &loc
	}
	if u.LocationAt != nil {
		at := *u.LocationAt
		c.LocationAt = &at
	}
	return &c
}

func sortByCreatedAtDesc(obstacles []*domain.Obstacle) {
	sort.Slice(obstacles, func(i, j int) bool {
		return obstacles[i].CreatedAt.After(obstacles[j].CreatedAt)
	})
}
