package ratelimit

import (
	"context"
	"sync"
	"time"

	"qr-loyalty-service/internal/pkg/clock"
)

// MemoryStore keeps counters in a process-local map. Development and
// tests only: every instance counts on its own, so limits do not hold
// across a multi-instance deployment. Config validation refuses it in
// production.
type MemoryStore struct {
	mu       sync.Mutex
	clock    clock.Clock
	counters map[string]*memCounter
}

type memCounter struct {
	count   int
	resetAt time.Time
}

func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		clock:    clk,
		counters: make(map[string]*memCounter),
	}
}

func (s *MemoryStore) Increment(_ context.Context, key string, window time.Duration) (int, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	c, ok := s.counters[key]
	if !ok || now.After(c.resetAt) {
		c = &memCounter{count: 0, resetAt: now.Add(window)}
		s.counters[key] = c
	}
	c.count++
	return c.count, c.resetAt, nil
}

func (s *MemoryStore) Peek(_ context.Context, key string) (int, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.counters[key]
	if !ok || s.clock.Now().After(c.resetAt) {
		return 0, time.Time{}, nil
	}
	return c.count, c.resetAt, nil
}

func (s *MemoryStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.counters, key)
	return nil
}

func (s *MemoryStore) Cleanup(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	var removed int64
	for key, c := range s.counters {
		if now.After(c.resetAt) {
			delete(s.counters, key)
			removed++
		}
	}
	return removed, nil
}
