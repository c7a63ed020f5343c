package cache

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

// Store is a process-local TTL cache keyed by string. Entries never expire
// when ttl is zero.
type Store struct {
	ttl    time.Duration
	now    func() time.Time
	flight singleflight.Group

	mu      sync.RWMutex
	entries map[string]entry
	// epoch advances on every invalidation; loads that straddle one are
	// not stored.
	epoch uint64

	hits   atomic.Uint64
	misses atomic.Uint64
}

type entry struct {
	value     any
	expiresAt time.Time
}

// Stats is a snapshot of lookup counters since the store was created.
type Stats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if ok && s.expired(e) {
		s.mu.Lock()
		if current, still := s.entries[key]; still && s.expired(current) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		ok = false
	}

	if !ok {
		s.misses.Add(1)
		return nil, false
	}
	s.hits.Add(1)
	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	s.mu.Lock()
	s.entries[key] = s.newEntry(value)
	s.mu.Unlock()
}

func (s *Store) newEntry(value any) entry {
	e := entry{value: value}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	return e
}

// Invalidate drops the exact keys given.
func (s *Store) Invalidate(_ context.Context, keys ...string) {
	s.mu.Lock()
	for _, key := range keys {
		delete(s.entries, key)
	}
	s.epoch++
	s.mu.Unlock()
}

// InvalidatePrefix drops every key starting with prefix. An empty prefix is
// ignored rather than clearing the store.
func (s *Store) InvalidatePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}

	s.mu.Lock()
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	s.epoch++
	s.mu.Unlock()
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	n := len(s.entries)
	s.mu.RUnlock()

	return Stats{Hits: s.hits.Load(), Misses: s.misses.Load(), Entries: n}
}

func (s *Store) currentEpoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

// setIfEpoch stores value only when no invalidation ran since epoch was read.
func (s *Store) setIfEpoch(key string, value any, epoch uint64) bool {
	e := s.newEntry(value)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return false
	}
	s.entries[key] = e
	return true
}

func (s *Store) expired(e entry) bool {
	return s.ttl > 0 && !e.expiresAt.After(s.now())
}

// Load returns the cached T under key or calls loader once for all concurrent
// misses on that key. Loader errors are returned and not cached. A cached
// value of another type is treated as a miss and replaced. A result whose load
// overlapped an invalidation is returned but not cached.
func Load[T any](ctx context.Context, s *Store, key string, loader func(context.Context) (T, error)) (T, error) {
	if s == nil || key == "" {
		return loader(ctx)
	}

	if v, ok := s.Get(ctx, key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	v, err, _ := s.flight.Do(key, func() (any, error) {
		epoch := s.currentEpoch()
		if cached, ok := s.Get(ctx, key); ok {
			if typed, ok := cached.(T); ok {
				return typed, nil
			}
		}

		loaded, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		s.setIfEpoch(key, loaded, epoch)
		return loaded, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return v.(T), nil
}
