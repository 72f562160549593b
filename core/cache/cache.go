package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// entry holds a cached value with the time it was built.
type entry[V any] struct {
	value V
	built time.Time
}

// LoadFunc builds the value for a key on a cache miss.
type LoadFunc[V any] func(ctx context.Context, key string) (V, error)

// Store is a TTL cache with stampede protection.
type Store[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	sf      singleflight.Group
	ttl     time.Duration
	now     func() time.Time
}

// New creates a store whose entries expire after ttl.
// If ttl is zero, caching is disabled and every Get calls the loader.
func New[V any](ttl time.Duration) *Store[V] {
	return &Store[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// TTL returns the configured time-to-live.
func (s *Store[V]) TTL() time.Duration {
	return s.ttl
}

func (s *Store[V]) fresh(e entry[V]) bool {
	if s.ttl == 0 {
		return false // No caching
	}
	return s.now().Sub(e.built) <= s.ttl
}

// Get returns the cached value for key, or builds it with load if it is
// missing or expired. Concurrent misses for the same key share one load.
func (s *Store[V]) Get(ctx context.Context, key string, load LoadFunc[V]) (V, error) {
	// Fast path: check if entry exists and is fresh
	s.mu.RLock()
	e, exists := s.entries[key]
	s.mu.RUnlock()

	if exists && s.fresh(e) {
		return e.value, nil
	}

	// Slow path: build using singleflight to prevent stampedes
	result, err, _ := s.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		s.mu.RLock()
		e, exists := s.entries[key]
		s.mu.RUnlock()

		if exists && s.fresh(e) {
			return e.value, nil
		}

		v, err := load(ctx, key)
		if err != nil {
			return nil, err
		}

		if s.ttl > 0 {
			s.mu.Lock()
			s.entries[key] = entry[V]{value: v, built: s.now()}
			s.mu.Unlock()
		}

		return v, nil
	})

	if err != nil {
		var zero V
		return zero, err
	}

	v, _ := result.(V)
	return v, nil
}

// Len returns the number of stored entries, fresh or not.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
