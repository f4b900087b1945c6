// Package cache is the in-process view cache shared by the read services.
package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	value     any
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// Store is a TTL map keyed by string. Concurrent loads of one key share a single
// loader call. A ttl <= 0 keeps entries until they are deleted.
//
// Every delete advances the store's epoch. A load only stores its result when the
// epoch it started under is still current, so a value computed before an
// invalidation never lands after it.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	loading map[string]int
	epoch   uint64
	ttl     time.Duration
	flight  singleflight.Group
	now     func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]entry),
		loading: make(map[string]int),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if e.expired(s.now()) {
		s.mu.Lock()
		if current, ok := s.entries[key]; ok && current.expired(s.now()) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}
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

// setAt stores value only if no delete happened since epoch was read.
func (s *Store) setAt(key string, value any, epoch uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return false
	}
	s.entries[key] = s.newEntry(value)
	return true
}

func (s *Store) currentEpoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

func (s *Store) Delete(_ context.Context, key string) {
	s.deleteMatching(func(k string) bool { return k == key })
}

// DeletePrefix drops every key starting with prefix; an empty prefix is a no-op.
// Loads of matching keys already in flight are detached, so later callers load afresh.
func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}
	s.deleteMatching(func(k string) bool { return strings.HasPrefix(k, prefix) })
}

func (s *Store) deleteMatching(match func(string) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	for key := range s.entries {
		if match(key) {
			delete(s.entries, key)
		}
	}
	for key := range s.loading {
		if match(key) {
			s.flight.Forget(key)
		}
	}
}

func (s *Store) trackLoad(key string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading[key] += delta; s.loading[key] <= 0 {
		delete(s.loading, key)
	}
}

// Len counts stored entries, including expired ones not yet read.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// GetOrLoad returns the cached value for key or stores what loader returns.
// Loader errors are returned and nothing is cached. The loader runs detached from
// the caller's cancellation because other callers may be waiting on it.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}
	if v, ok := s.Get(ctx, key); ok {
		return v, nil
	}

	s.trackLoad(key, 1)
	defer s.trackLoad(key, -1)

	v, err, _ := s.flight.Do(key, func() (any, error) {
		epoch := s.currentEpoch()
		if v, ok := s.Get(ctx, key); ok {
			return v, nil
		}
		loaded, err := loader(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		s.setAt(key, loaded, epoch)
		return loaded, nil
	})
	return v, err
}

// Reload runs loader unconditionally and stores the result unless key was
// invalidated while it ran. The loaded value is returned either way.
func (s *Store) Reload(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	epoch := s.currentEpoch()
	v, err := loader(ctx)
	if err != nil {
		return nil, err
	}
	if key != "" {
		s.setAt(key, v, epoch)
	}
	return v, nil
}
