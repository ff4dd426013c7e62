package ratelimit

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	count       int
	windowStart time.Time
}

// MemoryStore is an in-process fixed-window counter store. Expired entries
// are evicted opportunistically inside Check, at most once per cleanup
// interval, so no background goroutine is needed; correctness never depends
// on prompt cleanup, only the memory bound does.
type MemoryStore struct {
	window       time.Duration
	max          int
	cleanupEvery time.Duration

	mu          sync.Mutex
	entries     map[string]*entry
	lastCleanup time.Time

	now func() time.Time
}

const defaultCleanupInterval = 5 * time.Minute

func NewMemoryStore(window time.Duration, max int) *MemoryStore {
	return &MemoryStore{
		window:       window,
		max:          max,
		cleanupEvery: defaultCleanupInterval,
		entries:      make(map[string]*entry),
		now:          time.Now,
	}
}

// Check admits or rejects one request for key under the fixed window.
// A fresh or elapsed window replaces the entry with count 1; within the
// window the count is incremented up to the maximum.
func (s *MemoryStore) Check(_ context.Context, key string) (Decision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.maybeCleanup(now)

	e, ok := s.entries[key]
	if !ok || now.Sub(e.windowStart) >= s.window {
		s.entries[key] = &entry{count: 1, windowStart: now}
		return Decision{
			Allowed:   true,
			Remaining: s.max - 1,
			Reset:     now.Add(s.window).Unix(),
		}, nil
	}

	reset := e.windowStart.Add(s.window)
	if e.count >= s.max {
		retryAfter := int((reset.Sub(now) + time.Second - 1) / time.Second)
		return Decision{
			Allowed:    false,
			Remaining:  0,
			RetryAfter: retryAfter,
			Reset:      reset.Unix(),
		}, nil
	}

	e.count++
	return Decision{
		Allowed:   true,
		Remaining: s.max - e.count,
		Reset:     reset.Unix(),
	}, nil
}

// Cleanup removes all entries whose window has elapsed. Entries still
// within their window are untouched.
func (s *MemoryStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleanupLocked(s.now())
}

// Reset drops every entry. Intended for test isolation.
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*entry)
}

// Len reports the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *MemoryStore) maybeCleanup(now time.Time) {
	if now.Sub(s.lastCleanup) < s.cleanupEvery {
		return
	}
	s.cleanupLocked(now)
}

func (s *MemoryStore) cleanupLocked(now time.Time) {
	for key, e := range s.entries {
		if now.Sub(e.windowStart) >= s.window {
			delete(s.entries, key)
		}
	}
	s.lastCleanup = now
}
