package services

import (
	"sync"
	"time"
)

// Store holds the last successfully fetched collection for one list
// page. Fetches are fenced with a monotonic token so a slow response
// can never overwrite the result of a newer request.
type Store[T any] struct {
	mu        sync.Mutex
	seq       uint64
	items     []T
	fetchedAt time.Time
	loaded    bool
	stale     bool
}

// Snapshot is a read-only view of the stored collection.
type Snapshot[T any] struct {
	Items     []T
	FetchedAt time.Time
	Stale     bool
}

// Begin registers a new fetch and returns its fence token. Any fetch
// started earlier becomes obsolete immediately.
func (s *Store[T]) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// Commit installs the fetched items if token still identifies the
// newest fetch. It reports whether the result was accepted; superseded
// results are discarded.
func (s *Store[T]) Commit(token uint64, items []T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.seq {
		return false
	}
	s.items = items
	s.fetchedAt = time.Now()
	s.loaded = true
	s.stale = false
	return true
}

// Fail marks the store stale when the newest fetch errors. Previously
// loaded data stays readable.
func (s *Store[T]) Fail(token uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.seq {
		return
	}
	if s.loaded {
		s.stale = true
	}
}

// Snapshot returns the current collection; ok is false before the
// first successful fetch.
func (s *Store[T]) Snapshot() (Snapshot[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return Snapshot[T]{}, false
	}
	items := make([]T, len(s.items))
	copy(items, s.items)
	return Snapshot[T]{Items: items, FetchedAt: s.fetchedAt, Stale: s.stale}, true
}

// Invalidate marks the collection stale after a mutation so the next
// list call re-fetches instead of trusting local data.
func (s *Store[T]) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		s.stale = true
	}
}
