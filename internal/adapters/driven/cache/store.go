// Package cache implements the in-memory extraction cache with
// single-flight population and LRU eviction.
package cache

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
	"github.com/custodia-labs/skimma-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ExtractionCache = (*Store)(nil)

// DefaultMaxEntries bounds the cache when no entry limit is configured.
const DefaultMaxEntries = 256

// Store caches extractions per canonical path. Eviction is LRU on entry
// count with an optional cap on total retained text bytes. Population is
// single-flight: concurrent misses on the same key run the compute exactly
// once and every caller shares the result. Failed computes are never
// stored, so the next request retries.
type Store struct {
	flight   singleflight.Group
	maxBytes int64

	mu        sync.Mutex
	entries   *lru.Cache[string, *domain.Extraction]
	bytes     int64
	hits      uint64
	misses    uint64
	evictions uint64
}

// New creates a cache holding at most maxEntries extractions
// (DefaultMaxEntries when zero or negative) and at most maxBytes of
// retained text (unlimited when zero or negative).
func New(maxEntries int, maxBytes int64) *Store {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	s := &Store{maxBytes: maxBytes}
	// The eviction callback runs inside Add/Remove/Purge calls, which all
	// happen under s.mu; it must not lock.
	s.entries, _ = lru.NewWithEvict(maxEntries, func(_ string, e *domain.Extraction) {
		s.bytes -= int64(e.ByteLen())
	})
	return s
}

// GetOrCompute returns the cached extraction for key, running compute at
// most once per key across all concurrent callers when absent. A caller
// whose context is cancelled while waiting returns ctx.Err(); the compute
// itself keeps running and populates the cache for later callers.
func (s *Store) GetOrCompute(ctx context.Context, key string, compute func(context.Context) (*domain.Extraction, error)) (*domain.Extraction, error) {
	s.mu.Lock()
	if entry, ok := s.entries.Get(key); ok {
		s.hits++
		s.mu.Unlock()
		return entry, nil
	}
	s.misses++
	s.mu.Unlock()

	ch := s.flight.DoChan(key, func() (any, error) {
		// A previous flight may have stored the entry after our miss.
		s.mu.Lock()
		entry, ok := s.entries.Get(key)
		s.mu.Unlock()
		if ok {
			return entry, nil
		}

		// The compute must outlive any single waiter: a cancelled
		// caller cannot abort population for the callers behind it.
		entry, err := compute(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		s.store(key, entry)
		return entry, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*domain.Extraction), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// store adds an entry and enforces the byte cap.
func (s *Store) store(key string, entry *domain.Extraction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Replacing an existing key bypasses the eviction callback.
	if prev, ok := s.entries.Peek(key); ok {
		s.bytes -= int64(prev.ByteLen())
	}
	if evicted := s.entries.Add(key, entry); evicted {
		s.evictions++
	}
	s.bytes += int64(entry.ByteLen())

	if s.maxBytes <= 0 {
		return
	}
	for s.bytes > s.maxBytes && s.entries.Len() > 0 {
		if _, _, ok := s.entries.RemoveOldest(); !ok {
			break
		}
		s.evictions++
	}
}

// Stats reports entry count, retained bytes and traffic counters.
func (s *Store) Stats(_ context.Context) domain.CacheStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CacheStats{
		Entries:    s.entries.Len(),
		TotalBytes: s.bytes,
		Hits:       s.hits,
		Misses:     s.misses,
		Evictions:  s.evictions,
	}
}

// Clear drops all entries and returns how many were removed.
func (s *Store) Clear(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.entries.Len()
	s.entries.Purge()
	return n
}

// Invalidate drops one entry, reporting whether it was present.
func (s *Store) Invalidate(_ context.Context, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries.Remove(key)
}
