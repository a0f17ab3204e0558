package driven

import (
	"context"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
)

// ExtractionCache memoises extracted document text per canonical path.
//
// Implementations must guarantee single-flight population: when N callers
// request the same uncached key concurrently, exactly one compute runs and
// every caller observes its result. Failed computes are never cached; the
// next call retries. Populated entries are immutable and served without
// write locking.
type ExtractionCache interface {
	// GetOrCompute returns the cached extraction for key, running compute
	// at most once per key across all concurrent callers when absent.
	// A caller whose context is cancelled while waiting returns early;
	// the in-flight compute still completes and populates the cache for
	// later callers.
	GetOrCompute(ctx context.Context, key string, compute func(context.Context) (*domain.Extraction, error)) (*domain.Extraction, error)

	// Stats reports entry count, retained bytes and traffic counters.
	Stats(ctx context.Context) domain.CacheStats

	// Clear drops all entries and returns how many were removed.
	Clear(ctx context.Context) int

	// Invalidate drops one entry, reporting whether it was present.
	Invalidate(ctx context.Context, key string) bool
}
