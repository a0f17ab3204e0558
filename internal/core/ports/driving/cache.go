package driving

import (
	"context"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
)

// CacheAdmin exposes extraction cache governance to external surfaces.
// The cache is otherwise invisible to callers; these operations exist for
// memory management and for invalidating files that changed on disk.
type CacheAdmin interface {
	// Stats reports entry count, retained bytes and traffic counters.
	Stats(ctx context.Context) (domain.CacheStats, error)

	// Clear drops every cached extraction and returns how many were
	// removed.
	Clear(ctx context.Context) (int, error)

	// Invalidate drops the extraction for one path, reporting whether an
	// entry was present.
	Invalidate(ctx context.Context, path string) (bool, error)
}
