package driving

import (
	"context"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
)

// BackendCatalog lists the extraction backend catalogue, including
// unavailable backends and how to enable them.
type BackendCatalog interface {
	// List returns every registered backend, priority ascending.
	List(ctx context.Context) ([]domain.BackendStatus, error)
}
