package services

import (
	"context"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
	"github.com/custodia-labs/skimma-cli/internal/core/ports/driven"
	"github.com/custodia-labs/skimma-cli/internal/core/ports/driving"
)

// Ensure BackendService implements the interface.
var _ driving.BackendCatalog = (*BackendService)(nil)

// BackendService reports which extraction backends are registered and
// whether each is currently usable.
type BackendService struct {
	registry driven.ExtractorRegistry
}

// NewBackendService creates a new backend catalog service.
func NewBackendService(registry driven.ExtractorRegistry) *BackendService {
	return &BackendService{registry: registry}
}

// List returns the status of every registered backend in priority order.
func (s *BackendService) List(ctx context.Context) ([]domain.BackendStatus, error) {
	return s.registry.Statuses(), nil
}
