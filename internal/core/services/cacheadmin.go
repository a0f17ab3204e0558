package services

import (
	"context"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
	"github.com/custodia-labs/skimma-cli/internal/core/ports/driven"
	"github.com/custodia-labs/skimma-cli/internal/core/ports/driving"
	"github.com/custodia-labs/skimma-cli/internal/logger"
)

// Ensure CacheAdminService implements the interface.
var _ driving.CacheAdmin = (*CacheAdminService)(nil)

// CacheAdminService exposes cache inspection and maintenance.
type CacheAdminService struct {
	cache driven.ExtractionCache
}

// NewCacheAdminService creates a new cache admin service.
func NewCacheAdminService(cache driven.ExtractionCache) *CacheAdminService {
	return &CacheAdminService{cache: cache}
}

// Stats returns a snapshot of the cache counters.
func (s *CacheAdminService) Stats(ctx context.Context) (domain.CacheStats, error) {
	return s.cache.Stats(ctx), nil
}

// Clear drops every cached extraction and returns how many were dropped.
func (s *CacheAdminService) Clear(ctx context.Context) (int, error) {
	n := s.cache.Clear(ctx)
	logger.Info("cache cleared: %d entries dropped", n)
	return n, nil
}

// Invalidate drops a single entry, reporting whether it was present.
func (s *CacheAdminService) Invalidate(ctx context.Context, path string) (bool, error) {
	dropped := s.cache.Invalidate(ctx, path)
	if dropped {
		logger.Debug("cache invalidated: %s", path)
	}
	return dropped, nil
}
