package services

import (
	"context"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
	"github.com/custodia-labs/skimma-cli/internal/core/ports/driven"
	"github.com/custodia-labs/skimma-cli/internal/logger"
)

// BackendSelector tries extraction backends in priority order and returns
// the first successful text. Escalation happens only on failure: slowness
// is not failure, so a degraded fallback-only build may take a long time on
// a huge file rather than erroring. There are no retries and no backoff; a
// backend either produces text or the ladder moves on.
type BackendSelector struct {
	registry driven.ExtractorRegistry
}

// NewBackendSelector creates a selector over the backend catalogue.
func NewBackendSelector(registry driven.ExtractorRegistry) *BackendSelector {
	return &BackendSelector{registry: registry}
}

// SelectAndExtract runs the fallback ladder for the file's kind and returns
// the text plus the name of the backend that produced it.
//
// When every backend fails, the returned error aggregates each backend's
// reason and matches domain.ErrAllBackendsFailed. Context cancellation
// aborts the ladder immediately and surfaces ctx.Err() instead, since a
// cancelled extraction says nothing about the remaining backends.
func (s *BackendSelector) SelectAndExtract(ctx context.Context, path string, kind domain.Kind) (string, string, error) {
	extErr := &domain.ExtractionError{Path: path, Kind: kind}

	for _, backend := range s.registry.ForKind(kind) {
		logger.Debug("extracting %s with backend %s", path, backend.Name())

		text, err := backend.Extract(ctx, path)
		if err == nil {
			logger.Info("backend %s extracted %s (%d bytes)", backend.Name(), path, len(text))
			return text, backend.Name(), nil
		}
		if ctx.Err() != nil {
			return "", "", ctx.Err()
		}

		logger.Warn("backend %s failed on %s: %v", backend.Name(), path, err)
		extErr.Failures = append(extErr.Failures, domain.BackendFailure{
			Backend: backend.Name(),
			Err:     err,
		})
	}

	return "", "", extErr
}
