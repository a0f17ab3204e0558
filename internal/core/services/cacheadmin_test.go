package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
)

func seedCache(t *testing.T, cache *fakeCache, paths ...string) {
	t.Helper()
	for _, path := range paths {
		_, err := cache.GetOrCompute(context.Background(), path, func(context.Context) (*domain.Extraction, error) {
			return domain.NewExtraction(path, domain.KindPDF, "fitz", "text for "+path), nil
		})
		require.NoError(t, err)
	}
}

func TestCacheAdminService_Stats(t *testing.T) {
	cache := newFakeCache()
	seedCache(t, cache, "/docs/a.pdf", "/docs/b.pdf")
	svc := NewCacheAdminService(cache)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Entries)
	assert.Positive(t, stats.TotalBytes)
	assert.EqualValues(t, 2, stats.Misses)
}

func TestCacheAdminService_Clear(t *testing.T) {
	cache := newFakeCache()
	seedCache(t, cache, "/docs/a.pdf", "/docs/b.pdf", "/docs/c.pdf")
	svc := NewCacheAdminService(cache)

	n, err := svc.Clear(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, n)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Entries)
}

func TestCacheAdminService_Clear_Empty(t *testing.T) {
	svc := NewCacheAdminService(newFakeCache())

	n, err := svc.Clear(context.Background())

	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCacheAdminService_Invalidate(t *testing.T) {
	cache := newFakeCache()
	seedCache(t, cache, "/docs/a.pdf")
	svc := NewCacheAdminService(cache)

	dropped, err := svc.Invalidate(context.Background(), "/docs/a.pdf")
	require.NoError(t, err)
	assert.True(t, dropped)

	dropped, err = svc.Invalidate(context.Background(), "/docs/a.pdf")
	require.NoError(t, err)
	assert.False(t, dropped, "a second invalidate finds nothing to drop")
}
