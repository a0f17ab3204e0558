package mcp

import (
	"context"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
)

// mockReader is a mock implementation of driving.DocumentReader.
type mockReader struct {
	readResult *domain.ReadResult
	pageResult *domain.PageResult
	chunk      *domain.StreamChunk
	info       *domain.DocumentInfo
	err        error

	gotPath    string
	gotExpr    string
	gotOffset  int
	gotMax     int
	gotSession *domain.StreamSession
}

func (m *mockReader) Read(_ context.Context, path string) (*domain.ReadResult, error) {
	m.gotPath = path
	return m.readResult, m.err
}

func (m *mockReader) ReadPages(_ context.Context, path, expr string) (*domain.ReadResult, error) {
	m.gotPath = path
	m.gotExpr = expr
	return m.readResult, m.err
}

func (m *mockReader) ReadRange(_ context.Context, path string, offsetChars, maxChars int) (*domain.PageResult, error) {
	m.gotPath = path
	m.gotOffset = offsetChars
	m.gotMax = maxChars
	return m.pageResult, m.err
}

func (m *mockReader) NextChunk(_ context.Context, session *domain.StreamSession) (*domain.StreamChunk, error) {
	m.gotSession = session
	if m.err != nil {
		return nil, m.err
	}
	chunk := *m.chunk
	chunk.SessionID = session.ID
	return &chunk, nil
}

func (m *mockReader) Probe(_ context.Context, path string) (*domain.DocumentInfo, error) {
	m.gotPath = path
	return m.info, m.err
}

// mockCatalog is a mock implementation of driving.BackendCatalog.
type mockCatalog struct {
	statuses []domain.BackendStatus
	err      error
}

func (m *mockCatalog) List(_ context.Context) ([]domain.BackendStatus, error) {
	return m.statuses, m.err
}

// mockCacheAdmin is a mock implementation of driving.CacheAdmin.
type mockCacheAdmin struct {
	stats       domain.CacheStats
	cleared     int
	invalidated bool
	err         error
}

func (m *mockCacheAdmin) Stats(_ context.Context) (domain.CacheStats, error) {
	return m.stats, m.err
}

func (m *mockCacheAdmin) Clear(_ context.Context) (int, error) {
	return m.cleared, m.err
}

func (m *mockCacheAdmin) Invalidate(_ context.Context, _ string) (bool, error) {
	return m.invalidated, m.err
}
