package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
	"github.com/custodia-labs/skimma-cli/internal/core/ports/driven"
)

// fakeExtractor is a configurable test backend.
type fakeExtractor struct {
	name     string
	class    domain.BackendClass
	kinds    []domain.Kind
	priority int
	text     string
	err      error
	extract  func(ctx context.Context) (string, error)
	calls    int
}

func (f *fakeExtractor) Name() string                { return f.name }
func (f *fakeExtractor) Description() string         { return f.name + " backend" }
func (f *fakeExtractor) Class() domain.BackendClass  { return f.class }
func (f *fakeExtractor) Kinds() []domain.Kind        { return f.kinds }
func (f *fakeExtractor) Priority() int               { return f.priority }
func (f *fakeExtractor) CheckAvailable() error       { return nil }
func (f *fakeExtractor) InstallInstructions() string { return "" }

func (f *fakeExtractor) Extract(ctx context.Context, path string) (string, error) {
	f.calls++
	if f.extract != nil {
		return f.extract(ctx)
	}
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

// fakeRegistry serves backends in registration order.
type fakeRegistry struct {
	backends []driven.Extractor
	statuses []domain.BackendStatus
}

func (r *fakeRegistry) Register(e driven.Extractor) {
	r.backends = append(r.backends, e)
}

func (r *fakeRegistry) ForKind(kind domain.Kind) []driven.Extractor {
	out := make([]driven.Extractor, 0, len(r.backends))
	for _, b := range r.backends {
		for _, k := range b.Kinds() {
			if k == kind {
				out = append(out, b)
				break
			}
		}
	}
	return out
}

func (r *fakeRegistry) Statuses() []domain.BackendStatus {
	return r.statuses
}

func pdfBackend(name string) *fakeExtractor {
	return &fakeExtractor{
		name:  name,
		kinds: []domain.Kind{domain.KindPDF},
		text:  "text from " + name,
	}
}

func TestBackendSelector_FirstBackendWins(t *testing.T) {
	first := pdfBackend("fitz")
	second := pdfBackend("poppler")
	selector := NewBackendSelector(&fakeRegistry{backends: []driven.Extractor{first, second}})

	text, backend, err := selector.SelectAndExtract(context.Background(), "/docs/report.pdf", domain.KindPDF)

	require.NoError(t, err)
	assert.Equal(t, "text from fitz", text)
	assert.Equal(t, "fitz", backend)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls, "the ladder must stop at the first success")
}

func TestBackendSelector_FallsBackOnFailure(t *testing.T) {
	first := pdfBackend("fitz")
	first.err = errors.New("damaged xref table")
	second := pdfBackend("poppler")
	selector := NewBackendSelector(&fakeRegistry{backends: []driven.Extractor{first, second}})

	text, backend, err := selector.SelectAndExtract(context.Background(), "/docs/report.pdf", domain.KindPDF)

	require.NoError(t, err)
	assert.Equal(t, "text from poppler", text)
	assert.Equal(t, "poppler", backend)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestBackendSelector_AllBackendsFail(t *testing.T) {
	first := pdfBackend("fitz")
	first.err = errors.New("damaged xref table")
	second := pdfBackend("poppler")
	second.err = errors.New("pdftotext exited 1")
	selector := NewBackendSelector(&fakeRegistry{backends: []driven.Extractor{first, second}})

	_, _, err := selector.SelectAndExtract(context.Background(), "/docs/report.pdf", domain.KindPDF)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAllBackendsFailed)

	var extErr *domain.ExtractionError
	require.ErrorAs(t, err, &extErr)
	require.Len(t, extErr.Failures, 2)
	assert.Equal(t, "fitz", extErr.Failures[0].Backend)
	assert.Equal(t, "poppler", extErr.Failures[1].Backend)
	assert.Contains(t, err.Error(), "damaged xref table")
	assert.Contains(t, err.Error(), "pdftotext exited 1")
}

func TestBackendSelector_NoBackends(t *testing.T) {
	selector := NewBackendSelector(&fakeRegistry{})

	_, _, err := selector.SelectAndExtract(context.Background(), "/docs/report.pdf", domain.KindPDF)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAllBackendsFailed)
	assert.Contains(t, err.Error(), "no extraction backend available")
}

func TestBackendSelector_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	first := pdfBackend("fitz")
	first.extract = func(ctx context.Context) (string, error) {
		cancel()
		return "", ctx.Err()
	}
	second := pdfBackend("poppler")
	selector := NewBackendSelector(&fakeRegistry{backends: []driven.Extractor{first, second}})

	_, _, err := selector.SelectAndExtract(ctx, "/docs/report.pdf", domain.KindPDF)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, second.calls, "a cancelled ladder must not escalate")
}

func TestBackendSelector_WrongKindBackendSkipped(t *testing.T) {
	sheets := &fakeExtractor{name: "xlsx", kinds: []domain.Kind{domain.KindExcel}, text: "cells"}
	pdf := pdfBackend("fitz")
	selector := NewBackendSelector(&fakeRegistry{backends: []driven.Extractor{sheets, pdf}})

	text, backend, err := selector.SelectAndExtract(context.Background(), "/docs/report.pdf", domain.KindPDF)

	require.NoError(t, err)
	assert.Equal(t, "fitz", backend)
	assert.Equal(t, "text from fitz", text)
	assert.Equal(t, 0, sheets.calls)
}
