package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
	"github.com/custodia-labs/skimma-cli/internal/core/ports/driven"
	"github.com/custodia-labs/skimma-cli/internal/core/ports/driving"
	"github.com/custodia-labs/skimma-cli/internal/logger"
)

// Ensure ReaderService implements the interface.
var _ driving.DocumentReader = (*ReaderService)(nil)

// wordPageEstimateDivisor approximates pages for Word documents, which have
// no page markers in their extracted text: one page per 25 paragraphs.
const wordPageEstimateDivisor = 25

// ReaderService orchestrates path resolution, cached extraction and the
// slicing behind every read shape. Extraction runs at most once per file
// per process; full reads, page selections, range windows, streams and
// probes all share the same cache entry.
type ReaderService struct {
	resolver driven.PathResolver
	cache    driven.ExtractionCache
	selector *BackendSelector
	chunker  *StreamingChunker
}

// NewReaderService creates a new reader service.
func NewReaderService(
	resolver driven.PathResolver,
	cache driven.ExtractionCache,
	selector *BackendSelector,
	chunker *StreamingChunker,
) *ReaderService {
	return &ReaderService{
		resolver: resolver,
		cache:    cache,
		selector: selector,
		chunker:  chunker,
	}
}

// entry resolves the path and returns its cache entry, extracting on first
// touch. Resolution runs before anything else so a missing file or an
// unsupported extension never reaches a backend.
func (s *ReaderService) entry(ctx context.Context, path string) (*domain.Extraction, driven.ResolvedFile, error) {
	file, err := s.resolver.Resolve(path)
	if err != nil {
		return nil, driven.ResolvedFile{}, err
	}

	kind, err := domain.KindFromPath(file.AbsPath)
	if err != nil {
		return nil, file, err
	}

	entry, err := s.cache.GetOrCompute(ctx, file.AbsPath, func(ctx context.Context) (*domain.Extraction, error) {
		text, backend, err := s.selector.SelectAndExtract(ctx, file.AbsPath, kind)
		if err != nil {
			return nil, err
		}
		return domain.NewExtraction(file.AbsPath, kind, backend, text), nil
	})
	if err != nil {
		return nil, file, err
	}
	return entry, file, nil
}

// Read returns the complete text of the document.
func (s *ReaderService) Read(ctx context.Context, path string) (*domain.ReadResult, error) {
	entry, _, err := s.entry(ctx, path)
	if err != nil {
		return nil, err
	}

	return &domain.ReadResult{
		Path:          entry.Path,
		Kind:          entry.Kind,
		Content:       entry.Content(),
		TotalChars:    entry.CharLen(),
		TotalPages:    s.pageCount(entry),
		ReturnedPages: entry.PageCount(),
	}, nil
}

// ReadPages returns the pages selected by expr joined by the page
// separator. Page numbers are 1-based against the document's natural units
// (pages, sheets or slides).
func (s *ReaderService) ReadPages(ctx context.Context, path, expr string) (*domain.ReadResult, error) {
	entry, _, err := s.entry(ctx, path)
	if err != nil {
		return nil, err
	}

	units := entry.Pages()
	pages, err := domain.ParsePageRange(expr, len(units))
	if err != nil {
		return nil, err
	}

	selected := make([]string, 0, len(pages))
	for _, n := range pages {
		selected = append(selected, units[n-1])
	}

	return &domain.ReadResult{
		Path:           entry.Path,
		Kind:           entry.Kind,
		Content:        strings.Join(selected, domain.PageSeparator),
		TotalChars:     entry.CharLen(),
		TotalPages:     len(units),
		RequestedPages: pages,
		ReturnedPages:  len(pages),
	}, nil
}

// ReadRange returns up to maxChars characters starting at offsetChars.
// The offset is clamped to [0, total]; a negative maxChars reads nothing.
// Pagination is pure: it mutates no session state, and arbitrary offsets
// are valid, not just monotonic ones.
func (s *ReaderService) ReadRange(ctx context.Context, path string, offsetChars, maxChars int) (*domain.PageResult, error) {
	entry, _, err := s.entry(ctx, path)
	if err != nil {
		return nil, err
	}

	total := entry.CharLen()
	if offsetChars < 0 {
		offsetChars = 0
	}
	if offsetChars > total {
		offsetChars = total
	}
	if maxChars < 0 {
		maxChars = 0
	}

	end := offsetChars + maxChars
	if end > total {
		end = total
	}
	returned := end - offsetChars

	return &domain.PageResult{
		Content:        entry.Slice(offsetChars, end),
		TotalLength:    total,
		Offset:         offsetChars,
		ReturnedLength: returned,
		HasMore:        offsetChars+returned < total,
	}, nil
}

// NextChunk advances a caller-held stream session by one chunk. The first
// advance pays for extraction (or rides an in-flight one); later advances
// are index arithmetic over the cached entry.
func (s *ReaderService) NextChunk(ctx context.Context, session *domain.StreamSession) (*domain.StreamChunk, error) {
	entry, _, err := s.entry(ctx, session.Path)
	if err != nil {
		return nil, err
	}
	return s.chunker.Next(entry, session)
}

// Probe reports existence, size and extracted length without the caller
// consuming a read. A missing file is an answer, not an error: it comes
// back as FileExists=false. Probing an existing document triggers (and
// benefits from) the same single-flight cache population as the reads.
func (s *ReaderService) Probe(ctx context.Context, path string) (*domain.DocumentInfo, error) {
	file, err := s.resolver.Resolve(path)
	if errors.Is(err, domain.ErrFileNotFound) {
		logger.Debug("probe: %s does not exist", path)
		return &domain.DocumentInfo{Path: path, FileExists: false}, nil
	}
	if err != nil {
		return nil, err
	}

	entry, _, err := s.entry(ctx, path)
	if err != nil {
		return nil, err
	}

	pages := s.pageCount(entry)
	return &domain.DocumentInfo{
		Path:        entry.Path,
		Kind:        entry.Kind,
		FileExists:  true,
		SizeBytes:   file.SizeBytes,
		TotalLength: entry.CharLen(),
		TotalPages:  pages,
		Description: describe(entry.Kind, pages),
	}, nil
}

// pageCount returns the document's natural unit count. Word documents have
// no unit separators, so their page count is estimated from paragraphs.
func (s *ReaderService) pageCount(entry *domain.Extraction) int {
	if entry.Kind != domain.KindWord {
		return entry.PageCount()
	}
	pages := countParagraphs(entry.Content()) / wordPageEstimateDivisor
	if pages < 1 {
		pages = 1
	}
	return pages
}

// countParagraphs counts non-blank lines.
func countParagraphs(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

// describe summarises a document for the info surfaces.
func describe(kind domain.Kind, pages int) string {
	switch kind {
	case domain.KindExcel:
		return fmt.Sprintf("Excel workbook with %d sheets", pages)
	case domain.KindPowerPoint:
		return fmt.Sprintf("PowerPoint presentation with %d slides", pages)
	case domain.KindWord:
		return fmt.Sprintf("Word document with ~%d pages (estimated)", pages)
	default:
		return fmt.Sprintf("PDF document with %d pages", pages)
	}
}
