package driving

import (
	"context"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
)

// DocumentReader serves document text whole, in selected pages, in
// offset/length windows, or as a chunk stream. Every shape is backed by the
// same cache entry: the first operation to touch a file pays for extraction,
// all later shapes are index arithmetic over the cached text.
type DocumentReader interface {
	// Read returns the complete text of the document.
	Read(ctx context.Context, path string) (*domain.ReadResult, error)

	// ReadPages returns the pages selected by expr ("all", "3", "1,3,5-7")
	// joined by the page separator.
	ReadPages(ctx context.Context, path, expr string) (*domain.ReadResult, error)

	// ReadRange returns up to maxChars characters starting at the given
	// character offset. Offsets are clamped to the document; arbitrary
	// offsets are valid.
	ReadRange(ctx context.Context, path string, offsetChars, maxChars int) (*domain.PageResult, error)

	// NextChunk advances a caller-held stream session by one chunk.
	// Sessions are constructed with domain.NewStreamSession and must be
	// advanced serially by a single owner. A session whose chunk size is
	// zero or negative fails with domain.ErrInvalidChunkSize; an advance
	// that cannot move the cursor fails with domain.ErrNoProgress and the
	// session must be discarded.
	NextChunk(ctx context.Context, session *domain.StreamSession) (*domain.StreamChunk, error)

	// Probe reports existence, size and extracted length without the
	// caller consuming a read. A missing file is reported via
	// DocumentInfo.FileExists with a nil error; probing an existing file
	// populates the extraction cache.
	Probe(ctx context.Context, path string) (*domain.DocumentInfo, error)
}
