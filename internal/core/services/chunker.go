package services

import (
	"fmt"
	"unicode"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
)

// DefaultChunkSize is the default maximum characters per stream chunk.
const DefaultChunkSize = 10000

// DefaultMinAdvance is the floor for the word-boundary search window: a
// boundary cut never leaves a chunk shorter than max(chunkSize/10, this).
const DefaultMinAdvance = 50

// StreamingChunker yields UTF-8-safe, optionally word-aligned chunks from a
// cached extraction. The chunker is stateless; all cursor state lives in
// the caller-held session, so a single chunker serves every concurrent
// stream.
type StreamingChunker struct {
	boundaryDivisor int
	minAdvance      int
}

// ChunkerOption configures the streaming chunker.
type ChunkerOption func(*StreamingChunker)

// WithMinAdvance sets the minimum characters a word-boundary cut must keep
// in a chunk.
func WithMinAdvance(n int) ChunkerOption {
	return func(c *StreamingChunker) {
		if n > 0 {
			c.minAdvance = n
		}
	}
}

// WithBoundaryDivisor sets the fraction of the chunk size protected from
// boundary shrinking; the window floor is chunkSize/divisor.
func WithBoundaryDivisor(n int) ChunkerOption {
	return func(c *StreamingChunker) {
		if n > 0 {
			c.boundaryDivisor = n
		}
	}
}

// NewStreamingChunker creates a chunker with the given options.
func NewStreamingChunker(opts ...ChunkerOption) *StreamingChunker {
	c := &StreamingChunker{
		boundaryDivisor: 10,
		minAdvance:      DefaultMinAdvance,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Next advances the session by one chunk of the entry's text.
//
// The candidate end is cursor + chunk size, clamped to the text. In
// word-boundary mode the cut backs up to the nearest whitespace inside a
// bounded window; the whitespace itself opens the following chunk, so
// concatenating every chunk of a session reproduces the text exactly in
// both modes.
//
// An empty document is complete on its first advance, at 100% progress
// with empty content and no error. Advancing a session that is already
// complete, or one whose cursor sits past the end, fails with
// domain.ErrNoProgress: a zero-progress call is a bug, never valid
// completion, and the session must be discarded.
func (c *StreamingChunker) Next(entry *domain.Extraction, s *domain.StreamSession) (*domain.StreamChunk, error) {
	if s.ChunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size %d", domain.ErrInvalidChunkSize, s.ChunkSize)
	}

	total := entry.CharLen()
	s.TotalChars = total

	if total == 0 {
		if s.Complete {
			return nil, fmt.Errorf("%w: session already complete", domain.ErrNoProgress)
		}
		s.Complete = true
		return &domain.StreamChunk{
			SessionID: s.ID,
			Progress:  100,
			Complete:  true,
		}, nil
	}

	if s.Cursor > total {
		return nil, fmt.Errorf("%w: cursor %d beyond end %d", domain.ErrNoProgress, s.Cursor, total)
	}
	if s.Complete || s.Cursor == total {
		return nil, fmt.Errorf("%w: session already complete", domain.ErrNoProgress)
	}

	end := s.Cursor + s.ChunkSize
	if end > total {
		end = total
	}
	if s.WordBoundaries {
		end = c.wordBoundary(entry, s.Cursor, end, s.ChunkSize)
	}
	if end <= s.Cursor {
		return nil, fmt.Errorf("%w: computed end %d at cursor %d", domain.ErrNoProgress, end, s.Cursor)
	}

	content := entry.Slice(s.Cursor, end)
	s.Cursor = end
	s.Complete = s.Cursor >= total

	return &domain.StreamChunk{
		SessionID:       s.ID,
		Content:         content,
		CurrentPosition: s.Cursor,
		TotalLength:     total,
		Progress:        float64(s.Cursor) / float64(total) * 100,
		Complete:        s.Complete,
	}, nil
}

// wordBoundary backs the candidate end up to the nearest whitespace within
// a bounded window. The window keeps at least max(chunkSize/divisor,
// minAdvance) characters of progress, the search never looks forward past
// the candidate end, and with no whitespace in the window the hard end
// stands.
func (c *StreamingChunker) wordBoundary(entry *domain.Extraction, cursor, end, chunkSize int) int {
	if end >= entry.CharLen() {
		return end
	}
	if unicode.IsSpace(entry.RuneAt(end)) {
		// The following chunk already opens at whitespace.
		return end
	}

	advance := chunkSize / c.boundaryDivisor
	if advance < c.minAdvance {
		advance = c.minAdvance
	}
	minEnd := cursor + advance
	if minEnd >= end {
		return end
	}

	for i := end - 1; i >= minEnd; i-- {
		if unicode.IsSpace(entry.RuneAt(i)) {
			return i
		}
	}
	return end
}
