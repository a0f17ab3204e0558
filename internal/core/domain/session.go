package domain

// StreamSession is the caller-held cursor state driving successive chunk
// reads of one document. The core stores nothing per session; a caller
// abandons a stream by dropping the session, with no cleanup obligation.
//
// A session has a single logical owner and must be advanced serially. The
// cache entry underneath is immutable and safely shared by any number of
// concurrent sessions over the same file.
type StreamSession struct {
	// ID correlates the session in logs and stream records.
	ID string

	// Path is the requested document path.
	Path string

	// ChunkSize is the maximum characters per chunk.
	ChunkSize int

	// WordBoundaries prefers whitespace cut points over hard
	// character-count cut points.
	WordBoundaries bool

	// Cursor is the character offset of the next chunk. It only ever
	// increases.
	Cursor int

	// TotalChars is the document's character count, filled on the first
	// advance once extraction has completed.
	TotalChars int

	// Complete is set once the cursor reaches the end of the text.
	Complete bool
}

// NewStreamSession returns a session positioned at the start of the
// document. The caller supplies the ID.
func NewStreamSession(id, path string, chunkSize int, wordBoundaries bool) *StreamSession {
	return &StreamSession{
		ID:             id,
		Path:           path,
		ChunkSize:      chunkSize,
		WordBoundaries: wordBoundaries,
	}
}
