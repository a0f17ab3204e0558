package domain

// ReadResult is a full or page-selected text read.
type ReadResult struct {
	// Path is the canonical absolute path that was read.
	Path string

	// Kind is the document family.
	Kind Kind

	// Content is the extracted text, or the selected pages joined by the
	// page separator for page-selected reads.
	Content string

	// TotalChars is the character count of the whole document, regardless
	// of any page selection.
	TotalChars int

	// TotalPages is the document's natural unit count (pages, sheets or
	// slides).
	TotalPages int

	// RequestedPages lists the selected 1-based pages. Nil for full reads.
	RequestedPages []int

	// ReturnedPages is the number of pages included in Content.
	ReturnedPages int
}

// PageResult is one offset/length window over a document's text.
// Pagination is a pure read: arbitrary offsets are valid, not just
// monotonic ones.
type PageResult struct {
	// Content is the window's text.
	Content string

	// TotalLength is the character count of the whole document.
	TotalLength int

	// Offset is the clamped character offset the window actually starts at.
	Offset int

	// ReturnedLength is the number of characters in Content.
	ReturnedLength int

	// HasMore reports whether text remains past this window.
	HasMore bool
}

// StreamChunk is the record produced by one advance of a stream session.
type StreamChunk struct {
	// SessionID echoes the advancing session's ID.
	SessionID string

	// Content is the chunk text. Concatenating every chunk of a session
	// reproduces the document text exactly.
	Content string

	// CurrentPosition is the cursor after this chunk, in characters.
	CurrentPosition int

	// TotalLength is the document's character count.
	TotalLength int

	// Progress is the percentage of the document consumed, 0-100.
	Progress float64

	// Complete is set on the final chunk.
	Complete bool
}

// DocumentInfo is the size-probe result. Probing populates the same cache
// entry the read shapes use, so a probe followed by a read extracts once.
type DocumentInfo struct {
	// Path is the canonical absolute path probed.
	Path string

	// Kind is the document family, empty when the file does not exist.
	Kind Kind

	// FileExists reports whether the file was found on disk.
	FileExists bool

	// SizeBytes is the on-disk file size.
	SizeBytes int64

	// TotalLength is the extracted character count.
	TotalLength int

	// TotalPages is the natural unit count (pages, sheets or slides).
	TotalPages int

	// Description summarises the document for humans, e.g.
	// "PDF document with 12 pages".
	Description string
}

// CacheStats reports the extraction cache's footprint and traffic.
type CacheStats struct {
	// Entries is the number of cached extractions.
	Entries int

	// TotalBytes is the retained text size across all entries.
	TotalBytes int64

	// Hits and Misses count lookups since process start.
	Hits   uint64
	Misses uint64

	// Evictions counts entries dropped by the size policy.
	Evictions uint64
}

// BackendStatus describes one extraction backend's catalogue entry.
type BackendStatus struct {
	// Name is the backend identifier, e.g. "poppler".
	Name string

	// Description summarises the backend's profile.
	Description string

	// Class is the speed/reliability tier.
	Class BackendClass

	// Kinds lists the document families the backend can extract.
	Kinds []Kind

	// Priority orders backends within a kind; lower is tried first.
	Priority int

	// Available reports whether the backend can run in this process,
	// fixed at start.
	Available bool

	// Reason explains unavailability; empty when available.
	Reason string

	// InstallHint tells the user how to enable an unavailable backend.
	InstallHint string
}
