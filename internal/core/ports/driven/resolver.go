package driven

import "time"

// ResolvedFile is the on-disk identity of a requested document.
type ResolvedFile struct {
	// AbsPath is the cleaned absolute path; it doubles as the cache key.
	AbsPath string

	// SizeBytes is the file size at resolution time.
	SizeBytes int64

	// ModTime is the file's modification time at resolution time.
	ModTime time.Time
}

// PathResolver canonicalises request paths and confirms the file exists.
// Relative paths resolve against the configured project root. Resolution
// performs no trust or sandbox checks; path security stays with the caller.
type PathResolver interface {
	// Resolve returns the file identity, or domain.ErrFileNotFound when
	// the path does not exist or is a directory.
	Resolve(path string) (ResolvedFile, error)
}
