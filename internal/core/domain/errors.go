package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent extraction and read failures.
// These are distinct from infrastructure errors. "File not found" and
// "unsupported type" are deliberately separate from "extraction failed":
// retrying is useless for the first two and potentially useful for the
// third, for example after installing a faster backend.
var (
	// ErrFileNotFound indicates the requested document does not exist on disk.
	ErrFileNotFound = errors.New("file not found")

	// ErrUnsupportedKind indicates a file extension outside the office
	// document family.
	ErrUnsupportedKind = errors.New("unsupported document type")

	// ErrAllBackendsFailed indicates every candidate extraction backend
	// failed for a file. Matched by errors.Is against an ExtractionError.
	ErrAllBackendsFailed = errors.New("all extraction backends failed")

	// ErrInvalidChunkSize indicates a zero or negative streaming chunk size.
	ErrInvalidChunkSize = errors.New("invalid chunk size")

	// ErrNoProgress indicates a stream iteration that would not advance the
	// cursor. Always a bug in the caller or the chunker, never valid
	// completion; the session must be discarded.
	ErrNoProgress = errors.New("stream iteration made no progress")

	// ErrInvalidPageRange indicates a malformed or out-of-range page
	// selection expression.
	ErrInvalidPageRange = errors.New("invalid page range")

	// ErrExtractorUnavailable indicates a backend that is not compiled in
	// or whose external tool is missing.
	ErrExtractorUnavailable = errors.New("extractor unavailable")

	// ErrUnsupportedEncoding indicates a document whose character encoding
	// the backend cannot decode faithfully.
	ErrUnsupportedEncoding = errors.New("unsupported document encoding")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")
)

// BackendFailure records one backend's reason for failing a file.
type BackendFailure struct {
	Backend string
	Err     error
}

// String renders the failure as "backend: reason".
func (f BackendFailure) String() string {
	return fmt.Sprintf("%s: %v", f.Backend, f.Err)
}

// ExtractionError aggregates the failure of every backend tried for a file.
// It matches ErrAllBackendsFailed via errors.Is, and errors.As can recover
// the per-backend reasons.
type ExtractionError struct {
	Path     string
	Kind     Kind
	Failures []BackendFailure
}

// Error lists each backend's failure reason.
func (e *ExtractionError) Error() string {
	if len(e.Failures) == 0 {
		return fmt.Sprintf("no extraction backend available for %s documents", e.Kind)
	}
	reasons := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		reasons[i] = f.String()
	}
	return fmt.Sprintf("all extraction backends failed for %s: %s",
		e.Path, strings.Join(reasons, "; "))
}

// Is reports whether target is the aggregate sentinel.
func (e *ExtractionError) Is(target error) bool {
	return target == ErrAllBackendsFailed
}

// Unwrap exposes the individual backend errors to errors.Is and errors.As.
func (e *ExtractionError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f.Err
	}
	return errs
}
