package driven

import (
	"context"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
)

// Extractor is one extraction backend for a document kind.
// Backends return the complete document text in a single call; chunking,
// pagination and page selection happen in core after the fact. Multi-unit
// formats join their natural units with domain.PageSeparator.
type Extractor interface {
	// Name is the unique backend identifier (e.g. "poppler").
	Name() string

	// Description is a short human-readable profile summary.
	Description() string

	// Class is the backend's speed/reliability tier.
	Class() domain.BackendClass

	// Kinds returns the document kinds this backend can extract.
	Kinds() []domain.Kind

	// Priority orders backends within a kind; lower values are tried
	// first. The value must fall inside the class's band: fast-native 1-9,
	// mid-native 10-49, compat-native 50-89, pure-fallback 90-99.
	Priority() int

	// CheckAvailable reports whether the backend can run in this process.
	// The registry calls it once at registration and the answer is fixed
	// for the process lifetime.
	CheckAvailable() error

	// InstallInstructions tells the user how to enable an unavailable
	// backend. Empty for backends that are always compiled in.
	InstallInstructions() string

	// Extract returns the complete text of the document at path.
	Extract(ctx context.Context, path string) (string, error)
}

// ExtractorRegistry is the priority-ordered backend catalogue.
// Availability is snapshotted when a backend is registered and never
// re-evaluated afterwards: whether a backend can run is a process-start
// fact, not a per-request one.
type ExtractorRegistry interface {
	// Register adds a backend and records its availability.
	Register(e Extractor)

	// ForKind returns the available backends for a kind, priority
	// ascending.
	ForKind(kind domain.Kind) []Extractor

	// Statuses returns catalogue entries for every registered backend,
	// including unavailable ones, priority ascending.
	Statuses() []domain.BackendStatus
}
