// Package extractors hosts the extraction backend registry. The backend
// implementations live in sub-packages grouped by document family.
package extractors

import (
	"sort"
	"sync"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
	"github.com/custodia-labs/skimma-cli/internal/core/ports/driven"
	"github.com/custodia-labs/skimma-cli/internal/logger"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// entry is one registered backend plus its availability snapshot.
type entry struct {
	extractor driven.Extractor
	available bool
	reason    string
}

// Registry is the priority-ordered backend catalogue. Availability is
// snapshotted at registration and never re-evaluated: whether a backend
// can run is a process-start fact, not a per-request one.
type Registry struct {
	mu       sync.RWMutex
	disabled map[string]bool
	entries  []entry
}

// NewRegistry creates a registry. Backends named in disabled register as
// unavailable regardless of their own availability check.
func NewRegistry(disabled []string) *Registry {
	d := make(map[string]bool, len(disabled))
	for _, name := range disabled {
		d[name] = true
	}
	return &Registry{disabled: d}
}

// Register adds a backend and records its availability.
func (r *Registry) Register(e driven.Extractor) {
	ent := entry{extractor: e, available: true}
	if r.disabled[e.Name()] {
		ent.available = false
		ent.reason = "disabled in config"
	} else if err := e.CheckAvailable(); err != nil {
		ent.available = false
		ent.reason = err.Error()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, ent)
	sort.SliceStable(r.entries, func(i, j int) bool {
		return r.entries[i].extractor.Priority() < r.entries[j].extractor.Priority()
	})

	if ent.available {
		logger.Debug("backend %s registered (priority %d)", e.Name(), e.Priority())
	} else {
		logger.Debug("backend %s unavailable: %s", e.Name(), ent.reason)
	}
}

// ForKind returns the available backends for a kind, priority ascending.
func (r *Registry) ForKind(kind domain.Kind) []driven.Extractor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []driven.Extractor
	for _, ent := range r.entries {
		if ent.available && handles(ent.extractor, kind) {
			out = append(out, ent.extractor)
		}
	}
	return out
}

// Statuses returns catalogue entries for every registered backend,
// including unavailable ones, priority ascending.
func (r *Registry) Statuses() []domain.BackendStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.BackendStatus, 0, len(r.entries))
	for _, ent := range r.entries {
		e := ent.extractor
		out = append(out, domain.BackendStatus{
			Name:        e.Name(),
			Description: e.Description(),
			Class:       e.Class(),
			Kinds:       e.Kinds(),
			Priority:    e.Priority(),
			Available:   ent.available,
			Reason:      ent.reason,
			InstallHint: e.InstallInstructions(),
		})
	}
	return out
}

// handles reports whether the extractor covers the kind.
func handles(e driven.Extractor, kind domain.Kind) bool {
	for _, k := range e.Kinds() {
		if k == kind {
			return true
		}
	}
	return false
}
