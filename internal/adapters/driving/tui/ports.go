// Package tui provides an interactive terminal pager for skimma.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/skimma-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Reader serves document text for paging.
	Reader driving.DocumentReader
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(reader driving.DocumentReader) *Ports {
	return &Ports{
		Reader: reader,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Reader == nil {
		return ErrMissingReader
	}
	return nil
}
