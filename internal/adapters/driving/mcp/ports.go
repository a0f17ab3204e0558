package mcp

import (
	"github.com/custodia-labs/skimma-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Reader serves document text whole, by pages, by range or as chunks.
	Reader driving.DocumentReader

	// Backends lists the extraction backend catalogue.
	Backends driving.BackendCatalog

	// Cache exposes extraction cache governance.
	Cache driving.CacheAdmin
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Reader == nil {
		return ErrMissingReader
	}
	// Backends and Cache are optional; their tools degrade gracefully
	return nil
}
