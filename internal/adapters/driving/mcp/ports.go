package mcp

import (
	"github.com/nimbus-browser/recall/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Search provides semantic search over the index.
	Search driving.SearchService

	// Store exposes index statistics and lifecycle.
	Store driving.StoreService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Store == nil {
		return ErrMissingStoreService
	}
	return nil
}
