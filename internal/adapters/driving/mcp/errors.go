// Package mcp provides an MCP (Model Context Protocol) server adapter
// for the retrieval engine. It lets AI assistants query the local
// browsing index.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingStoreService is returned when the store service is not provided.
var ErrMissingStoreService = errors.New("mcp: store service is required")
