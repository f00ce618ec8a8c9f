// Package domain defines the core business entities for the retrieval engine.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Document: one indexed, embeddable unit derived from a history, tab,
//     or bookmark record
//   - Record: the raw browsing activity a Document is built from
//   - Index: the whole-store aggregate that is persisted as a snapshot
//   - Candidate: a raw entry scored by the lexical quick-search ranker
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. Apart from the hash used for
// deterministic document IDs it imports only the Go standard library.
// All other packages depend on domain, never the reverse.
package domain
