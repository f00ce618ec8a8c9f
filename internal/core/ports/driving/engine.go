package driving

import (
	"context"

	"github.com/nimbus-browser/recall/internal/core/domain"
)

// IndexService turns browsing records into indexed documents.
type IndexService interface {
	// IndexOne indexes a single record. Revisits with unchanged
	// content are bumped in place without an embedding call.
	IndexOne(ctx context.Context, rec domain.Record) error

	// IndexBatch indexes many records with one batched embedding call.
	// Insertion is all-or-nothing: if the embedding call fails, no
	// documents are added.
	IndexBatch(ctx context.Context, recs []domain.Record) error
}

// SearchService provides semantic search over the vector index.
type SearchService interface {
	// Search embeds the query and ranks stored documents by cosine
	// similarity, optionally restricted to the given types. An empty
	// query returns no results and no error.
	Search(ctx context.Context, query string, limit int, types []domain.DocumentType) ([]domain.RankedResult, error)

	// SemanticSearch classifies the query's intent first and narrows
	// the type filter when exactly one source type was asked for.
	SemanticSearch(ctx context.Context, query string, limit int) ([]domain.RankedResult, error)

	// Available reports whether semantic search can be attempted at
	// all (embedding generator configured). Cheap, no network.
	Available() bool
}

// RankService is the synchronous lexical quick-search scorer. It never
// touches the network or the vector index and can only return empty
// results, never fail.
type RankService interface {
	// Rank scores candidates against the typed query and returns the
	// matches in descending score order. Candidates that do not match
	// at all are excluded.
	Rank(query string, candidates []domain.Candidate) []domain.RankedCandidate
}

// StoreService exposes index lifecycle operations to the host.
type StoreService interface {
	// Load hydrates the index from the persisted snapshot, enforcing
	// expiry on the way in. Called once at startup.
	Load() error

	// Clear empties the index, in memory and on disk (sign-out).
	Clear() error

	// Stats reports document counts, total and per type.
	Stats() domain.IndexStats
}
