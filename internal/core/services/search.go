package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/nimbus-browser/recall/internal/core/domain"
	"github.com/nimbus-browser/recall/internal/core/ports/driven"
	"github.com/nimbus-browser/recall/internal/core/ports/driving"
	"github.com/nimbus-browser/recall/internal/logger"
)

// Ensure Searcher implements the interface.
var _ driving.SearchService = (*Searcher)(nil)

// MinSimilarity is the score below which candidates are discarded.
const MinSimilarity = 0.3

// DefaultSearchLimit applies when the caller passes a non-positive
// limit.
const DefaultSearchLimit = 10

// Searcher ranks stored documents against a query embedding. Reads
// operate on a store snapshot, so searches run concurrently with
// indexing.
type Searcher struct {
	store    *DocumentStore
	embedder driven.EmbeddingService
}

// NewSearcher creates a searcher over store using embedder for query
// vectors.
func NewSearcher(store *DocumentStore, embedder driven.EmbeddingService) *Searcher {
	return &Searcher{store: store, embedder: embedder}
}

// Available reports whether semantic search can be attempted. Cheap
// local check, no network.
func (s *Searcher) Available() bool {
	return s.embedder != nil && s.embedder.Available()
}

// Search embeds the query and ranks stored documents by cosine
// similarity, optionally restricted to the given types. Empty or
// whitespace-only queries return no results and no error. Embedding
// failures propagate to the caller; there is no implicit lexical
// fallback.
func (s *Searcher) Search(
	ctx context.Context, query string, limit int, types []domain.DocumentType,
) ([]domain.RankedResult, error) {
	logger.Section("Similarity Search")

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.RankedResult{}, nil
	}

	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	logger.Debug("Query: %q, limit: %d, types: %v", query, limit, types)

	queryVector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		logger.Debug("Query embedding failed: %v", err)
		return nil, fmt.Errorf("embed query: %w", err)
	}

	var typeFilter map[domain.DocumentType]bool
	if len(types) > 0 {
		typeFilter = make(map[domain.DocumentType]bool, len(types))
		for _, t := range types {
			typeFilter[t] = true
		}
	}

	var results []domain.RankedResult
	for _, doc := range s.store.Snapshot() {
		if typeFilter != nil && !typeFilter[doc.Type] {
			continue
		}
		score := domain.CosineSimilarity(queryVector, doc.Embedding)
		if score < MinSimilarity {
			continue
		}
		results = append(results, domain.RankedResult{
			Document:    doc,
			Score:       score,
			MatchReason: domain.MatchReason(query, doc.Title, score),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}

	logger.Info("Search %q: %d results", query, len(results))
	return results, nil
}

// SemanticSearch runs the intent classifier over the natural-language
// query and narrows the type filter when exactly one of tabs, history,
// or bookmarks was asked for. Ambiguous and topic-only queries search
// everything.
func (s *Searcher) SemanticSearch(ctx context.Context, query string, limit int) ([]domain.RankedResult, error) {
	intents := domain.ClassifyIntent(query)
	logger.Debug("Query intents: %v", intents)

	var types []domain.DocumentType
	if t, ok := domain.TypeForIntents(intents); ok {
		types = []domain.DocumentType{t}
		logger.Debug("Narrowed to type: %s", t)
	}

	return s.Search(ctx, query, limit, types)
}
