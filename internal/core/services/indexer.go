package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/nimbus-browser/recall/internal/core/domain"
	"github.com/nimbus-browser/recall/internal/core/ports/driven"
	"github.com/nimbus-browser/recall/internal/core/ports/driving"
	"github.com/nimbus-browser/recall/internal/logger"
)

// Ensure Indexer implements the interface.
var _ driving.IndexService = (*Indexer)(nil)

// Indexer turns browsing records into indexed documents. It builds the
// searchable content string, requests embeddings from the external
// generator, and commits the result to the store. Embedding calls are
// made with no store lock held so concurrent searches are never
// blocked on the network.
type Indexer struct {
	store    *DocumentStore
	embedder driven.EmbeddingService
	now      func() time.Time
}

// NewIndexer creates an indexer committing to store and embedding via
// embedder.
func NewIndexer(store *DocumentStore, embedder driven.EmbeddingService) *Indexer {
	return &Indexer{
		store:    store,
		embedder: embedder,
		now:      time.Now,
	}
}

// BuildSearchableContent derives the text that represents a page in
// the index: the title, the URL's host, and path segments longer than
// two characters, joined by single spaces. Full page text is
// intentionally excluded to keep the index light.
func BuildSearchableContent(title, rawURL string) string {
	parts := []string{}
	if t := strings.TrimSpace(title); t != "" {
		parts = append(parts, t)
	}

	if u, err := url.Parse(rawURL); err == nil {
		if u.Host != "" {
			parts = append(parts, u.Host)
		}
		for _, seg := range splitPathSegments(u.Path) {
			if len(seg) > 2 {
				parts = append(parts, seg)
			}
		}
	}

	return strings.Join(parts, " ")
}

// splitPathSegments splits a URL path on slashes, hyphens, underscores,
// and whitespace.
func splitPathSegments(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		switch r {
		case '/', '-', '_', ' ', '\t':
			return true
		}
		return false
	})
}

// IndexOne indexes a single record. A revisit of an already-indexed
// page with unchanged content is bumped in place without an embedding
// call; anything else embeds the new content and replaces the
// document. If the embedding call fails nothing is committed.
func (ix *Indexer) IndexOne(ctx context.Context, rec domain.Record) error {
	if !rec.Type.Valid() {
		return fmt.Errorf("index %q: %w", rec.URL, domain.ErrInvalidType)
	}

	id := domain.DocumentID(rec.Type, rec.URL)
	content := BuildSearchableContent(rec.Title, rec.URL)

	if existing, ok := ix.store.Get(id); ok && existing.Content == content {
		// Revisit: bump in place, skip the embedding round-trip.
		ix.store.Touch(id)
		logger.Debug("Revisit: %s (%s)", rec.URL, id)
		return nil
	}

	embedding, err := ix.embedder.Embed(ctx, content)
	if err != nil {
		return fmt.Errorf("embed %q: %w", rec.URL, err)
	}

	ix.store.Upsert(ix.buildDocument(id, rec, content, embedding))
	logger.Debug("Indexed: %s (%s)", rec.URL, id)
	return nil
}

// IndexBatch indexes many records with a single batched embedding
// call. Records whose ID is already present are skipped (a stale
// unchanged entry is acceptable; the filter is a cost optimisation,
// not a correctness requirement). Insertion is all-or-nothing: if the
// embedding call fails, no documents are added.
func (ix *Indexer) IndexBatch(ctx context.Context, recs []domain.Record) error {
	type pending struct {
		id      string
		rec     domain.Record
		content string
	}

	var todo []pending
	for _, rec := range recs {
		if !rec.Type.Valid() {
			return fmt.Errorf("index %q: %w", rec.URL, domain.ErrInvalidType)
		}
		id := domain.DocumentID(rec.Type, rec.URL)
		if _, ok := ix.store.Get(id); ok {
			continue
		}
		todo = append(todo, pending{
			id:      id,
			rec:     rec,
			content: BuildSearchableContent(rec.Title, rec.URL),
		})
	}

	if len(todo) == 0 {
		logger.Debug("Batch: nothing new to index (%d records)", len(recs))
		return nil
	}

	texts := make([]string, len(todo))
	for i, p := range todo {
		texts[i] = p.content
	}

	// One round-trip; the i-th vector belongs to the i-th text.
	embeddings, err := ix.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed batch of %d: %w", len(texts), err)
	}
	if len(embeddings) != len(todo) {
		return fmt.Errorf("embed batch of %d: got %d vectors: %w",
			len(todo), len(embeddings), domain.ErrMalformedResponse)
	}

	docs := make([]domain.Document, len(todo))
	for i, p := range todo {
		docs[i] = ix.buildDocument(p.id, p.rec, p.content, embeddings[i])
	}

	ix.store.Upsert(docs...)
	logger.Info("Batch indexed: %d new of %d records", len(docs), len(recs))
	return nil
}

func (ix *Indexer) buildDocument(id string, rec domain.Record, content string, embedding []float32) domain.Document {
	now := ix.now()
	return domain.Document{
		ID:        id,
		Type:      rec.Type,
		URL:       rec.URL,
		Title:     rec.Title,
		Content:   content,
		Embedding: embedding,
		Timestamp: now,
		Metadata: domain.Metadata{
			VisitCount:  1,
			LastVisited: &now,
			SpaceID:     rec.SpaceID,
			IsPinned:    rec.IsPinned,
		},
	}
}
