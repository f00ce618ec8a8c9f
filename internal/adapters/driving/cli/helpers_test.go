package cli

import (
	"context"
	"time"

	"github.com/nimbus-browser/recall/internal/adapters/driven/storage/memory"
	"github.com/nimbus-browser/recall/internal/core/domain"
	"github.com/nimbus-browser/recall/internal/core/services"
)

// stubEmbedder returns a fixed vector for every input so command tests
// stay deterministic without a network.
type stubEmbedder struct {
	unavailable bool
}

func (s *stubEmbedder) Embed(context.Context, string) ([]float32, error) {
	return []float32{1, 0, 0}, nil
}

func (s *stubEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1, 0, 0}
	}
	return out, nil
}

func (s *stubEmbedder) Dimensions() int   { return 3 }
func (s *stubEmbedder) ModelName() string { return "stub" }
func (s *stubEmbedder) Available() bool   { return !s.unavailable }
func (s *stubEmbedder) Close() error      { return nil }

// setupTestServices wires the package-level services against in-memory
// backends and returns a cleanup that unwires them.
func setupTestServices() func() {
	store := services.NewDocumentStore(memory.NewSnapshotStore())
	embedder := &stubEmbedder{}

	documentStore = store
	indexService = services.NewIndexer(store, embedder)
	searchService = services.NewSearcher(store, embedder)
	rankService = services.NewRanker()

	return func() {
		documentStore = nil
		indexService = nil
		searchService = nil
		rankService = nil
	}
}

// newUnavailableSearcher builds a searcher whose embedding backend
// reports itself unavailable.
func newUnavailableSearcher() *services.Searcher {
	return services.NewSearcher(documentStore, &stubEmbedder{unavailable: true})
}

// seedDocument puts one already-embedded document into the store.
func seedDocument(t domain.DocumentType, url, title string) {
	documentStore.Upsert(domain.Document{
		ID:        domain.DocumentID(t, url),
		Type:      t,
		URL:       url,
		Title:     title,
		Content:   title,
		Embedding: []float32{1, 0, 0},
		Timestamp: time.Now(),
	})
}
