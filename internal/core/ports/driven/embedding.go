package driven

import "context"

// EmbeddingService generates vector embeddings from text. It is the
// only collaborator that performs real network I/O; callers must not
// hold the store's write lock across a call.
//
// Implementations may include:
//   - OpenAI (text-embedding-3-small with reduced dimensions)
//   - Ollama (nomic-embed-text, all-minilm)
//   - Local models via inference servers
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts in one call.
	// The i-th output vector corresponds to the i-th input text, and
	// the batch is all-or-nothing: on error no vectors are returned.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding vector size. All vectors in the
	// index share this dimension.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Available is a cheap local check (credential present, endpoint
	// configured) used to gate UI affordances before attempting a call.
	// It makes no network request.
	Available() bool

	// Close releases resources.
	Close() error
}
