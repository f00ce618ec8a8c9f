package domain

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// DocumentType identifies the kind of browsing record a document was
// built from. The wire values are lower-case and stable.
type DocumentType string

// Supported document types.
const (
	DocumentTypeHistory  DocumentType = "history"
	DocumentTypeTab      DocumentType = "tab"
	DocumentTypeBookmark DocumentType = "bookmark"
)

// Valid reports whether t is one of the known document types.
func (t DocumentType) Valid() bool {
	switch t {
	case DocumentTypeHistory, DocumentTypeTab, DocumentTypeBookmark:
		return true
	}
	return false
}

// Expiry windows per document type. History churns fast; tabs and
// bookmarks stay relevant longer.
const (
	HistoryExpiry  = 7 * 24 * time.Hour
	TabExpiry      = 30 * 24 * time.Hour
	BookmarkExpiry = 30 * 24 * time.Hour
)

// ExpiryWindow returns how long a document of the given type stays in
// the index without being re-touched.
func (t DocumentType) ExpiryWindow() time.Duration {
	if t == DocumentTypeHistory {
		return HistoryExpiry
	}
	return TabExpiry
}

// EmbeddingDimensions is the fixed vector size produced by the
// embedding generator. All stored embeddings share this dimension.
const EmbeddingDimensions = 512

// SchemaVersion is the persisted snapshot format version.
const SchemaVersion = 1

// Metadata carries optional per-document attributes.
type Metadata struct {
	// VisitCount is the number of times the same (type, url) pair was
	// re-indexed with unchanged content.
	VisitCount int `json:"visitCount,omitempty"`

	// LastVisited is when the document was last revisited.
	LastVisited *time.Time `json:"lastVisited,omitempty"`

	// SpaceID is the workspace the originating tab belongs to.
	SpaceID string `json:"spaceId,omitempty"`

	// IsPinned marks pinned tabs.
	IsPinned bool `json:"isPinned,omitempty"`
}

// Document is one indexed unit. IDs are deterministic over (type, url)
// so re-indexing the same page overwrites instead of duplicating.
type Document struct {
	ID        string       `json:"id"`
	Type      DocumentType `json:"type"`
	URL       string       `json:"url"`
	Title     string       `json:"title"`

	// Content is the derived searchable text sent to the embedding
	// generator, not the raw page body.
	Content string `json:"content"`

	// Embedding is the fixed-dimension vector for Content.
	Embedding []float32 `json:"embedding"`

	// Timestamp is the last-touched time, updated on revisit.
	Timestamp time.Time `json:"timestamp"`

	Metadata Metadata `json:"metadata"`
}

// IsExpired reports whether the document has outlived its type's
// expiry window as of now.
func (d Document) IsExpired(now time.Time) bool {
	return now.Sub(d.Timestamp) > d.Type.ExpiryWindow()
}

// DocumentID derives the deterministic document identifier for a
// (type, url) pair. The hash is stable and content-derived, so the same
// pair always maps to the same ID across processes and restarts.
func DocumentID(t DocumentType, url string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(string(t)+":"+url))
}

// Index is the whole-store aggregate persisted as a single snapshot.
// The document store is its single writer.
type Index struct {
	Documents   []Document `json:"documents"`
	LastUpdated time.Time  `json:"lastUpdated"`
	Version     int        `json:"version"`
}

// NewIndex returns an empty index at the current schema version.
func NewIndex() *Index {
	return &Index{Documents: []Document{}, Version: SchemaVersion}
}

// IndexStats summarises the index contents.
type IndexStats struct {
	Total  int                  `json:"total"`
	ByType map[DocumentType]int `json:"byType"`
}
