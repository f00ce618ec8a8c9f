package services

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/nimbus-browser/recall/internal/core/domain"
	"github.com/nimbus-browser/recall/internal/core/ports/driven"
	"github.com/nimbus-browser/recall/internal/core/ports/driving"
	"github.com/nimbus-browser/recall/internal/logger"
)

// Ensure DocumentStore implements the interface.
var _ driving.StoreService = (*DocumentStore)(nil)

// Default housekeeping limits.
const (
	// DefaultMaxDocuments caps the index size across all types.
	DefaultMaxDocuments = 1000

	// storageFullEvictions is how many of the oldest documents are
	// dropped when a snapshot write fails for lack of space.
	storageFullEvictions = 10
)

// DocumentStore owns the in-memory index and is its single writer. All
// mutation is serialized behind the write lock; readers take a copied
// snapshot so slow consumers never block the writer. The in-memory
// index is the source of truth; persistence is best-effort and
// self-healing.
type DocumentStore struct {
	mu           sync.RWMutex
	docs         map[string]domain.Document
	lastUpdated  time.Time
	snapshots    driven.SnapshotStore
	maxDocuments int
	now          func() time.Time
}

// StoreOption configures a DocumentStore.
type StoreOption func(*DocumentStore)

// WithMaxDocuments overrides the default capacity limit.
func WithMaxDocuments(max int) StoreOption {
	return func(s *DocumentStore) {
		if max > 0 {
			s.maxDocuments = max
		}
	}
}

// WithClock overrides the store's time source. Useful for testing
// expiry and eviction.
func WithClock(now func() time.Time) StoreOption {
	return func(s *DocumentStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewDocumentStore creates a document store backed by the given
// snapshot store.
func NewDocumentStore(snapshots driven.SnapshotStore, opts ...StoreOption) *DocumentStore {
	s := &DocumentStore{
		docs:         make(map[string]domain.Document),
		snapshots:    snapshots,
		maxDocuments: DefaultMaxDocuments,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted snapshot into memory and runs the expiry
// pass. Corrupt or missing snapshots load as empty; Load never fails
// on bad data.
func (s *DocumentStore) Load() error {
	idx, err := s.snapshots.Load()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.docs = make(map[string]domain.Document, len(idx.Documents))
	for _, doc := range idx.Documents {
		s.docs[doc.ID] = doc
	}
	s.lastUpdated = idx.LastUpdated
	expired := s.enforceExpiryLocked(s.now())
	s.mu.Unlock()

	logger.Info("Index loaded: %d documents (%d expired)", len(idx.Documents), expired)

	if expired > 0 {
		s.persist()
	}
	return nil
}

// Get returns the document with the given ID.
func (s *DocumentStore) Get(id string) (domain.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	return doc, ok
}

// Snapshot returns a copy of all documents. Safe to read while the
// store keeps mutating.
func (s *DocumentStore) Snapshot() []domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Upsert inserts or replaces documents, enforces the capacity limit
// once, and persists. The whole batch commits under a single write
// lock acquisition.
func (s *DocumentStore) Upsert(docs ...domain.Document) {
	if len(docs) == 0 {
		return
	}

	s.mu.Lock()
	for _, doc := range docs {
		s.docs[doc.ID] = doc
	}
	evicted := s.enforceCapacityLocked()
	s.lastUpdated = s.now()
	s.mu.Unlock()

	if evicted > 0 {
		logger.Debug("Capacity: evicted %d oldest documents", evicted)
	}
	s.persist()
}

// Touch records a revisit of an existing document: visit count,
// last-visited, and timestamp are bumped without touching content or
// embedding. Returns false if the document does not exist.
func (s *DocumentStore) Touch(id string) bool {
	now := s.now()

	s.mu.Lock()
	doc, ok := s.docs[id]
	if ok {
		doc.Metadata.VisitCount++
		doc.Metadata.LastVisited = &now
		doc.Timestamp = now
		s.docs[id] = doc
		s.lastUpdated = now
	}
	s.mu.Unlock()

	if !ok {
		return false
	}
	s.persist()
	return true
}

// EnforceExpiry removes every expired document. Run at load; hosts may
// also invoke it periodically. Returns the number removed.
func (s *DocumentStore) EnforceExpiry() int {
	s.mu.Lock()
	removed := s.enforceExpiryLocked(s.now())
	if removed > 0 {
		s.lastUpdated = s.now()
	}
	s.mu.Unlock()

	if removed > 0 {
		logger.Debug("Expiry: removed %d documents", removed)
		s.persist()
	}
	return removed
}

// Clear empties the index, in memory and on disk.
func (s *DocumentStore) Clear() error {
	s.mu.Lock()
	s.docs = make(map[string]domain.Document)
	s.lastUpdated = s.now()
	s.mu.Unlock()

	logger.Info("Index cleared")
	s.persist()
	return nil
}

// Stats reports document counts, total and per type.
func (s *DocumentStore) Stats() domain.IndexStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.IndexStats{
		Total:  len(s.docs),
		ByType: make(map[domain.DocumentType]int),
	}
	for _, doc := range s.docs {
		stats.ByType[doc.Type]++
	}
	return stats
}

// snapshotLocked copies the documents in deterministic order: ascending
// timestamp, ID as tiebreak. Caller must hold at least a read lock.
func (s *DocumentStore) snapshotLocked() []domain.Document {
	docs := make([]domain.Document, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool {
		if docs[i].Timestamp.Equal(docs[j].Timestamp) {
			return docs[i].ID < docs[j].ID
		}
		return docs[i].Timestamp.Before(docs[j].Timestamp)
	})
	return docs
}

// enforceCapacityLocked drops the oldest documents beyond the capacity
// limit. Global across all types, not per type. Caller must hold the
// write lock. Returns the number evicted.
func (s *DocumentStore) enforceCapacityLocked() int {
	excess := len(s.docs) - s.maxDocuments
	if excess <= 0 {
		return 0
	}

	docs := s.snapshotLocked()
	for _, doc := range docs[:excess] {
		delete(s.docs, doc.ID)
	}
	return excess
}

// evictOldestLocked drops the n oldest documents unconditionally.
// Used to free space after a storage-full write failure.
func (s *DocumentStore) evictOldestLocked(n int) int {
	docs := s.snapshotLocked()
	if n > len(docs) {
		n = len(docs)
	}
	for _, doc := range docs[:n] {
		delete(s.docs, doc.ID)
	}
	return n
}

// enforceExpiryLocked removes expired documents as of now. Caller must
// hold the write lock.
func (s *DocumentStore) enforceExpiryLocked(now time.Time) int {
	removed := 0
	for id, doc := range s.docs {
		if doc.IsExpired(now) {
			delete(s.docs, id)
			removed++
		}
	}
	return removed
}

// persist writes the current index to the snapshot store. The snapshot
// copy is taken under the read lock; serialization and the disk write
// happen outside any lock. Failures are warnings, never fatal: a full
// disk triggers a one-shot eviction of the oldest documents and a
// retry, a permission failure leaves the in-memory index authoritative
// for the session.
func (s *DocumentStore) persist() {
	if s.snapshots == nil {
		return
	}

	err := s.snapshots.Save(s.currentIndex())
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, domain.ErrStorageFull):
		s.mu.Lock()
		evicted := s.evictOldestLocked(storageFullEvictions)
		s.mu.Unlock()
		logger.Warn("Snapshot write failed (storage full), evicted %d oldest documents: %v", evicted, err)

		if retryErr := s.snapshots.Save(s.currentIndex()); retryErr != nil {
			logger.Warn("Snapshot retry failed: %v", retryErr)
		}
	case errors.Is(err, domain.ErrStoragePermission):
		logger.Warn("Snapshot not writable, index kept in memory only: %v", err)
	default:
		logger.Warn("Snapshot write failed: %v", err)
	}
}

// currentIndex assembles the persistable aggregate.
func (s *DocumentStore) currentIndex() *domain.Index {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &domain.Index{
		Documents:   s.snapshotLocked(),
		LastUpdated: s.lastUpdated,
		Version:     domain.SchemaVersion,
	}
}
