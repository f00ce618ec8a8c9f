// Package memory provides an in-memory snapshot store, used by tests
// and when persistence is disabled.
package memory

import (
	"sync"

	"github.com/nimbus-browser/recall/internal/core/domain"
	"github.com/nimbus-browser/recall/internal/core/ports/driven"
)

// Ensure SnapshotStore implements the interface.
var _ driven.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore keeps the last saved index in memory.
type SnapshotStore struct {
	mu    sync.RWMutex
	index *domain.Index

	// SaveErr, when set, is returned by Save. Lets tests exercise the
	// store's persistence failure handling.
	SaveErr error

	// Saves counts Save invocations.
	Saves int
}

// NewSnapshotStore creates an empty in-memory snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Load returns the last saved index, or an empty one.
func (s *SnapshotStore) Load() (*domain.Index, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.index == nil {
		return domain.NewIndex(), nil
	}
	cp := *s.index
	cp.Documents = append([]domain.Document(nil), s.index.Documents...)
	return &cp, nil
}

// Save replaces the held index.
func (s *SnapshotStore) Save(idx *domain.Index) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Saves++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	cp := *idx
	cp.Documents = append([]domain.Document(nil), idx.Documents...)
	s.index = &cp
	return nil
}

// Path identifies the store in diagnostics.
func (s *SnapshotStore) Path() string {
	return ":memory:"
}
