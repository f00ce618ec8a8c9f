package driven

import "github.com/nimbus-browser/recall/internal/core/domain"

// SnapshotStore persists the whole index as a single atomic snapshot.
// The engine assumes exactly one process owns the snapshot at a time;
// there is no cross-process locking.
type SnapshotStore interface {
	// Load reads the persisted snapshot. Corruption is never fatal:
	// implementations sideline the unreadable file and return an empty
	// index instead of an error.
	Load() (*domain.Index, error)

	// Save atomically replaces the persisted snapshot with idx
	// (temp-write plus rename, so the on-disk file is always a
	// complete, previously-valid snapshot). Failures are classified
	// with domain.ErrStorageFull and domain.ErrStoragePermission so
	// the store can react.
	Save(idx *domain.Index) error

	// Path returns the snapshot location, for diagnostics.
	Path() string
}
