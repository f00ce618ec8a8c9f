package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/nimbus-browser/recall/internal/core/domain"
	"github.com/nimbus-browser/recall/internal/core/ports/driven"
	"github.com/nimbus-browser/recall/internal/logger"
)

// Ensure SnapshotStore implements the interface.
var _ driven.SnapshotStore = (*SnapshotStore)(nil)

// BackupSuffix is appended to an unreadable snapshot before starting
// fresh, so the corrupt data is kept around for inspection.
const BackupSuffix = ".backup"

// SnapshotStore persists the index as a single JSON file.
type SnapshotStore struct {
	path string
}

// NewSnapshotStore creates a snapshot store at path, creating the
// parent directory if needed. If path is empty it defaults to
// ~/.recall/index.json.
func NewSnapshotStore(path string) (*SnapshotStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".recall", "index.json")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create snapshot directory: %w", classify(err))
	}

	return &SnapshotStore{path: path}, nil
}

// Load reads the persisted snapshot. A missing file loads as an empty
// index. A file that fails to deserialize is renamed with a .backup
// suffix and an empty index is returned; Load never crashes on
// corrupt data.
func (s *SnapshotStore) Load() (*domain.Index, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewIndex(), nil
		}
		return nil, fmt.Errorf("read snapshot: %w", classify(err))
	}

	var idx domain.Index
	if err := json.Unmarshal(data, &idx); err != nil {
		backup := s.path + BackupSuffix
		logger.Warn("Corrupt snapshot at %s, moving to %s: %v", s.path, backup, err)
		if renameErr := os.Rename(s.path, backup); renameErr != nil {
			logger.Warn("Could not sideline corrupt snapshot: %v", renameErr)
		}
		return domain.NewIndex(), nil
	}

	if idx.Documents == nil {
		idx.Documents = []domain.Document{}
	}
	if idx.Version == 0 {
		idx.Version = domain.SchemaVersion
	}
	return &idx, nil
}

// Save serializes idx, writes it to a temporary file in the snapshot's
// directory, and atomically replaces the real file. Failures are
// classified with domain.ErrStorageFull and domain.ErrStoragePermission
// so the store can self-heal.
func (s *SnapshotStore) Save(idx *domain.Index) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", classify(err))
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp snapshot: %w", classify(err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp snapshot: %w", classify(err))
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp snapshot: %w", classify(err))
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace snapshot: %w", classify(err))
	}
	return nil
}

// Path returns the snapshot location.
func (s *SnapshotStore) Path() string {
	return s.path
}

// classify maps OS-level failures onto the domain persistence errors.
func classify(err error) error {
	switch {
	case errors.Is(err, syscall.ENOSPC):
		return fmt.Errorf("%w: %v", domain.ErrStorageFull, err)
	case os.IsPermission(err), errors.Is(err, syscall.EROFS):
		return fmt.Errorf("%w: %v", domain.ErrStoragePermission, err)
	}
	return err
}
