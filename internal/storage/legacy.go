package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// legacySnapshotFile is where versions before the SQLite store kept the
// weekly auto-backup snapshot.
const legacySnapshotFile = "weekly-backup.json"

// LegacySnapshotStore reads the pre-SQLite auto-backup snapshot so it
// can be migrated into the state store once.
type LegacySnapshotStore struct {
	dir string
}

// NewLegacySnapshotStore points at the app data directory the old
// snapshot file lived in.
func NewLegacySnapshotStore(dir string) *LegacySnapshotStore {
	return &LegacySnapshotStore{dir: dir}
}

func (s *LegacySnapshotStore) path() string {
	return filepath.Join(s.dir, legacySnapshotFile)
}

// Read returns the legacy snapshot bytes, or nil when no legacy
// snapshot exists.
func (s *LegacySnapshotStore) Read() ([]byte, error) {
	data, err := os.ReadFile(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read legacy snapshot: %w", err)
	}
	return data, nil
}

// Remove deletes the legacy snapshot. Removing an absent file is a
// no-op, so migration stays safe to run redundantly.
func (s *LegacySnapshotStore) Remove() error {
	err := os.Remove(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("remove legacy snapshot: %w", err)
	}
	return nil
}

// Write stores a snapshot in the legacy location. Only tests and the
// pre-migration app use it.
func (s *LegacySnapshotStore) Write(data []byte) error {
	if err := os.WriteFile(s.path(), data, 0o600); err != nil {
		return fmt.Errorf("write legacy snapshot: %w", err)
	}
	return nil
}
