package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/atomixxxx/cuisine-app/internal/common"
	"github.com/atomixxxx/cuisine-app/internal/storage"
)

// State-store keys for the single rolling auto-backup slot. The slot is
// overwritten in place; history is an explicit non-goal.
const (
	stateKeySnapshot = "autobackup:weekly"
	stateKeyLastRun  = "autobackup:last_run"
	stateKeyEnabled  = "autobackup:enabled"
)

// RunWeeklyAutoBackup takes a fresh snapshot when the stored one is
// older than the configured interval. It is idempotent, so the host may
// call it on every app start; within the interval window it is a no-op.
// Returns true when a snapshot was written.
func (s *Service) RunWeeklyAutoBackup(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.migrateLegacySnapshot(ctx); err != nil {
		return false, err
	}

	state := storage.NewStateRepository(s.db)
	enabled, err := s.autoBackupEnabled(ctx, state)
	if err != nil {
		return false, err
	}
	if !enabled {
		return false, nil
	}

	last, err := s.lastAutoBackup(ctx, state)
	if err != nil {
		return false, err
	}
	now := s.now().UTC()
	if !last.IsZero() && now.Sub(last) < s.interval {
		return false, nil
	}

	p, err := s.BuildPayload(ctx)
	if err != nil {
		return false, err
	}
	data, err := json.Marshal(p)
	if err != nil {
		return false, fmt.Errorf("encode snapshot: %w", err)
	}
	if err := state.Set(ctx, stateKeySnapshot, data); err != nil {
		return false, err
	}
	if err := state.Set(ctx, stateKeyLastRun, []byte(now.Format(time.RFC3339Nano))); err != nil {
		return false, err
	}
	s.log.Info(ctx, "auto-backup stored", "bytes", len(data))
	return true, nil
}

// ExportStoredAutoBackup returns the stored weekly snapshot for
// download. It never re-runs the due-check.
func (s *Service) ExportStoredAutoBackup(ctx context.Context) (*ExportFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.migrateLegacySnapshot(ctx); err != nil {
		return nil, err
	}

	data, err := storage.NewStateRepository(s.db).Get(ctx, stateKeySnapshot)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("auto-backup snapshot: %w", common.ErrNotFound)
	}
	name := fmt.Sprintf("%s-auto-%s.json", s.prefix, s.now().UTC().Format("2006-01-02"))
	return &ExportFile{Name: name, Data: data}, nil
}

// AutoBackupEnabled reports the user toggle; the default is on.
func (s *Service) AutoBackupEnabled(ctx context.Context) (bool, error) {
	return s.autoBackupEnabled(ctx, storage.NewStateRepository(s.db))
}

// SetAutoBackupEnabled persists the user toggle.
func (s *Service) SetAutoBackupEnabled(ctx context.Context, enabled bool) error {
	v := []byte("0")
	if enabled {
		v = []byte("1")
	}
	return storage.NewStateRepository(s.db).Set(ctx, stateKeyEnabled, v)
}

// LastAutoBackup returns the time of the last stored snapshot, or the
// zero time when none was taken yet.
func (s *Service) LastAutoBackup(ctx context.Context) (time.Time, error) {
	return s.lastAutoBackup(ctx, storage.NewStateRepository(s.db))
}

func (s *Service) autoBackupEnabled(ctx context.Context, state *storage.StateRepository) (bool, error) {
	v, err := state.Get(ctx, stateKeyEnabled)
	if err != nil {
		return false, err
	}
	if v == nil {
		return true, nil
	}
	return string(v) != "0", nil
}

func (s *Service) lastAutoBackup(ctx context.Context, state *storage.StateRepository) (time.Time, error) {
	v, err := state.Get(ctx, stateKeyLastRun)
	if err != nil {
		return time.Time{}, err
	}
	if v == nil {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, string(v))
	if err != nil {
		// An unreadable marker means "due now" rather than a fatal state.
		return time.Time{}, nil
	}
	return t, nil
}

// migrateLegacySnapshot copies a pre-SQLite snapshot into the state
// store once, then removes the legacy copy. Redundant runs are no-ops,
// and an existing current snapshot is never overwritten.
func (s *Service) migrateLegacySnapshot(ctx context.Context) error {
	if s.legacy == nil {
		return nil
	}
	state := storage.NewStateRepository(s.db)
	current, err := state.Get(ctx, stateKeySnapshot)
	if err != nil {
		return err
	}
	if current != nil {
		return nil
	}
	data, err := s.legacy.Read()
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	if err := state.Set(ctx, stateKeySnapshot, data); err != nil {
		return err
	}
	if err := s.legacy.Remove(); err != nil {
		return err
	}
	s.log.Info(ctx, "legacy auto-backup migrated", "bytes", len(data))
	return nil
}
