// Package backup implements the export/restore subsystem: payload
// building, strict import validation, optional password-based
// encryption of export files and the weekly auto-backup slot.
package backup

import (
	"database/sql"
	"sync"
	"time"

	"github.com/atomixxxx/cuisine-app/internal/logging"
	"github.com/atomixxxx/cuisine-app/internal/storage"
)

const (
	// DefaultFilePrefix names export files: <prefix>-<ISO date>.json|.enc.
	DefaultFilePrefix = "cuisine-backup"

	// DefaultAutoBackupInterval gates the rolling weekly snapshot.
	DefaultAutoBackupInterval = 7 * 24 * time.Hour
)

// Config tunes a Service. Zero values fall back to the defaults above.
type Config struct {
	FilePrefix         string
	AutoBackupInterval time.Duration
}

// Service exposes the backup operations the settings UI consumes.
type Service struct {
	db       *sql.DB
	legacy   *storage.LegacySnapshotStore
	log      logging.Logger
	prefix   string
	interval time.Duration
	now      func() time.Time

	// mu serializes the auto-backup due-check-then-write sequence so
	// concurrent triggers cannot double-write the slot.
	mu sync.Mutex
}

// NewService wires a Service over the local database. legacy may be nil
// when no pre-SQLite snapshot location exists.
func NewService(db *sql.DB, legacy *storage.LegacySnapshotStore, cfg Config, log logging.Logger) *Service {
	if cfg.FilePrefix == "" {
		cfg.FilePrefix = DefaultFilePrefix
	}
	if cfg.AutoBackupInterval <= 0 {
		cfg.AutoBackupInterval = DefaultAutoBackupInterval
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Service{
		db:       db,
		legacy:   legacy,
		log:      log.With("component", "backup"),
		prefix:   cfg.FilePrefix,
		interval: cfg.AutoBackupInterval,
		now:      time.Now,
	}
}
