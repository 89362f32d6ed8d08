// Package app wires the backup subsystem together for the host shell:
// open the store, run migrations, build the backup service and start
// the auto-backup scheduler.
package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atomixxxx/cuisine-app/internal/backup"
	"github.com/atomixxxx/cuisine-app/internal/config"
	"github.com/atomixxxx/cuisine-app/internal/logging"
	"github.com/atomixxxx/cuisine-app/internal/scheduler"
	"github.com/atomixxxx/cuisine-app/internal/storage"
)

// App owns the backup subsystem's resources for the host's lifetime.
type App struct {
	DB        *sql.DB
	Backups   *backup.Service
	Scheduler *scheduler.Scheduler
	cfg       *config.Config
	log       logging.Logger
}

// New opens the local store and assembles the subsystem. The scheduler
// is created but not started; call Start once the host is ready.
func New(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}

	db, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	if err := storage.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("prepare store: %w", err)
	}

	legacy := storage.NewLegacySnapshotStore(cfg.DataDir)
	backups := backup.NewService(db, legacy, backup.Config{
		FilePrefix:         cfg.ExportPrefix,
		AutoBackupInterval: cfg.AutoBackupInterval,
	}, log)

	return &App{
		DB:        db,
		Backups:   backups,
		Scheduler: scheduler.New(backups, cfg.AutoBackupCronSpec, log),
		cfg:       cfg,
		log:       log,
	}, nil
}

// Start begins the auto-backup cadence, running an immediate due-check.
func (a *App) Start() error {
	return a.Scheduler.Start()
}

// Close stops the scheduler and releases the store.
func (a *App) Close() error {
	a.Scheduler.Stop()
	return a.DB.Close()
}
