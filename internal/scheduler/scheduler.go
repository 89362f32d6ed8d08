// Package scheduler triggers the auto-backup due-check on a cron
// cadence. The due-check itself is idempotent and time-gated, so the
// cadence only bounds how late a due snapshot can be, never how often
// one is written.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/atomixxxx/cuisine-app/internal/logging"
)

// DefaultCronSpec checks once a night, off the kitchen's busy hours.
const DefaultCronSpec = "30 3 * * *"

// runTimeout bounds a single due-check, key derivation included.
const runTimeout = time.Minute

// AutoBackupRunner is the slice of the backup service the scheduler
// drives.
type AutoBackupRunner interface {
	RunWeeklyAutoBackup(ctx context.Context) (bool, error)
}

// Scheduler owns the cron loop around the auto-backup due-check.
type Scheduler struct {
	cron    *cron.Cron
	backups AutoBackupRunner
	log     logging.Logger
	spec    string
}

// New creates a scheduler. An empty spec selects DefaultCronSpec.
func New(backups AutoBackupRunner, spec string, log logging.Logger) *Scheduler {
	if spec == "" {
		spec = DefaultCronSpec
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Scheduler{
		cron:    cron.New(),
		backups: backups,
		log:     log.With("component", "scheduler"),
		spec:    spec,
	}
}

// Start registers the cron entry, runs one immediate due-check (the
// app-start trigger) and starts the loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.run); err != nil {
		return fmt.Errorf("schedule auto-backup: %w", err)
	}
	s.run()
	s.cron.Start()
	return nil
}

// Stop stops the cron loop. A run already in flight completes.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	stored, err := s.backups.RunWeeklyAutoBackup(ctx)
	if err != nil {
		s.log.Error(ctx, "auto-backup failed", "error", err)
		return
	}
	if stored {
		s.log.Info(ctx, "auto-backup completed")
	}
}
