package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/atomixxxx/cuisine-app/internal/flagx"
)

// parseFlags overlays Config with command-line flags:
//
//	-d string   path to the SQLite database
//	-e string   export directory
//	-p string   export file prefix
//	-b int      auto-backup interval in days
//
// Arguments are filtered through flagx so flags owned by other
// components are left alone.
func parseFlags(cfg *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-e", "-p", "-b"})

	fs := flag.NewFlagSet("backup", flag.ContinueOnError)
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the SQLite database")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "export directory")
	fs.StringVar(&cfg.ExportPrefix, "p", cfg.ExportPrefix, "export file prefix")
	days := fs.Int("b", int(cfg.AutoBackupInterval/(24*time.Hour)), "auto-backup interval (in days)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if *days < 1 {
		return fmt.Errorf("auto-backup interval must be at least one day, got %d", *days)
	}
	cfg.AutoBackupInterval = time.Duration(*days) * 24 * time.Hour
	return nil
}
