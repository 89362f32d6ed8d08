// Package config holds runtime settings for the backup subsystem.
// Sources are layered: defaults, then environment (with optional .env
// file), then a JSON file, then command-line flags. Later sources win.
package config

import (
	"time"

	"github.com/atomixxxx/cuisine-app/internal/backup"
	"github.com/atomixxxx/cuisine-app/internal/scheduler"
)

// Config collects everything the host shell needs to wire the backup
// subsystem.
type Config struct {
	// DatabasePath locates the SQLite store.
	DatabasePath string
	// DataDir is the app data directory; the legacy snapshot file
	// lived there.
	DataDir string
	// ExportDir receives files written by ExportToDir.
	ExportDir string
	// ExportPrefix names export files: <prefix>-<date>.json|.enc.
	ExportPrefix string
	// AutoBackupInterval gates the rolling snapshot slot.
	AutoBackupInterval time.Duration
	// AutoBackupCronSpec sets the due-check cadence.
	AutoBackupCronSpec string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "cuisine.db"
	c.DataDir = "."
	c.ExportDir = "exports"
	c.ExportPrefix = backup.DefaultFilePrefix
	c.AutoBackupInterval = backup.DefaultAutoBackupInterval
	c.AutoBackupCronSpec = scheduler.DefaultCronSpec
}

// LoadConfig constructs a Config from all sources in precedence order.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
