package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/atomixxxx/cuisine-app/internal/flagx"
)

// jsonConfig is the DTO for the optional JSON config file. The auto
// backup interval is specified in whole days.
type jsonConfig struct {
	DatabasePath       string `json:"db_path"`
	DataDir            string `json:"data_dir"`
	ExportDir          string `json:"export_dir"`
	ExportPrefix       string `json:"export_prefix"`
	AutoBackupDays     int    `json:"auto_backup_days"`
	AutoBackupCronSpec string `json:"auto_backup_cron"`
}

// parseJSON overlays Config with values from the file named by the -c
// or -config flag. No flag, no file, no overlay.
func parseJSON(cfg *Config) error {
	path := flagx.ConfigFilePath()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.ExportDir != "" {
		cfg.ExportDir = jc.ExportDir
	}
	if jc.ExportPrefix != "" {
		cfg.ExportPrefix = jc.ExportPrefix
	}
	if jc.AutoBackupDays > 0 {
		cfg.AutoBackupInterval = time.Duration(jc.AutoBackupDays) * 24 * time.Hour
	}
	if jc.AutoBackupCronSpec != "" {
		cfg.AutoBackupCronSpec = jc.AutoBackupCronSpec
	}
	return nil
}
