package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with CUISINE_* environment variables. A
// .env file in the working directory is loaded first when present;
// real environment variables take precedence over it.
func parseEnv(cfg *Config) error {
	_ = godotenv.Load()

	if v := os.Getenv("CUISINE_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("CUISINE_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("CUISINE_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	if v := os.Getenv("CUISINE_EXPORT_PREFIX"); v != "" {
		cfg.ExportPrefix = v
	}
	if v := os.Getenv("CUISINE_AUTOBACKUP_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days < 1 {
			return fmt.Errorf("CUISINE_AUTOBACKUP_DAYS: invalid value %q", v)
		}
		cfg.AutoBackupInterval = time.Duration(days) * 24 * time.Hour
	}
	if v := os.Getenv("CUISINE_AUTOBACKUP_CRON"); v != "" {
		cfg.AutoBackupCronSpec = v
	}
	return nil
}
