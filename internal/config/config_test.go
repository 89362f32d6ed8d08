package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"testbin"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	resetArgs(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "cuisine.db", cfg.DatabasePath)
	require.Equal(t, "cuisine-backup", cfg.ExportPrefix)
	require.Equal(t, 7*24*time.Hour, cfg.AutoBackupInterval)
	require.Equal(t, "30 3 * * *", cfg.AutoBackupCronSpec)
}

func TestEnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("CUISINE_DB_PATH", "/data/app.db")
	t.Setenv("CUISINE_AUTOBACKUP_DAYS", "14")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "/data/app.db", cfg.DatabasePath)
	require.Equal(t, 14*24*time.Hour, cfg.AutoBackupInterval)
}

func TestEnvRejectsBadInterval(t *testing.T) {
	resetArgs(t)
	t.Setenv("CUISINE_AUTOBACKUP_DAYS", "zero")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestJSONOverridesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"db_path": "/json/app.db",
		"export_prefix": "le-goeland",
		"auto_backup_days": 3
	}`), 0o600))

	resetArgs(t, "-c", path)
	t.Setenv("CUISINE_DB_PATH", "/env/app.db")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "/json/app.db", cfg.DatabasePath)
	require.Equal(t, "le-goeland", cfg.ExportPrefix)
	require.Equal(t, 3*24*time.Hour, cfg.AutoBackupInterval)
}

func TestFlagsOverrideEverything(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"db_path": "/json/app.db"}`), 0o600))

	resetArgs(t, "-c", path, "-d", "/flag/app.db", "-b", "2")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "/flag/app.db", cfg.DatabasePath)
	require.Equal(t, 2*24*time.Hour, cfg.AutoBackupInterval)
}

func TestMissingJSONFileIsAnError(t *testing.T) {
	resetArgs(t, "-c", filepath.Join(t.TempDir(), "nope.json"))

	_, err := LoadConfig()
	require.Error(t, err)
}
