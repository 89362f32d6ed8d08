package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atomixxxx/cuisine-app/internal/config"
	"github.com/atomixxxx/cuisine-app/internal/logging"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DatabasePath = filepath.Join(dir, "cuisine.db")
	cfg.DataDir = dir
	cfg.ExportDir = filepath.Join(dir, "exports")
	return cfg
}

func TestNewOpensStoreAndWiresService(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, testConfig(t), logging.Nop())
	require.NoError(t, err)
	defer func() { require.NoError(t, a.Close()) }()

	// The store must be migrated and usable straight away.
	stored, err := a.Backups.RunWeeklyAutoBackup(ctx)
	require.NoError(t, err)
	require.True(t, stored)
}

func TestStartAndClose(t *testing.T) {
	a, err := New(context.Background(), testConfig(t), nil)
	require.NoError(t, err)

	require.NoError(t, a.Start())
	require.NoError(t, a.Close())
}
