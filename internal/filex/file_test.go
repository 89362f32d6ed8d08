package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports", "2025")

	got, err := EnsureDir(dir)
	require.NoError(t, err)
	require.Equal(t, dir, got)

	// Redundant call is a no-op.
	_, err = EnsureDir(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")

	require.NoError(t, WriteFile(path, []byte(`{"version":1}`)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, `{"version":1}`, string(data))

	// Overwrite replaces the previous content wholesale.
	require.NoError(t, WriteFile(path, []byte("v2")))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "v2", string(data))

	// No temp files are left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
