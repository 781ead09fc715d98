package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestDir creates a temporary directory with the .pipemaze directory
// structure and a config.yaml holding test defaults.
// The directory is automatically cleaned up when the test completes.
func SetupTestDir(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, ".pipemaze"), 0o755))

	configContent := `solver:
  cache_size: 8
logging:
  level: warn
render:
  inside_marker: I
  outside_marker: O
`
	WriteTestFile(t, tmpDir, filepath.Join(".pipemaze", "config.yaml"), []byte(configContent))
	return tmpDir
}

// WriteTestFile writes content to basePath/relativePath, creating parent
// directories as needed.
func WriteTestFile(t *testing.T, basePath, relativePath string, content []byte) {
	t.Helper()
	fullPath := filepath.Join(basePath, relativePath)
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
	require.NoError(t, os.WriteFile(fullPath, content, 0o644))
}

// WriteGridFile writes a grid fixture to basePath/name and returns its path.
func WriteGridFile(t *testing.T, basePath, name, grid string) string {
	t.Helper()
	WriteTestFile(t, basePath, name, []byte(grid))
	return filepath.Join(basePath, name)
}
