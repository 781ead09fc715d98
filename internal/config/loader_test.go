package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/pipemaze/internal/testutil"
)

func noEnv(string) (string, bool) { return "", false }

func envOf(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestLoadConfig_Default(t *testing.T) {
	t.Parallel()

	// Create temp directory without config file
	tmpDir := t.TempDir()

	cfg, err := LoadConfigWithEnv(tmpDir, noEnv)
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), *cfg)
	assert.Equal(t, DefaultCacheSize, cfg.Solver.CacheSize)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
}

func TestLoadConfig_ValidFile(t *testing.T) {
	t.Parallel()

	tmpDir := testutil.SetupTestDir(t)

	cfg, err := LoadConfigWithEnv(tmpDir, noEnv)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Solver.CacheSize)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "I", cfg.Render.InsideMarker)
	assert.Equal(t, "O", cfg.Render.OutsideMarker)
}

func TestLoadConfig_PartialFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	testutil.WriteTestFile(t, tmpDir, filepath.Join(Dir, "config.yaml"), []byte(`render:
  inside_marker: "#"
`))

	cfg, err := LoadConfigWithEnv(tmpDir, noEnv)
	require.NoError(t, err)

	assert.Equal(t, "#", cfg.Render.InsideMarker)
	assert.Equal(t, DefaultOutsideMarker, cfg.Render.OutsideMarker)
	assert.Equal(t, DefaultCacheSize, cfg.Solver.CacheSize)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	testutil.WriteTestFile(t, tmpDir, filepath.Join(Dir, "config.yaml"), []byte(`solver: [`))

	_, err := LoadConfigWithEnv(tmpDir, noEnv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfig_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{
			name: "negative cache size",
			content: `solver:
  cache_size: -1
`,
			field: "solver.cache_size",
		},
		{
			name: "unknown log level",
			content: `logging:
  level: chatty
`,
			field: "logging.level",
		},
		{
			name: "empty inside marker",
			content: `render:
  inside_marker: ""
`,
			field: "render.inside_marker",
		},
		{
			name: "long outside marker",
			content: `render:
  outside_marker: "out"
`,
			field: "render.outside_marker",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpDir := t.TempDir()
			testutil.WriteTestFile(t, tmpDir, filepath.Join(Dir, "config.yaml"), []byte(tt.content))

			_, err := LoadConfigWithEnv(tmpDir, noEnv)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))

			var ve ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestLoadConfig_EnvFileOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := testutil.SetupTestDir(t)
	testutil.WriteTestFile(t, tmpDir, filepath.Join(Dir, ".env"), []byte(`# local overrides
PIPEMAZE_LOG_LEVEL=debug
PIPEMAZE_CACHE_SIZE=0
PIPEMAZE_INSIDE_MARKER="*"
`))

	cfg, err := LoadConfigWithEnv(tmpDir, noEnv)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 0, cfg.Solver.CacheSize)
	assert.Equal(t, "*", cfg.Render.InsideMarker)
	assert.Equal(t, "O", cfg.Render.OutsideMarker)
}

func TestLoadConfig_ProcessEnvWins(t *testing.T) {
	t.Parallel()

	tmpDir := testutil.SetupTestDir(t)
	testutil.WriteTestFile(t, tmpDir, filepath.Join(Dir, ".env"), []byte("PIPEMAZE_CACHE_SIZE=3\n"))

	cfg, err := LoadConfigWithEnv(tmpDir, envOf(map[string]string{
		EnvCacheSize:     "12",
		EnvOutsideMarker: "_",
	}))
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Solver.CacheSize)
	assert.Equal(t, "_", cfg.Render.OutsideMarker)
}

func TestLoadConfig_BadEnvCacheSize(t *testing.T) {
	t.Parallel()

	_, err := LoadConfigWithEnv(t.TempDir(), envOf(map[string]string{EnvCacheSize: "lots"}))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), EnvCacheSize)
}

func TestLoadEnvFile_Missing(t *testing.T) {
	t.Parallel()

	env, err := LoadEnvFile(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, env)
}

func TestLoadConfig_UnreadableConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	// A directory where the file should be cannot be read as a file.
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, Dir, "config.yaml"), 0o755))

	_, err := LoadConfigWithEnv(tmpDir, noEnv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestIsValidationError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidationError(ValidationError{Field: "f", Message: "m"}))
	assert.False(t, IsValidationError(os.ErrNotExist))
	assert.Equal(t, "validation error: f: m", ValidationError{Field: "f", Message: "m"}.Error())
}
