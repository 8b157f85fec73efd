package config

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvSize, EnvWidth, EnvStepDelay, EnvNoColor, EnvLocale} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, cfg.Size)
	assert.Equal(t, DefaultWidth, cfg.Width)
	assert.Equal(t, 16, cfg.CellSize())
	assert.Zero(t, cfg.StepDelay)
	assert.False(t, cfg.NoColor)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSize, "20")
	t.Setenv(EnvWidth, "400")
	t.Setenv(EnvStepDelay, "15ms")
	t.Setenv(EnvNoColor, "true")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Size)
	assert.Equal(t, 20, cfg.CellSize())
	assert.Equal(t, 15*time.Millisecond, cfg.StepDelay)
	assert.True(t, cfg.NoColor)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvSize, "fifty"},
		{EnvSize, "0"},
		{EnvWidth, "10"},
		{EnvStepDelay, "soon"},
		{EnvStepDelay, "-1s"},
		{EnvNoColor, "maybe"},
	}
	for _, tc := range tests {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("GRIDPATH_SIZE=10\nGRIDPATH_WIDTH=100\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv(EnvSize)
		os.Unsetenv(EnvWidth)
	})

	cfg, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Size)
	assert.Equal(t, 10, cfg.CellSize())
}

func TestLoad_MissingFileLogged(t *testing.T) {
	clearEnv(t)
	var buf bytes.Buffer
	cfg, err := Load(log.New(&buf, "", 0), filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, cfg.Size)
	assert.Contains(t, buf.String(), "[CONFIG] [INFO]")
}
