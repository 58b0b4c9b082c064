package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoad_CreatesDefaultFileWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cardtree.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.FileExists(t, path)
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cardtree.yaml")
	require.NoError(t, writeDefault(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaultsFromFileContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cardtree.yaml")
	custom := Default()
	custom.Logging.Level = "debug"
	custom.Tui.Width = 120
	data, err := yaml.Marshal(custom)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 120, cfg.Tui.Width)
}

func TestDefault_HasSaneZeroState(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "cardtree", cfg.Logging.Service)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, 80, cfg.Tui.Width)
}

func TestDefaultPath_UnderHomeDotCardtree(t *testing.T) {
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.True(t, filepath.Base(path) == "cardtree.yaml")
	assert.Contains(t, path, ".cardtree")
}
