package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "./strings.db", cfg.DatabasePath)
	assert.False(t, cfg.LogJSON)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9090\"\ndatabase_path: /tmp/test.db\nlog_json: true\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/tmp/test.db", cfg.DatabasePath)
	assert.True(t, cfg.LogJSON)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9090\"\n"), 0644))

	t.Setenv("PORT", "7070")
	t.Setenv("DATABASE_PATH", ":memory:")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, ":memory:", cfg.DatabasePath)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
