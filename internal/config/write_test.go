package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault_CreatesConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, created, err := WriteDefault()
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, filepath.Join(dir, "qv", "config.toml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[output]")
	assert.Contains(t, string(data), "[input]")
}

func TestWriteDefault_RoundTrip(t *testing.T) {
	isolate(t)

	_, _, err := WriteDefault()
	require.NoError(t, err)

	cfg, err := Load()
	require.NoError(t, err)
	def := DefaultConfig()
	assert.Equal(t, def.Output, cfg.Output)
	assert.Equal(t, def.Input, cfg.Input)
}

func TestWriteDefault_SkipsExisting(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	existing := writeConfig(t, dir, "[output]\nformat = \"json\"\n")

	path, created, err := WriteDefault()
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing, path)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Contains(t, string(data), `format = "json"`, "existing config was overwritten")
}

func TestCompressHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, "~/x/config.toml", CompressHome(filepath.Join(home, "x", "config.toml")))
	assert.Equal(t, "~", CompressHome(home))
	assert.Equal(t, "/etc/qv.toml", CompressHome("/etc/qv.toml"))
}
