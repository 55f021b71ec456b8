package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.Equal(t, 2, cfg.Output.Indent)
	assert.True(t, cfg.Input.WarnUnknown, "Input.WarnUnknown should default to true")
	assert.False(t, cfg.JSON())
}

// isolate points XDG and HOME at fresh temp dirs and returns the XDG dir.
func isolate(t *testing.T) string {
	t.Helper()
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", t.TempDir())
	return xdg
}

func writeConfig(t *testing.T, root, content string) string {
	t.Helper()
	dir := filepath.Join(root, "qv")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_NoConfig(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Source)
	assert.Equal(t, FormatText, cfg.Output.Format)
}

func TestLoad_ValidConfig(t *testing.T) {
	xdg := isolate(t)
	path := writeConfig(t, xdg, `[output]
format = "JSON"
indent = 4

[input]
dir = "/data/responses"
warn_unknown = false
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Source)
	assert.True(t, cfg.JSON(), "format is case-insensitive")
	assert.Equal(t, 4, cfg.Output.Indent)
	assert.Equal(t, "/data/responses", cfg.Input.Dir)
	assert.False(t, cfg.Input.WarnUnknown)
}

func TestLoad_BadFormat(t *testing.T) {
	writeConfig(t, isolate(t), "[output]\nformat = \"xml\"\n")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format")
}

func TestLoad_NegativeIndent(t *testing.T) {
	writeConfig(t, isolate(t), "[output]\nindent = -3\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Zero(t, cfg.Output.Indent)
}

func TestLoad_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	writeConfig(t, xdg, "[input]\ndir = \"~/answers\"\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "answers"), cfg.Input.Dir)
}

func TestLoad_XDGPriority(t *testing.T) {
	xdg := t.TempDir()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", home)

	writeConfig(t, xdg, "[output]\nformat = \"json\"\n")
	writeConfig(t, filepath.Join(home, ".config"), "[output]\nformat = \"text\"\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.JSON(), "XDG should take priority over ~/.config")
}

func TestLoad_InvalidTOML(t *testing.T) {
	writeConfig(t, isolate(t), `format = [broken`)

	_, err := Load()
	assert.Error(t, err)
}

func TestResolveInput(t *testing.T) {
	cfg := Config{Input: InputConfig{Dir: "/data"}}

	assert.Equal(t, "/data/a.json", cfg.ResolveInput("a.json"))
	assert.Equal(t, "/abs/a.json", cfg.ResolveInput("/abs/a.json"))
	assert.Equal(t, "-", cfg.ResolveInput("-"))
	assert.Equal(t, "a.json", Config{}.ResolveInput("a.json"))
}
