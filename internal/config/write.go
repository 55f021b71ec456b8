package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigDir returns the qv config directory path.
// Uses $XDG_CONFIG_HOME/qv if set, otherwise ~/.config/qv.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "qv")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "qv")
}

const defaultTOML = `[output]
# "text" or "json"; --json on the command line always wins
format = "text"
indent = 2

[input]
# base directory for relative response file paths
dir = ""
warn_unknown = true
`

// WriteDefault writes a default config.toml and returns its path.
// Skips if config.toml already exists.
func WriteDefault() (string, bool, error) {
	dir := ConfigDir()
	path := filepath.Join(dir, "config.toml")

	if _, err := os.Stat(path); err == nil {
		return path, false, nil // already exists
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, fmt.Errorf("create config dir: %w", err)
	}

	if err := os.WriteFile(path, []byte(defaultTOML), 0o644); err != nil {
		return "", false, fmt.Errorf("write config: %w", err)
	}

	return path, true, nil
}

// CompressHome replaces $HOME prefix with ~/ for display.
func CompressHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if strings.HasPrefix(path, home+"/") {
		return "~/" + path[len(home)+1:]
	}
	if path == home {
		return "~"
	}
	return path
}
