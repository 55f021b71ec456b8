package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds all qv configuration.
type Config struct {
	Output OutputConfig `toml:"output"`
	Input  InputConfig  `toml:"input"`

	// Source is the config file that was loaded, empty when defaults apply.
	Source string `toml:"-"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	Indent int    `toml:"indent"`
}

type InputConfig struct {
	Dir         string `toml:"dir"`
	WarnUnknown bool   `toml:"warn_unknown"`
}

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{
			Format: FormatText,
			Indent: 2,
		},
		Input: InputConfig{
			Dir:         "",
			WarnUnknown: true,
		},
	}
}

// Load reads config from the standard path, falling back to defaults.
func Load() (Config, error) {
	cfg := DefaultConfig()

	for _, p := range configPaths() {
		if _, err := os.Stat(p); err == nil {
			if _, err := toml.DecodeFile(p, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", p, err)
			}
			cfg.Source = p
			break
		}
	}

	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	switch cfg.Output.Format {
	case FormatText, FormatJSON:
	case "":
		cfg.Output.Format = FormatText
	default:
		return cfg, fmt.Errorf("output.format must be %q or %q, got %q", FormatText, FormatJSON, cfg.Output.Format)
	}
	if cfg.Output.Indent < 0 {
		cfg.Output.Indent = 0
	}

	cfg.Input.Dir = expandHome(cfg.Input.Dir)

	return cfg, nil
}

func configPaths() []string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "qv", "config.toml"))
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "qv", "config.toml"))
	}

	return paths
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// JSON reports whether output should default to JSON.
func (c Config) JSON() bool {
	return c.Output.Format == FormatJSON
}

// ResolveInput joins a relative response file path onto Input.Dir.
// Absolute paths and "-" (stdin) are returned unchanged.
func (c Config) ResolveInput(path string) string {
	if path == "-" || c.Input.Dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Input.Dir, path)
}
