package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for config files that are neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Load loads configuration with priority defaults < file < flags and validates the result.
// An empty path searches the standard locations; finding nothing is not an error.
//
// Parameters:
//   - path: an explicit config file, or ""
//   - flags: parsed command-line overrides, may be nil
//
// Returns:
//   - *Config: the resolved configuration
//   - error: an error if the file cannot be read or parsed, or the result is invalid
func Load(path string, flags *Flags) (*Config, error) {
	cfg := Default()

	if path = ResolvePath(path); path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	flags.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolvePath returns path when it is set, otherwise the first config file found in the
// standard locations, or "" when there is none.
func ResolvePath(path string) string {
	if path != "" {
		return path
	}
	return findConfigFile()
}

// findConfigFile looks for a config file in the working directory, then in ConfigDir.
func findConfigFile() string {
	var candidates []string
	for _, dir := range []string{".", ConfigDir()} {
		for _, name := range []string{"lumen.yaml", "lumen.yml", "lumen.toml"} {
			candidates = append(candidates, filepath.Join(dir, name))
		}
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "lumen")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "lumen")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "lumen")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "lumen")
	}
}

// loadFromFile merges the file at path into cfg. Keys missing from the file keep their current values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
