package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadJatt loads the game configuration.
// Search order: customPath -> ~/.jatt/configs/jatt.yaml|toml -> ./configs/jatt.yaml -> embedded default.
// Files only need to name the values they change; everything else keeps its default.
func LoadJatt(customPath string) (JattConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{
		userConfigPath("jatt.yaml"),
		userConfigPath("jatt.toml"),
		filepath.Join("configs", "jatt.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultJattConfig()
	if err := yaml.Unmarshal(defaultJattYAML, &cfg); err != nil {
		return DefaultJattConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile decodes one config file on top of the defaults and validates it.
// The decoder is picked by extension: .toml uses TOML, anything else YAML.
func loadFile(path string) (JattConfig, error) {
	cfg := DefaultJattConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jatt", "configs", filename)
}
