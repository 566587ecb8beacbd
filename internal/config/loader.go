package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-local configuration file.
const LocalConfigPath = "configs/tiltbreak.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.tiltbreak/config.yaml -> ./configs/tiltbreak.yaml -> embedded default.
// Files are applied on top of the defaults, so a file only needs the keys it changes.
func Load(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalConfigPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultGameYAML)
	if err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg GameConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tiltbreak", filename)
}
