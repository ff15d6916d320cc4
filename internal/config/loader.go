package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBoard loads the board configuration.
// Search order: customPath -> ~/.cubes/configs/board.yaml -> ./configs/board.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it sets. The result is validated before it is returned.
func LoadBoard(customPath string) (BoardConfig, error) {
	cfg := DefaultBoardConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("board.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, loaded.Validate()
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "board.yaml")); ok {
		return loaded, loaded.Validate()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBoardYAML, &cfg); err != nil {
		return DefaultBoardConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// tryLoad reads an optional config file. Missing or unparsable files are
// skipped so the next location in the search order is tried.
func tryLoad(path string) (BoardConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BoardConfig{}, false
	}
	cfg := DefaultBoardConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BoardConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cubes", "configs", filename)
}
