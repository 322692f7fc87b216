package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config sources reported by Load.
const (
	SourceCustom   = "custom"
	SourceUser     = "user"
	SourceLocal    = "local"
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// configFile is the file name looked up in the user and local config directories.
const configFile = "jumper.yaml"

// Load loads the jumper configuration and reports where it came from.
// Search order: customPath -> ~/.jumper/configs/jumper.yaml -> ./configs/jumper.yaml -> embedded default.
// A custom path that cannot be read, parsed or validated is an error; the other
// locations are skipped silently when unusable.
func Load(customPath string) (JumperConfig, string, error) {
	if customPath != "" {
		cfg, err := parseFile(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		return cfg, SourceCustom, nil
	}

	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if cfg, err := parseFile(userCfgPath); err == nil {
			return cfg, SourceUser, nil
		}
	}

	if cfg, err := parseFile(filepath.Join("configs", configFile)); err == nil {
		return cfg, SourceLocal, nil
	}

	cfg, err := Parse(defaultJumperYAML)
	if err != nil {
		return DefaultJumperConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes and validates a YAML document.
// Fields missing from the document keep their built-in defaults.
func Parse(data []byte) (JumperConfig, error) {
	cfg := DefaultJumperConfig()
	// Archetypes are replaced wholesale when the document lists any.
	cfg.Obstacles = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse yaml: %w", err)
	}
	if len(cfg.Obstacles) == 0 {
		cfg.Obstacles = DefaultJumperConfig().Obstacles
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func parseFile(path string) (JumperConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return JumperConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jumper", "configs", filename)
}
