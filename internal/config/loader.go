package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the colour grid configuration.
// Search order: customPath -> ~/.colours/config.yaml -> ./configs/colours.yaml -> embedded default
//
// Files are decoded over the embedded defaults, so missing keys keep their
// default values. The result is normalized and the keys replaced by
// defaults are returned alongside it.
func Load(customPath string) (Config, []string, error) {
	cfg := embeddedDefaults()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, nil, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, nil, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		replaced := cfg.Normalize()
		return cfg, replaced, nil
	}

	// Try user config directory
	if path := userConfigPath("config.yaml"); path != "" {
		if loaded, ok := tryLoad(path, cfg); ok {
			replaced := loaded.Normalize()
			return loaded, replaced, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "colours.yaml"), cfg); ok {
		replaced := loaded.Normalize()
		return loaded, replaced, nil
	}

	replaced := cfg.Normalize()
	return cfg, replaced, nil
}

// Parse decodes YAML over the embedded defaults and normalizes the result.
func Parse(data []byte) (Config, error) {
	cfg := embeddedDefaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// tryLoad decodes an optional file over base. Missing or broken files are skipped.
func tryLoad(path string, base Config) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	return cfg, true
}

// embeddedDefaults decodes the embedded YAML, falling back to DefaultConfig.
func embeddedDefaults() Config {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultColoursYAML, &cfg); err != nil {
		return DefaultConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".colours", filename)
}
