package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DirName is the per-user data directory under the home directory.
const DirName = ".hbd"

// Load loads the greeting configuration and validates it.
// Search order: customPath -> ~/.hbd/configs/greeting.yaml -> ./configs/greeting.yaml -> embedded default
//
// Keys missing from a file keep their default values. Only an explicit
// customPath turns read failures into errors; the other locations are
// skipped when absent or unparsable.
func Load(customPath string) (GreetingConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", cfg.Source, err)
	}
	return cfg, nil
}

func load(customPath string) (GreetingConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultGreetingConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data, customPath)
		if err != nil {
			return DefaultGreetingConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{UserPath("configs", "greeting.yaml"), filepath.Join("configs", "greeting.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parse(data, path); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultGreetingYAML, "embedded")
	if err != nil {
		return DefaultGreetingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte, source string) (GreetingConfig, error) {
	cfg := DefaultGreetingConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.Source = source
	return cfg, nil
}

// UserPath joins elem under ~/.hbd, or returns empty if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, DirName}, elem...)...)
}
