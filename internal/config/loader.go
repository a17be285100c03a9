package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Load loads the Ball Splitter configuration.
// Search order: customPath -> ~/.splitter/configs/splitter.yaml -> ./configs/splitter.yaml -> embedded default
// An explicit customPath must load. Broken files on the search path are
// reported through logger and skipped; logger may be nil.
func Load(customPath string, logger *log.Logger) (SplitterConfig, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSplitterConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultSplitterConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	var candidates []string
	if userCfgPath := userConfigPath("splitter.yaml"); userCfgPath != "" {
		candidates = append(candidates, userCfgPath)
	}
	candidates = append(candidates, filepath.Join("configs", "splitter.yaml"))

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logger.Warn("ignoring config", "path", path, "error", err)
			}
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			logger.Warn("ignoring config", "path", path, "error", err)
			continue
		}
		logger.Debug("config loaded", "path", path)
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSplitterYAML)
	if err != nil {
		return DefaultSplitterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the hard-coded defaults and validates the result.
// Values missing from a file keep their defaults, including single fields of
// a built-in difficulty profile. New profiles start from zero values.
func Parse(data []byte) (SplitterConfig, error) {
	cfg := DefaultSplitterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	// yaml.v3 decodes each map value into a fresh zero Profile, so the
	// profiles are decoded again over their defaults.
	var raw struct {
		Difficulties map[string]yaml.Node `yaml:"difficulties"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, err
	}
	profiles := DefaultSplitterConfig().Difficulties
	for key, node := range raw.Difficulties {
		p := profiles[key]
		if err := node.Decode(&p); err != nil {
			return cfg, fmt.Errorf("config: difficulty %q: %w", key, err)
		}
		profiles[key] = p
	}
	cfg.Difficulties = profiles

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".splitter", "configs", filename)
}
