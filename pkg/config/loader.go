package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Loader provides methods for loading configuration.
type Loader interface {
	// Load loads configuration with the following precedence:
	// 1. Environment variables
	// 2. Configuration file
	// 3. Default values
	//
	// Returns the merged configuration or an error if validation fails.
	Load() (*Config, error)

	// LoadFromFile loads configuration from a specific file.
	LoadFromFile(path string) (*Config, error)
}

// loader implements the Loader interface.
type loader struct {
	configPath string
}

// NewLoader creates a new configuration loader.
//
// If configPath is empty, searches for a config file in:
// 1. $SHEETWIZARD_CONFIG/config.yaml
// 2. ./config.yaml (current directory)
// 3. ~/.config/sheetwizard/config.yaml.
func NewLoader(configPath string) Loader {
	return &loader{
		configPath: configPath,
	}
}

// Load implements Loader.Load.
func (l *loader) Load() (*Config, error) {
	// Pick up a local .env before reading environment overrides.
	_ = godotenv.Load()

	cfg := Default()

	configPath := l.configPath
	if configPath == "" {
		configPath = l.findConfigFile()
	}

	if configPath == "" {
		return nil, fmt.Errorf("%w: no configuration file in search path", ErrConfigNotFound)
	}

	fileCfg, err := l.LoadFromFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}
	cfg = l.mergeConfigs(cfg, fileCfg)

	cfg = l.applyEnvVars(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadFromFile implements Loader.LoadFromFile.
func (l *loader) LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) // nolint:gosec
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return &cfg, nil
}

// findConfigFile searches for a config file in standard locations.
//
// Searches in order:
// 1. $SHEETWIZARD_CONFIG/config.yaml
// 2. ./config.yaml
// 3. ~/.config/sheetwizard/config.yaml
//
// Returns empty string if no config file is found.
func (l *loader) findConfigFile() string {
	var candidates []string

	if dir := os.Getenv("SHEETWIZARD_CONFIG"); dir != "" {
		candidates = append(candidates, filepath.Join(dir, "config.yaml"))
	}

	candidates = append(candidates,
		"./config.yaml",
		defaultConfigPath(),
	)

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// mergeConfigs merges file configuration into default configuration.
//
// File values override defaults, but only if they are non-zero.
func (l *loader) mergeConfigs(base, override *Config) *Config {
	result := *base

	if override.Watch.Dir != "" {
		result.Watch.Dir = override.Watch.Dir
	}
	if override.Watch.VisiblePrefix != "" {
		result.Watch.VisiblePrefix = override.Watch.VisiblePrefix
	}
	if override.Watch.HiddenPrefix != "" {
		result.Watch.HiddenPrefix = override.Watch.HiddenPrefix
	}
	if override.Watch.Ext != "" {
		result.Watch.Ext = override.Watch.Ext
	}
	// Lenient is a bool, so we always take the override value
	result.Watch.Lenient = override.Watch.Lenient

	if override.Script.Dir != "" {
		result.Script.Dir = override.Script.Dir
	}
	if override.Script.Filename != "" {
		result.Script.Filename = override.Script.Filename
	}
	if override.Script.EnvName != "" {
		result.Script.EnvName = override.Script.EnvName
	}

	if override.Notify.Backend != "" {
		result.Notify.Backend = override.Notify.Backend
	}
	if override.Notify.Title != "" {
		result.Notify.Title = override.Notify.Title
	}

	if override.Logging.Level != "" {
		result.Logging.Level = override.Logging.Level
	}
	if override.Logging.Output != "" {
		result.Logging.Output = override.Logging.Output
	}
	if override.Logging.Format != "" {
		result.Logging.Format = override.Logging.Format
	}

	return &result
}

// applyEnvVars applies environment variable overrides.
//
// Supported environment variables:
//   - SHEETWIZARD_CONFIG: Directory containing config.yaml
//   - SHEETWIZARD_LOG_LEVEL: Log level
//   - SHEETWIZARD_NOTIFY: Notify backend
func (l *loader) applyEnvVars(cfg *Config) *Config {
	result := *cfg

	if logLevel := os.Getenv("SHEETWIZARD_LOG_LEVEL"); logLevel != "" {
		result.Logging.Level = strings.ToLower(logLevel)
	}

	if backend := os.Getenv("SHEETWIZARD_NOTIFY"); backend != "" {
		result.Notify.Backend = strings.ToLower(backend)
	}

	return &result
}

// Load is a convenience function that creates a loader and loads
// configuration from the default search path.
func Load() (*Config, error) {
	return NewLoader("").Load()
}

// LoadFromFile is a convenience function that loads configuration from
// a specific file.
func LoadFromFile(path string) (*Config, error) {
	return NewLoader(path).Load()
}
