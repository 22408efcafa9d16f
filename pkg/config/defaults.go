package config

import (
	"os"
	"path/filepath"
)

// Default returns a configuration with sensible default values.
//
// The watch and script sections have no usable defaults beyond the
// extension and lock-file prefix: directory, prefix and script fields
// must come from the configuration file.
func Default() *Config {
	return &Config{
		Watch: WatchConfig{
			HiddenPrefix: "~$",
			Ext:          "xlsx",
			Lenient:      false,
		},
		Notify: NotifyConfig{
			Backend: "desktop",
			Title:   "Sheet Wizard",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: "stderr",
			Format: "text",
		},
	}
}

// defaultConfigPath returns the user-level configuration file path.
//
// Returns: ~/.config/sheetwizard/config.yaml.
func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./config.yaml"
	}

	return filepath.Join(homeDir, ".config", "sheetwizard", "config.yaml")
}
