// Package config provides configuration management for the sheet
// watcher.
//
// Configuration is loaded with the following precedence:
// 1. Environment variables (highest priority)
// 2. Configuration file
// 3. Default values (lowest priority)
//
// The configuration is loaded once at startup and read-only for the
// process lifetime; there is no reload.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("watching %s\n", cfg.Watch.Dir)
package config

// Config represents the complete application configuration.
//
// Invariants:
// - Watch.Dir, Watch.VisiblePrefix, Watch.HiddenPrefix and Watch.Ext
//   must be non-empty
// - Script.Dir, Script.Filename and Script.EnvName must be non-empty
// - Notify.Backend must be a known backend
// - Logging fields must be recognized values.
type Config struct {
	// Watched directory and filename pattern
	Watch WatchConfig `yaml:"watch"`

	// External processing script invocation
	Script ScriptConfig `yaml:"script"`

	// User-facing notification settings
	Notify NotifyConfig `yaml:"notify"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging"`
}

// WatchConfig describes the directory and filename pattern to watch.
// All fields are plain strings supplied by the user.
type WatchConfig struct {
	// Directory to watch recursively
	Dir string `yaml:"listened_directory"`

	// Filename prefix of saved target files
	VisiblePrefix string `yaml:"filename_prefix"`

	// Filename prefix of the editor's transient lock file
	HiddenPrefix string `yaml:"hidden_filename_prefix"`

	// File extension filter, without the leading dot
	Ext string `yaml:"ext_name"`

	// Lenient downgrades watch registration failures from fatal to a
	// logged warning. Meant for debugging; the default is fatal.
	Lenient bool `yaml:"lenient"`
}

// ScriptConfig describes the external processing script.
type ScriptConfig struct {
	// Working directory containing the script
	Dir string `yaml:"script_directory"`

	// Entry-point filename inside the working directory
	Filename string `yaml:"script_filename"`

	// Conda environment the script runs in
	EnvName string `yaml:"env_name"`
}

// NotifyConfig describes how outcomes are reported to the user.
type NotifyConfig struct {
	// Backend selects the notifier implementation (desktop, log)
	Backend string `yaml:"backend"`

	// Title shown on every notification
	Title string `yaml:"title"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Log level (debug, info, warn, error)
	Level string `yaml:"level"`

	// Log output destination (stdout, stderr, file path)
	Output string `yaml:"output"`

	// Log format (text, json)
	Format string `yaml:"format"`
}

// Validate checks if the configuration satisfies all invariants.
//
// Returns the first violated invariant as a sentinel error.
//
// Thread-safety: read-only, safe for concurrent use.
func (c *Config) Validate() error {
	if c.Watch.Dir == "" {
		return ErrNoWatchDir
	}
	if c.Watch.VisiblePrefix == "" {
		return ErrNoVisiblePrefix
	}
	if c.Watch.HiddenPrefix == "" {
		return ErrNoHiddenPrefix
	}
	if c.Watch.Ext == "" {
		return ErrNoExtension
	}

	if c.Script.Dir == "" {
		return ErrNoScriptDir
	}
	if c.Script.Filename == "" {
		return ErrNoScriptFilename
	}
	if c.Script.EnvName == "" {
		return ErrNoEnvName
	}

	validBackends := map[string]bool{
		"desktop": true,
		"log":     true,
	}
	if !validBackends[c.Notify.Backend] {
		return ErrInvalidNotifyBackend
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	validFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validFormats[c.Logging.Format] {
		return ErrInvalidLogFormat
	}

	return nil
}
