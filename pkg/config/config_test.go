package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// validConfig returns a configuration passing all invariants.
func validConfig() *Config {
	cfg := Default()
	cfg.Watch.Dir = "/data/sheets"
	cfg.Watch.VisiblePrefix = "report"
	cfg.Script.Dir = "/opt/wizard"
	cfg.Script.Filename = "main.py"
	cfg.Script.EnvName = "wizard"
	return cfg
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"missing watch dir", func(c *Config) { c.Watch.Dir = "" }, ErrNoWatchDir},
		{"missing prefix", func(c *Config) { c.Watch.VisiblePrefix = "" }, ErrNoVisiblePrefix},
		{"missing hidden prefix", func(c *Config) { c.Watch.HiddenPrefix = "" }, ErrNoHiddenPrefix},
		{"missing extension", func(c *Config) { c.Watch.Ext = "" }, ErrNoExtension},
		{"missing script dir", func(c *Config) { c.Script.Dir = "" }, ErrNoScriptDir},
		{"missing script filename", func(c *Config) { c.Script.Filename = "" }, ErrNoScriptFilename},
		{"missing env name", func(c *Config) { c.Script.EnvName = "" }, ErrNoEnvName},
		{"bad notify backend", func(c *Config) { c.Notify.Backend = "toast" }, ErrInvalidNotifyBackend},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, ErrInvalidLogLevel},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, ErrInvalidLogFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
watch:
  listened_directory: /data/sheets
  filename_prefix: report
  hidden_filename_prefix: "~$report"
  ext_name: xlsx
script:
  script_directory: /opt/wizard
  script_filename: main.py
  env_name: wizard
notify:
  backend: log
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Watch.Dir != "/data/sheets" {
		t.Errorf("Watch.Dir = %s", cfg.Watch.Dir)
	}
	if cfg.Watch.HiddenPrefix != "~$report" {
		t.Errorf("Watch.HiddenPrefix = %s", cfg.Watch.HiddenPrefix)
	}
	if cfg.Notify.Backend != "log" {
		t.Errorf("Notify.Backend = %s", cfg.Notify.Backend)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %s", cfg.Logging.Level)
	}

	// Defaults survive where the file is silent.
	if cfg.Notify.Title != "Sheet Wizard" {
		t.Errorf("Notify.Title = %s, want default", cfg.Notify.Title)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format = %s, want default", cfg.Logging.Format)
	}
}

func TestLoadFromFileNotFound(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadFromFile() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadFromFileInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("watch: ["), 0600); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	_, err := LoadFromFile(path)
	if !errors.Is(err, ErrInvalidYAML) {
		t.Errorf("LoadFromFile() error = %v, want ErrInvalidYAML", err)
	}
}

func TestLoadFromFileIncomplete(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	// Script section missing entirely: validation must reject it.
	content := `
watch:
  listened_directory: /data/sheets
  filename_prefix: report
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	_, err := LoadFromFile(path)
	if !errors.Is(err, ErrNoScriptDir) {
		t.Errorf("LoadFromFile() error = %v, want ErrNoScriptDir", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
watch:
  listened_directory: /data/sheets
  filename_prefix: report
script:
  script_directory: /opt/wizard
  script_filename: main.py
  env_name: wizard
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	t.Setenv("SHEETWIZARD_LOG_LEVEL", "DEBUG")
	t.Setenv("SHEETWIZARD_NOTIFY", "log")

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %s, want debug from env", cfg.Logging.Level)
	}
	if cfg.Notify.Backend != "log" {
		t.Errorf("Notify.Backend = %s, want log from env", cfg.Notify.Backend)
	}
}

func TestConfigDirEnvSearch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
watch:
  listened_directory: /data/sheets
  filename_prefix: report
script:
  script_directory: /opt/wizard
  script_filename: main.py
  env_name: wizard
notify:
  backend: log
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	t.Setenv("SHEETWIZARD_CONFIG", dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Watch.Dir != "/data/sheets" {
		t.Errorf("Watch.Dir = %s", cfg.Watch.Dir)
	}
}
